package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jizzakh_hotels/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/hotels", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("catalog", "load_all", nil)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "jizzakh_http_requests_total") {
		t.Fatalf("expected jizzakh_http_requests_total in output")
	}
	if !strings.Contains(out, "jizzakh_store_operations_total") {
		t.Fatalf("expected jizzakh_store_operations_total in output")
	}
}
