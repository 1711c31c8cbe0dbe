package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "jizzakh", Name: "http_requests_total", Help: "HTTP requests served (devserver)."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jizzakh", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds (devserver).",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "jizzakh", Name: "backend_requests_total", Help: "Outbound requests to the booking backend."},
		[]string{"endpoint", "method", "status"},
	)
	BackendLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jizzakh", Name: "backend_request_duration_seconds",
			Help:    "Outbound backend request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "jizzakh", Name: "store_operations_total", Help: "Catalog/booking store operations."},
		[]string{"store", "op", "outcome"}, // outcome: ok|err
	)
	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "jizzakh", Name: "session_events_total", Help: "Session persistence loads/saves/clears."},
		[]string{"event"}, // event: restore|restore_empty|save|clear
	)
)

// Serve starts the metrics endpoint when METRICS_ADDR is set.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, BackendRequests, BackendLatency, StoreOps, SessionEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveBackend(endpoint, method string, status int, dur time.Duration) {
	BackendRequests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	BackendLatency.WithLabelValues(endpoint, method).Observe(dur.Seconds())
}

func ObserveStore(store, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "err"
	}
	StoreOps.WithLabelValues(store, op, outcome).Inc()
}

func ObserveSession(event string) { // event: restore|restore_empty|save|clear
	SessionEvents.WithLabelValues(event).Inc()
}
