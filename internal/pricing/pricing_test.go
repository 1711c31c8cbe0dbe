package pricing_test

import (
	"testing"
	"time"

	"jizzakh_hotels/internal/pricing"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := pricing.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestNights(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		want              int
	}{
		{"2024-06-01", "2024-06-04", 3},
		{"2024-06-01", "2024-06-02", 1},
		{"2024-06-01", "2024-06-01", 0},
		{"2024-06-04", "2024-06-01", -3},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2024-12-30", "2025-01-02", 3}, // year boundary
	}
	for _, tc := range cases {
		got := pricing.Nights(date(t, tc.checkIn), date(t, tc.checkOut))
		if got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", tc.checkIn, tc.checkOut, got, tc.want)
		}
	}
}

func TestNights_StrictlyIncreasing(t *testing.T) {
	in := date(t, "2024-06-01")
	prev := pricing.Nights(in, in)
	for d := 1; d <= 30; d++ {
		n := pricing.Nights(in, in.AddDate(0, 0, d))
		if n <= prev {
			t.Fatalf("Nights not strictly increasing at +%dd: %d then %d", d, prev, n)
		}
		prev = n
	}
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	in := date(t, "2024-06-01")
	out := in.AddDate(0, 0, 2).Add(6 * time.Hour)
	if got := pricing.Nights(in, out); got != 3 {
		t.Fatalf("partial day should count as a full night, got %d", got)
	}
}

func TestTotal(t *testing.T) {
	cases := []struct {
		nights int
		rate   float64
		want   float64
	}{
		{3, 150, 450},
		{1, 80, 80},
		{0, 150, 0},
		{-2, 150, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		got := pricing.Total(tc.nights, tc.rate)
		if got != tc.want {
			t.Errorf("Total(%d, %v) = %v, want %v", tc.nights, tc.rate, got, tc.want)
		}
		if got < 0 {
			t.Errorf("Total(%d, %v) is negative", tc.nights, tc.rate)
		}
	}
}

func TestQuoteStay(t *testing.T) {
	q := pricing.QuoteStay("2024-06-01", "2024-06-04", 150)
	if q.Nights != 3 || q.Total != 450 || !q.Valid() {
		t.Fatalf("unexpected quote: %+v", q)
	}

	// incomplete or garbled dates quote to zero, like an empty form field
	for _, pair := range [][2]string{
		{"", "2024-06-04"},
		{"2024-06-01", ""},
		{"yesterday", "2024-06-04"},
		{"2024-06-01", "06/04/2024"},
	} {
		q := pricing.QuoteStay(pair[0], pair[1], 150)
		if q.Valid() || q.Total != 0 {
			t.Errorf("QuoteStay(%q, %q) should be invalid, got %+v", pair[0], pair[1], q)
		}
	}

	// inverted range: invalid, never a negative price
	q = pricing.QuoteStay("2024-06-04", "2024-06-01", 150)
	if q.Valid() || q.Total != 0 {
		t.Fatalf("inverted range must not price, got %+v", q)
	}
}
