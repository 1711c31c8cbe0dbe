// Package pricing computes stay length and total price. Pure functions, no
// I/O; the live preview and the submitted booking go through the exact same
// code path so the two can never drift apart.
package pricing

import (
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Nights returns the whole-day stay length between check-in and check-out,
// rounding any positive partial day up to a full night. Non-positive results
// mean the range is incomplete or invalid; callers must not read them as a
// free stay.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// Total is nights x rate for a valid stay, 0 otherwise. Never negative.
func Total(nights int, nightlyRate float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * nightlyRate
}

// Quote is the computed summary shown next to the form and written into the
// booking payload.
type Quote struct {
	Nights int
	Total  float64
}

// Valid reports whether the quote describes a bookable stay.
func (q Quote) Valid() bool { return q.Nights > 0 }

// QuoteStay composes Nights and Total from ISO date strings. Unparseable or
// missing dates yield the zero quote, mirroring an empty form field.
func QuoteStay(checkIn, checkOut string, nightlyRate float64) Quote {
	ci, err := ParseDate(checkIn)
	if err != nil {
		return Quote{}
	}
	co, err := ParseDate(checkOut)
	if err != nil {
		return Quote{}
	}
	n := Nights(ci, co)
	return Quote{Nights: n, Total: Total(n, nightlyRate)}
}
