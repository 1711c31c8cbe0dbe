package domain

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the backend has no entity for an id.
	ErrNotFound = errors.New("not found")
	// ErrRoomNotFound marks a room id absent from a successfully loaded
	// hotel. Distinct from ErrNotFound so callers can tell "hotel gone"
	// from "hotel fine, room id wrong".
	ErrRoomNotFound = errors.New("room not found in hotel")
)

// BackendClient is the REST backend the client delegates all persistence to.
type BackendClient interface {
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, id int64) (Hotel, error)

	ListBookings(ctx context.Context) ([]Booking, error)
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	UpdateBooking(ctx context.Context, id string, p BookingPatch) (Booking, error)
	DeleteBooking(ctx context.Context, id string) error

	CreateComplaint(ctx context.Context, c Complaint) error
}

// SessionStorage persists the small slice of session state that survives
// restarts (identity, language, dark mode). Load reports whether anything
// was stored.
type SessionStorage interface {
	Load(ctx context.Context, dst any) (bool, error)
	Save(ctx context.Context, v any) error
	Clear(ctx context.Context) error
}
