package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/domain"
)

// BookingInput is a booking minus the fields the store synthesizes before
// submission (id, status, createdAt).
type BookingInput struct {
	HotelID    int64
	RoomID     int64
	GuestName  string
	Email      string
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice float64
}

// BookingStore holds the session's bookings collection. Every operation is
// an independent round-trip to the backend; local state only changes after
// the backend confirms, so a failure leaves the collection untouched.
type BookingStore struct {
	client domain.BackendClient
	log    zerolog.Logger
	now    func() time.Time
	newID  func() string

	mu       sync.Mutex
	bookings []domain.Booking
	loading  bool
	errMsg   string
}

func NewBookingStore(client domain.BackendClient, log zerolog.Logger) *BookingStore {
	return &BookingStore{
		client: client,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// LoadMine fetches the bookings visible to the session. The backend has no
// notion of ownership and returns everything; when an identity email is
// known the list is narrowed client-side, otherwise it is kept as-is.
func (s *BookingStore) LoadMine(ctx context.Context, identityEmail string) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	all, err := s.client.ListBookings(ctx)
	observability.ObserveStore("bookings", "load", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.log.Warn().Err(err).Msg("bookings fetch failed")
		return err
	}
	if identityEmail == "" {
		s.bookings = all
		return nil
	}
	mine := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if strings.EqualFold(b.Email, identityEmail) {
			mine = append(mine, b)
		}
	}
	s.bookings = mine
	return nil
}

// Create synthesizes the provisional id, timestamp and status, sends the
// booking, and appends the backend echo on success. The status is set to
// confirmed up front: the demo flow has no inventory check to wait for.
func (s *BookingStore) Create(ctx context.Context, in BookingInput) (domain.Booking, error) {
	b := domain.Booking{
		ID:         s.newID(),
		HotelID:    in.HotelID,
		RoomID:     in.RoomID,
		GuestName:  in.GuestName,
		Email:      in.Email,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Guests:     in.Guests,
		TotalPrice: in.TotalPrice,
		Status:     domain.StatusConfirmed,
		CreatedAt:  s.now().UTC(),
	}

	echo, err := s.client.CreateBooking(ctx, b)
	observability.ObserveStore("bookings", "create", err)
	if err != nil {
		s.log.Warn().Err(err).Msg("booking create rejected")
		return domain.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, echo)
	s.log.Info().Str("id", echo.ID).Int64("hotel", echo.HotelID).Msg("booking created")
	return echo, nil
}

// Update sends a partial patch and replaces the matching entry in place by
// id. When no local entry matches the echoed id, local state is left alone;
// the backend may have diverged from what this session has loaded.
func (s *BookingStore) Update(ctx context.Context, id string, p domain.BookingPatch) (domain.Booking, error) {
	echo, err := s.client.UpdateBooking(ctx, id, p)
	observability.ObserveStore("bookings", "update", err)
	if err != nil {
		s.log.Warn().Str("id", id).Err(err).Msg("booking update rejected")
		return domain.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == echo.ID {
			s.bookings[i] = echo
			break
		}
	}
	return echo, nil
}

// Delete removes the matching entry once the backend confirms. Deleting an
// id the store does not hold is a local no-op.
func (s *BookingStore) Delete(ctx context.Context, id string) error {
	err := s.client.DeleteBooking(ctx, id)
	observability.ObserveStore("bookings", "delete", err)
	if err != nil {
		s.log.Warn().Str("id", id).Err(err).Msg("booking delete rejected")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	return nil
}

func (s *BookingStore) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *BookingStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
