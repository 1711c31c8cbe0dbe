package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/app"
	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/i18n"
)

// ---- fakes ----

type fakeBackend struct {
	mu sync.Mutex

	hotels    []domain.Hotel
	listErr   error
	detail    map[int64]domain.Hotel
	detailErr error
	// when non-nil, GetHotel blocks until the channel is closed
	detailGate chan struct{}
	// receives one value when a gated GetHotel reaches the gate
	detailEntered chan struct{}

	bookings  []domain.Booking
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error
	// echoID, when set, replaces the client-chosen booking id in the echo
	echoID string

	createCalls int
	deleteCalls int

	complaints   []domain.Complaint
	complaintErr error
}

func (f *fakeBackend) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Hotel(nil), f.hotels...), nil
}

func (f *fakeBackend) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	f.mu.Lock()
	gate := f.detailGate
	entered := f.detailEntered
	f.mu.Unlock()
	if gate != nil {
		if entered != nil {
			entered <- struct{}{}
		}
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return domain.Hotel{}, f.detailErr
	}
	h, ok := f.detail[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (f *fakeBackend) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]domain.Booking(nil), f.bookings...), nil
}

func (f *fakeBackend) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return domain.Booking{}, f.createErr
	}
	if f.echoID != "" {
		b.ID = f.echoID
	}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBackend) UpdateBooking(ctx context.Context, id string, p domain.BookingPatch) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return domain.Booking{}, f.updateErr
	}
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings[i] = p.Apply(b)
			return f.bookings[i], nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (f *fakeBackend) DeleteBooking(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBackend) CreateComplaint(ctx context.Context, c domain.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.complaintErr != nil {
		return f.complaintErr
	}
	f.complaints = append(f.complaints, c)
	return nil
}

// ---- fixtures ----

func text(s string) i18n.Text {
	return i18n.Text{EN: s, UZ: s + " uz", RU: s + " ru"}
}

func list(items ...string) i18n.List {
	return i18n.List{EN: items, UZ: items, RU: items}
}

func testHotel() domain.Hotel {
	return domain.Hotel{
		ID:          1,
		Name:        text("Zaamin Resort"),
		Description: text("Mountain resort"),
		Location:    domain.LocationMountain,
		Rating:      4.8,
		Amenities:   list("Spa"),
		Rooms: []domain.Room{
			{
				ID:          7,
				Type:        text("Deluxe"),
				Description: text("Deluxe room"),
				Price:       150,
				Capacity:    2,
				Amenities:   list("WiFi"),
			},
			{
				ID:          8,
				Type:        text("Suite"),
				Description: text("Family suite"),
				Price:       200,
				Capacity:    4,
				Amenities:   list("WiFi", "Kitchen"),
			},
		},
	}
}

func nolog() zerolog.Logger { return zerolog.Nop() }

// ---- tests ----

func TestCatalog_LoadAll_ReplacesWholesale(t *testing.T) {
	be := &fakeBackend{hotels: []domain.Hotel{testHotel()}}
	s := app.NewCatalogStore(be, nolog())

	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := s.Hotels(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected hotels: %+v", got)
	}

	// next load replaces, never merges
	h2 := testHotel()
	h2.ID = 2
	be.mu.Lock()
	be.hotels = []domain.Hotel{h2}
	be.mu.Unlock()
	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}
	got := s.Hotels()
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected wholesale replace, got %+v", got)
	}
}

func TestCatalog_LoadAll_FailureKeepsStaleList(t *testing.T) {
	be := &fakeBackend{hotels: []domain.Hotel{testHotel()}}
	s := app.NewCatalogStore(be, nolog())

	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("err: %v", err)
	}

	be.mu.Lock()
	be.listErr = errors.New("backend down")
	be.mu.Unlock()

	if err := s.LoadAll(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := s.Hotels(); len(got) != 1 {
		t.Fatalf("stale list should survive a failed refresh, got %+v", got)
	}
	if s.Err() == "" {
		t.Fatal("error message should be recorded")
	}
	if s.Loading() {
		t.Fatal("loading flag must clear on failure")
	}
}

func TestCatalog_LoadDetail(t *testing.T) {
	h := testHotel()
	be := &fakeBackend{detail: map[int64]domain.Hotel{1: h}}
	s := app.NewCatalogStore(be, nolog())

	if err := s.LoadDetail(context.Background(), 1); err != nil {
		t.Fatalf("err: %v", err)
	}
	got, ok := s.CurrentHotel()
	if !ok || got.ID != 1 || len(got.Rooms) != 2 {
		t.Fatalf("unexpected detail: %+v", got)
	}

	s.ClearDetail()
	if _, ok := s.CurrentHotel(); ok {
		t.Fatal("detail should be absent after ClearDetail")
	}
}

func TestCatalog_LoadDetail_NotFound(t *testing.T) {
	be := &fakeBackend{detail: map[int64]domain.Hotel{}}
	s := app.NewCatalogStore(be, nolog())

	err := s.LoadDetail(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, ok := s.CurrentHotel(); ok {
		t.Fatal("no detail should be set")
	}
}

// ClearDetail issued while a detail fetch is still in flight must win: the
// late response gets dropped and the slot stays empty.
func TestCatalog_ClearDetail_NeutralizesLateArrival(t *testing.T) {
	gate := make(chan struct{})
	entered := make(chan struct{}, 1)
	be := &fakeBackend{
		detail:        map[int64]domain.Hotel{1: testHotel()},
		detailGate:    gate,
		detailEntered: entered,
	}
	s := app.NewCatalogStore(be, nolog())

	done := make(chan error, 1)
	go func() { done <- s.LoadDetail(context.Background(), 1) }()

	<-entered // the fetch is in flight now
	s.ClearDetail()
	close(gate) // let the fetch resolve

	if err := <-done; err != nil {
		t.Fatalf("dropped response should not surface an error, got %v", err)
	}
	if _, ok := s.CurrentHotel(); ok {
		t.Fatal("late-arriving detail must not repopulate a cleared slot")
	}
}
