package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/domain"
)

// CatalogStore holds the fetched hotel list and the single "current hotel"
// detail. Catalog data is never persisted locally; every view of it comes
// from a fresh fetch. A failed refresh keeps whatever was loaded before, so
// a transient error does not blank an already-populated view.
type CatalogStore struct {
	client domain.BackendClient
	log    zerolog.Logger

	mu      sync.Mutex
	hotels  []domain.Hotel
	current *domain.Hotel
	loading bool
	errMsg  string

	// detailGen guards the current-hotel slot against late-arriving
	// responses: ClearDetail and every new LoadDetail bump it, and a
	// fetch only commits if the slot generation it captured still holds.
	detailGen uint64
}

func NewCatalogStore(client domain.BackendClient, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{client: client, log: log}
}

// LoadAll fetches the full hotel summary list and replaces the held list
// wholesale on success. On failure the previous list stays available and
// the error message is recorded.
func (s *CatalogStore) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	hotels, err := s.client.ListHotels(ctx)
	observability.ObserveStore("catalog", "load_all", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.log.Warn().Err(err).Msg("hotel list fetch failed")
		return err
	}
	s.hotels = hotels
	return nil
}

// LoadDetail fetches one hotel including its rooms and replaces the current
// detail wholesale. If the slot was cleared (or another load started) while
// the fetch was in flight, the late response is dropped on the floor.
func (s *CatalogStore) LoadDetail(ctx context.Context, id int64) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.detailGen++
	gen := s.detailGen
	s.mu.Unlock()

	h, err := s.client.GetHotel(ctx, id)
	observability.ObserveStore("catalog", "load_detail", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.detailGen {
		s.log.Debug().Int64("hotel", id).Msg("stale detail response dropped")
		return nil
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.log.Warn().Int64("hotel", id).Err(err).Msg("hotel detail fetch failed")
		return err
	}
	s.current = &h
	return nil
}

// ClearDetail resets the current hotel. Called when navigating away from a
// detail view so the next one cannot flash a stale hotel, and it neutralizes
// any detail fetch still in flight.
func (s *CatalogStore) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailGen++
	s.current = nil
	s.loading = false
}

func (s *CatalogStore) Hotels() []domain.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Hotel, len(s.hotels))
	copy(out, s.hotels)
	return out
}

func (s *CatalogStore) CurrentHotel() (domain.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Hotel{}, false
	}
	return *s.current, true
}

func (s *CatalogStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last fetch error message, empty when the last fetch succeeded.
func (s *CatalogStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
