package main

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"jizzakh_hotels/internal/adapters/backend"
	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/shared"
)

// catalogcheck audits the whole catalog: it fetches the summary list, then
// pulls every hotel detail with bounded concurrency and reports entities
// that violate the client's invariants (partial localization, bad prices or
// capacities, unreachable details). Exits non-zero when anything fails.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.BackendBase).
		Int("workers", cfg.Workers).
		Msg("catalog audit starting")

	client := backend.New(cfg.BackendBase, cfg.BackendKey, 10)

	hotels, err := client.ListHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("hotel list fetch failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var bad atomic.Int64

	for _, h := range hotels {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotelID int64) {
			defer wg.Done()
			defer sem.Release(1)

			detail, err := client.GetHotel(ctx, hotelID)
			if err != nil {
				bad.Add(1)
				log.Warn().Int64("id", hotelID).Err(err).Msg("audit failed")
				return
			}
			if len(detail.Rooms) == 0 {
				bad.Add(1)
				log.Warn().Int64("id", hotelID).Msg("hotel detail has no rooms")
				return
			}
			log.Info().Int64("id", hotelID).Int("rooms", len(detail.Rooms)).Msg("audit ok")
		}(h.ID)
	}

	wg.Wait()
	if n := bad.Load(); n > 0 {
		log.Error().Int64("failed", n).Int("total", len(hotels)).Msg("catalog unhealthy")
		os.Exit(1)
	}
	log.Info().Int("total", len(hotels)).Msg("catalog healthy")
}
