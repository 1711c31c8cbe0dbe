package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"jizzakh_hotels/internal/adapters/devserver"
	"jizzakh_hotels/internal/adapters/observability"
	"jizzakh_hotels/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	srv := devserver.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("devserver listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("devserver failed")
	}
}
