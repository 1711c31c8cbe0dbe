// Package devserver is an in-memory stand-in for the external booking
// backend. It implements the REST contract the client consumes (hotels,
// bookings, complaints) for local development and end-to-end tests; nothing
// survives a restart on purpose.
package devserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"jizzakh_hotels/internal/domain"
)

type Server struct {
	mux *chi.Mux

	mu         sync.Mutex
	hotels     []domain.Hotel
	bookings   []domain.Booking
	complaints []domain.Complaint
	nextID     int64
}

// New builds the router with the full middleware chain and the seed catalog.
func New() *Server {
	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	s := &Server{mux: m, hotels: seedHotels(), nextID: 1}
	s.routes()
	return s
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

func (s *Server) routes() {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Get("/hotels", s.listHotels)
	s.mux.Get("/hotels/{id}", s.getHotel)
	s.mux.Get("/bookings", s.listBookings)
	s.mux.Post("/bookings", s.createBooking)
	s.mux.Patch("/bookings/{id}", s.updateBooking)
	s.mux.Delete("/bookings/{id}", s.deleteBooking)
	s.mux.Post("/complaints", s.createComplaint)
}
