package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jizzakh_hotels/internal/domain"
)

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// listHotels serves summaries: rooms are stripped, the detail endpoint
// carries them.
func (s *Server) listHotels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Hotel, len(s.hotels))
	for i, h := range s.hotels {
		h.Rooms = nil
		out[i] = h
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.hotels {
		if h.ID == id {
			writeJSON(w, http.StatusOK, h)
			return
		}
	}
	writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

// createBooking echoes the stored booking. The client supplies id, status
// and createdAt; only a blank id gets a server-assigned one.
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed booking JSON")
		return
	}
	s.mu.Lock()
	if b.ID == "" {
		b.ID = strconv.FormatInt(s.nextID, 10)
		s.nextID++
	}
	s.bookings = append(s.bookings, b)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) updateBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var p domain.BookingPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed patch JSON")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings[i] = p.Apply(b)
			writeJSON(w, http.StatusOK, s.bookings[i])
			return
		}
	}
	writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
}

func (s *Server) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeProblem(w, http.StatusNotFound, "Not Found", "booking not found")
}

func (s *Server) createComplaint(w http.ResponseWriter, r *http.Request) {
	var c domain.Complaint
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed complaint JSON")
		return
	}
	s.mu.Lock()
	s.complaints = append(s.complaints, c)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, c)
}
