package app

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/pricing"
)

type FlowState string

const (
	FlowIdle         FlowState = "idle"
	FlowLoading      FlowState = "loading"
	FlowReady        FlowState = "ready"
	FlowSubmitting   FlowState = "submitting"
	FlowSucceeded    FlowState = "succeeded"
	FlowFailed       FlowState = "failed"
	FlowRoomNotFound FlowState = "room_not_found"
)

// BookingForm is the raw user input collected before submission.
type BookingForm struct {
	GuestName string `json:"guestName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
	Guests    int    `json:"guests" validate:"min=1"`
}

type FieldErrors map[string]string

// ValidationError carries per-field reasons back to the form. It never
// reaches the network layer.
type ValidationError struct{ Fields FieldErrors }

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "invalid booking form: " + strings.Join(parts, "; ")
}

// BookingFlow orchestrates one booking attempt: load the hotel detail,
// resolve the selected room, quote the stay as inputs change, validate, and
// submit. On success it also establishes the session identity from the form,
// the way the original flow logs the guest in after booking.
type BookingFlow struct {
	catalog  *CatalogStore
	bookings *BookingStore
	session  *SessionStore
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time

	mu      sync.Mutex
	state   FlowState
	hotel   domain.Hotel
	room    domain.Room
	lastErr string
}

func NewBookingFlow(catalog *CatalogStore, bookings *BookingStore, session *SessionStore, log zerolog.Logger) *BookingFlow {
	v := validator.New()
	// report errors under wire field names, not Go struct names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &BookingFlow{
		catalog:  catalog,
		bookings: bookings,
		session:  session,
		validate: v,
		log:      log,
		now:      time.Now,
		state:    FlowIdle,
	}
}

// Start loads the hotel detail and resolves the target room. A room id that
// is absent from a successfully loaded hotel is a distinct terminal outcome,
// not a loading state.
func (f *BookingFlow) Start(ctx context.Context, hotelID, roomID int64) error {
	f.setState(FlowLoading, "")

	if err := f.catalog.LoadDetail(ctx, hotelID); err != nil {
		f.setState(FlowFailed, err.Error())
		return err
	}
	hotel, ok := f.catalog.CurrentHotel()
	if !ok || hotel.ID != hotelID {
		// the detail slot was cleared or repointed while we were loading
		err := errors.New("hotel detail no longer current")
		f.setState(FlowIdle, err.Error())
		return err
	}
	room, ok := hotel.Room(roomID)
	if !ok {
		f.log.Warn().Int64("hotel", hotelID).Int64("room", roomID).Msg("room id not in hotel")
		f.setState(FlowRoomNotFound, domain.ErrRoomNotFound.Error())
		return domain.ErrRoomNotFound
	}

	f.session.ApplyHotelTheme(hotel.Location)

	f.mu.Lock()
	f.hotel = hotel
	f.room = room
	f.state = FlowReady
	f.lastErr = ""
	f.mu.Unlock()
	return nil
}

// Preview quotes the stay for the current inputs. The exact same computation
// runs again at submission; the preview can never show a different total
// than what gets sent.
func (f *BookingFlow) Preview(form BookingForm) pricing.Quote {
	f.mu.Lock()
	rate := f.room.Price
	ready := f.state == FlowReady || f.state == FlowSubmitting
	f.mu.Unlock()
	if !ready {
		return pricing.Quote{}
	}
	return pricing.QuoteStay(form.CheckIn, form.CheckOut, rate)
}

// Check validates the form entirely client-side and reports per-field
// reasons. An empty result means the form may be submitted.
func (f *BookingFlow) Check(form BookingForm) FieldErrors {
	fe := FieldErrors{}

	if err := f.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, ve := range verrs {
				fe[ve.Field()] = reasonFor(ve)
			}
		} else {
			fe["form"] = err.Error()
		}
	}

	ci, ciErr := pricing.ParseDate(form.CheckIn)
	if form.CheckIn != "" && ciErr != nil {
		fe["checkIn"] = "must be a calendar date (YYYY-MM-DD)"
	}
	co, coErr := pricing.ParseDate(form.CheckOut)
	if form.CheckOut != "" && coErr != nil {
		fe["checkOut"] = "must be a calendar date (YYYY-MM-DD)"
	}
	if ciErr == nil && fe["checkIn"] == "" {
		today, _ := pricing.ParseDate(f.now().UTC().Format(pricing.DateLayout))
		if ci.Before(today) {
			fe["checkIn"] = "cannot be in the past"
		}
	}
	if ciErr == nil && coErr == nil && fe["checkOut"] == "" {
		if pricing.Nights(ci, co) <= 0 {
			fe["checkOut"] = "must be after check-in"
		}
	}

	f.mu.Lock()
	capacity := f.room.Capacity
	f.mu.Unlock()
	if fe["guests"] == "" && capacity > 0 && form.Guests > capacity {
		fe["guests"] = fmt.Sprintf("room sleeps at most %d", capacity)
	}
	return fe
}

// Submit validates, computes the final price, creates the booking, and on
// success logs the guest in with the submitted identity. On submission
// failure the flow returns to Ready so the user can retry with the same
// inputs.
func (f *BookingFlow) Submit(ctx context.Context, form BookingForm) (domain.Booking, error) {
	f.mu.Lock()
	if f.state != FlowReady {
		state := f.state
		f.mu.Unlock()
		return domain.Booking{}, fmt.Errorf("booking flow not ready (state %s)", state)
	}
	hotel, room := f.hotel, f.room
	f.mu.Unlock()

	if fe := f.Check(form); len(fe) > 0 {
		return domain.Booking{}, &ValidationError{Fields: fe}
	}

	f.setState(FlowSubmitting, "")

	quote := pricing.QuoteStay(form.CheckIn, form.CheckOut, room.Price)
	booking, err := f.bookings.Create(ctx, BookingInput{
		HotelID:    hotel.ID,
		RoomID:     room.ID,
		GuestName:  form.GuestName,
		Email:      form.Email,
		CheckIn:    form.CheckIn,
		CheckOut:   form.CheckOut,
		Guests:     form.Guests,
		TotalPrice: quote.Total,
	})
	if err != nil {
		f.setState(FlowReady, err.Error())
		return domain.Booking{}, err
	}

	if err := f.session.Login(ctx, domain.Identity{
		ID:    uuid.NewString(),
		Name:  form.GuestName,
		Email: form.Email,
	}); err != nil {
		// the booking exists either way; a persistence hiccup is not fatal
		f.log.Warn().Err(err).Msg("post-booking login persist failed")
	}

	f.setState(FlowSucceeded, "")
	return booking, nil
}

// Reset returns the flow to Idle and clears the detail slot it was driving.
func (f *BookingFlow) Reset() {
	f.catalog.ClearDetail()
	f.setState(FlowIdle, "")
}

func (f *BookingFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *BookingFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Hotel returns the resolved hotel while the flow is Ready or beyond.
func (f *BookingFlow) Hotel() (domain.Hotel, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hotel, f.hotel.ID != 0
}

// SelectedRoom returns the resolved room while the flow is Ready or beyond.
func (f *BookingFlow) SelectedRoom() (domain.Room, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.room, f.room.ID != 0
}

func (f *BookingFlow) setState(s FlowState, errMsg string) {
	f.mu.Lock()
	f.state = s
	f.lastErr = errMsg
	f.mu.Unlock()
}

func reasonFor(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "at least " + ve.Param() + " required"
	default:
		return "is invalid"
	}
}
