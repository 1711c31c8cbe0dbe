package domain

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a guest's reservation of one room over a date range. Hotel and
// room are referenced by value only; the client never holds a live link back
// into the catalog. CheckIn/CheckOut are ISO calendar dates ("2006-01-02"),
// day granularity, no time-of-day component.
type Booking struct {
	ID         string        `json:"id"`
	HotelID    int64         `json:"hotelId"`
	RoomID     int64         `json:"roomId"`
	GuestName  string        `json:"guestName"`
	Email      string        `json:"email"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// BookingPatch carries the fields of a partial update; nil means "leave as is".
type BookingPatch struct {
	GuestName  *string        `json:"guestName,omitempty"`
	Email      *string        `json:"email,omitempty"`
	CheckIn    *string        `json:"checkIn,omitempty"`
	CheckOut   *string        `json:"checkOut,omitempty"`
	Guests     *int           `json:"guests,omitempty"`
	TotalPrice *float64       `json:"totalPrice,omitempty"`
	Status     *BookingStatus `json:"status,omitempty"`
}

// Apply merges the patch into b the way the backend would echo it.
func (p BookingPatch) Apply(b Booking) Booking {
	if p.GuestName != nil {
		b.GuestName = *p.GuestName
	}
	if p.Email != nil {
		b.Email = *p.Email
	}
	if p.CheckIn != nil {
		b.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		b.CheckOut = *p.CheckOut
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return b
}

// Complaint is fire-and-forget feedback; the client never reads it back.
type Complaint struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the locally held claim of who the current user is. It is set
// from a successful booking form or an explicit login and is never verified
// against the backend.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
