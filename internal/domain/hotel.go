package domain

import (
	"fmt"

	"jizzakh_hotels/internal/i18n"
)

// Location is a decorative tag on a hotel; it only drives background theming.
type Location string

const (
	LocationMountain Location = "mountain"
	LocationDesert   Location = "desert"
)

type Room struct {
	ID          int64     `json:"id"`
	Type        i18n.Text `json:"type"`
	Description i18n.Text `json:"description"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Image       string    `json:"image"`
	Amenities   i18n.List `json:"amenities"`
}

// Validate enforces the room invariants before it is exposed to the UI:
// non-negative nightly price, room for at least one guest, and full
// localization of every user-facing field.
func (r Room) Validate() error {
	if r.Price < 0 {
		return fmt.Errorf("room %d: negative price %v", r.ID, r.Price)
	}
	if r.Capacity < 1 {
		return fmt.Errorf("room %d: capacity must be positive, got %d", r.ID, r.Capacity)
	}
	if !r.Type.Complete() {
		return fmt.Errorf("room %d: type missing locales %v", r.ID, r.Type.MissingLocales())
	}
	if !r.Description.Complete() {
		return fmt.Errorf("room %d: description missing locales %v", r.ID, r.Description.MissingLocales())
	}
	if !r.Amenities.Complete() {
		return fmt.Errorf("room %d: amenities not localized for all locales", r.ID)
	}
	return nil
}

// Hotel owns its rooms exclusively; a room has no life outside its hotel.
// The list endpoint may omit Rooms (summary form); the detail endpoint
// always populates them.
type Hotel struct {
	ID          int64     `json:"id"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Location    Location  `json:"location"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Amenities   i18n.List `json:"amenities"`
	Rooms       []Room    `json:"rooms,omitempty"`
}

func (h Hotel) Validate() error {
	if h.ID <= 0 {
		return fmt.Errorf("hotel: missing id")
	}
	if !h.Name.Complete() {
		return fmt.Errorf("hotel %d: name missing locales %v", h.ID, h.Name.MissingLocales())
	}
	if !h.Description.Complete() {
		return fmt.Errorf("hotel %d: description missing locales %v", h.ID, h.Description.MissingLocales())
	}
	for _, r := range h.Rooms {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("hotel %d: %w", h.ID, err)
		}
	}
	return nil
}

// Room resolves a room by id within this hotel.
func (h Hotel) Room(id int64) (Room, bool) {
	for _, r := range h.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
