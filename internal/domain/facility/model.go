package facility

import "time"

// Room is a physical room in the clinic that appointments may be booked into.
type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Floor       *string   `json:"floor,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// RoomInput is the create/update payload for Room.
type RoomInput struct {
	Name        *string `json:"name"`
	Floor       *string `json:"floor"`
	Description *string `json:"description"`
}

// Specialty is a medical discipline offered by the clinic. It is a standalone
// catalog entry; doctors carry a free-text specialization instead of a
// reference to it.
type Specialty struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// SpecialtyInput is the create/update payload for Specialty.
type SpecialtyInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
