package model

import (
	"time"

	"github.com/google/uuid"
)

// Table is a physical table that eat-in orders are bound to. A cleared
// table always has zero guests.
type Table struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	GuestCount int       `json:"guestCount" db:"guest_count"`
	Occupied   bool      `json:"occupied" db:"occupied"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// TableCreateRequest is the payload for registering a table.
type TableCreateRequest struct {
	Name string `json:"name"`
}

// SeatRequest is the payload for seating guests at a table.
type SeatRequest struct {
	GuestCount int `json:"guestCount"`
}

// NewTable creates an empty, unoccupied table.
func NewTable(name string) (*Table, error) {
	if name == "" {
		return nil, InvalidArgument("table name is required")
	}
	return &Table{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}

// Seat marks the table occupied with the given number of guests.
// Re-seating an already occupied table is allowed.
func (t *Table) Seat(guestCount int) error {
	if guestCount < 0 {
		return InvalidArgument("guest count must not be negative")
	}
	t.Occupied = true
	t.GuestCount = guestCount
	return nil
}

// ChangeGuestCount updates the guest count of an occupied table.
func (t *Table) ChangeGuestCount(guestCount int) error {
	if !t.Occupied {
		return InvalidState("cannot change guests of an unoccupied table")
	}
	if guestCount < 0 {
		return InvalidArgument("guest count must not be negative")
	}
	t.GuestCount = guestCount
	return nil
}

// Clear vacates the table. Idempotent.
func (t *Table) Clear() {
	t.Occupied = false
	t.GuestCount = 0
}
