package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type ReservationSnapshot struct {
	ID       uuid.UUID
	HotelID  uuid.UUID
	Status   string
	CheckIn  time.Time
	CheckOut time.Time
}

type DetailSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	HotelID       uuid.UUID
	StayDate      time.Time
	Lifecycle     string
	Billable      bool
	PriceCents    int64
}
