//go:build unit || e2e

package builder

import (
	"time"

	"hotel-pms/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID       uuid.UUID
	HotelID  uuid.UUID
	ClientID *uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Status   reservation.Status
	Comment  string
	ActorID  uuid.UUID
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       uuid.New(),
		HotelID:  uuid.New(),
		CheckIn:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		Status:   reservation.StatusConfirmed,
		ActorID:  uuid.New(),
	}
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) WithHotelID(id uuid.UUID) *ReservationBuilder {
	b.HotelID = id
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) AsHold() *ReservationBuilder {
	b.Status = reservation.StatusHold
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	span, _ := reservation.NewStayRange(b.CheckIn, b.CheckOut)
	now := time.Now()
	return reservation.ReconstructReservation(
		b.ID, b.HotelID, b.ClientID, span, b.Status,
		reservation.NewComment(b.Comment), b.ActorID, now, now,
	)
}
