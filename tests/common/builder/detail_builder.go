//go:build unit || e2e

package builder

import (
	"time"

	"hotel-pms/internal/domain/reservation"

	"github.com/google/uuid"
)

type DetailBuilder struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	StayDate        time.Time
	Occupants       int
	IsAccommodation bool
	Billable        bool
	PriceCents      int64
	Lifecycle       reservation.Lifecycle
	CancelledAt     *time.Time
	CancelledBy     *uuid.UUID
	ActorID         uuid.UUID
}

func NewDetailBuilder() *DetailBuilder {
	return &DetailBuilder{
		ID:              uuid.New(),
		ReservationID:   uuid.New(),
		HotelID:         uuid.New(),
		RoomID:          uuid.New(),
		StayDate:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Occupants:       2,
		IsAccommodation: true,
		Billable:        true,
		PriceCents:      12000,
		Lifecycle:       reservation.LifecycleLive,
		ActorID:         uuid.New(),
	}
}

func (b *DetailBuilder) WithLifecycle(l reservation.Lifecycle) *DetailBuilder {
	b.Lifecycle = l
	return b
}

func (b *DetailBuilder) WithOccupants(n int) *DetailBuilder {
	b.Occupants = n
	return b
}

func (b *DetailBuilder) WithBillable(billable bool) *DetailBuilder {
	b.Billable = billable
	return b
}

func (b *DetailBuilder) WithStayDate(date time.Time) *DetailBuilder {
	b.StayDate = date
	return b
}

func (b *DetailBuilder) WithReservationID(id uuid.UUID) *DetailBuilder {
	b.ReservationID = id
	return b
}

func (b *DetailBuilder) WithHotelID(id uuid.UUID) *DetailBuilder {
	b.HotelID = id
	return b
}

func (b *DetailBuilder) AsCancelled() *DetailBuilder {
	now := time.Now()
	actor := b.ActorID
	b.Lifecycle = reservation.LifecycleCancelled
	b.CancelledAt = &now
	b.CancelledBy = &actor
	return b
}

func (b *DetailBuilder) AsBlock() *DetailBuilder {
	b.IsAccommodation = false
	b.Billable = false
	return b
}

func (b *DetailBuilder) BuildDomain() *reservation.Detail {
	price, _ := reservation.NewMoney(b.PriceCents)
	return reservation.ReconstructDetail(
		b.ID, b.ReservationID, b.HotelID, b.RoomID,
		b.StayDate, b.Occupants, b.IsAccommodation, b.Billable,
		price, b.Lifecycle, b.CancelledAt, b.CancelledBy,
		b.ActorID, b.ActorID,
	)
}

type ParkingBuilder struct {
	ID                uuid.UUID
	HotelID           uuid.UUID
	DetailID          uuid.UUID
	VehicleCategoryID uuid.UUID
	SpotID            uuid.UUID
	Date              time.Time
	Status            reservation.ParkingStatus
	PriceCents        int64
	Lifecycle         reservation.Lifecycle
	CancelledAt       *time.Time
	CancelledBy       *uuid.UUID
	ActorID           uuid.UUID
}

func NewParkingBuilder() *ParkingBuilder {
	return &ParkingBuilder{
		ID:                uuid.New(),
		HotelID:           uuid.New(),
		DetailID:          uuid.New(),
		VehicleCategoryID: uuid.New(),
		SpotID:            uuid.New(),
		Date:              time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Status:            reservation.ParkingStatusAssigned,
		PriceCents:        1500,
		Lifecycle:         reservation.LifecycleLive,
		ActorID:           uuid.New(),
	}
}

func (b *ParkingBuilder) WithStatus(s reservation.ParkingStatus) *ParkingBuilder {
	b.Status = s
	return b
}

func (b *ParkingBuilder) WithDetailID(id uuid.UUID) *ParkingBuilder {
	b.DetailID = id
	return b
}

func (b *ParkingBuilder) AsCancelled() *ParkingBuilder {
	now := time.Now()
	actor := b.ActorID
	b.Lifecycle = reservation.LifecycleCancelled
	b.CancelledAt = &now
	b.CancelledBy = &actor
	return b
}

func (b *ParkingBuilder) BuildDomain() *reservation.ParkingAssignment {
	price, _ := reservation.NewMoney(b.PriceCents)
	return reservation.ReconstructParkingAssignment(
		b.ID, b.HotelID, b.DetailID, nil,
		b.VehicleCategoryID, b.SpotID, b.Date,
		b.Status, price, b.Lifecycle,
		b.CancelledAt, b.CancelledBy,
		b.ActorID, b.ActorID,
	)
}
