package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDetailAlreadyCancelled = errors.New("detail is already cancelled")
	ErrDetailAlreadyLive      = errors.New("detail is already live")
	ErrInvalidOccupants       = errors.New("occupant count must be positive")
)

// Detail is one room-night line item of a reservation. Details are created in
// batches by allocation (one per stay date) and only ever voided logically.
type Detail struct {
	id            uuid.UUID
	reservationID uuid.UUID
	hotelID       uuid.UUID
	roomID        uuid.UUID
	stayDate      time.Time
	occupants     int
	// isAccommodation distinguishes a temporary hold from a permanent block.
	isAccommodation bool
	billable        bool
	price           Money
	lifecycle       Lifecycle
	cancelledAt     *time.Time
	cancelledBy     *uuid.UUID
	createdBy       uuid.UUID
	updatedBy       uuid.UUID
}

func NewDetail(
	reservationID, hotelID, roomID uuid.UUID,
	stayDate time.Time,
	occupants int,
	isAccommodation, billable bool,
	price Money,
	actorID uuid.UUID,
) (*Detail, error) {
	if occupants <= 0 {
		return nil, ErrInvalidOccupants
	}

	return &Detail{
		id:              uuid.New(),
		reservationID:   reservationID,
		hotelID:         hotelID,
		roomID:          roomID,
		stayDate:        stayDate,
		occupants:       occupants,
		isAccommodation: isAccommodation,
		billable:        billable,
		price:           price,
		lifecycle:       LifecycleLive,
		createdBy:       actorID,
		updatedBy:       actorID,
	}, nil
}

func ReconstructDetail(
	id, reservationID, hotelID, roomID uuid.UUID,
	stayDate time.Time,
	occupants int,
	isAccommodation, billable bool,
	price Money,
	lifecycle Lifecycle,
	cancelledAt *time.Time,
	cancelledBy *uuid.UUID,
	createdBy, updatedBy uuid.UUID,
) *Detail {
	return &Detail{
		id:              id,
		reservationID:   reservationID,
		hotelID:         hotelID,
		roomID:          roomID,
		stayDate:        stayDate,
		occupants:       occupants,
		isAccommodation: isAccommodation,
		billable:        billable,
		price:           price,
		lifecycle:       lifecycle,
		cancelledAt:     cancelledAt,
		cancelledBy:     cancelledBy,
		createdBy:       createdBy,
		updatedBy:       updatedBy,
	}
}

// Cancel voids the detail. The new price is the pre-computed cancellation fee
// (fee-eligible rate lines only).
func (d *Detail) Cancel(price Money, billable bool, actorID uuid.UUID, at time.Time) error {
	if d.lifecycle == LifecycleCancelled {
		return ErrDetailAlreadyCancelled
	}

	d.lifecycle = LifecycleCancelled
	d.price = price
	d.billable = billable
	d.cancelledAt = &at
	d.cancelledBy = &actorID
	d.updatedBy = actorID
	return nil
}

// Recover brings a cancelled detail back to live. The billable flag is forced
// to false while the parent reservation is still hold or provisory.
func (d *Detail) Recover(price Money, billable bool, parentStatus Status, actorID uuid.UUID) error {
	if d.lifecycle == LifecycleLive {
		return ErrDetailAlreadyLive
	}

	if parentStatus.ForcesNonBillable() {
		billable = false
	}

	d.lifecycle = LifecycleLive
	d.price = price
	d.billable = billable
	d.cancelledAt = nil
	d.cancelledBy = nil
	d.updatedBy = actorID
	return nil
}

func (d *Detail) IsLive() bool {
	return d.lifecycle == LifecycleLive
}

func (d *Detail) ID() uuid.UUID            { return d.id }
func (d *Detail) ReservationID() uuid.UUID { return d.reservationID }
func (d *Detail) HotelID() uuid.UUID       { return d.hotelID }
func (d *Detail) RoomID() uuid.UUID        { return d.roomID }
func (d *Detail) StayDate() time.Time      { return d.stayDate }
func (d *Detail) Occupants() int           { return d.occupants }
func (d *Detail) IsAccommodation() bool    { return d.isAccommodation }
func (d *Detail) Billable() bool           { return d.billable }
func (d *Detail) Price() Money             { return d.price }
func (d *Detail) State() Lifecycle         { return d.lifecycle }
func (d *Detail) CancelledAt() *time.Time  { return d.cancelledAt }
func (d *Detail) CancelledBy() *uuid.UUID  { return d.cancelledBy }
func (d *Detail) CreatedBy() uuid.UUID     { return d.createdBy }
func (d *Detail) UpdatedBy() uuid.UUID     { return d.updatedBy }
