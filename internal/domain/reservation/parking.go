package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrParkingAlreadyCancelled = errors.New("parking assignment is already cancelled")
	ErrParkingAlreadyLive      = errors.New("parking assignment is already live")
	ErrParkingReleased         = errors.New("parking assignment has been released")
	ErrDetailStillCancelled    = errors.New("owning detail is still cancelled")
)

// ParkingAssignment is one spot-date row mirroring a detail. Its lifecycle
// tracks the parent detail through cascades; recovery additionally requires
// the assignment's own status to allow it.
type ParkingAssignment struct {
	id                uuid.UUID
	hotelID           uuid.UUID
	detailID          uuid.UUID
	addonID           *uuid.UUID
	vehicleCategoryID uuid.UUID
	spotID            uuid.UUID
	date              time.Time
	status            ParkingStatus
	price             Money
	lifecycle         Lifecycle
	cancelledAt       *time.Time
	cancelledBy       *uuid.UUID
	createdBy         uuid.UUID
	updatedBy         uuid.UUID
}

func NewParkingAssignment(
	hotelID, detailID uuid.UUID,
	addonID *uuid.UUID,
	vehicleCategoryID, spotID uuid.UUID,
	date time.Time,
	price Money,
	actorID uuid.UUID,
) *ParkingAssignment {
	return &ParkingAssignment{
		id:                uuid.New(),
		hotelID:           hotelID,
		detailID:          detailID,
		addonID:           addonID,
		vehicleCategoryID: vehicleCategoryID,
		spotID:            spotID,
		date:              date,
		status:            ParkingStatusAssigned,
		price:             price,
		lifecycle:         LifecycleLive,
		createdBy:         actorID,
		updatedBy:         actorID,
	}
}

func ReconstructParkingAssignment(
	id, hotelID, detailID uuid.UUID,
	addonID *uuid.UUID,
	vehicleCategoryID, spotID uuid.UUID,
	date time.Time,
	status ParkingStatus,
	price Money,
	lifecycle Lifecycle,
	cancelledAt *time.Time,
	cancelledBy *uuid.UUID,
	createdBy, updatedBy uuid.UUID,
) *ParkingAssignment {
	return &ParkingAssignment{
		id:                id,
		hotelID:           hotelID,
		detailID:          detailID,
		addonID:           addonID,
		vehicleCategoryID: vehicleCategoryID,
		spotID:            spotID,
		date:              date,
		status:            status,
		price:             price,
		lifecycle:         lifecycle,
		cancelledAt:       cancelledAt,
		cancelledBy:       cancelledBy,
		createdBy:         createdBy,
		updatedBy:         updatedBy,
	}
}

func (p *ParkingAssignment) Cancel(actorID uuid.UUID, at time.Time) error {
	if p.lifecycle == LifecycleCancelled {
		return ErrParkingAlreadyCancelled
	}

	p.lifecycle = LifecycleCancelled
	p.cancelledAt = &at
	p.cancelledBy = &actorID
	p.updatedBy = actorID
	return nil
}

// Recover reinstates a cancelled assignment. It is rejected while the owning
// detail is itself cancelled, and for assignments whose own status blocks it.
func (p *ParkingAssignment) Recover(detailLive bool, actorID uuid.UUID) error {
	if p.lifecycle == LifecycleLive {
		return ErrParkingAlreadyLive
	}
	if !p.status.AllowsRecovery() {
		return ErrParkingReleased
	}
	if !detailLive {
		return ErrDetailStillCancelled
	}

	p.lifecycle = LifecycleLive
	p.cancelledAt = nil
	p.cancelledBy = nil
	p.updatedBy = actorID
	return nil
}

func (p *ParkingAssignment) IsLive() bool {
	return p.lifecycle == LifecycleLive
}

func (p *ParkingAssignment) ID() uuid.UUID                { return p.id }
func (p *ParkingAssignment) HotelID() uuid.UUID           { return p.hotelID }
func (p *ParkingAssignment) DetailID() uuid.UUID          { return p.detailID }
func (p *ParkingAssignment) AddonID() *uuid.UUID          { return p.addonID }
func (p *ParkingAssignment) VehicleCategoryID() uuid.UUID { return p.vehicleCategoryID }
func (p *ParkingAssignment) SpotID() uuid.UUID            { return p.spotID }
func (p *ParkingAssignment) Date() time.Time              { return p.date }
func (p *ParkingAssignment) Status() ParkingStatus        { return p.status }
func (p *ParkingAssignment) Price() Money                 { return p.price }
func (p *ParkingAssignment) State() Lifecycle             { return p.lifecycle }
func (p *ParkingAssignment) CancelledAt() *time.Time      { return p.cancelledAt }
func (p *ParkingAssignment) CancelledBy() *uuid.UUID      { return p.cancelledBy }
func (p *ParkingAssignment) CreatedBy() uuid.UUID         { return p.createdBy }
func (p *ParkingAssignment) UpdatedBy() uuid.UUID         { return p.updatedBy }
