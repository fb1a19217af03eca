package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidReservationStatus = errors.New("invalid reservation status")

// Reservation is the stay aggregate. Its check-in/check-out span and its
// cancelled status are derived from the dates of its live details; they are
// recomputed whenever detail liveness changes.
type Reservation struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	clientID  *uuid.UUID
	span      StayRange
	status    Status
	comment   Comment
	updatedBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	hotelID uuid.UUID,
	clientID *uuid.UUID,
	span StayRange,
	status Status,
	comment Comment,
	actorID uuid.UUID,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidReservationStatus
	}

	return &Reservation{
		id:        uuid.New(),
		hotelID:   hotelID,
		clientID:  clientID,
		span:      span,
		status:    status,
		comment:   comment,
		updatedBy: actorID,
	}, nil
}

func ReconstructReservation(
	id, hotelID uuid.UUID,
	clientID *uuid.UUID,
	span StayRange,
	status Status,
	comment Comment,
	updatedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		hotelID:   hotelID,
		clientID:  clientID,
		span:      span,
		status:    status,
		comment:   comment,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ApplyLiveSpan folds the recomputed live-detail span back into the
// aggregate after a lifecycle transition. With no live details left the
// reservation becomes cancelled and keeps its last-known dates. Recovering a
// detail under a cancelled parent transitions the parent to confirmed.
func (r *Reservation) ApplyLiveSpan(span StayRange, hasLive bool, recovered bool, actorID uuid.UUID) {
	if !hasLive {
		r.status = StatusCancelled
		r.updatedBy = actorID
		return
	}

	r.span = span
	if recovered && r.status == StatusCancelled {
		r.status = StatusConfirmed
	}
	r.updatedBy = actorID
}

// Confirm marks a hold reservation confirmed with its allocated span.
func (r *Reservation) Confirm(span StayRange, actorID uuid.UUID) {
	r.span = span
	r.status = StatusConfirmed
	r.updatedBy = actorID
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) HotelID() uuid.UUID   { return r.hotelID }
func (r *Reservation) ClientID() *uuid.UUID { return r.clientID }
func (r *Reservation) Span() StayRange      { return r.span }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Comment() Comment     { return r.comment }
func (r *Reservation) UpdatedBy() uuid.UUID { return r.updatedBy }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
