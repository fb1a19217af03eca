package commands

import (
	"context"
	"errors"
	"time"

	"hotel-pms/internal/domain/allocation"
	"hotel-pms/internal/domain/inventory"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCapacityExhausted       = errs.New("not enough inventory for the requested dates")
	ErrAllocationConflict      = errs.New("allocation conflicts with a concurrent booking")
	ErrReservationNotOnHold    = errs.New("reservation is not awaiting confirmation")
	ErrInvalidAllocationDemand = errs.New("invalid allocation demand")
)

type ConfirmWaitlistParams struct {
	ReservationID uuid.UUID
	HotelID       uuid.UUID
	Occupants     int
	CheckIn       time.Time
	CheckOut      time.Time
	ActorID       uuid.UUID
}

type BlockRoomsParams struct {
	HotelID    uuid.UUID
	RoomTypeID uuid.UUID
	RoomCount  int
	Occupants  int // optional: distributed across the blocked rooms when positive
	CheckIn    time.Time
	CheckOut   time.Time
	Comment    string
	ActorID    uuid.UUID
	Parking    *ParkingRequest // optional co-allocation in the same transaction
}

type ParkingRequest struct {
	VehicleCategoryID uuid.UUID
	SpotCount         int
}

// RoomAssignment is one detail created by an allocation, reported back to the
// caller as a (unit, occupants, date) triple.
type RoomAssignment struct {
	RoomID    uuid.UUID
	Occupants int
	Date      time.Time
}

type AllocationResult struct {
	ReservationID uuid.UUID
	Assignments   []RoomAssignment
}

type RoomAllocationCommands interface {
	// ConfirmWaitlist distributes the party across available rooms for every
	// date of the stay and confirms the hold reservation, all in one
	// transaction.
	ConfirmWaitlist(ctx context.Context, params ConfirmWaitlistParams) (*AllocationResult, error)
	// BlockRooms creates a block reservation over up to RoomCount rooms of
	// the requested type, optionally co-allocating parking atomically.
	BlockRooms(ctx context.Context, params BlockRoomsParams) (*AllocationResult, error)
}

type roomAllocationImpl struct {
	uow      shared.UnitOfWork
	strategy allocation.Strategy
	clock    clock.Clock
}

func NewRoomAllocationCommands(uow shared.UnitOfWork, strategy allocation.Strategy, clock clock.Clock) RoomAllocationCommands {
	return &roomAllocationImpl{
		uow:      uow,
		strategy: strategy,
		clock:    clock,
	}
}

func (c *roomAllocationImpl) ConfirmWaitlist(ctx context.Context, params ConfirmWaitlistParams) (*AllocationResult, error) {
	span, err := reservation.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAllocationDemand)
	}
	if params.Occupants <= 0 {
		return nil, ErrInvalidAllocationDemand
	}

	var result *AllocationResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		parent, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), params.ReservationID, params.HotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}
		if parent.Status() != reservation.StatusHold {
			return ErrReservationNotOnHold
		}

		// Candidates are pre-filtered to rooms free over the entire span and
		// row-locked until commit.
		rooms, err := tx.Inventory().AvailableRooms(ctx, tx.DB(), params.HotelID, nil, span)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		details, assignments, err := c.buildStayDetails(parent, span, params.Occupants, allocationUnits(rooms), params.ActorID)
		if err != nil {
			return err
		}

		if err := tx.Details().CreateBatch(ctx, tx.DB(), details); err != nil {
			return markAllocationWriteErr(err)
		}

		parent.Confirm(span, params.ActorID)
		if err := tx.Reservations().UpdateDerivedState(ctx, tx.DB(), parent); err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		result = &AllocationResult{
			ReservationID: parent.ID(),
			Assignments:   assignments,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// buildStayDetails re-derives the best-fit selection once per date with the
// same demand figure. Details under a hold reservation start non-billable.
func (c *roomAllocationImpl) buildStayDetails(
	parent *reservation.Reservation,
	span reservation.StayRange,
	occupants int,
	units []allocation.Unit,
	actorID uuid.UUID,
) ([]*reservation.Detail, []RoomAssignment, error) {
	var details []*reservation.Detail
	var assignments []RoomAssignment

	for _, date := range span.Dates() {
		assigned, err := c.strategy.Allocate(occupants, units)
		if err != nil {
			if errors.Is(err, allocation.ErrCapacityExhausted) {
				return nil, nil, ErrCapacityExhausted
			}
			return nil, nil, errs.Mark(err, ErrInvalidAllocationDemand)
		}

		for _, a := range assigned {
			detail, err := reservation.NewDetail(
				parent.ID(), parent.HotelID(), a.UnitID, date,
				a.Occupants, true, false, reservation.ZeroMoney(), actorID,
			)
			if err != nil {
				return nil, nil, errs.Mark(err, ErrInvalidAllocationDemand)
			}
			details = append(details, detail)
			assignments = append(assignments, RoomAssignment{
				RoomID:    a.UnitID,
				Occupants: a.Occupants,
				Date:      date,
			})
		}
	}

	return details, assignments, nil
}

func (c *roomAllocationImpl) BlockRooms(ctx context.Context, params BlockRoomsParams) (*AllocationResult, error) {
	span, err := reservation.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAllocationDemand)
	}
	if params.RoomCount <= 0 {
		return nil, ErrInvalidAllocationDemand
	}

	var result *AllocationResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomTypeID := params.RoomTypeID
		rooms, err := tx.Inventory().AvailableRooms(ctx, tx.DB(), params.HotelID, &roomTypeID, span)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		// Room selection follows the query's priority/floor/number order;
		// the bin-packing step only distributes occupants afterwards.
		if len(rooms) < params.RoomCount {
			return ErrCapacityExhausted
		}
		selected := rooms[:params.RoomCount]

		occupantsByRoom := make(map[uuid.UUID]int, len(selected))
		for _, room := range selected {
			occupantsByRoom[room.ID()] = room.Capacity()
		}
		if params.Occupants > 0 {
			assigned, err := c.strategy.Allocate(params.Occupants, allocationUnits(selected))
			if err != nil {
				if errors.Is(err, allocation.ErrCapacityExhausted) {
					return ErrCapacityExhausted
				}
				return errs.Mark(err, ErrInvalidAllocationDemand)
			}
			for _, a := range assigned {
				occupantsByRoom[a.UnitID] = a.Occupants
			}
		}

		block, err := reservation.NewReservation(
			params.HotelID, nil, span, reservation.StatusBlock,
			reservation.NewComment(params.Comment), params.ActorID,
		)
		if err != nil {
			return errs.Mark(err, ErrInvalidAllocationDemand)
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), block); err != nil {
			return markAllocationWriteErr(err)
		}

		var details []*reservation.Detail
		var assignments []RoomAssignment
		for _, date := range span.Dates() {
			for _, room := range selected {
				detail, err := reservation.NewDetail(
					block.ID(), params.HotelID, room.ID(), date,
					occupantsByRoom[room.ID()], false, false, reservation.ZeroMoney(), params.ActorID,
				)
				if err != nil {
					return errs.Mark(err, ErrInvalidAllocationDemand)
				}
				details = append(details, detail)
				assignments = append(assignments, RoomAssignment{
					RoomID:    room.ID(),
					Occupants: occupantsByRoom[room.ID()],
					Date:      date,
				})
			}
		}

		if err := tx.Details().CreateBatch(ctx, tx.DB(), details); err != nil {
			return markAllocationWriteErr(err)
		}

		if params.Parking != nil {
			_, err := allocateParkingInTx(ctx, tx, parkingAllocationSpec{
				HotelID:           params.HotelID,
				ReservationID:     block.ID(),
				VehicleCategoryID: params.Parking.VehicleCategoryID,
				SpotCount:         params.Parking.SpotCount,
				Span:              span,
				ActorID:           params.ActorID,
			})
			if err != nil {
				return err
			}
		}

		result = &AllocationResult{
			ReservationID: block.ID(),
			Assignments:   assignments,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func allocationUnits(rooms []*inventory.Room) []allocation.Unit {
	units := make([]allocation.Unit, len(rooms))
	for i, room := range rooms {
		units[i] = room.AllocationUnit()
	}
	return units
}

// markAllocationWriteErr distinguishes the loser of a concurrent allocation
// race, rejected by the store's unique constraints, from other failures.
func markAllocationWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrAllocationConflict)
	}
	return errs.Mark(err, ErrTransactionFailed)
}
