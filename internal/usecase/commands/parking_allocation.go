package commands

import (
	"context"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVehicleCategoryNotFound = errs.New("vehicle category not found")
	ErrInvalidVehicleCategory  = errs.New("vehicle category requires no capacity units")
	ErrNoDetailForDate         = errs.New("reservation has no live detail for a requested date")
)

type AllocateParkingParams struct {
	HotelID           uuid.UUID
	ReservationID     uuid.UUID
	VehicleCategoryID uuid.UUID
	SpotCount         int
	CheckIn           time.Time
	CheckOut          time.Time
	ActorID           uuid.UUID
}

// SpotAssignment is one persisted parking row.
type SpotAssignment struct {
	ID       uuid.UUID
	SpotID   uuid.UUID
	DetailID uuid.UUID
	Date     time.Time
}

type ParkingCommands interface {
	// Allocate assigns SpotCount parking spots to a reservation for every
	// date in range. A shortage of candidate spots is a hard stop; nothing is
	// persisted.
	Allocate(ctx context.Context, params AllocateParkingParams) ([]SpotAssignment, error)
}

type parkingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewParkingCommands(uow shared.UnitOfWork) ParkingCommands {
	return &parkingCommandsImpl{uow: uow}
}

func (c *parkingCommandsImpl) Allocate(ctx context.Context, params AllocateParkingParams) ([]SpotAssignment, error) {
	span, err := reservation.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAllocationDemand)
	}
	if params.SpotCount <= 0 {
		return nil, ErrInvalidAllocationDemand
	}

	var result []SpotAssignment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, err = allocateParkingInTx(ctx, tx, parkingAllocationSpec{
			HotelID:           params.HotelID,
			ReservationID:     params.ReservationID,
			VehicleCategoryID: params.VehicleCategoryID,
			SpotCount:         params.SpotCount,
			Span:              span,
			ActorID:           params.ActorID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

type parkingAllocationSpec struct {
	HotelID           uuid.UUID
	ReservationID     uuid.UUID
	VehicleCategoryID uuid.UUID
	SpotCount         int
	Span              reservation.StayRange
	ActorID           uuid.UUID
}

// allocateParkingInTx runs on the caller's transaction so a co-occurring room
// allocation and its parking share one atomic boundary.
func allocateParkingInTx(ctx context.Context, tx shared.Tx, spec parkingAllocationSpec) ([]SpotAssignment, error) {
	category, err := tx.Inventory().VehicleCategoryByID(ctx, tx.DB(), spec.VehicleCategoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleCategoryNotFound
		}
		return nil, errs.Mark(err, ErrTransactionFailed)
	}
	if err := category.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidVehicleCategory)
	}

	// A spot is a candidate only with no overlapping live assignment on any
	// date in range; candidate rows stay locked until commit.
	candidates, err := tx.Inventory().AvailableSpots(ctx, tx.DB(), spec.HotelID, category.CapacityUnitsRequired(), spec.Span)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailed)
	}
	if len(candidates) < spec.SpotCount {
		return nil, ErrCapacityExhausted
	}
	selected := candidates[:spec.SpotCount]

	details, err := tx.Details().ListLiveByReservation(ctx, tx.DB(), spec.ReservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailed)
	}
	detailByDate := make(map[string]uuid.UUID, len(details))
	for _, d := range details {
		key := d.StayDate().Format(time.DateOnly)
		if _, ok := detailByDate[key]; !ok {
			detailByDate[key] = d.ID()
		}
	}

	var assignments []*reservation.ParkingAssignment
	var result []SpotAssignment
	for _, date := range spec.Span.Dates() {
		detailID, ok := detailByDate[date.Format(time.DateOnly)]
		if !ok {
			return nil, ErrNoDetailForDate
		}

		for _, spot := range selected {
			row := reservation.NewParkingAssignment(
				spec.HotelID, detailID, nil,
				spec.VehicleCategoryID, spot.ID(), date,
				reservation.ZeroMoney(), spec.ActorID,
			)
			assignments = append(assignments, row)
			result = append(result, SpotAssignment{
				ID:       row.ID(),
				SpotID:   spot.ID(),
				DetailID: detailID,
				Date:     date,
			})
		}
	}

	if err := tx.Parking().CreateBatch(ctx, tx.DB(), assignments); err != nil {
		return nil, markAllocationWriteErr(err)
	}

	return result, nil
}
