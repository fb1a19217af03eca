//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-pms/internal/domain/inventory"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParkingCommands_Allocate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	hotelID := uuid.New()
	reservationID := uuid.New()
	categoryID := uuid.New()
	checkIn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)

	compact := inventory.ReconstructVehicleCategory(categoryID, "compact", 1)
	spots := []*inventory.ParkingSpot{
		inventory.ReconstructParkingSpot(uuid.New(), hotelID, "P1", 1),
		inventory.ReconstructParkingSpot(uuid.New(), hotelID, "P2", 2),
	}

	params := func(spotCount int) commands.AllocateParkingParams {
		return commands.AllocateParkingParams{
			HotelID:           hotelID,
			ReservationID:     reservationID,
			VehicleCategoryID: categoryID,
			SpotCount:         spotCount,
			CheckIn:           checkIn,
			CheckOut:          checkOut,
			ActorID:           actorID,
		}
	}

	stayDetails := func() []*reservation.Detail {
		var details []*reservation.Detail
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			details = append(details, builder.NewDetailBuilder().
				WithReservationID(reservationID).
				WithHotelID(hotelID).
				WithStayDate(d).
				BuildDomain())
		}
		return details
	}

	t.Run("success: one row per spot per date", func(t *testing.T) {
		m := newAllocationMocks(t)

		details := stayDetails()
		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(compact, nil)
		m.inventory.EXPECT().AvailableSpots(ctx, nil, hotelID, 1, gomock.Any()).Return(spots, nil)
		m.details.EXPECT().ListLiveByReservation(ctx, nil, reservationID).Return(details, nil)
		m.parking.EXPECT().CreateBatch(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, rows []*reservation.ParkingAssignment) error {
				require.Len(t, rows, 2)
				assert.Equal(t, spots[0].ID(), rows[0].SpotID())
				return nil
			})

		result, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(1))

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, details[0].ID(), result[0].DetailID)
		assert.Equal(t, details[1].ID(), result[1].DetailID)
		assert.Equal(t, checkIn, result[0].Date)
	})

	t.Run("error: unknown vehicle category", func(t *testing.T) {
		m := newAllocationMocks(t)

		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(nil, notFoundErr())

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(1))

		assert.ErrorIs(t, err, commands.ErrVehicleCategoryNotFound)
	})

	t.Run("error: category with no capacity requirement", func(t *testing.T) {
		m := newAllocationMocks(t)

		broken := inventory.ReconstructVehicleCategory(categoryID, "phantom", 0)
		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(broken, nil)

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(1))

		assert.ErrorIs(t, err, commands.ErrInvalidVehicleCategory)
	})

	t.Run("error: not enough free spots", func(t *testing.T) {
		m := newAllocationMocks(t)

		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(compact, nil)
		m.inventory.EXPECT().AvailableSpots(ctx, nil, hotelID, 1, gomock.Any()).Return(spots, nil)

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(10))

		assert.ErrorIs(t, err, commands.ErrCapacityExhausted)
	})

	t.Run("error: a requested date has no live detail", func(t *testing.T) {
		m := newAllocationMocks(t)

		// 初日の明細しかないので2日目の割当先が無い
		firstNightOnly := stayDetails()[:1]
		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(compact, nil)
		m.inventory.EXPECT().AvailableSpots(ctx, nil, hotelID, 1, gomock.Any()).Return(spots, nil)
		m.details.EXPECT().ListLiveByReservation(ctx, nil, reservationID).Return(firstNightOnly, nil)

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(1))

		assert.ErrorIs(t, err, commands.ErrNoDetailForDate)
	})

	t.Run("error: zero spot count rejected", func(t *testing.T) {
		m := newAllocationMocks(t)

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(0))

		assert.ErrorIs(t, err, commands.ErrInvalidAllocationDemand)
	})

	t.Run("error: duplicate assignment loses the race", func(t *testing.T) {
		m := newAllocationMocks(t)

		m.inventory.EXPECT().VehicleCategoryByID(ctx, nil, categoryID).Return(compact, nil)
		m.inventory.EXPECT().AvailableSpots(ctx, nil, hotelID, 1, gomock.Any()).Return(spots, nil)
		m.details.EXPECT().ListLiveByReservation(ctx, nil, reservationID).Return(stayDetails(), nil)
		m.parking.EXPECT().CreateBatch(ctx, nil, gomock.Any()).Return(duplicateKeyErr())

		_, err := commands.NewParkingCommands(m.uow).Allocate(ctx, params(1))

		assert.ErrorIs(t, err, commands.ErrAllocationConflict)
	})
}
