//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/shared"
	"hotel-pms/tests/common/builder"
	sharedmock "hotel-pms/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lifecycleMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reservations *sharedmock.MockReservationRepository
	details      *sharedmock.MockDetailRepository
	rates        *sharedmock.MockRateRepository
	parking      *sharedmock.MockParkingRepository
}

func newLifecycleMocks(t *testing.T) *lifecycleMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &lifecycleMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		details:      sharedmock.NewMockDetailRepository(ctrl),
		rates:        sharedmock.NewMockRateRepository(ctrl),
		parking:      sharedmock.NewMockParkingRepository(ctrl),
	}

	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Details().Return(m.details).AnyTimes()
	m.tx.EXPECT().Rates().Return(m.rates).AnyTimes()
	m.tx.EXPECT().Parking().Return(m.parking).AnyTimes()

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	return m
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

var fixedNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func TestDetailLifecycle_Cancel(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	hotelID := uuid.New()

	feeLines := []reservation.RateLine{
		rateLine(10000, false),
		rateLine(3000, true),
	}

	t.Run("success: price recomputed from fee-eligible lines only", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(feeLines, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return(nil, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		result, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleCancelled, actorID, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(3000), result.PriceCents)
		assert.Equal(t, reservation.LifecycleCancelled, result.Lifecycle)
		assert.Equal(t, &fixedNow, detail.CancelledAt())
		// 最後のliveな明細が消えたので親予約もキャンセルされる
		assert.True(t, parent.IsCancelled())
	})

	t.Run("success: billable override applied on cancellation", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			WithBillable(true).
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(feeLines, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return(nil, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		override := false
		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		result, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleCancelled, actorID, &override)

		require.NoError(t, err)
		assert.False(t, result.Billable)
		assert.False(t, detail.Billable())
	})

	t.Run("success: cancellation cascades to live parking rows", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			BuildDomain()
		parkingRow := builder.NewParkingBuilder().WithDetailID(detail.ID()).BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(nil, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return([]*reservation.ParkingAssignment{parkingRow}, nil)
		m.parking.EXPECT().Update(ctx, nil, parkingRow).Return(nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return(nil, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleCancelled, actorID, nil)

		require.NoError(t, err)
		assert.Equal(t, reservation.LifecycleCancelled, parkingRow.State())
	})

	t.Run("success: parent keeps surviving span after partial cancel", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			BuildDomain()

		surviving := []time.Time{time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)}

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(nil, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return(surviving, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleCancelled, actorID, nil)

		require.NoError(t, err)
		assert.False(t, parent.IsCancelled())
		assert.Equal(t, surviving[0], parent.Span().CheckIn())
		assert.Equal(t, surviving[0].AddDate(0, 0, 1), parent.Span().CheckOut())
	})

	t.Run("error: detail not found", func(t *testing.T) {
		m := newLifecycleMocks(t)

		detailID := uuid.New()
		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detailID, hotelID).Return(nil, notFoundErr())

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detailID, hotelID, reservation.LifecycleCancelled, actorID, nil)

		assert.ErrorIs(t, err, commands.ErrDetailNotFound)
	})

	t.Run("error: double cancel rejected", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			AsCancelled().
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(nil, nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleCancelled, actorID, nil)

		assert.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})

	t.Run("error: invalid target lifecycle", func(t *testing.T) {
		m := newLifecycleMocks(t)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, uuid.New(), hotelID, reservation.Lifecycle("zombie"), actorID, nil)

		assert.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})
}

func TestDetailLifecycle_Recover(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	hotelID := uuid.New()

	lines := []reservation.RateLine{
		rateLine(10000, false),
		rateLine(3000, true),
	}

	t.Run("success: full price restored and parent revived", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().
			WithHotelID(hotelID).
			WithStatus(reservation.StatusCancelled).
			BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			AsCancelled().
			BuildDomain()

		recovered := []time.Time{detail.StayDate()}

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(lines, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return(recovered, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		result, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleLive, actorID, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(13000), result.PriceCents)
		assert.Equal(t, reservation.LifecycleLive, result.Lifecycle)
		assert.Nil(t, detail.CancelledAt())
		assert.Equal(t, reservation.StatusConfirmed, parent.Status())
	})

	t.Run("success: billable override applied on recovery", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			WithBillable(true).
			AsCancelled().
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(lines, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return([]time.Time{detail.StayDate()}, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		override := false
		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		result, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleLive, actorID, &override)

		require.NoError(t, err)
		assert.False(t, result.Billable)
	})

	t.Run("success: billable forced off under a hold parent", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).AsHold().BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			WithBillable(true).
			AsCancelled().
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(nil, nil)
		m.details.EXPECT().Update(ctx, nil, detail).Return(nil)
		m.parking.EXPECT().ListByDetail(ctx, nil, detail.ID()).Return(nil, nil)
		m.details.EXPECT().LiveStayDates(ctx, nil, parent.ID()).Return([]time.Time{detail.StayDate()}, nil)
		m.reservations.EXPECT().UpdateDerivedState(ctx, nil, parent).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		result, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleLive, actorID, nil)

		require.NoError(t, err)
		assert.False(t, result.Billable)
	})

	t.Run("error: recovering a live detail", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		detail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.rates.EXPECT().ListByDetail(ctx, nil, detail.ID(), hotelID).Return(nil, nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleLive, actorID, nil)

		assert.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})

	t.Run("error: parent reservation missing", func(t *testing.T) {
		m := newLifecycleMocks(t)

		detail := builder.NewDetailBuilder().WithHotelID(hotelID).AsCancelled().BuildDomain()

		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detail.ID(), hotelID).Return(detail, nil)
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, detail.ReservationID(), hotelID).Return(nil, notFoundErr())

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detail.ID(), hotelID, reservation.LifecycleLive, actorID, nil)

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("error: repository failure surfaces as transaction error", func(t *testing.T) {
		m := newLifecycleMocks(t)

		detailID := uuid.New()
		m.details.EXPECT().FindByIDForUpdate(ctx, nil, detailID, hotelID).
			Return(nil, errors.New("connection reset"))

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		_, err := svc.Transition(ctx, detailID, hotelID, reservation.LifecycleLive, actorID, nil)

		assert.ErrorIs(t, err, commands.ErrTransactionFailed)
	})
}

func TestDetailLifecycle_TransitionReservationParking(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	hotelID := uuid.New()

	t.Run("success: recovery only revives rows with a live detail", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		liveDetail := builder.NewDetailBuilder().
			WithReservationID(parent.ID()).
			WithHotelID(hotelID).
			BuildDomain()

		revivable := builder.NewParkingBuilder().WithDetailID(liveDetail.ID()).AsCancelled().BuildDomain()
		orphaned := builder.NewParkingBuilder().AsCancelled().BuildDomain()

		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.parking.EXPECT().ListByReservation(ctx, nil, parent.ID()).
			Return([]*reservation.ParkingAssignment{revivable, orphaned}, nil)
		m.details.EXPECT().ListLiveByReservation(ctx, nil, parent.ID()).
			Return([]*reservation.Detail{liveDetail}, nil)
		m.parking.EXPECT().Update(ctx, nil, revivable).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		err := svc.TransitionReservationParking(ctx, parent.ID(), hotelID, reservation.LifecycleLive, actorID)

		require.NoError(t, err)
		assert.Equal(t, reservation.LifecycleLive, revivable.State())
		assert.Equal(t, reservation.LifecycleCancelled, orphaned.State())
	})

	t.Run("success: cancel skips rows already cancelled", func(t *testing.T) {
		m := newLifecycleMocks(t)

		parent := builder.NewReservationBuilder().WithHotelID(hotelID).BuildDomain()
		alreadyCancelled := builder.NewParkingBuilder().AsCancelled().BuildDomain()
		live := builder.NewParkingBuilder().BuildDomain()

		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, parent.ID(), hotelID).Return(parent, nil)
		m.parking.EXPECT().ListByReservation(ctx, nil, parent.ID()).
			Return([]*reservation.ParkingAssignment{alreadyCancelled, live}, nil)
		m.parking.EXPECT().Update(ctx, nil, live).Return(nil)

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		err := svc.TransitionReservationParking(ctx, parent.ID(), hotelID, reservation.LifecycleCancelled, actorID)

		require.NoError(t, err)
		assert.Equal(t, reservation.LifecycleCancelled, live.State())
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		m := newLifecycleMocks(t)

		reservationID := uuid.New()
		m.reservations.EXPECT().FindByIDForUpdate(ctx, nil, reservationID, hotelID).Return(nil, notFoundErr())

		svc := commands.NewDetailLifecycleCommands(m.uow, clock.NewMockClock(fixedNow))
		err := svc.TransitionReservationParking(ctx, reservationID, hotelID, reservation.LifecycleCancelled, actorID)

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func rateLine(cents int64, includeInCancelFee bool) reservation.RateLine {
	price, _ := reservation.NewMoney(cents)
	return reservation.RateLine{
		AdjustmentType:     "base",
		Price:              price,
		IncludeInCancelFee: includeInCancelFee,
	}
}
