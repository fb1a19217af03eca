//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) reservation.Money {
	t.Helper()
	m, err := reservation.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestDetail_Cancel(t *testing.T) {
	t.Run("live detail becomes cancelled with audit fields", func(t *testing.T) {
		detail := builder.NewDetailBuilder().BuildDomain()
		actor := uuid.New()
		at := time.Now()
		fee := mustMoney(t, 5500)

		err := detail.Cancel(fee, detail.Billable(), actor, at)
		require.NoError(t, err)

		assert.Equal(t, reservation.LifecycleCancelled, detail.State())
		assert.False(t, detail.IsLive())
		assert.Equal(t, int64(5500), detail.Price().Cents())
		require.NotNil(t, detail.CancelledAt())
		assert.Equal(t, at, *detail.CancelledAt())
		require.NotNil(t, detail.CancelledBy())
		assert.Equal(t, actor, *detail.CancelledBy())
		assert.Equal(t, actor, detail.UpdatedBy())
	})

	t.Run("requested billable is persisted", func(t *testing.T) {
		detail := builder.NewDetailBuilder().WithBillable(true).BuildDomain()

		err := detail.Cancel(mustMoney(t, 0), false, uuid.New(), time.Now())
		require.NoError(t, err)

		assert.False(t, detail.Billable())
	})

	t.Run("cancelling a cancelled detail is rejected", func(t *testing.T) {
		detail := builder.NewDetailBuilder().AsCancelled().BuildDomain()

		err := detail.Cancel(mustMoney(t, 0), false, uuid.New(), time.Now())
		assert.ErrorIs(t, err, reservation.ErrDetailAlreadyCancelled)
	})
}

func TestDetail_Recover(t *testing.T) {
	testCases := []struct {
		name             string
		parentStatus     reservation.Status
		requestBillable  bool
		expectedBillable bool
	}{
		{
			name:             "confirmed parent keeps the requested billable",
			parentStatus:     reservation.StatusConfirmed,
			requestBillable:  true,
			expectedBillable: true,
		},
		{
			name:             "hold parent forces billable off",
			parentStatus:     reservation.StatusHold,
			requestBillable:  true,
			expectedBillable: false,
		},
		{
			name:             "provisory parent forces billable off",
			parentStatus:     reservation.StatusProvisory,
			requestBillable:  true,
			expectedBillable: false,
		},
		{
			name:             "cancelled parent keeps the requested billable",
			parentStatus:     reservation.StatusCancelled,
			requestBillable:  false,
			expectedBillable: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detail := builder.NewDetailBuilder().AsCancelled().BuildDomain()
			actor := uuid.New()
			price := mustMoney(t, 7500)

			err := detail.Recover(price, tc.requestBillable, tc.parentStatus, actor)
			require.NoError(t, err)

			assert.Equal(t, reservation.LifecycleLive, detail.State())
			assert.Equal(t, tc.expectedBillable, detail.Billable())
			assert.Equal(t, int64(7500), detail.Price().Cents())
			assert.Nil(t, detail.CancelledAt())
			assert.Nil(t, detail.CancelledBy())
			assert.Equal(t, actor, detail.UpdatedBy())
		})
	}

	t.Run("recovering a live detail is rejected", func(t *testing.T) {
		detail := builder.NewDetailBuilder().BuildDomain()

		err := detail.Recover(mustMoney(t, 100), true, reservation.StatusConfirmed, uuid.New())
		assert.ErrorIs(t, err, reservation.ErrDetailAlreadyLive)
	})
}

func TestParkingAssignment_Lifecycle(t *testing.T) {
	t.Run("cancel then recover round-trips while the detail is live", func(t *testing.T) {
		parking := builder.NewParkingBuilder().BuildDomain()
		actor := uuid.New()

		require.NoError(t, parking.Cancel(actor, time.Now()))
		assert.Equal(t, reservation.LifecycleCancelled, parking.State())

		require.NoError(t, parking.Recover(true, actor))
		assert.True(t, parking.IsLive())
		assert.Nil(t, parking.CancelledAt())
	})

	t.Run("recovery is blocked while the owning detail is cancelled", func(t *testing.T) {
		parking := builder.NewParkingBuilder().AsCancelled().BuildDomain()

		err := parking.Recover(false, uuid.New())
		assert.ErrorIs(t, err, reservation.ErrDetailStillCancelled)
		assert.Equal(t, reservation.LifecycleCancelled, parking.State())
	})

	t.Run("released assignments cannot be recovered", func(t *testing.T) {
		parking := builder.NewParkingBuilder().
			WithStatus(reservation.ParkingStatusReleased).
			AsCancelled().
			BuildDomain()

		err := parking.Recover(true, uuid.New())
		assert.ErrorIs(t, err, reservation.ErrParkingReleased)
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		parking := builder.NewParkingBuilder().AsCancelled().BuildDomain()

		err := parking.Cancel(uuid.New(), time.Now())
		assert.ErrorIs(t, err, reservation.ErrParkingAlreadyCancelled)
	})
}

func TestSpanFromDates(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("span covers min date through max date plus one day", func(t *testing.T) {
		span, ok := reservation.SpanFromDates([]time.Time{day(16), day(14), day(15)})
		require.True(t, ok)

		assert.Equal(t, day(14), span.CheckIn())
		assert.Equal(t, day(17), span.CheckOut())
		assert.Equal(t, 3, span.Nights())
	})

	t.Run("single date spans one night", func(t *testing.T) {
		span, ok := reservation.SpanFromDates([]time.Time{day(20)})
		require.True(t, ok)

		assert.Equal(t, day(20), span.CheckIn())
		assert.Equal(t, day(21), span.CheckOut())
	})

	t.Run("no dates reports no span", func(t *testing.T) {
		_, ok := reservation.SpanFromDates(nil)
		assert.False(t, ok)
	})
}

func TestReservation_ApplyLiveSpan(t *testing.T) {
	newReservation := func(t *testing.T, status reservation.Status) *reservation.Reservation {
		t.Helper()
		span, err := reservation.NewStayRange(
			time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		res, err := reservation.NewReservation(uuid.New(), nil, span, status, reservation.NewComment(""), uuid.New())
		require.NoError(t, err)
		return res
	}

	t.Run("zero live details cancels the parent and keeps its dates", func(t *testing.T) {
		res := newReservation(t, reservation.StatusConfirmed)
		before := res.Span()

		res.ApplyLiveSpan(reservation.StayRange{}, false, false, uuid.New())

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, before, res.Span())
	})

	t.Run("recovery under a cancelled parent reinstates it as confirmed", func(t *testing.T) {
		res := newReservation(t, reservation.StatusCancelled)
		span, ok := reservation.SpanFromDates([]time.Time{
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		})
		require.True(t, ok)

		res.ApplyLiveSpan(span, true, true, uuid.New())

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, span.CheckIn(), res.Span().CheckIn())
		assert.Equal(t, span.CheckOut(), res.Span().CheckOut())
	})

	t.Run("cancel that leaves live details only shrinks the span", func(t *testing.T) {
		res := newReservation(t, reservation.StatusConfirmed)
		span, ok := reservation.SpanFromDates([]time.Time{
			time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		})
		require.True(t, ok)

		res.ApplyLiveSpan(span, true, false, uuid.New())

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 2, res.Span().Nights())
	})
}
