package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/pkg/clock"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDetailNotFound         = errs.New("detail not found")
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrInvalidStateTransition = errs.New("invalid lifecycle transition")
	ErrTransactionFailed      = errs.New("transaction failed")
)

// DetailTransitionResult is the updated detail returned to the caller. The
// cascade effects on the parent reservation and parking rows are observable
// via subsequent reads.
type DetailTransitionResult struct {
	ID         uuid.UUID
	PriceCents int64
	Billable   bool
	Lifecycle  reservation.Lifecycle
}

type DetailLifecycleCommands interface {
	// Transition cancels or recovers one detail atomically: recomputes its
	// price from the rate lines, cascades to its parking rows and re-derives
	// the parent reservation's span and status.
	Transition(ctx context.Context, detailID, hotelID uuid.UUID, target reservation.Lifecycle, actorID uuid.UUID, billableOverride *bool) (*DetailTransitionResult, error)
	// TransitionReservationParking cancels or recovers every parking row
	// under a reservation, keyed by the owning reservation rather than a
	// single detail.
	TransitionReservationParking(ctx context.Context, reservationID, hotelID uuid.UUID, target reservation.Lifecycle, actorID uuid.UUID) error
}

type detailLifecycleImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDetailLifecycleCommands(uow shared.UnitOfWork, clock clock.Clock) DetailLifecycleCommands {
	return &detailLifecycleImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *detailLifecycleImpl) Transition(
	ctx context.Context,
	detailID, hotelID uuid.UUID,
	target reservation.Lifecycle,
	actorID uuid.UUID,
	billableOverride *bool,
) (*DetailTransitionResult, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStateTransition
	}

	var result *DetailTransitionResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		detail, err := tx.Details().FindByIDForUpdate(ctx, tx.DB(), detailID, hotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDetailNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}

		parent, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), detail.ReservationID(), hotelID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}

		lines, err := tx.Rates().ListByDetail(ctx, tx.DB(), detail.ID(), hotelID)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		cancelling := target == reservation.LifecycleCancelled
		price := reservation.AggregateRates(lines, cancelling)

		billable := detail.Billable()
		if billableOverride != nil {
			billable = *billableOverride
		}

		if cancelling {
			if err := detail.Cancel(price, billable, actorID, c.clock.Now()); err != nil {
				return errs.Mark(err, ErrInvalidStateTransition)
			}
		} else {
			if err := detail.Recover(price, billable, parent.Status(), actorID); err != nil {
				return errs.Mark(err, ErrInvalidStateTransition)
			}
		}

		if err := tx.Details().Update(ctx, tx.DB(), detail); err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		if err := c.cascadeToParking(ctx, tx, detail.ID(), target, actorID); err != nil {
			return err
		}

		if err := c.refreshParentState(ctx, tx, parent, !cancelling, actorID); err != nil {
			return err
		}

		result = &DetailTransitionResult{
			ID:         detail.ID(),
			PriceCents: detail.Price().Cents(),
			Billable:   detail.Billable(),
			Lifecycle:  detail.State(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// cascadeToParking propagates the detail's new state to its parking rows.
// Rows that already hold the target state, or whose own status blocks
// recovery, are skipped rather than failing the transition.
func (c *detailLifecycleImpl) cascadeToParking(
	ctx context.Context,
	tx shared.Tx,
	detailID uuid.UUID,
	target reservation.Lifecycle,
	actorID uuid.UUID,
) error {
	rows, err := tx.Parking().ListByDetail(ctx, tx.DB(), detailID)
	if err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}

	for _, row := range rows {
		var transitionErr error
		if target == reservation.LifecycleCancelled {
			transitionErr = row.Cancel(actorID, c.clock.Now())
		} else {
			// The detail is live by the time the cascade runs.
			transitionErr = row.Recover(true, actorID)
		}

		switch {
		case transitionErr == nil:
			if err := tx.Parking().Update(ctx, tx.DB(), row); err != nil {
				return errs.Mark(err, ErrTransactionFailed)
			}
		case errors.Is(transitionErr, reservation.ErrParkingAlreadyCancelled),
			errors.Is(transitionErr, reservation.ErrParkingAlreadyLive):
			// Already in the target state.
		case errors.Is(transitionErr, reservation.ErrParkingReleased):
			slog.Debug("skipping released parking assignment in cascade",
				"parking_id", row.ID(), "detail_id", detailID)
		default:
			return errs.Mark(transitionErr, ErrTransactionFailed)
		}
	}

	return nil
}

// refreshParentState recomputes the parent's span from its surviving live
// details and derives its status: cancelled when none remain, confirmed when
// a recovery brings a cancelled reservation back.
func (c *detailLifecycleImpl) refreshParentState(
	ctx context.Context,
	tx shared.Tx,
	parent *reservation.Reservation,
	recovered bool,
	actorID uuid.UUID,
) error {
	dates, err := tx.Details().LiveStayDates(ctx, tx.DB(), parent.ID())
	if err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}

	span, hasLive := reservation.SpanFromDates(dates)
	parent.ApplyLiveSpan(span, hasLive, recovered, actorID)

	if err := tx.Reservations().UpdateDerivedState(ctx, tx.DB(), parent); err != nil {
		return errs.Mark(err, ErrTransactionFailed)
	}
	return nil
}

func (c *detailLifecycleImpl) TransitionReservationParking(
	ctx context.Context,
	reservationID, hotelID uuid.UUID,
	target reservation.Lifecycle,
	actorID uuid.UUID,
) error {
	if !target.IsValid() {
		return ErrInvalidStateTransition
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), reservationID, hotelID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrTransactionFailed)
		}

		rows, err := tx.Parking().ListByReservation(ctx, tx.DB(), reservationID)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailed)
		}

		var liveDetails map[uuid.UUID]bool
		if target == reservation.LifecycleLive {
			details, err := tx.Details().ListLiveByReservation(ctx, tx.DB(), reservationID)
			if err != nil {
				return errs.Mark(err, ErrTransactionFailed)
			}
			liveDetails = make(map[uuid.UUID]bool, len(details))
			for _, d := range details {
				liveDetails[d.ID()] = true
			}
		}

		for _, row := range rows {
			var transitionErr error
			if target == reservation.LifecycleCancelled {
				transitionErr = row.Cancel(actorID, c.clock.Now())
			} else {
				transitionErr = row.Recover(liveDetails[row.DetailID()], actorID)
			}

			switch {
			case transitionErr == nil:
				if err := tx.Parking().Update(ctx, tx.DB(), row); err != nil {
					return errs.Mark(err, ErrTransactionFailed)
				}
			case errors.Is(transitionErr, reservation.ErrParkingAlreadyCancelled),
				errors.Is(transitionErr, reservation.ErrParkingAlreadyLive),
				errors.Is(transitionErr, reservation.ErrParkingReleased),
				errors.Is(transitionErr, reservation.ErrDetailStillCancelled):
				// Reservation-scoped cascades skip blocked rows.
			default:
				return errs.Mark(transitionErr, ErrTransactionFailed)
			}
		}

		return nil
	})
}
