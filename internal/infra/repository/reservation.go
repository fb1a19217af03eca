package repository

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, hotel_id, client_id, check_in, check_out, status, comment, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		res.ID(), res.HotelID(), pgconv.UUIDPtrToPgtype(res.ClientID()),
		res.Span().CheckIn(), res.Span().CheckOut(),
		res.Status().String(), res.Comment().String(), res.UpdatedBy(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id, hotelID uuid.UUID) (*reservation.Reservation, error) {
	const query = `
		SELECT id, hotel_id, client_id, check_in, check_out, status, comment, updated_by, created_at, updated_at
		FROM reservations
		WHERE id = $1 AND hotel_id = $2
		FOR UPDATE`

	var (
		resID, resHotelID    uuid.UUID
		clientID             pgtype.UUID
		checkIn, checkOut    pgtype.Date
		status, comment      string
		updatedBy            uuid.UUID
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, id, hotelID).Scan(
		&resID, &resHotelID, &clientID, &checkIn, &checkOut,
		&status, &comment, &updatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	span, err := reservation.NewStayRange(checkIn.Time, checkOut.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation span is invalid", err)
	}

	return reservation.ReconstructReservation(
		resID, resHotelID, pgconv.UUIDPtrFromPgtype(clientID),
		span, reservation.Status(status), reservation.NewComment(comment),
		updatedBy, createdAt.Time, updatedAt.Time,
	), nil
}

func (r *ReservationRepository) UpdateDerivedState(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET check_in = $2, check_out = $3, status = $4, updated_by = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		res.ID(), res.Span().CheckIn(), res.Span().CheckOut(),
		res.Status().String(), res.UpdatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation derived state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation vanished during update", nil, infra.KindNotFound)
	}

	return nil
}
