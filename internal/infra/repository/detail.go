package repository

import (
	"context"
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const detailColumns = `id, reservation_id, hotel_id, room_id, stay_date, occupants,
		is_accommodation, billable, price_cents, lifecycle, cancelled_at, cancelled_by,
		created_by, updated_by`

type DetailRepository struct{}

func NewDetailRepository() *DetailRepository {
	return &DetailRepository{}
}

func (r *DetailRepository) CreateBatch(ctx context.Context, tx db.DBTX, details []*reservation.Detail) error {
	const query = `
		INSERT INTO reservation_details
			(id, reservation_id, hotel_id, room_id, stay_date, occupants,
			 is_accommodation, billable, price_cents, lifecycle, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, d := range details {
		_, err := tx.Exec(ctx, query,
			d.ID(), d.ReservationID(), d.HotelID(), d.RoomID(), d.StayDate(),
			d.Occupants(), d.IsAccommodation(), d.Billable(), d.Price().Cents(),
			d.State().String(), d.CreatedBy(), d.UpdatedBy(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create reservation detail", err)
		}
	}

	return nil
}

func (r *DetailRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id, hotelID uuid.UUID) (*reservation.Detail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM reservation_details
		WHERE id = $1 AND hotel_id = $2
		FOR UPDATE`

	detail, err := scanDetail(tx.QueryRow(ctx, query, id, hotelID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("detail not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find detail", err)
	}

	return detail, nil
}

func (r *DetailRepository) Update(ctx context.Context, tx db.DBTX, detail *reservation.Detail) error {
	const query = `
		UPDATE reservation_details
		SET billable = $2, price_cents = $3, lifecycle = $4,
		    cancelled_at = $5, cancelled_by = $6, updated_by = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		detail.ID(), detail.Billable(), detail.Price().Cents(), detail.State().String(),
		timePtrToPgtype(detail.CancelledAt()), pgconv.UUIDPtrToPgtype(detail.CancelledBy()),
		detail.UpdatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update detail", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("detail vanished during update", nil, infra.KindNotFound)
	}

	return nil
}

func (r *DetailRepository) LiveStayDates(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]time.Time, error) {
	const query = `
		SELECT stay_date
		FROM reservation_details
		WHERE reservation_id = $1 AND lifecycle = 'live'`

	rows, err := tx.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live stay dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay date", err)
		}
		dates = append(dates, d.Time)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stay dates", err)
	}

	return dates, nil
}

func (r *DetailRepository) ListLiveByReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]*reservation.Detail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM reservation_details
		WHERE reservation_id = $1 AND lifecycle = 'live'
		ORDER BY stay_date, id`

	rows, err := tx.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list live details", err)
	}
	defer rows.Close()

	var details []*reservation.Detail
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan detail", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read details", err)
	}

	return details, nil
}

func scanDetail(row pgx.Row) (*reservation.Detail, error) {
	var (
		id, reservationID, hotelID, roomID uuid.UUID
		stayDate                           pgtype.Date
		occupants                          int
		isAccommodation, billable          bool
		priceCents                         int64
		lifecycle                          string
		cancelledAt                        pgtype.Timestamptz
		cancelledBy                        pgtype.UUID
		createdBy, updatedBy               uuid.UUID
	)

	err := row.Scan(
		&id, &reservationID, &hotelID, &roomID, &stayDate, &occupants,
		&isAccommodation, &billable, &priceCents, &lifecycle, &cancelledAt, &cancelledBy,
		&createdBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	price, err := reservation.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructDetail(
		id, reservationID, hotelID, roomID,
		stayDate.Time, occupants, isAccommodation, billable,
		price, reservation.Lifecycle(lifecycle),
		timePtrFromPgtype(cancelledAt), pgconv.UUIDPtrFromPgtype(cancelledBy),
		createdBy, updatedBy,
	), nil
}

func timePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func timePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
