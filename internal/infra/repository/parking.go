package repository

import (
	"context"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const parkingColumns = `id, hotel_id, detail_id, addon_id, vehicle_category_id, parking_spot_id,
		date, status, price_cents, lifecycle, cancelled_at, cancelled_by, created_by, updated_by`

type ParkingRepository struct{}

func NewParkingRepository() *ParkingRepository {
	return &ParkingRepository{}
}

func (r *ParkingRepository) CreateBatch(ctx context.Context, tx db.DBTX, assignments []*reservation.ParkingAssignment) error {
	const query = `
		INSERT INTO reservation_parking
			(id, hotel_id, detail_id, addon_id, vehicle_category_id, parking_spot_id,
			 date, status, price_cents, lifecycle, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	for _, a := range assignments {
		_, err := tx.Exec(ctx, query,
			a.ID(), a.HotelID(), a.DetailID(), pgconv.UUIDPtrToPgtype(a.AddonID()),
			a.VehicleCategoryID(), a.SpotID(), a.Date(), a.Status().String(),
			a.Price().Cents(), a.State().String(), a.CreatedBy(), a.UpdatedBy(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create parking assignment", err)
		}
	}

	return nil
}

func (r *ParkingRepository) ListByDetail(ctx context.Context, tx db.DBTX, detailID uuid.UUID) ([]*reservation.ParkingAssignment, error) {
	query := `
		SELECT ` + parkingColumns + `
		FROM reservation_parking
		WHERE detail_id = $1
		ORDER BY date, id`

	return r.list(ctx, tx, query, detailID)
}

func (r *ParkingRepository) ListByReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]*reservation.ParkingAssignment, error) {
	query := `
		SELECT ` + parkingColumns + `
		FROM reservation_parking p
		WHERE EXISTS (
			SELECT 1 FROM reservation_details d
			WHERE d.id = p.detail_id AND d.reservation_id = $1
		)
		ORDER BY date, id`

	return r.list(ctx, tx, query, reservationID)
}

func (r *ParkingRepository) list(ctx context.Context, tx db.DBTX, query string, arg any) ([]*reservation.ParkingAssignment, error) {
	rows, err := tx.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking assignments", err)
	}
	defer rows.Close()

	var assignments []*reservation.ParkingAssignment
	for rows.Next() {
		a, err := scanParking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan parking assignment", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read parking assignments", err)
	}

	return assignments, nil
}

func (r *ParkingRepository) Update(ctx context.Context, tx db.DBTX, assignment *reservation.ParkingAssignment) error {
	const query = `
		UPDATE reservation_parking
		SET status = $2, lifecycle = $3, cancelled_at = $4, cancelled_by = $5,
		    updated_by = $6, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		assignment.ID(), assignment.Status().String(), assignment.State().String(),
		timePtrToPgtype(assignment.CancelledAt()), pgconv.UUIDPtrToPgtype(assignment.CancelledBy()),
		assignment.UpdatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking assignment vanished during update", nil, infra.KindNotFound)
	}

	return nil
}

func scanParking(row pgx.Row) (*reservation.ParkingAssignment, error) {
	var (
		id, hotelID, detailID     uuid.UUID
		addonID                   pgtype.UUID
		vehicleCategoryID, spotID uuid.UUID
		date                      pgtype.Date
		status, lifecycle         string
		priceCents                int64
		cancelledAt               pgtype.Timestamptz
		cancelledBy               pgtype.UUID
		createdBy, updatedBy      uuid.UUID
	)

	err := row.Scan(
		&id, &hotelID, &detailID, &addonID, &vehicleCategoryID, &spotID,
		&date, &status, &priceCents, &lifecycle, &cancelledAt, &cancelledBy,
		&createdBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	price, err := reservation.NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructParkingAssignment(
		id, hotelID, detailID,
		pgconv.UUIDPtrFromPgtype(addonID),
		vehicleCategoryID, spotID,
		date.Time,
		reservation.ParkingStatus(status),
		price,
		reservation.Lifecycle(lifecycle),
		timePtrFromPgtype(cancelledAt), pgconv.UUIDPtrFromPgtype(cancelledBy),
		createdBy, updatedBy,
	), nil
}
