package readstore

import (
	"context"
	"time"

	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

// FindByID loads the full view including every detail (live and cancelled)
// and its parking assignments.
func (r *ReservationReadStore) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.hotel_id, COALESCE(c.name, '') AS guest_name, r.status,
		       r.check_in, r.check_out, r.comment, r.created_at, r.updated_at
		FROM reservations r
		LEFT JOIN clients c ON c.id = r.client_id
		WHERE r.id = $1 AND r.hotel_id = $2`

	var (
		view                 queries.ReservationView
		checkIn, checkOut    pgtype.Date
		comment              pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id, hotelID).Scan(
		&view.ID, &view.HotelID, &view.GuestName, &view.Status,
		&checkIn, &checkOut, &comment, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.CheckIn = checkIn.Time
	view.CheckOut = checkOut.Time
	view.Comment = pgconv.StringPtrFromPgtype(comment)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	if view.Details, err = r.detailsByReservation(ctx, id); err != nil {
		return nil, err
	}
	if view.Parking, err = r.parkingByReservation(ctx, id); err != nil {
		return nil, err
	}

	return &view, nil
}

func (r *ReservationReadStore) detailsByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.DetailView, error) {
	const query = `
		SELECT d.id, d.room_id, rm.number, d.stay_date, d.occupants,
		       d.is_accommodation, d.billable, d.price_cents, d.lifecycle,
		       d.cancelled_at, d.cancelled_by
		FROM reservation_details d
		JOIN rooms rm ON rm.id = d.room_id
		WHERE d.reservation_id = $1
		ORDER BY d.stay_date, rm.number`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation details", err)
	}
	defer rows.Close()

	var details []*queries.DetailView
	for rows.Next() {
		var (
			d           queries.DetailView
			stayDate    pgtype.Date
			cancelledAt pgtype.Timestamptz
			cancelledBy pgtype.UUID
		)
		err := rows.Scan(
			&d.ID, &d.RoomID, &d.RoomNumber, &stayDate, &d.Occupants,
			&d.IsAccommodation, &d.Billable, &d.PriceCents, &d.Lifecycle,
			&cancelledAt, &cancelledBy)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan detail view", err)
		}
		d.StayDate = stayDate.Time
		if cancelledAt.Valid {
			t := cancelledAt.Time
			d.CancelledAt = &t
		}
		d.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
		details = append(details, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read detail views", err)
	}

	return details, nil
}

func (r *ReservationReadStore) parkingByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.ParkingView, error) {
	const query = `
		SELECT p.id, p.detail_id, p.parking_spot_id, s.number, p.vehicle_category_id,
		       p.date, p.status, p.price_cents, p.lifecycle
		FROM reservation_parking p
		JOIN parking_spots s ON s.id = p.parking_spot_id
		JOIN reservation_details d ON d.id = p.detail_id
		WHERE d.reservation_id = $1
		ORDER BY p.date, s.number`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking views", err)
	}
	defer rows.Close()

	var parking []*queries.ParkingView
	for rows.Next() {
		var (
			p    queries.ParkingView
			date pgtype.Date
		)
		err := rows.Scan(
			&p.ID, &p.DetailID, &p.SpotID, &p.SpotNumber, &p.VehicleCategoryID,
			&date, &p.Status, &p.PriceCents, &p.Lifecycle)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan parking view", err)
		}
		p.Date = date.Time
		parking = append(parking, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read parking views", err)
	}

	return parking, nil
}

func (r *ReservationReadStore) FindByHotelFirstPage(ctx context.Context, hotelID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, COALESCE(c.name, '') AS guest_name, r.status,
		       r.check_in, r.check_out, r.created_at
		FROM reservations r
		LEFT JOIN clients c ON c.id = r.client_id
		WHERE r.hotel_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`

	return r.listPage(ctx, query, hotelID, limit)
}

func (r *ReservationReadStore) FindByHotelKeyset(ctx context.Context, hotelID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, COALESCE(c.name, '') AS guest_name, r.status,
		       r.check_in, r.check_out, r.created_at
		FROM reservations r
		LEFT JOIN clients c ON c.id = r.client_id
		WHERE r.hotel_id = $1 AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`

	return r.listPage(ctx, query, hotelID, pgconv.TimeToPgtype(lastCreatedAt), lastID, limit)
}

func (r *ReservationReadStore) listPage(ctx context.Context, query string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item              queries.ReservationListItem
			checkIn, checkOut pgtype.Date
			createdAt         pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.GuestName, &item.Status, &checkIn, &checkOut, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.CheckIn = checkIn.Time
		item.CheckOut = checkOut.Time
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation list", err)
	}

	return items, nil
}
