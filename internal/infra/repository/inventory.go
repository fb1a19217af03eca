package repository

import (
	"context"

	"hotel-pms/internal/domain/inventory"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/db"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryRepository struct{}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// AvailableRooms locks and returns every room of the hotel (optionally
// filtered by room type) with no live detail on any date of the span. Order
// is priority, then floor, then number so allocation is deterministic.
func (r *InventoryRepository) AvailableRooms(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, roomTypeID *uuid.UUID, span reservation.StayRange) ([]*inventory.Room, error) {
	const query = `
		SELECT r.id, r.hotel_id, r.room_type_id, r.number, r.floor, r.priority, r.capacity
		FROM rooms r
		WHERE r.hotel_id = $1
		  AND ($2::uuid IS NULL OR r.room_type_id = $2)
		  AND NOT EXISTS (
			SELECT 1 FROM reservation_details d
			WHERE d.room_id = r.id
			  AND d.lifecycle = 'live'
			  AND d.stay_date >= $3 AND d.stay_date < $4
		  )
		ORDER BY r.priority, r.floor, r.number
		FOR UPDATE OF r`

	rows, err := tx.Query(ctx, query,
		hotelID, pgconv.UUIDPtrToPgtype(roomTypeID), span.CheckIn(), span.CheckOut())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	var result []*inventory.Room
	for rows.Next() {
		var (
			id, roomHotelID, typeID   uuid.UUID
			number                    string
			floor, priority, capacity int
		)
		if err := rows.Scan(&id, &roomHotelID, &typeID, &number, &floor, &priority, &capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		result = append(result, inventory.ReconstructRoom(id, roomHotelID, typeID, number, floor, priority, capacity))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}

	return result, nil
}

// AvailableSpots locks and returns parking spots large enough for the vehicle
// class and free of live assignments on every date of the span.
func (r *InventoryRepository) AvailableSpots(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, unitsRequired int, span reservation.StayRange) ([]*inventory.ParkingSpot, error) {
	const query = `
		SELECT s.id, s.hotel_id, s.number, s.capacity_units
		FROM parking_spots s
		WHERE s.hotel_id = $1
		  AND s.capacity_units >= $2
		  AND NOT EXISTS (
			SELECT 1 FROM reservation_parking p
			WHERE p.parking_spot_id = s.id
			  AND p.lifecycle = 'live'
			  AND p.date >= $3 AND p.date < $4
		  )
		ORDER BY s.capacity_units, s.number
		FOR UPDATE OF s`

	rows, err := tx.Query(ctx, query, hotelID, unitsRequired, span.CheckIn(), span.CheckOut())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available spots", err)
	}
	defer rows.Close()

	var spots []*inventory.ParkingSpot
	for rows.Next() {
		var (
			id, spotHotelID uuid.UUID
			number          string
			capacityUnits   int
		)
		if err := rows.Scan(&id, &spotHotelID, &number, &capacityUnits); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot", err)
		}
		spots = append(spots, inventory.ReconstructParkingSpot(id, spotHotelID, number, capacityUnits))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read spots", err)
	}

	return spots, nil
}

func (r *InventoryRepository) VehicleCategoryByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*inventory.VehicleCategory, error) {
	const query = `
		SELECT id, name, capacity_units_required
		FROM vehicle_categories
		WHERE id = $1`

	var (
		categoryID            uuid.UUID
		name                  string
		capacityUnitsRequired int
	)
	err := tx.QueryRow(ctx, query, id).Scan(&categoryID, &name, &capacityUnitsRequired)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle category", err)
	}

	return inventory.ReconstructVehicleCategory(categoryID, name, capacityUnitsRequired), nil
}
