package shared

import (
	"context"
	"time"

	"hotel-pms/internal/domain/inventory"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Details() DetailRepository
	Rates() RateRepository
	Parking() ParkingRepository
	Inventory() InventoryRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id, hotelID uuid.UUID) (*ReservationSnapshot, error)
	DetailByID(ctx context.Context, id, hotelID uuid.UUID) (*DetailSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// FindByIDForUpdate row-locks the reservation so concurrent lifecycle
	// transitions on siblings serialize on the parent.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id, hotelID uuid.UUID) (*reservation.Reservation, error)
	// UpdateDerivedState persists the recomputed span, status and updated_by.
	UpdateDerivedState(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
}

type DetailRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, details []*reservation.Detail) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id, hotelID uuid.UUID) (*reservation.Detail, error)
	Update(ctx context.Context, tx db.DBTX, detail *reservation.Detail) error
	// LiveStayDates lists the stay dates of all live details of a reservation.
	LiveStayDates(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]time.Time, error)
	// ListLiveByReservation loads all live details of a reservation.
	ListLiveByReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]*reservation.Detail, error)
}

type RateRepository interface {
	ListByDetail(ctx context.Context, tx db.DBTX, detailID, hotelID uuid.UUID) ([]reservation.RateLine, error)
}

type ParkingRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, assignments []*reservation.ParkingAssignment) error
	ListByDetail(ctx context.Context, tx db.DBTX, detailID uuid.UUID) ([]*reservation.ParkingAssignment, error)
	ListByReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) ([]*reservation.ParkingAssignment, error)
	Update(ctx context.Context, tx db.DBTX, assignment *reservation.ParkingAssignment) error
}

type InventoryRepository interface {
	// AvailableRooms lists rooms free over the whole span, row-locked,
	// ordered by priority, floor, number.
	AvailableRooms(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, roomTypeID *uuid.UUID, span reservation.StayRange) ([]*inventory.Room, error)
	// AvailableSpots lists parking spots with at least unitsRequired capacity
	// units free over the whole span, row-locked, in stable order.
	AvailableSpots(ctx context.Context, tx db.DBTX, hotelID uuid.UUID, unitsRequired int, span reservation.StayRange) ([]*inventory.ParkingSpot, error)
	VehicleCategoryByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*inventory.VehicleCategory, error)
}
