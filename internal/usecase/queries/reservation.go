package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID        uuid.UUID      `json:"id"`
	HotelID   uuid.UUID      `json:"hotel_id"`
	GuestName string         `json:"guest_name"`
	Status    string         `json:"status"`
	CheckIn   time.Time      `json:"check_in"`
	CheckOut  time.Time      `json:"check_out"`
	Comment   *string        `json:"comment,omitempty"`
	Details   []*DetailView  `json:"details"`
	Parking   []*ParkingView `json:"parking"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type DetailView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number"`
	StayDate        time.Time  `json:"stay_date"`
	Occupants       int        `json:"occupants"`
	IsAccommodation bool       `json:"is_accommodation"`
	Billable        bool       `json:"billable"`
	PriceCents      int64      `json:"price_cents"`
	Lifecycle       string     `json:"lifecycle"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy     *uuid.UUID `json:"cancelled_by,omitempty"`
}

type ParkingView struct {
	ID                uuid.UUID `json:"id"`
	DetailID          uuid.UUID `json:"detail_id"`
	SpotID            uuid.UUID `json:"parking_spot_id"`
	SpotNumber        string    `json:"spot_number"`
	VehicleCategoryID uuid.UUID `json:"vehicle_category_id"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	PriceCents        int64     `json:"price_cents"`
	Lifecycle         string    `json:"lifecycle"`
}

type ReservationListItem struct {
	ID        uuid.UUID `json:"id"`
	GuestName string    `json:"guest_name"`
	Status    string    `json:"status"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, hotelID, id uuid.UUID) (*ReservationView, error)
	// ListByHotel pages newest-first with a keyset cursor.
	ListByHotel(ctx context.Context, hotelID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, hotelID, id uuid.UUID) (*ReservationView, error)
	FindByHotelFirstPage(ctx context.Context, hotelID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByHotelKeyset(ctx context.Context, hotelID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, hotelID, id)
}

func (q *reservationQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	// Fetch one extra row to detect whether a next page exists.
	fetch := int32(limit + 1)

	var (
		rows []*ReservationListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindByHotelFirstPage(ctx, hotelID, fetch)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindByHotelKeyset(ctx, hotelID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) <= limit {
		return rows, nil, nil
	}

	rows = rows[:limit]
	last := rows[len(rows)-1]
	next := &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	return rows, next, nil
}
