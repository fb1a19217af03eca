package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("dates must be formatted as YYYY-MM-DD")

type ConfirmWaitlistRequest struct {
	Occupants int    `json:"occupants" binding:"required,min=1"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
}

type BlockRoomsRequest struct {
	RoomTypeID uuid.UUID              `json:"room_type_id" binding:"required"`
	RoomCount  int                    `json:"room_count" binding:"required,min=1"`
	Occupants  int                    `json:"occupants" binding:"omitempty,min=1"`
	CheckIn    string                 `json:"check_in" binding:"required"`
	CheckOut   string                 `json:"check_out" binding:"required"`
	Comment    string                 `json:"comment" binding:"omitempty,max=1000"`
	Parking    *BlockParkingSubentity `json:"parking,omitempty"`
}

type BlockParkingSubentity struct {
	VehicleCategoryID uuid.UUID `json:"vehicle_category_id" binding:"required"`
	SpotCount         int       `json:"spot_count" binding:"required,min=1"`
}

type AllocateParkingRequest struct {
	VehicleCategoryID uuid.UUID `json:"vehicle_category_id" binding:"required"`
	SpotCount         int       `json:"spot_count" binding:"required,min=1"`
	CheckIn           string    `json:"check_in" binding:"required"`
	CheckOut          string    `json:"check_out" binding:"required"`
}

// DetailTransitionRequest carries the optional billable override applied on
// recovery. Cancellation ignores it.
type DetailTransitionRequest struct {
	Billable *bool `json:"billable,omitempty"`
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ParseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}
