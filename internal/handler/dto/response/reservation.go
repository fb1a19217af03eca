package response

import (
	"time"

	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomAssignmentResponse struct {
	RoomID    uuid.UUID `json:"room_id"`
	Occupants int       `json:"occupants"`
	Date      string    `json:"date"`
}

type AllocationResponse struct {
	ReservationID uuid.UUID                `json:"reservation_id"`
	Assignments   []RoomAssignmentResponse `json:"assignments"`
}

func FromAllocationResult(result *commands.AllocationResult) AllocationResponse {
	assignments := make([]RoomAssignmentResponse, len(result.Assignments))
	for i, a := range result.Assignments {
		assignments[i] = RoomAssignmentResponse{
			RoomID:    a.RoomID,
			Occupants: a.Occupants,
			Date:      a.Date.Format(time.DateOnly),
		}
	}

	return AllocationResponse{
		ReservationID: result.ReservationID,
		Assignments:   assignments,
	}
}

type SpotAssignmentResponse struct {
	ID       uuid.UUID `json:"id"`
	SpotID   uuid.UUID `json:"parking_spot_id"`
	DetailID uuid.UUID `json:"detail_id"`
	Date     string    `json:"date"`
}

type ParkingAllocationResponse struct {
	Assignments []SpotAssignmentResponse `json:"assignments"`
}

func FromSpotAssignments(assignments []commands.SpotAssignment) ParkingAllocationResponse {
	out := make([]SpotAssignmentResponse, len(assignments))
	for i, a := range assignments {
		out[i] = SpotAssignmentResponse{
			ID:       a.ID,
			SpotID:   a.SpotID,
			DetailID: a.DetailID,
			Date:     a.Date.Format(time.DateOnly),
		}
	}
	return ParkingAllocationResponse{Assignments: out}
}

type ReservationListResponse struct {
	Items      []*queries.ReservationListItem `json:"items"`
	NextCursor *string                        `json:"next_cursor,omitempty"`
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) ReservationListResponse {
	resp := ReservationListResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []*queries.ReservationListItem{}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}
