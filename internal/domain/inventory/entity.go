package inventory

import (
	"errors"

	"hotel-pms/internal/domain/allocation"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity      = errors.New("capacity must be positive")
	ErrInvalidCapacityUnits = errors.New("vehicle category requires at least one capacity unit")
)

// Room is a physical room. Read-only to the allocation engine; availability
// is derived from the absence of overlapping live details.
type Room struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	roomTypeID uuid.UUID
	number     string
	floor      int
	priority   int
	capacity   int
}

func NewRoom(id, hotelID, roomTypeID uuid.UUID, number string, floor, priority, capacity int) (*Room, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		number:     number,
		floor:      floor,
		priority:   priority,
		capacity:   capacity,
	}, nil
}

// ReconstructRoom rebuilds a Room loaded from the database.
func ReconstructRoom(id, hotelID, roomTypeID uuid.UUID, number string, floor, priority, capacity int) *Room {
	return &Room{
		id:         id,
		hotelID:    hotelID,
		roomTypeID: roomTypeID,
		number:     number,
		floor:      floor,
		priority:   priority,
		capacity:   capacity,
	}
}

// AllocationUnit projects the room into the shape the allocation strategy
// consumes.
func (r *Room) AllocationUnit() allocation.Unit {
	return allocation.Unit{ID: r.id, Capacity: r.capacity}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) HotelID() uuid.UUID    { return r.hotelID }
func (r *Room) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Room) Number() string        { return r.number }
func (r *Room) Floor() int            { return r.floor }
func (r *Room) Priority() int         { return r.priority }
func (r *Room) Capacity() int         { return r.capacity }

// ParkingSpot is a physical spot sized in abstract capacity units, matched
// against a vehicle category's requirement rather than occupant counts.
type ParkingSpot struct {
	id            uuid.UUID
	hotelID       uuid.UUID
	number        string
	capacityUnits int
}

func NewParkingSpot(id, hotelID uuid.UUID, number string, capacityUnits int) (*ParkingSpot, error) {
	if capacityUnits <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &ParkingSpot{
		id:            id,
		hotelID:       hotelID,
		number:        number,
		capacityUnits: capacityUnits,
	}, nil
}

// ReconstructParkingSpot rebuilds a ParkingSpot loaded from the database.
func ReconstructParkingSpot(id, hotelID uuid.UUID, number string, capacityUnits int) *ParkingSpot {
	return &ParkingSpot{
		id:            id,
		hotelID:       hotelID,
		number:        number,
		capacityUnits: capacityUnits,
	}
}

func (s *ParkingSpot) ID() uuid.UUID      { return s.id }
func (s *ParkingSpot) HotelID() uuid.UUID { return s.hotelID }
func (s *ParkingSpot) Number() string     { return s.number }
func (s *ParkingSpot) CapacityUnits() int { return s.capacityUnits }

// VehicleCategory sizes a vehicle class in capacity units.
type VehicleCategory struct {
	id                    uuid.UUID
	name                  string
	capacityUnitsRequired int
}

func NewVehicleCategory(id uuid.UUID, name string, capacityUnitsRequired int) (*VehicleCategory, error) {
	if capacityUnitsRequired <= 0 {
		return nil, ErrInvalidCapacityUnits
	}

	return &VehicleCategory{
		id:                    id,
		name:                  name,
		capacityUnitsRequired: capacityUnitsRequired,
	}, nil
}

// ReconstructVehicleCategory rebuilds a VehicleCategory loaded from the
// database. Validate guards against rows predating the capacity constraint.
func ReconstructVehicleCategory(id uuid.UUID, name string, capacityUnitsRequired int) *VehicleCategory {
	return &VehicleCategory{
		id:                    id,
		name:                  name,
		capacityUnitsRequired: capacityUnitsRequired,
	}
}

func (v *VehicleCategory) Validate() error {
	if v.capacityUnitsRequired <= 0 {
		return ErrInvalidCapacityUnits
	}
	return nil
}

func (v *VehicleCategory) ID() uuid.UUID              { return v.id }
func (v *VehicleCategory) Name() string               { return v.name }
func (v *VehicleCategory) CapacityUnitsRequired() int { return v.capacityUnitsRequired }
