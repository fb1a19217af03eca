package reservation

// Status is the aggregate reservation status. It is derived from detail
// liveness on lifecycle transitions, never edited independently.
type Status string

const (
	StatusHold      Status = "hold"
	StatusProvisory Status = "provisory"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusBlock     Status = "block"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHold, StatusProvisory, StatusConfirmed, StatusCancelled, StatusBlock:
		return true
	default:
		return false
	}
}

// ForcesNonBillable reports whether a detail recovered under this parent
// status must be persisted with billable=false regardless of the caller's
// requested value.
func (s Status) ForcesNonBillable() bool {
	return s == StatusHold || s == StatusProvisory
}

// Lifecycle is the liveness of a single detail or parking assignment.
type Lifecycle string

const (
	LifecycleLive      Lifecycle = "live"
	LifecycleCancelled Lifecycle = "cancelled"
)

func (l Lifecycle) String() string {
	return string(l)
}

func (l Lifecycle) IsValid() bool {
	return l == LifecycleLive || l == LifecycleCancelled
}

// ParkingStatus guards parking-specific recovery: a released assignment stays
// released even when its detail comes back.
type ParkingStatus string

const (
	ParkingStatusAssigned ParkingStatus = "assigned"
	ParkingStatusReleased ParkingStatus = "released"
)

func (s ParkingStatus) String() string {
	return string(s)
}

func (s ParkingStatus) AllowsRecovery() bool {
	return s == ParkingStatusAssigned
}
