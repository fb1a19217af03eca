package allocation

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCapacityExhausted = errors.New("not enough capacity to satisfy demand")
	ErrInvalidDemand     = errors.New("demand must be positive")
)

// Unit is one inventory unit (room or parking spot) available for the whole
// requested date range. Date filtering happens in the caller's query.
type Unit struct {
	ID       uuid.UUID
	Capacity int
}

// Assignment maps occupants onto a selected unit.
type Assignment struct {
	UnitID    uuid.UUID
	Occupants int
}

// Strategy distributes a demand figure across inventory units. Implementations
// must either satisfy the full demand or fail; a short allocation is never
// returned.
type Strategy interface {
	Allocate(demand int, units []Unit) ([]Assignment, error)
}

// BestFit is a greedy heuristic: exact capacity match first, otherwise the
// tightest unit that still covers the remaining demand, otherwise the largest
// remaining unit. Each unit is used at most once. Deterministic for a stable
// input order, but not guaranteed optimal in unit count.
type BestFit struct{}

func NewBestFit() *BestFit {
	return &BestFit{}
}

func (*BestFit) Allocate(demand int, units []Unit) ([]Assignment, error) {
	if demand <= 0 {
		return nil, ErrInvalidDemand
	}

	pool := make([]Unit, len(units))
	copy(pool, units)

	var assignments []Assignment
	remaining := demand

	for remaining > 0 {
		if len(pool) == 0 {
			return nil, ErrCapacityExhausted
		}

		idx := selectUnit(pool, remaining)
		selected := pool[idx]

		occupants := remaining
		if selected.Capacity < occupants {
			occupants = selected.Capacity
		}

		assignments = append(assignments, Assignment{
			UnitID:    selected.ID,
			Occupants: occupants,
		})
		remaining -= occupants
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return assignments, nil
}

// selectUnit picks the index of the next unit. Ties resolve to the earliest
// candidate so a stable input order yields a stable selection.
func selectUnit(pool []Unit, remaining int) int {
	overfit := -1
	largest := 0

	for i, u := range pool {
		if u.Capacity == remaining {
			return i
		}
		if u.Capacity > remaining {
			if overfit == -1 || u.Capacity < pool[overfit].Capacity {
				overfit = i
			}
		}
		if u.Capacity > pool[largest].Capacity {
			largest = i
		}
	}

	if overfit != -1 {
		return overfit
	}
	return largest
}
