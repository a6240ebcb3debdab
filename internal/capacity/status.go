package capacity

import (
	"fmt"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

type Status string

const (
	StatusNoCapacity Status = "no_capacity"
	StatusFull       Status = "full"
	StatusHigh       Status = "high"
	StatusAvailable  Status = "available"
)

const (
	fullThreshold = 90.0
	highThreshold = 70.0
)

// Classify maps occupancy and capacity onto a load status. Over-capacity is Full.
func Classify(occupancy, capacity int) Status {
	if capacity <= 0 {
		return StatusNoCapacity
	}
	pct := float64(occupancy) / float64(capacity) * 100
	switch {
	case pct >= fullThreshold:
		return StatusFull
	case pct >= highThreshold:
		return StatusHigh
	default:
		return StatusAvailable
	}
}

// Available is the remaining room at one center, floored at zero.
func Available(occupancy, capacity int) int {
	if capacity-occupancy < 0 {
		return 0
	}
	return capacity - occupancy
}

// Percentage reports occupancy as a percentage of capacity; ok is false when
// capacity is zero and no percentage exists.
func Percentage(occupancy, capacity int) (pct float64, ok bool) {
	if capacity <= 0 {
		return 0, false
	}
	return float64(occupancy) / float64(capacity) * 100, true
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusNoCapacity, StatusFull, StatusHigh, StatusAvailable:
		return st, nil
	}
	return "", fmt.Errorf("capacity: unknown status %q: %w", s, e.ErrInvalidInput)
}
