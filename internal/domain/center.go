package domain

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// EvacuationCenter is the persisted shelter record. Its load status is never
// stored; see capacity.Classify.
type EvacuationCenter struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       Location  `json:"location"`
	Capacity       int       `json:"capacity"`
	Occupancy      int       `json:"occupancy"`
	HouseholdCount int       `json:"household_count"`
	Contact        Contact   `json:"contact"`
	Active         bool      `json:"active"`
	BarangayID     uuid.UUID `json:"barangay_ref"`
	Version        int64     `json:"version"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
