package domain

import (
	"time"

	"github.com/google/uuid"
)

// CapacityAlert is queued when a center's derived status crosses into or out of full.
type CapacityAlert struct {
	CenterID   uuid.UUID `json:"center_id"`
	CenterName string    `json:"center_name"`
	BarangayID uuid.UUID `json:"barangay_id"`
	Previous   string    `json:"previous"`
	Current    string    `json:"current"`
	Occupancy  int       `json:"occupancy"`
	Capacity   int       `json:"capacity"`
	RaisedAt   time.Time `json:"raised_at"`
}
