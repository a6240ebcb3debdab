package domain

import (
	"time"

	"github.com/google/uuid"
)

type LocationCheckRequest struct {
	Source         string  `json:"source"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	AccuracyMeters float64 `json:"accuracy_meters,omitempty"`
	Limit          int     `json:"limit,omitempty"`
}

type NearbyCenter struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	DistanceKM float64   `json:"distance_km"`
	Status     string    `json:"status"`
	Available  int       `json:"available"`
}

type LocationCheckResponse struct {
	InBounds bool           `json:"in_bounds"`
	Nearby   []NearbyCenter `json:"nearby"`
}

// LocationCheck is one recorded geofence check, kept for usage stats.
type LocationCheck struct {
	ID              uuid.UUID  `json:"id"`
	Source          string     `json:"source"`
	Lat             float64    `json:"lat"`
	Lng             float64    `json:"lng"`
	InBounds        bool       `json:"in_bounds"`
	NearestCenterID *uuid.UUID `json:"nearest_center_id,omitempty"`
	CheckedAt       time.Time  `json:"checked_at"`
}

type StatsRequest struct {
	Minutes int `json:"minutes"`
}

type LocationStats struct {
	Minutes     int              `json:"minutes"`
	TotalChecks int64            `json:"total_checks"`
	OutOfBounds int64            `json:"out_of_bounds"`
	BySource    map[string]int64 `json:"by_source"`
}
