package geo

import (
	"fmt"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

// Bounds is an inclusive latitude/longitude rectangle.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Biliran is the province rectangle used by the default deployment.
var Biliran = Bounds{North: 11.85, South: 11.40, East: 124.65, West: 124.30}

func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.South && lat <= b.North && lng >= b.West && lng <= b.East
}

// Check returns *e.OutOfBoundsError for coordinates outside b. It never clamps.
func (b Bounds) Check(lat, lng float64) error {
	if b.Contains(lat, lng) {
		return nil
	}
	return &e.OutOfBoundsError{Lat: lat, Lng: lng, Bounds: b.Rect()}
}

func (b Bounds) Rect() e.Rect {
	return e.Rect{North: b.North, South: b.South, East: b.East, West: b.West}
}

func (b Bounds) Validate() error {
	if b.South > b.North {
		return fmt.Errorf("bounds: south %.4f above north %.4f: %w", b.South, b.North, e.ErrInvalidInput)
	}
	if b.West > b.East {
		return fmt.Errorf("bounds: west %.4f east of east %.4f: %w", b.West, b.East, e.ErrInvalidInput)
	}
	if b.South < -90 || b.North > 90 || b.West < -180 || b.East > 180 {
		return fmt.Errorf("bounds: outside WGS84 range: %w", e.ErrInvalidCoordinates)
	}
	return nil
}
