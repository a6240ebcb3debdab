package geo

import (
	"fmt"
	"math"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

// Source names the input path a coordinate came from.
type Source string

const (
	SourceMapTap     Source = "map_tap"
	SourceMarkerDrag Source = "marker_drag"
	SourceGPS        Source = "gps"
)

func (s Source) Valid() bool {
	switch s {
	case SourceMapTap, SourceMarkerDrag, SourceGPS:
		return true
	}
	return false
}

type Sample struct {
	Source         Source
	Lat            float64
	Lng            float64
	AccuracyMeters float64
}

// Validator is the one geofence check shared by every coordinate-producing path.
type Validator struct {
	bounds Bounds
}

func NewValidator(bounds Bounds) *Validator {
	return &Validator{bounds: bounds}
}

func (v *Validator) Bounds() Bounds { return v.bounds }

// CheckSample applies the same rectangle to map taps, marker drags and GPS fixes.
// Accuracy is sanity-checked but does not widen or shrink the rectangle.
func (v *Validator) CheckSample(s Sample) error {
	if !s.Source.Valid() {
		return fmt.Errorf("geo: unknown source %q: %w", s.Source, e.ErrInvalidInput)
	}
	if math.IsNaN(s.Lat) || math.IsNaN(s.Lng) || math.IsInf(s.Lat, 0) || math.IsInf(s.Lng, 0) {
		return fmt.Errorf("geo: %w", e.ErrInvalidCoordinates)
	}
	if s.AccuracyMeters < 0 || math.IsNaN(s.AccuracyMeters) {
		return fmt.Errorf("geo: negative accuracy: %w", e.ErrInvalidInput)
	}
	return v.bounds.Check(s.Lat, s.Lng)
}

func (v *Validator) Check(lat, lng float64) error {
	return v.bounds.Check(lat, lng)
}
