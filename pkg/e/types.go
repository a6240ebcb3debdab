package e

import (
	"fmt"
	"sort"
	"strings"
)

// Rect is the rectangle an OutOfBoundsError was checked against. It mirrors
// geo.Bounds so this package stays free of internal imports.
type Rect struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// OutOfBoundsError reports a coordinate rejected by the province geofence.
type OutOfBoundsError struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Bounds Rect    `json:"bounds"`
}

func (o *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate (%.6f, %.6f) outside bounds lat[%.4f..%.4f] lng[%.4f..%.4f]",
		o.Lat, o.Lng, o.Bounds.South, o.Bounds.North, o.Bounds.West, o.Bounds.East)
}

func (o *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failed field of a single validation pass.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

func (v *ValidationError) Has(field string) bool {
	for _, f := range v.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// FieldNames returns the distinct failed field names, sorted.
func (v *ValidationError) FieldNames() []string {
	seen := make(map[string]struct{}, len(v.Fields))
	names := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		names = append(names, f.Field)
	}
	sort.Strings(names)
	return names
}

// Err returns nil when nothing was collected.
func (v *ValidationError) Err() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Unwrap() error { return ErrValidation }

// ReferenceError is returned when a write names a barangay that cannot be resolved.
type ReferenceError struct {
	Field string `json:"field"`
	ID    string `json:"id,omitempty"`
}

func (r *ReferenceError) Error() string {
	if r.ID == "" {
		return fmt.Sprintf("unresolved reference %s", r.Field)
	}
	return fmt.Sprintf("unresolved reference %s=%s", r.Field, r.ID)
}

func (r *ReferenceError) Unwrap() error { return ErrReference }
