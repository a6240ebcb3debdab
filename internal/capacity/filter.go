package capacity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

// Filter selects centers for a search view. The zero Filter matches everything.
type Filter struct {
	Query      string
	Status     *Status
	ActiveOnly bool
	BarangayID *uuid.UUID
}

func (f Filter) Match(c domain.EvacuationCenter) bool {
	if f.ActiveOnly && !c.Active {
		return false
	}
	if f.BarangayID != nil && c.BarangayID != *f.BarangayID {
		return false
	}
	if f.Status != nil && Classify(c.Occupancy, c.Capacity) != *f.Status {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{
		c.Name,
		c.Location.Address,
		c.Contact.Name,
		c.Contact.Phone,
		c.Contact.Email,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Apply returns the matching centers in a new slice; the input is left untouched.
func Apply(centers []domain.EvacuationCenter, f Filter) []domain.EvacuationCenter {
	out := make([]domain.EvacuationCenter, 0, len(centers))
	for _, c := range centers {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
