package capacity

import (
	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

type Summary struct {
	CenterCount       int            `json:"center_count"`
	ActiveCount       int            `json:"active_count"`
	FullCount         int            `json:"full_count"`
	TotalCapacity     int            `json:"total_capacity"`
	TotalOccupancy    int            `json:"total_occupancy"`
	TotalAvailable    int            `json:"total_available"`
	OverallPercentage float64        `json:"overall_percentage"`
	NoData            bool           `json:"no_data"`
	StatusCounts      map[Status]int `json:"status_counts"`
}

// Percentage mirrors the package-level Percentage for a rolled-up summary.
func (s Summary) Percentage() (float64, bool) {
	return s.OverallPercentage, !s.NoData
}

// Aggregate folds centers into a Summary. Inactive centers still contribute to
// the totals; only ActiveCount excludes them. Input order never matters.
func Aggregate(centers []domain.EvacuationCenter) Summary {
	s := Summary{StatusCounts: make(map[Status]int, 4)}
	for _, c := range centers {
		s.add(c)
	}
	s.finish()
	return s
}

func (s *Summary) add(c domain.EvacuationCenter) {
	status := Classify(c.Occupancy, c.Capacity)

	s.CenterCount++
	s.TotalCapacity += c.Capacity
	s.TotalOccupancy += c.Occupancy
	// floor per center before summing so one overflowing center cannot hide
	// free spots elsewhere
	s.TotalAvailable += Available(c.Occupancy, c.Capacity)
	if c.Active {
		s.ActiveCount++
	}
	if status == StatusFull {
		s.FullCount++
	}
	s.StatusCounts[status]++
}

func (s *Summary) finish() {
	pct, ok := Percentage(s.TotalOccupancy, s.TotalCapacity)
	s.OverallPercentage = pct
	s.NoData = !ok
}

// ByBarangay groups centers by their barangay reference. Centers without one are skipped.
func ByBarangay(centers []domain.EvacuationCenter) map[uuid.UUID]Summary {
	groups := make(map[uuid.UUID][]domain.EvacuationCenter)
	for _, c := range centers {
		if c.BarangayID == uuid.Nil {
			continue
		}
		groups[c.BarangayID] = append(groups[c.BarangayID], c)
	}

	out := make(map[uuid.UUID]Summary, len(groups))
	for id, group := range groups {
		out[id] = Aggregate(group)
	}
	return out
}

// ByMunicipality rolls centers up through their barangay. Centers whose
// barangay is not in barangays are orphans and are skipped. Every known
// municipality is present in the result, zeroed when it has no centers.
func ByMunicipality(centers []domain.EvacuationCenter, barangays []domain.Barangay) map[domain.Municipality]Summary {
	owner := make(map[uuid.UUID]domain.Municipality, len(barangays))
	for _, b := range barangays {
		owner[b.ID] = b.Municipality
	}

	groups := make(map[domain.Municipality][]domain.EvacuationCenter)
	for _, c := range centers {
		m, ok := owner[c.BarangayID]
		if !ok {
			continue
		}
		groups[m] = append(groups[m], c)
	}

	out := make(map[domain.Municipality]Summary, len(domain.Municipalities()))
	for _, m := range domain.Municipalities() {
		out[m] = Aggregate(groups[m])
	}
	for m, group := range groups {
		if _, ok := out[m]; !ok {
			out[m] = Aggregate(group)
		}
	}
	return out
}
