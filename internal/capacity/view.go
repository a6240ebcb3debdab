package capacity

import "github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"

// CenterView is what list cards, map popups and detail screens render.
type CenterView struct {
	domain.EvacuationCenter
	Status        Status  `json:"status"`
	Available     int     `json:"available"`
	Percentage    float64 `json:"percentage"`
	HasPercentage bool    `json:"has_percentage"`
}

func View(c domain.EvacuationCenter) CenterView {
	pct, ok := Percentage(c.Occupancy, c.Capacity)
	return CenterView{
		EvacuationCenter: c,
		Status:           Classify(c.Occupancy, c.Capacity),
		Available:        Available(c.Occupancy, c.Capacity),
		Percentage:       pct,
		HasPercentage:    ok,
	}
}

func Views(centers []domain.EvacuationCenter) []CenterView {
	out := make([]CenterView, 0, len(centers))
	for _, c := range centers {
		out = append(out, View(c))
	}
	return out
}
