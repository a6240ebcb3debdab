package service_test

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func intPtr(v int) *int { return &v }

func validDraft(barangay uuid.UUID) domain.CenterDraft {
	return domain.CenterDraft{
		Name: "Naval Central School",
		Location: domain.DraftLocation{
			Latitude:  11.5630,
			Longitude: 124.3990,
			Address:   "P. Inocentes St., Naval",
		},
		Capacity:       200,
		Occupancy:      20,
		HouseholdCount: 6,
		Contact: domain.DraftContact{
			Name:  "Ana Reyes",
			Phone: "0917 123 4567",
		},
		BarangayRef: barangay.String(),
	}
}

func storedCenter(barangay uuid.UUID, capacity, occupancy int) *domain.EvacuationCenter {
	return &domain.EvacuationCenter{
		ID:         uuid.New(),
		Name:       "Covered Court",
		Location:   domain.Location{Latitude: 11.56, Longitude: 124.40},
		Capacity:   capacity,
		Occupancy:  occupancy,
		Contact:    domain.Contact{Name: "Ana", Phone: "09171234567"},
		Active:     true,
		BarangayID: barangay,
		Version:    3,
	}
}
