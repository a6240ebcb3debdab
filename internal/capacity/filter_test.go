package capacity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

func sampleCenters() []domain.EvacuationCenter {
	b1, b2 := uuid.New(), uuid.New()
	return []domain.EvacuationCenter{
		{
			ID: uuid.New(), Name: "Naval Central School", Capacity: 100, Occupancy: 95, Active: true, BarangayID: b1,
			Location: domain.Location{Address: "P. Inocentes St, Naval"},
			Contact:  domain.Contact{Name: "Maria Santos", Phone: "09171234567"},
		},
		{
			ID: uuid.New(), Name: "Kawayan Gym", Capacity: 200, Occupancy: 10, Active: false, BarangayID: b2,
			Location: domain.Location{Address: "Poblacion, Kawayan"},
			Contact:  domain.Contact{Name: "Jose Cruz", Phone: "09281112222", Email: "jose@kawayan.gov.ph"},
		},
	}
}

func TestFilter_QuerySearchesNameAddressContact(t *testing.T) {
	t.Parallel()

	centers := sampleCenters()

	assert.Len(t, Apply(centers, Filter{Query: "naval"}), 1)
	assert.Len(t, Apply(centers, Filter{Query: "poblacion"}), 1)
	assert.Len(t, Apply(centers, Filter{Query: "maria"}), 1)
	assert.Len(t, Apply(centers, Filter{Query: "0928"}), 1)
	assert.Len(t, Apply(centers, Filter{Query: "KAWAYAN.GOV"}), 1)
	assert.Len(t, Apply(centers, Filter{Query: "   "}), 2)
	assert.Empty(t, Apply(centers, Filter{Query: "tacloban"}))
}

func TestFilter_StatusActiveAndBarangay(t *testing.T) {
	t.Parallel()

	centers := sampleCenters()
	full := StatusFull
	b2 := centers[1].BarangayID

	got := Apply(centers, Filter{Status: &full})
	assert.Len(t, got, 1)
	assert.Equal(t, "Naval Central School", got[0].Name)

	assert.Len(t, Apply(centers, Filter{ActiveOnly: true}), 1)
	assert.Len(t, Apply(centers, Filter{BarangayID: &b2}), 1)
	assert.Empty(t, Apply(centers, Filter{BarangayID: &b2, ActiveOnly: true}))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	centers := sampleCenters()
	snapshot := append([]domain.EvacuationCenter(nil), centers...)

	_ = Apply(centers, Filter{ActiveOnly: true})

	assert.Equal(t, snapshot, centers)
}

func TestView_UsesClassifier(t *testing.T) {
	t.Parallel()

	v := View(domain.EvacuationCenter{Capacity: 10, Occupancy: 12})
	assert.Equal(t, StatusFull, v.Status)
	assert.Equal(t, 0, v.Available)
	assert.True(t, v.HasPercentage)
	assert.InDelta(t, 120.0, v.Percentage, 1e-9)

	v = View(domain.EvacuationCenter{Capacity: 0, Occupancy: 3})
	assert.Equal(t, StatusNoCapacity, v.Status)
	assert.False(t, v.HasPercentage)

	assert.Len(t, Views(sampleCenters()), 2)
}
