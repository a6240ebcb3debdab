package domain

import (
	"time"

	"github.com/google/uuid"
)

type Municipality string

const (
	MunicipalityAlmeria    Municipality = "Almeria"
	MunicipalityBiliran    Municipality = "Biliran"
	MunicipalityCabucgayan Municipality = "Cabucgayan"
	MunicipalityCaibiran   Municipality = "Caibiran"
	MunicipalityCulaba     Municipality = "Culaba"
	MunicipalityKawayan    Municipality = "Kawayan"
	MunicipalityMaripipi   Municipality = "Maripipi"
	MunicipalityNaval      Municipality = "Naval"
)

var municipalities = []Municipality{
	MunicipalityAlmeria,
	MunicipalityBiliran,
	MunicipalityCabucgayan,
	MunicipalityCaibiran,
	MunicipalityCulaba,
	MunicipalityKawayan,
	MunicipalityMaripipi,
	MunicipalityNaval,
}

func Municipalities() []Municipality {
	out := make([]Municipality, len(municipalities))
	copy(out, municipalities)
	return out
}

func (m Municipality) Valid() bool {
	for _, v := range municipalities {
		if v == m {
			return true
		}
	}
	return false
}

type Barangay struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Municipality Municipality `json:"municipality"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	CreatedAt    time.Time    `json:"created_at"`
}
