// Package lifecycle moves an evacuation center from an editable draft through
// validation to a persisted, activatable record.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/geo"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/validator"
)

type State string

const (
	StateDraft     State = "draft"
	StateValidated State = "validated"
	StatePersisted State = "persisted"
	StateActive    State = "active"
	StateInactive  State = "inactive"
)

// Validated is a draft that passed every check. It can only be built by Validate.
type Validated struct {
	center domain.EvacuationCenter
}

func (v Validated) Center() domain.EvacuationCenter { return v.center }

func (v Validated) State() State { return StateValidated }

// Validate trims the draft, then runs every field, range, geofence and
// reference check on the trimmed copy and reports all failures together.
// On failure the draft stays a draft.
func Validate(d domain.CenterDraft, geofence *geo.Validator) (Validated, error) {
	d = normalize(d)
	verr := &e.ValidationError{}

	if err := validator.ValidateStruct(d); err != nil {
		fields, ok := validator.Fields(err)
		if !ok {
			return Validated{}, fmt.Errorf("lifecycle.Validate: %w", err)
		}
		for _, f := range fields {
			verr.Add(fieldKey(f), validator.Message(f))
		}
	}

	// bounds only make sense once the raw ranges are sane
	if !verr.Has("latitude") && !verr.Has("longitude") {
		if err := geofence.Check(d.Location.Latitude, d.Location.Longitude); err != nil {
			var oob *e.OutOfBoundsError
			if errors.As(err, &oob) {
				verr.Add("location", oob.Error())
			}
		}
	}

	if err := verr.Err(); err != nil {
		return Validated{}, err
	}

	barangayID, _ := uuid.Parse(d.BarangayRef)
	active := true
	if d.Active != nil {
		active = *d.Active
	}

	return Validated{center: domain.EvacuationCenter{
		Name: d.Name,
		Location: domain.Location{
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			Address:   d.Location.Address,
		},
		Capacity:       d.Capacity,
		Occupancy:      d.Occupancy,
		HouseholdCount: d.HouseholdCount,
		Contact: domain.Contact{
			Name:  d.Contact.Name,
			Phone: d.Contact.Phone,
			Email: d.Contact.Email,
		},
		Active:     active,
		BarangayID: barangayID,
	}}, nil
}

// normalize returns the draft with surrounding whitespace removed from every
// text field, so length rules apply to what gets stored.
func normalize(d domain.CenterDraft) domain.CenterDraft {
	d.Name = strings.TrimSpace(d.Name)
	d.Location.Address = strings.TrimSpace(d.Location.Address)
	d.Contact.Name = strings.TrimSpace(d.Contact.Name)
	d.Contact.Phone = strings.TrimSpace(d.Contact.Phone)
	d.Contact.Email = strings.TrimSpace(d.Contact.Email)
	d.BarangayRef = strings.TrimSpace(d.BarangayRef)
	return d
}

// fieldKey keeps contact.name distinct from the center's own name.
func fieldKey(f validator.FieldFailure) string {
	if f.Field == "name" && strings.Contains(f.Namespace, ".contact.") {
		return "contact_name"
	}
	return f.Field
}

// Record is a persisted center. Its ID is fixed at Persist and never changes.
type Record struct {
	center domain.EvacuationCenter
}

func Persist(v Validated, id uuid.UUID) Record {
	c := v.center
	c.ID = id
	return Record{center: c}
}

// FromStorage wraps a center loaded from storage. Stored rows were validated on write.
func FromStorage(c domain.EvacuationCenter) Record {
	return Record{center: c}
}

func (r Record) Center() domain.EvacuationCenter { return r.center }

func (r Record) ID() uuid.UUID { return r.center.ID }

func (r Record) State() State {
	if r.center.Active {
		return StateActive
	}
	return StateInactive
}

// SetActive toggles availability without re-validating the record.
func (r Record) SetActive(active bool) Record {
	r.center.Active = active
	return r
}

// Edit re-validates the draft before producing the updated record. On failure
// the original record is returned unchanged alongside the validation error.
func (r Record) Edit(d domain.CenterDraft, geofence *geo.Validator) (Record, error) {
	v, err := Validate(d, geofence)
	if err != nil {
		return r, err
	}
	next := v.center
	next.ID = r.center.ID
	next.Version = r.center.Version
	next.CreatedAt = r.center.CreatedAt
	if d.Active == nil {
		next.Active = r.center.Active
	}
	return Record{center: next}, nil
}

