package domain

// CenterDraft is the editable form value for an evacuation center. It is
// passed by value through validation and never mutated in place.
type CenterDraft struct {
	Name           string        `json:"name" validate:"required,min=3,max=200"`
	Location       DraftLocation `json:"location"`
	Capacity       int           `json:"capacity" validate:"min=1,max=999999"`
	Occupancy      int           `json:"occupancy" validate:"min=0"`
	HouseholdCount int           `json:"household_count" validate:"min=0"`
	Contact        DraftContact  `json:"contact"`
	Active         *bool         `json:"active,omitempty"`
	BarangayRef    string        `json:"barangay_ref" validate:"required,uuid"`
}

type DraftLocation struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Address   string  `json:"address"`
}

type DraftContact struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone10"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdateCenterRequest struct {
	Draft   CenterDraft `json:"draft"`
	Version int64       `json:"version"`
}

type UpdateOccupancyRequest struct {
	Occupancy      int  `json:"occupancy"`
	HouseholdCount *int `json:"household_count,omitempty"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type ListCentersRequest struct {
	Query      string `json:"query,omitempty"`
	Status     string `json:"status,omitempty"`
	ActiveOnly bool   `json:"active_only,omitempty"`
	BarangayID string `json:"barangay_id,omitempty"`
}

type CreateBarangayRequest struct {
	Name         string       `json:"name" validate:"required"`
	Municipality Municipality `json:"municipality" validate:"required,oneof=Almeria Biliran Cabucgayan Caibiran Culaba Kawayan Maripipi Naval"`
	Latitude     float64      `json:"latitude" validate:"lat"`
	Longitude    float64      `json:"longitude" validate:"lng"`
}

// DraftFromCenter rebuilds the editable form value for a persisted center.
func DraftFromCenter(c EvacuationCenter) CenterDraft {
	active := c.Active
	return CenterDraft{
		Name: c.Name,
		Location: DraftLocation{
			Latitude:  c.Location.Latitude,
			Longitude: c.Location.Longitude,
			Address:   c.Location.Address,
		},
		Capacity:       c.Capacity,
		Occupancy:      c.Occupancy,
		HouseholdCount: c.HouseholdCount,
		Contact: DraftContact{
			Name:  c.Contact.Name,
			Phone: c.Contact.Phone,
			Email: c.Contact.Email,
		},
		Active:      &active,
		BarangayRef: c.BarangayID.String(),
	}
}
