package validator

import "fmt"

// Message renders a field failure as the sentence shown next to the form field.
func Message(f FieldFailure) string {
	switch f.Tag {
	case "required":
		return "is required"
	case "min":
		if f.Field == "name" {
			return fmt.Sprintf("must be at least %s characters", f.Param)
		}
		if f.Field == "capacity" {
			return "must be between 1 and 999999"
		}
		return fmt.Sprintf("must be at least %s", f.Param)
	case "max":
		if f.Field == "name" {
			return fmt.Sprintf("must be at most %s characters", f.Param)
		}
		if f.Field == "capacity" {
			return "must be between 1 and 999999"
		}
		return fmt.Sprintf("must be at most %s", f.Param)
	case "oneof":
		return "must be one of: " + f.Param
	case "phone10":
		return "must contain at least 10 digits"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must reference a barangay"
	case "lat":
		return "must be between -90 and 90"
	case "lng":
		return "must be between -180 and 180"
	}
	return "is invalid (" + f.Tag + ")"
}
