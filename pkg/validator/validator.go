package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	RegisterCustomValidations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Fields flattens a validation failure into (json field name, tag) pairs.
// Errors that are not validator.ValidationErrors yield ok=false.
func Fields(err error) (fields []FieldFailure, ok bool) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}
	fields = make([]FieldFailure, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldFailure{
			Field:     fe.Field(),
			Namespace: fe.Namespace(),
			Tag:       fe.Tag(),
			Param:     fe.Param(),
		})
	}
	return fields, true
}

type FieldFailure struct {
	Field     string
	Namespace string
	Tag       string
	Param     string
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
