// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator.v10 tags and maps failures into the
// field→messages shape JsonValidationError expects.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = []string{err.Error()}
		return fieldErrors
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		msg := "failed on rule: " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[field] = append(fieldErrors[field], msg)
	}
	return fieldErrors
}
