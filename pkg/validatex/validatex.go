// Package validatex runs go-playground validation on request DTOs at the
// API edge.
package validatex

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct checks the `validate` tags on a request DTO. It returns nil when the
// value passes, otherwise a map of field name to the rule that failed, ready
// to attach to an error as details.
func Struct(s any) map[string]any {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]any{"error": err.Error()}
	}

	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
