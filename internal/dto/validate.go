package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

var validate = validator.New()

// pqArray converts a JSON string slice into the text[] representation update
// maps carry.
func pqArray(s []string) pq.StringArray {
	return pq.StringArray(s)
}

// ValidationError carries a single human-readable message. Only the first
// failing rule is surfaced; the HTTP layer turns it into a 400 body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// crossFieldValidator lets a payload add checks the tag language can't express.
type crossFieldValidator interface {
	validateCrossFields() error
}

// Validate runs struct-tag validation and any cross-field checks, returning
// the first failure as a *ValidationError.
func Validate(payload any) error {
	if err := validate.Struct(payload); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return &ValidationError{
				Message: fmt.Sprintf("field %q fails validation rule %q", first.Field(), first.Tag()),
			}
		}
		return err
	}

	if cv, ok := payload.(crossFieldValidator); ok {
		return cv.validateCrossFields()
	}
	return nil
}
