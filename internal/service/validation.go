package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "fleet-parts-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationError translates a validator.Struct failure into the domain
// taxonomy so handlers report the offending field as a bad request instead
// of a generic server error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	return apperrors.NewValidationError(strings.ToLower(fe.Field()), validationMessage(fe))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
