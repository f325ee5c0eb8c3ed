// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "keep/internal/domain/errors"
)

// echoValidator wraps a single validator instance; it is safe for concurrent
// use and caches struct metadata internally.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request payload against its validate tags. Tag
// violations surface as the validation error with the offending fields in the
// details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
