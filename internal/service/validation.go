package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps form validation failures
var ErrInvalidInput = errors.New("invalid input")

// fieldLabels maps struct field names to the labels used in notices
var fieldLabels = map[string]string{
	"Name":       "Name",
	"RoomNumber": "Room number",
	"Number":     "Room number",
	"Email":      "Email",
}

// checkInput validates a form struct, recording an error notice if it fails
func (s *OccupancyService) checkInput(form interface{}) (Result, bool) {
	err := s.validate.Struct(form)
	if err == nil {
		return Result{}, true
	}
	return s.reject(inputError(err)), false
}

// inputError turns the first validation failure into a readable error wrapping ErrInvalidInput
func inputError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := validationErrs[0]
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return &inputErr{message: label + " is required"}
	case "email":
		return &inputErr{message: label + " must be a valid email address"}
	default:
		return &inputErr{message: label + " is invalid"}
	}
}

// inputErr carries a user-facing message and matches ErrInvalidInput
type inputErr struct {
	message string
}

func (e *inputErr) Error() string {
	return e.message
}

func (e *inputErr) Is(target error) bool {
	return target == ErrInvalidInput
}
