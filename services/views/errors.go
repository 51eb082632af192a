package views

import (
	"errors"
	"fmt"
)

// ViewError is a failure assembling a dashboard view.
type ViewError struct {
	Code    string
	Message string
}

func (e *ViewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError reports missing or malformed request parameters. It is
// raised before any upstream call is attempted and maps to HTTP 400.
func NewValidationError(msg string) error {
	return &ViewError{Code: "validationError", Message: msg}
}

// IsValidation reports whether err is a request-parameter failure.
func IsValidation(err error) bool {
	var ve *ViewError
	return errors.As(err, &ve) && ve.Code == "validationError"
}
