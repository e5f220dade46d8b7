package usecase

import (
	"net/mail"
	"strings"
)

// ValidationError carries per-field messages for malformed input. It is
// checked first and short-circuits all other logic.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Add records a message for a field
func (x *ValidationError) Add(field, msg string) {
	x.Fields[field] = append(x.Fields[field], msg)
}

// OrNil returns the error if any field failed, nil otherwise. The typed nil
// must not escape as a non-nil error value.
func (x *ValidationError) OrNil() error {
	if len(x.Fields) == 0 {
		return nil
	}
	return x
}

func (x *ValidationError) Error() string {
	fields := make([]string, 0, len(x.Fields))
	for field := range x.Fields {
		fields = append(fields, field)
	}
	return "invalid input: " + strings.Join(fields, ", ")
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
