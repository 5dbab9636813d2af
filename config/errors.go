package config

import (
	"errors"
	"fmt"
)

// ErrInvalidNetwork is wrapped by every network validation failure
var ErrInvalidNetwork = errors.New("invalid network")

// MissingCredentialError is returned when a required secret is unset, blank or
// cannot be read. Source names where the secret was expected: an environment
// variable or a file path.
type MissingCredentialError struct {
	Source string
	Err    error
}

// NewMissingCredentialError instantiates a new instance of MissingCredentialError
func NewMissingCredentialError(source string, err error) *MissingCredentialError {
	return &MissingCredentialError{
		Source: source,
		Err:    err,
	}
}

// Error implementation required for interface compliance
func (e *MissingCredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s not set: %s", e.Source, e.Err)
	}
	return fmt.Sprintf("%s not set", e.Source)
}

func (e *MissingCredentialError) Unwrap() error {
	return e.Err
}
