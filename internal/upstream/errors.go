package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers network failures and undecodable payloads.
	ErrUnavailable = errors.New("attendance backend unavailable")
	// ErrUnauthorized means the stored credential was rejected.
	ErrUnauthorized = errors.New("attendance backend rejected credentials")
	ErrNotFound     = errors.New("resource not found on attendance backend")
)

// IsNotFound reports whether err maps to a missing backend resource, so
// services can translate it to their own not-found sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// APIError carries a backend error the console relays to the operator.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("attendance backend error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("attendance backend error [%d]: %s", e.StatusCode, e.Message)
}
