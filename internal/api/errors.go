package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)

// defaultErrorMessage is shown when the server returns a failure without a
// usable message body.
const defaultErrorMessage = "request failed"

// APIError describes a failed API call: a non-2xx response or a transport
// failure (Status 0). Message is always human-readable, falling back to a
// generic string when the server provides none.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s", e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
