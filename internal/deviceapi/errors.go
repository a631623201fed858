package deviceapi

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout marks a request aborted by deadline or timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrTransport marks any other network-level failure.
	ErrTransport = errors.New("transport error")
)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}
