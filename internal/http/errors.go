package http

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimeout can be matched with errors.Is to detect timeout outcomes
// without unwrapping to the concrete type.
var ErrTimeout = errors.New("request timed out")

// BuildError reports a request that could not be constructed. It is always
// surfaced before any network activity.
type BuildError struct {
	Reason string
	Err    error
}

// Error returns the error message
func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("building request: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("building request: %s", e.Reason)
}

// Unwrap returns the underlying cause, if any
func (e *BuildError) Unwrap() error { return e.Err }

// TransportError reports a failed round trip (connection refused, protocol
// error, caller cancellation). The underlying error is surfaced as-is and
// never retried.
type TransportError struct {
	Err error
}

// Error returns the error message
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

// Unwrap returns the transport's error
func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports that the timeout timer fired before the round trip
// resolved. It is distinct from TransportError so callers can apply a
// different retry policy to timeouts.
type TimeoutError struct {
	After time.Duration
}

// Error returns the error message
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.After)
}

// Is reports whether target is ErrTimeout
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// DecodeError reports a response that arrived but could not be converted to
// the requested type. The observed status and content type are retained for
// diagnosis.
type DecodeError struct {
	StatusCode  int
	ContentType string
	Err         error
}

// Error returns the error message
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response (status %d, content type %q): %v",
		e.StatusCode, e.ContentType, e.Err)
}

// Unwrap returns the decoder's error
func (e *DecodeError) Unwrap() error { return e.Err }
