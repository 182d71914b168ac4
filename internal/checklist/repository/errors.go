package repository

import (
	"errors"
	"fmt"
)

// ErrPartialBatch reports a batch create that returned fewer records than
// requested. The caller must treat the batch as failed and retryable.
var ErrPartialBatch = errors.New("batch create returned fewer records than requested")

// NetworkError wraps a request that never reached the backend (connection
// refused, DNS failure, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("checklist backend unreachable during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response from the backend.
type ServerError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("checklist backend %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

// IsRetryable reports whether the error class is worth a user-initiated
// retry: network failures, 5xx responses and partial batches all are.
func IsRetryable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.StatusCode >= 500
	}
	return errors.Is(err, ErrPartialBatch)
}
