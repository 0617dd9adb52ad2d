package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a provider id has no record at the source. The
// scan coordinator resolves it internally by synthesizing a record; it is
// never surfaced to callers of ScanOne.
var ErrNotFound = errors.New("provider record not found")

// InvalidIdentifierError is returned for a provider id that is not exactly
// ten numeric digits. Caller-correctable, never retried.
type InvalidIdentifierError struct {
	ID string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid provider identifier %q: must be exactly 10 digits", e.ID)
}

// UpstreamError wraps a failure to reach the provider record source or the
// benchmark repository.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s unavailable: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// BatchTooLargeError is returned before any work is scheduled when a group
// scan exceeds the caller's tier maximum.
type BatchTooLargeError struct {
	Size int
	Max  int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch of %d providers exceeds maximum of %d", e.Size, e.Max)
}

// RateLimitError is a denied response from the usage gate. Work must not
// start once it is returned.
type RateLimitError struct {
	Reason string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %s", e.Reason)
}
