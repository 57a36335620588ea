package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the normalization core.
var (
	// ErrUnparseablePrice indicates a price string that does not match the
	// expected numeric+currency pattern. Recovered locally; callers render
	// a display sentinel ("Price TBD") instead of failing.
	ErrUnparseablePrice = errors.New("unparseable price string")

	// ErrAllSourcesFailed indicates that every collaborator source failed
	// during checkout assembly.
	ErrAllSourcesFailed = errors.New("all sources failed")

	// ErrSourceTimeout indicates a collaborator source did not respond in time.
	ErrSourceTimeout = errors.New("source timeout")

	// ErrInvalidSelection indicates a checkout selection referencing nothing.
	ErrInvalidSelection = errors.New("selection contains no offers")
)

// MalformedOfferError indicates a top-level offer container that is not
// structurally usable. A shape problem inside a field degrades to a display
// sentinel instead; this is the one hard failure the transformer surfaces.
type MalformedOfferError struct {
	// Kind identifies the offer type ("flight" or "hotel")
	Kind string

	// Index is the position of the offending offer in the input
	Index int

	// Reason describes what was missing or wrong
	Reason string
}

// Error implements the error interface.
func (e *MalformedOfferError) Error() string {
	return fmt.Sprintf("malformed %s offer at index %d: %s", e.Kind, e.Index, e.Reason)
}

// NewMalformedOfferError creates a MalformedOfferError for the given offer.
func NewMalformedOfferError(kind string, index int, reason string) *MalformedOfferError {
	return &MalformedOfferError{Kind: kind, Index: index, Reason: reason}
}

// SourceError wraps an error from a collaborator source (pricing, ratings)
// with the source name and whether the failure is worth retrying.
type SourceError struct {
	// Source is the name of the collaborator that failed
	Source string

	// Err is the underlying error
	Err error

	// Retryable indicates whether retrying might succeed
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As matching.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: false}
}

// NewRetryableSourceError creates a retryable SourceError.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}
