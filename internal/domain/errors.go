package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the pdfship domain. Typed errors below match these via
// errors.Is, so callers can branch on the category and use errors.As for the
// payload.
var (
	// ErrMalformedEncoding is returned when text cannot be decoded back to bytes.
	ErrMalformedEncoding = errors.New("pdfship: malformed encoding")

	// ErrUnreadableDocument is returned when input bytes are not a well-formed PDF.
	ErrUnreadableDocument = errors.New("pdfship: unreadable document")

	// ErrNotFound is returned when an item id is not present in the session.
	ErrNotFound = errors.New("pdfship: item not found")

	// ErrInvalidPermutation is returned when a reorder argument is not an
	// exact permutation of the current id set.
	ErrInvalidPermutation = errors.New("pdfship: invalid permutation")

	// ErrMergeInProgress is returned when a merge is committed while another
	// one is still running.
	ErrMergeInProgress = errors.New("pdfship: merge already in progress")

	// ErrAssemblyFailed is returned when page assembly aborts. No partial
	// output exists on this path.
	ErrAssemblyFailed = errors.New("pdfship: assembly failed")
)

// MalformedEncodingError reports text that is not valid encoded byte data.
// It never results from silent truncation or substitution; decoding is strict.
type MalformedEncodingError struct {
	Reason string
	Err    error
}

func (e *MalformedEncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfship: malformed encoding: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("pdfship: malformed encoding: %s", e.Reason)
}

func (e *MalformedEncodingError) Unwrap() error { return e.Err }

func (e *MalformedEncodingError) Is(target error) bool { return target == ErrMalformedEncoding }

// UnreadableDocumentError reports a document that failed to parse.
// The underlying parse failure is carried in Err, never swallowed.
type UnreadableDocumentError struct {
	Name string
	Err  error
}

func (e *UnreadableDocumentError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("pdfship: unreadable document %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("pdfship: unreadable document: %v", e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error { return e.Err }

func (e *UnreadableDocumentError) Is(target error) bool { return target == ErrUnreadableDocument }

// NotFoundError reports an item id absent from the session.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pdfship: item not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidPermutationError reports a reorder argument that is not an exact
// permutation of the current id set. At least one of the slices is non-empty.
type InvalidPermutationError struct {
	// Missing ids are present in the session but absent from the argument.
	Missing []string
	// Duplicate ids appear more than once in the argument.
	Duplicate []string
	// Unknown ids appear in the argument but not in the session.
	Unknown []string
}

func (e *InvalidPermutationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate %v", e.Duplicate))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown %v", e.Unknown))
	}
	return "pdfship: invalid permutation: " + strings.Join(parts, ", ")
}

func (e *InvalidPermutationError) Is(target error) bool { return target == ErrInvalidPermutation }

// AssemblyFailedError reports an aborted assembly. ItemID identifies the
// offending source item; it is empty only when the failure occurred in the
// final serialization pass after every item validated.
type AssemblyFailedError struct {
	ItemID      string
	DisplayName string
	Err         error
}

func (e *AssemblyFailedError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("pdfship: assembly failed at item %s (%s): %v", e.ItemID, e.DisplayName, e.Err)
	}
	return fmt.Sprintf("pdfship: assembly failed: %v", e.Err)
}

func (e *AssemblyFailedError) Unwrap() error { return e.Err }

func (e *AssemblyFailedError) Is(target error) bool { return target == ErrAssemblyFailed }

// Violation is a named constraint-gate rule failure. Implementations carry
// the payload needed for an actionable message.
type Violation interface {
	error
	// Reason names the violated rule, e.g. "TooFewItems".
	Reason() string
}

// TooFewItemsError reports a session with fewer items than a merge requires.
type TooFewItemsError struct {
	Count int
	Min   int
}

func (e *TooFewItemsError) Error() string {
	return fmt.Sprintf("pdfship: too few items: have %d, need at least %d", e.Count, e.Min)
}

// Reason names the violated rule.
func (e *TooFewItemsError) Reason() string { return "TooFewItems" }

// PageLimitExceededError reports an aggregate page count above the ceiling.
// It carries both the actual total and the configured limit for display.
type PageLimitExceededError struct {
	Actual int
	Limit  int
}

func (e *PageLimitExceededError) Error() string {
	return fmt.Sprintf("pdfship: page limit exceeded: %d pages, limit %d", e.Actual, e.Limit)
}

// Reason names the violated rule.
func (e *PageLimitExceededError) Reason() string { return "PageLimitExceeded" }
