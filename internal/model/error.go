package model

import "errors"

// Kind classifies a domain error for transport-level mapping.
type Kind string

const (
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindNotFound        Kind = "NOT_FOUND"
	KindInvalidState    Kind = "INVALID_STATE"
	KindConflict        Kind = "CONFLICT"
)

// DomainError is a business rule violation raised by the domain core.
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(kind Kind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

// InvalidArgument reports malformed, missing, or out-of-range input,
// including unknown referenced ids at construction time.
func InvalidArgument(message string) *DomainError {
	return NewDomainError(KindInvalidArgument, message)
}

// NotFound reports a lookup by id that yielded nothing where existence
// was expected.
func NotFound(message string) *DomainError {
	return NewDomainError(KindNotFound, message)
}

// InvalidState reports an operation not permitted in the current
// lifecycle or sellability state.
func InvalidState(message string) *DomainError {
	return NewDomainError(KindInvalidState, message)
}

// Conflict reports a state-based rejection of an explicit request.
func Conflict(message string) *DomainError {
	return NewDomainError(KindConflict, message)
}

// KindOf returns the kind of err if it is a DomainError, or "" otherwise.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
