package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule failure so the HTTP layer can map it
// to a status code without inspecting message strings.
type Kind int

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = iota
	// KindConflict means the entities exist but a business rule was violated
	// (inactive broker/currency, ownership mismatch, illegal state transition).
	KindConflict
	// KindInvalidArgument means the input itself is malformed
	// (blank cancellation reason, non-positive premium).
	KindInvalidArgument
)

// Error is a domain error carrying its classification.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound creates a not-found error.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a business-conflict error.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument creates an invalid-input error.
func InvalidArgument(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err and true when err is a domain error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

// IsConflict reports whether err is a conflict domain error.
func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConflict
}

// IsInvalidArgument reports whether err is an invalid-argument domain error.
func IsInvalidArgument(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidArgument
}
