// Package errors defines the error kinds raised by the moderation core and
// the anti-crash handler that keeps the process alive through them.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Match with errors.Is; the concrete types below carry the
// user-facing detail.
var (
	ErrInvalidDuration       = errors.New("invalid duration")
	ErrInsufficientClearance = errors.New("insufficient clearance")
	ErrProtectedTarget       = errors.New("protected target")
	ErrCaseNotFound          = errors.New("case not found")
	ErrStoreUnavailable      = errors.New("document store unavailable")
)

// InvalidDurationError rejects a malformed or sub-threshold duration token.
// Always user-correctable, never fatal.
type InvalidDurationError struct {
	Token string
}

func NewInvalidDuration(token string) *InvalidDurationError {
	return &InvalidDurationError{Token: token}
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("`%s` is not a valid duration, please try again.", e.Token)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }

// ClearanceError reports that the invoker's clearance is below the
// command's declared requirement.
type ClearanceError struct {
	Have int
	Need int
}

func NewInsufficientClearance(have, need int) *ClearanceError {
	return &ClearanceError{Have: have, Need: need}
}

func (e *ClearanceError) Error() string {
	return fmt.Sprintf("clearance %d required, you have %d", e.Need, e.Have)
}

func (e *ClearanceError) Unwrap() error { return ErrInsufficientClearance }

// ProtectedTargetError reports an attempted action against a staff member
// or owner. Staff can never be the subject of another's moderation action.
type ProtectedTargetError struct {
	TargetID  string
	Clearance int
}

func NewProtectedTarget(targetID string, clearance int) *ProtectedTargetError {
	return &ProtectedTargetError{TargetID: targetID, Clearance: clearance}
}

func (e *ProtectedTargetError) Error() string {
	return fmt.Sprintf("user %s holds clearance %d and cannot be moderated", e.TargetID, e.Clearance)
}

func (e *ProtectedTargetError) Unwrap() error { return ErrProtectedTarget }

// CaseNotFoundError reports a ledger search or update whose filter matched
// nothing. The filter is echoed back for diagnosis.
type CaseNotFoundError struct {
	Filter map[string]interface{}
}

func NewCaseNotFound(filter map[string]interface{}) *CaseNotFoundError {
	return &CaseNotFoundError{Filter: filter}
}

func (e *CaseNotFoundError) Error() string {
	return fmt.Sprintf("no cases matching %v", e.Filter)
}

func (e *CaseNotFoundError) Unwrap() error { return ErrCaseNotFound }

// UserFacing reports whether an error should be shown to the invoker as a
// rejected-input notice rather than logged as a failure.
func UserFacing(err error) bool {
	return errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInsufficientClearance) ||
		errors.Is(err, ErrProtectedTarget) ||
		errors.Is(err, ErrCaseNotFound)
}

// Truncate caps error detail reported to the invoker at ~2000 characters,
// keeping the tail where the failing frame usually is.
func Truncate(detail string) string {
	const max = 2000
	if len(detail) <= max {
		return detail
	}
	return detail[len(detail)-max:]
}
