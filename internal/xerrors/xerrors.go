// Package xerrors defines the tracker's application error type: a code, a
// message, and an optional wrapped cause. It mirrors the AppError pattern
// used elsewhere in the stack instead of ad-hoc fmt.Errorf strings, so
// callers can branch on error kind with errors.Is.
package xerrors

import (
	"errors"
	"fmt"
)

// Error codes for the three error kinds the core distinguishes.
const (
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInconsistentTree  = "INCONSISTENT_TREE"
	CodeAssignmentFailure = "ASSIGNMENT_FAILURE"
)

// AppError represents an error with a stable code, a human message, and an
// optional underlying cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError with the same code, so that
// errors.Is(err, ErrInvalidInput) works regardless of the wrapped message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an AppError with no wrapped cause.
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError that wraps an existing error.
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Sentinel errors for the three kinds the core can return. Compare with
// errors.Is, never with ==, since call sites wrap these with context.
var (
	// ErrInvalidInput: aabbs.len()==0 to Build; length mismatch to Update;
	// k==0 to ExtractSubdomains.
	ErrInvalidInput = New(CodeInvalidInput, "invalid input")

	// ErrInconsistentTree: an internal node was found with fewer than two
	// children during refit or extraction. Indicates a logic bug; the core
	// never attempts to recover from it.
	ErrInconsistentTree = New(CodeInconsistentTree, "inconsistent tree: internal node missing a child")

	// ErrAssignmentFailure: the Hungarian routine failed to produce a valid
	// matching. Should be impossible for finite costs.
	ErrAssignmentFailure = New(CodeAssignmentFailure, "assignment failure: hungarian solver produced no valid matching")
)

// IsInvalidInput reports whether err is (or wraps) ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInconsistentTree reports whether err is (or wraps) ErrInconsistentTree.
func IsInconsistentTree(err error) bool {
	return errors.Is(err, ErrInconsistentTree)
}

// IsAssignmentFailure reports whether err is (or wraps) ErrAssignmentFailure.
func IsAssignmentFailure(err error) bool {
	return errors.Is(err, ErrAssignmentFailure)
}
