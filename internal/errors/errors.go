// Package errors provides sentinel errors and error types for the engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that is not in the current legal-move set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrEmptyHistory indicates an undo with nothing to undo.
	ErrEmptyHistory = errors.New("empty move history")

	// ErrInconsistentState indicates a broken internal invariant, such as a
	// missing king. It is used as a panic value and is never recoverable.
	ErrInconsistentState = errors.New("inconsistent engine state")

	// ErrStaleStatus indicates terminal flags were read before a legality
	// pass had run on the current position.
	ErrStaleStatus = errors.New("terminal status not computed for current position")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the context of a move: the ply it was
// attempted at and its text. It supports errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	FEN      string // Position the move was tried in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessage(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return pkgerrors.WithMessagef(err, format, args...)
}

// Invariant panics with ErrInconsistentState and a description of what broke.
func Invariant(format string, args ...interface{}) {
	panic(pkgerrors.WithStack(Wrapf(ErrInconsistentState, format, args...)))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
