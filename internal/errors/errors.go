// Package errors provides sentinel errors and error types for the chess
// engine and game session. It defines common error conditions and a
// structured error type that preserves context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed algebraic square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates malformed move text or a move that cannot
	// be applied to the position, such as moving from an empty square.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptyHistory indicates an undo with no prior snapshot.
	ErrEmptyHistory = errors.New("no move to undo")
)

// MoveError wraps errors with move context: the move text and the ply at
// which it was attempted. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that caused the error
	Ply      int    // 1-based ply at which the move was attempted
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	context := fmt.Sprintf("move %q", e.MoveText)
	if e.Ply > 0 {
		context = fmt.Sprintf("ply %d, %s", e.Ply, context)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
