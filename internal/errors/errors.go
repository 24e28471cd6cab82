// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move rejection reasons and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to check for specific rejection reasons.
var (
	// ErrEmptySource indicates a move from a cell with no piece.
	ErrEmptySource = errors.New("empty source square")

	// ErrWrongOwner indicates a move of a piece not belonging to the mover.
	ErrWrongOwner = errors.New("piece belongs to the opponent")

	// ErrIllegalDestination indicates a destination outside the piece's legal moves.
	ErrIllegalDestination = errors.New("illegal destination")
)

// Sentinel errors for the collaborators around the engine.
var (
	// ErrInvalidSquare indicates square text that does not name a board cell.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection reason with the move that caused it.
type MoveError struct {
	Err    error  // The rejection reason
	Colour string // The side that attempted the move
	From   string // Source square in algebraic form
	To     string // Destination square in algebraic form
}

// Error returns a formatted error message including the attempted move.
func (e *MoveError) Error() string {
	move := fmt.Sprintf("%s %s-%s", e.Colour, e.From, e.To)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", move, e.Err)
	}
	return move
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
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
