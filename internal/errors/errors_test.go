package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Distinct verifies each sentinel only matches itself
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrEmptySource,
		ErrWrongOwner,
		ErrIllegalDestination,
		ErrInvalidSquare,
		ErrInvalidFEN,
		ErrInvalidConfig,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if got := errors.Is(a, b); got != (i == j) {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", a, b, got, i == j)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("turn 3: %w", ErrWrongOwner)

	if !errors.Is(wrapped, ErrWrongOwner) {
		t.Errorf("errors.Is(wrapped, ErrWrongOwner) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalDestination,
				Colour: "White",
				From:   "e2",
				To:     "e5",
			},
			contains: []string{"White", "e2-e5", "illegal destination"},
		},
		{
			name: "no reason",
			err: &MoveError{
				Colour: "Black",
				From:   "a7",
				To:     "a5",
			},
			contains: []string{"Black", "a7-a5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrEmptySource, Colour: "White", From: "e4", To: "e5"}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrEmptySource) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrEmptySource)
	}

	if !errors.Is(moveErr, ErrEmptySource) {
		t.Error("errors.Is(moveErr, ErrEmptySource) = false, want true")
	}
	if errors.Is(moveErr, ErrWrongOwner) {
		t.Error("errors.Is(moveErr, ErrWrongOwner) = true, want false")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrWrongOwner, Colour: "Black", From: "e2", To: "e4"}
	wrapped := fmt.Errorf("game loop: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.From != "e2" || extracted.To != "e4" {
		t.Errorf("extracted move = %s-%s, want e2-e4", extracted.From, extracted.To)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "loading start position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidSquare, "reading %s", "Z9")

	if !errors.Is(wrapped, ErrInvalidSquare) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "reading Z9") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
