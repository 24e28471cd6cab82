// Package notation converts between square names and board positions.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseSquare converts a square name such as "E2" or "e2" to a position.
// The letter selects the file and the digit selects the rank, with rank 8
// mapped to row 0. Surrounding whitespace is ignored.
func ParseSquare(text string) (chess.Position, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 2 {
		return chess.NoPosition, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return chess.NoPosition, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return chess.Position{
		File: int(file - 'a'),
		Rank: chess.BoardSize - int(rank-'0'),
	}, nil
}

// ParseMove converts a four-character coordinate move such as "e2e4".
func ParseMove(text string) (chess.Move, error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 {
		return chess.Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return chess.Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return chess.Move{}, err
	}
	return chess.Move{From: from, To: to}, nil
}

// SquareName returns the upper-case name of p, e.g. "E2".
func SquareName(p chess.Position) string {
	return strings.ToUpper(p.String())
}
