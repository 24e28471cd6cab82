package testutil

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Sq converts an algebraic square such as "e2" to a position.
// It panics on malformed input; use it only with literal test squares.
func Sq(name string) chess.Position {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic(fmt.Sprintf("testutil: bad square %q", name))
	}
	return chess.Position{
		File: int(name[0] - 'a'),
		Rank: chess.BoardSize - int(name[1]-'0'),
	}
}

// Squares converts a list of algebraic squares to positions.
func Squares(names ...string) []chess.Position {
	out := make([]chess.Position, len(names))
	for i, name := range names {
		out[i] = Sq(name)
	}
	return out
}

// Setup places pieces on an empty board. Each entry maps a square to a
// FEN-style letter: uppercase for White, lowercase for Black.
func Setup(pieces map[string]byte) *chess.Board {
	kinds := map[byte]chess.Kind{
		'p': chess.Pawn, 'n': chess.Knight, 'b': chess.Bishop,
		'r': chess.Rook, 'q': chess.Queen, 'k': chess.King,
	}
	board := chess.NewBoard()
	for square, letter := range pieces {
		colour := chess.White
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
		} else {
			letter += 'a' - 'A'
		}
		kind, ok := kinds[letter]
		if !ok {
			panic(fmt.Sprintf("testutil: bad piece letter %q", letter))
		}
		board.Place(kind, colour, Sq(square))
	}
	return board
}
