// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank step of a pawn of this colour.
// Black pawns move toward increasing rank index, White toward decreasing.
func (c Colour) Forward() int {
	if c == Black {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == Black {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index the colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Slides reports whether the kind repeats its directions until blocked.
func (k Kind) Slides() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Directions returns the direction set used by the kind's movement rule.
// Pawns have no fixed set; their moves depend on colour.
func (k Kind) Directions() []Direction {
	switch k {
	case Knight:
		return KnightLeaps
	case Bishop:
		return Diagonals
	case Rook:
		return Orthogonals
	case Queen, King:
		return Royal
	}
	return nil
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Direction is a file/rank offset applied to a Position.
type Direction struct {
	DFile int
	DRank int
}

// Direction sets used by the movement rules.
var (
	Diagonals   = []Direction{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	Orthogonals = []Direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	KnightLeaps = []Direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	Royal       = append(append([]Direction{}, Diagonals...), Orthogonals...)
)

// Position is a board coordinate. File 0-7 maps to columns A-H and rank 0-7
// maps to displayed rows 8-1, so rank 0 is Black's back rank.
type Position struct {
	File int
	Rank int
}

// NoPosition never lies on the board.
var NoPosition = Position{File: -1, Rank: -1}

// Add returns the position offset by d.
func (p Position) Add(d Direction) Position {
	return Position{File: p.File + d.DFile, Rank: p.Rank + d.DRank}
}

// Step returns the position offset by n multiples of d.
func (p Position) Step(d Direction, n int) Position {
	return Position{File: p.File + n*d.DFile, Rank: p.Rank + n*d.DRank}
}

// String returns the algebraic name of the position, e.g. "e2".
func (p Position) String() string {
	if !InBounds(p) {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+p.File, BoardSize-p.Rank)
}

// InBounds returns true iff both coordinates are in [0,7].
func InBounds(p Position) bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Move is a source-destination pair.
type Move struct {
	From Position
	To   Position
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
