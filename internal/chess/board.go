package chess

// Board is an 8x8 grid of cells, each empty or holding exactly one piece.
type Board struct {
	// Squares is indexed [rank][file].
	Squares [BoardSize][BoardSize]*Piece
}

// backRank is the piece order on both back ranks, file A to H.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board with the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]*Piece{}
	for _, colour := range []Colour{Black, White} {
		for file, kind := range backRank {
			b.Place(kind, colour, Position{File: file, Rank: colour.HomeRank()})
			b.Place(Pawn, colour, Position{File: file, Rank: colour.PawnRank()})
		}
	}
}

// Place creates a piece at p, recording p as its starting position.
// Any previous occupant is discarded.
func (b *Board) Place(kind Kind, colour Colour, p Position) *Piece {
	pc := NewPiece(kind, colour, p)
	b.Set(p, pc)
	return pc
}

// At returns the piece at p, or nil if p is empty or off the board.
func (b *Board) At(p Position) *Piece {
	if !InBounds(p) {
		return nil
	}
	return b.Squares[p.Rank][p.File]
}

// Set writes pc into the cell at p. It does not check bounds and does not
// update pc.Position.
func (b *Board) Set(p Position, pc *Piece) {
	b.Squares[p.Rank][p.File] = pc
}

// InBounds returns true iff p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return InBounds(p)
}

// IsMovableTarget reports whether a piece of colour could land on p:
// p is on the board and either empty or held by the opponent.
func (b *Board) IsMovableTarget(colour Colour, p Position) bool {
	if !InBounds(p) {
		return false
	}
	pc := b.At(p)
	return pc == nil || pc.Colour != colour
}

// IsCapturableTarget reports whether p is on the board and held by the
// opponent of colour. Empty cells never qualify.
func (b *Board) IsCapturableTarget(colour Colour, p Position) bool {
	pc := b.At(p)
	return pc != nil && pc.Colour != colour
}

// Clone creates a deep copy of the board. Pieces on the copy are fresh
// values with the same kind, colour, position and starting position.
func (b *Board) Clone() *Board {
	dup := NewBoard()
	for rank := range b.Squares {
		for file, pc := range b.Squares[rank] {
			if pc != nil {
				dup.Squares[rank][file] = pc.Copy()
			}
		}
	}
	return dup
}

// ExecuteMove relocates whatever occupies from to to, overwriting any
// occupant there, and clears from. No legality check is made.
func (b *Board) ExecuteMove(from, to Position) {
	pc := b.At(from)
	b.Set(from, nil)
	b.Set(to, pc)
	if pc != nil {
		pc.Position = to
	}
}

// PiecesOf returns all pieces of colour in rank-major order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for rank := range b.Squares {
		for _, pc := range b.Squares[rank] {
			if pc != nil && pc.Colour == colour {
				pieces = append(pieces, pc)
			}
		}
	}
	return pieces
}
