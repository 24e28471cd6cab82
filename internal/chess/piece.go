package chess

// Piece is a piece on a board. It holds no reference to the board; the
// board is passed explicitly to any query that needs it.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Position

	// Start is the position recorded when the piece was created.
	Start Position
}

// NewPiece creates a piece whose starting position is p.
func NewPiece(kind Kind, colour Colour, p Position) *Piece {
	return &Piece{Kind: kind, Colour: colour, Position: p, Start: p}
}

// HasMoved reports whether the piece has left its starting position.
// A piece returned to its exact starting square reads as unmoved.
func (pc *Piece) HasMoved() bool {
	return pc.Position != pc.Start
}

// Copy returns a structurally equal piece that shares nothing with pc.
func (pc *Piece) Copy() *Piece {
	c := *pc
	return &c
}

// String returns the colour and kind, e.g. "White Knight".
func (pc *Piece) String() string {
	return pc.Colour.String() + " " + pc.Kind.String()
}
