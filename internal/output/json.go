package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// JSONBoard is a snapshot of a position.
type JSONBoard struct {
	Session    string      `json:"session,omitempty"`
	FEN        string      `json:"fen"`
	ToMove     string      `json:"toMove"` // "white" or "black"
	Check      bool        `json:"check"`
	Checkmate  bool        `json:"checkmate"`
	Pieces     []JSONPiece `json:"pieces"`
	LegalMoves []string    `json:"legalMoves,omitempty"`
}

// JSONPiece is one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Colour string `json:"colour"`
	Kind   string `json:"kind"`
	Moved  bool   `json:"moved,omitempty"`
}

// BoardToJSON builds a snapshot of board with toMove to play.
// Check and legal move fields require both kings on the board.
func BoardToJSON(board *chess.Board, toMove chess.Colour) *JSONBoard {
	jb := &JSONBoard{
		FEN:       engine.BoardToFEN(board, toMove),
		ToMove:    strings.ToLower(toMove.String()),
		Check:     engine.IsInCheck(board, toMove),
		Checkmate: engine.IsCheckmate(board, toMove),
		Pieces:    make([]JSONPiece, 0, 32),
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, pc := range board.PiecesOf(colour) {
			jb.Pieces = append(jb.Pieces, JSONPiece{
				Square: pc.Position.String(),
				Colour: strings.ToLower(pc.Colour.String()),
				Kind:   strings.ToLower(pc.Kind.String()),
				Moved:  pc.HasMoved(),
			})
		}
	}

	for _, m := range engine.AllLegalMoves(board, toMove) {
		jb.LegalMoves = append(jb.LegalMoves, m.String())
	}
	return jb
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
