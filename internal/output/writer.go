package output

import (
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// BoardWriter is the interface for writing positions to output.
// Implementations handle the text grid and JSON snapshots.
type BoardWriter interface {
	// WriteBoard writes the position with toMove to play.
	WriteBoard(board *chess.Board, toMove chess.Colour) error
}

// TextWriter draws the board grid.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteBoard renders the grid.
func (tw *TextWriter) WriteBoard(board *chess.Board, _ chess.Colour) error {
	return RenderBoard(tw.w, board, tw.cfg)
}

// JSONWriter writes one JSON snapshot per position.
type JSONWriter struct {
	w       io.Writer
	session string
}

// NewJSONWriter creates a JSON writer that tags snapshots with session.
func NewJSONWriter(w io.Writer, session string) *JSONWriter {
	return &JSONWriter{w: w, session: session}
}

// WriteBoard encodes a snapshot of the position.
func (jw *JSONWriter) WriteBoard(board *chess.Board, toMove chess.Colour) error {
	jb := BoardToJSON(board, toMove)
	jb.Session = jw.session
	return WriteJSON(jw.w, jb)
}

// NewWriter selects a writer for cfg.
func NewWriter(cfg *config.Config, session string) BoardWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile, session)
	}
	return NewTextWriter(cfg.OutputFile, &cfg.Output)
}
