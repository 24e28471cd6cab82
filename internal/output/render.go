// Package output renders boards as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

// ANSI background used for shaded cells.
const (
	shadeOn  = "\x1b[101m"
	shadeOff = "\x1b[0m"
)

// FileLabels is the footer printed under the grid.
const FileLabels = "  A B C D E F G H"

var unicodeGlyphs = [2][6]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// Glyph returns the single-cell symbol for pc in the given glyph set.
func Glyph(pc *chess.Piece, glyphs config.GlyphSet) string {
	if glyphs == config.ASCIIGlyphs {
		letter := string(pc.Kind.Letter())
		if pc.Colour == chess.Black {
			return strings.ToLower(letter)
		}
		return letter
	}
	return unicodeGlyphs[pc.Colour][pc.Kind]
}

// RenderBoard writes the board as an 8x8 grid, rank 8 at the top.
// Each row is prefixed with its rank number and the file letters are
// printed underneath. Cells are two columns wide.
func RenderBoard(w io.Writer, board *chess.Board, cfg *config.OutputConfig) error {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(cell(board.At(chess.Position{File: file, Rank: rank}), file, rank, cfg))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(FileLabels)
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// cell renders one square. The top-left square is shaded and shading
// alternates from there.
func cell(pc *chess.Piece, file, rank int, cfg *config.OutputConfig) string {
	text := "  "
	if pc != nil {
		text = Glyph(pc, cfg.Glyphs) + " "
	} else if !cfg.Shade {
		text = ". "
	}
	if cfg.Shade && (file+rank)%2 == 0 {
		return shadeOn + text + shadeOff
	}
	return text
}
