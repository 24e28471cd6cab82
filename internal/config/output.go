package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// GlyphSet selects how pieces are drawn.
type GlyphSet int

const (
	UnicodeGlyphs GlyphSet = iota // Chess figurines
	ASCIIGlyphs                   // Letters, upper case for White
)

// String returns the flag spelling of the glyph set.
func (g GlyphSet) String() string {
	switch g {
	case UnicodeGlyphs:
		return "unicode"
	case ASCIIGlyphs:
		return "ascii"
	default:
		return fmt.Sprintf("GlyphSet(%d)", int(g))
	}
}

// ParseGlyphSet converts a flag value to a GlyphSet.
func ParseGlyphSet(s string) (GlyphSet, error) {
	switch s {
	case "unicode":
		return UnicodeGlyphs, nil
	case "ascii":
		return ASCIIGlyphs, nil
	default:
		return UnicodeGlyphs, fmt.Errorf("unknown glyph set %q: %w", s, errors.ErrInvalidConfig)
	}
}

// OutputConfig holds settings related to board display.
type OutputConfig struct {
	// Glyphs selects figurines or letters.
	Glyphs GlyphSet

	// Shade marks dark squares so the grid reads as a chessboard.
	Shade bool

	// JSONFormat prints a JSON snapshot instead of the text grid.
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs: UnicodeGlyphs,
		Shade:  true,
	}
}

func (o *OutputConfig) validate() error {
	if o.Glyphs != UnicodeGlyphs && o.Glyphs != ASCIIGlyphs {
		return fmt.Errorf("glyph set %v: %w", o.Glyphs, errors.ErrInvalidConfig)
	}
	return nil
}
