// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Display options
	glyphs     = flag.String("glyphs", "unicode", "Piece glyphs: unicode, ascii")
	noShade    = flag.Bool("noshade", false, "Don't shade alternate squares")
	jsonOutput = flag.Bool("J", false, "Print JSON snapshots instead of the board")

	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard setup)")
	moves    = flag.String("moves", "", "Moves played before reading input, separated by spaces or commas (e.g. 'e2e4 e7e5')")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbose = flag.Bool("v", false, "Log every move")
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	g, err := config.ParseGlyphSet(*glyphs)
	if err != nil {
		return err
	}
	cfg.Output.Glyphs = g
	cfg.Output.Shade = !*noShade
	cfg.Output.JSONFormat = *jsonOutput
	cfg.StartFEN = *startFEN

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// scriptedMoves splits the -moves flag value on spaces and commas.
func scriptedMoves() []string {
	fields := strings.FieldsFunc(*moves, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player console chess. Each turn, enter the square of the\n")
	fmt.Fprintf(os.Stderr, "piece to move (e.g. E2), then its destination (e.g. E4).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
