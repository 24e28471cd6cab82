// chess is a two-player console chess game.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	if err := run(cfg, os.Stdin, scriptedMoves()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays one game. Scripted moves are consumed before in.
func run(cfg *config.Config, in io.Reader, script []string) error {
	if len(script) > 0 {
		opening, err := game.Transcript(script...)
		if err != nil {
			return fmt.Errorf("-moves: %w", err)
		}
		in = io.MultiReader(strings.NewReader(opening), in)
	}

	g, err := game.New(cfg, in)
	if err != nil {
		return err
	}
	_, err = g.Play()
	return err
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}
