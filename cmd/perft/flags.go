// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	depth      = flag.Int("depth", 3, "Number of plies to count")
	workers    = flag.Int("workers", 0, "Parallel workers (default: number of CPUs)")
	divide     = flag.Bool("divide", false, "Report the node count below each root move")
	useCache   = flag.Bool("hash", false, "Share subtree counts between workers")
	cacheSize  = flag.Int("hashsize", 0, "Maximum cached subtrees (0 = unlimited)")
	fenFile    = flag.String("f", "", "Read FEN positions from this file, one per line")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	quiet      = flag.Bool("s", false, "Silent mode: no timing summary")

	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Perft.Depth = *depth
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.Divide = *divide
	cfg.Perft.UseCache = *useCache
	cfg.Perft.CacheSize = *cacheSize
	cfg.Output.JSONFormat = *jsonOutput
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options] [FEN...]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the legal move tree for each position.\n")
	fmt.Fprintf(os.Stderr, "With no positions, the standard starting position is used.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
