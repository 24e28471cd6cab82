// perft counts move-tree leaf nodes for a batch of positions in parallel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/perft"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// jsonResult is one position in JSON output.
type jsonResult struct {
	FEN    string            `json:"fen"`
	Depth  int               `json:"depth"`
	Nodes  uint64            `json:"nodes"`
	Divide map[string]uint64 `json:"divide,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fens := flag.Args()
	if *fenFile != "" {
		file, err := os.Open(*fenFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", *fenFile, err)
			os.Exit(1)
		}
		fromFile, err := readFENs(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *fenFile, err)
			os.Exit(1)
		}
		fens = append(fens, fromFile...)
	}

	if failed := run(cfg, fens); failed > 0 {
		os.Exit(1)
	}
}

// readFENs reads one position per line, skipping blank lines and # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// run counts every position and writes the results. It returns the
// number of positions that could not be counted.
func run(cfg *config.Config, fens []string) int {
	if len(fens) == 0 {
		fens = []string{engine.InitialFEN}
	}

	var cache *hashing.NodeCache
	if cfg.Perft.UseCache {
		cache = hashing.NewNodeCache(cfg.Perft.CacheSize)
	}

	start := time.Now()
	results := perft.RunBatch(fens, cfg.Perft.Depth, cfg.Perft.Workers, cfg.Perft.Divide, cache)
	elapsed := time.Since(start)

	failed := 0
	var total uint64
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
		total += r.Nodes
	}

	if cfg.Output.JSONFormat {
		writeJSON(cfg, results)
	} else {
		writeText(cfg, results)
	}

	cfg.Logf(1, "%d positions, %d nodes, depth %d, %d workers, %v",
		len(results), total, cfg.Perft.Depth, cfg.Perft.Workers, elapsed.Round(time.Millisecond))
	if cache != nil {
		hits, misses := cache.Stats()
		cfg.Logf(2, "cache: %d entries, %d hits, %d misses", cache.Len(), hits, misses)
		if cache.IsFull() {
			cfg.Logf(1, "cache reached its limit of %d entries; raise -hashsize", cfg.Perft.CacheSize)
		}
	}
	return failed
}

func writeText(cfg *config.Config, results []worker.ProcessResult) {
	w := cfg.OutputFile
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(w, "%d\terror\t%v\n", r.Index+1, r.Error)
			continue
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", r.Index+1, r.Nodes, r.FEN)
		for _, move := range sortedMoves(r.Divide) {
			fmt.Fprintf(w, "\t%s: %d\n", move, r.Divide[move])
		}
	}
}

func writeJSON(cfg *config.Config, results []worker.ProcessResult) {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{FEN: r.FEN, Depth: cfg.Perft.Depth, Nodes: r.Nodes, Divide: r.Divide}
		if r.Error != nil {
			jr.Error = r.Error.Error()
		}
		out = append(out, jr)
	}
	if err := output.WriteJSON(cfg.OutputFile, out); err != nil {
		cfg.Logf(0, "Error writing JSON: %v", err)
	}
}

func sortedMoves(divide map[string]uint64) []string {
	moves := make([]string, 0, len(divide))
	for m := range divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	return moves
}
