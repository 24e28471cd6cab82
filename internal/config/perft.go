package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxPerftDepth bounds the search depth accepted from the command line.
const MaxPerftDepth = 6

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the number of plies counted from each position.
	Depth int

	// Workers is the number of goroutines counting positions in parallel.
	Workers int

	// Divide reports the node count below each root move.
	Divide bool

	// UseCache shares subtree counts between workers.
	UseCache bool

	// CacheSize caps the number of cached entries (0 = unlimited).
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

func (p *PerftConfig) validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 1-%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
