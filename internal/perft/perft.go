// Package perft counts the leaf nodes of the legal move tree.
//
// Node counts are the standard way to compare a move generator against
// known results: any missing or extra legal move changes the total.
package perft

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// Counter counts nodes, optionally reusing subtree counts through a
// cache shared with other counters.
type Counter struct {
	cache *hashing.NodeCache
}

// NewCounter creates a counter. A nil cache disables caching.
func NewCounter(cache *hashing.NodeCache) *Counter {
	return &Counter{cache: cache}
}

// Count returns the number of move sequences of length depth available
// to colour on board. Depth 0 counts the position itself.
func Count(board *chess.Board, colour chess.Colour, depth int) uint64 {
	return NewCounter(nil).Count(board, colour, depth)
}

// Count counts like the package-level Count, consulting the cache for
// subtrees of depth two or more.
func (c *Counter) Count(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(engine.AllLegalMoves(board, colour)))
	}

	var hash uint64
	if c.cache != nil {
		hash = hashing.GenerateZobristHash(board, colour)
		if nodes, ok := c.cache.Get(hash, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range engine.AllLegalMoves(board, colour) {
		next := board.Clone()
		next.ExecuteMove(m.From, m.To)
		nodes += c.Count(next, colour.Opposite(), depth-1)
	}

	if c.cache != nil {
		c.cache.Put(hash, depth, nodes)
	}
	return nodes
}

// Divide returns the node count below each root move, keyed by the move
// in long algebraic form.
func Divide(board *chess.Board, colour chess.Colour, depth int) map[string]uint64 {
	return NewCounter(nil).Divide(board, colour, depth)
}

// Divide splits the count by root move.
func (c *Counter) Divide(board *chess.Board, colour chess.Colour, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth < 1 {
		return out
	}
	for _, m := range engine.AllLegalMoves(board, colour) {
		next := board.Clone()
		next.ExecuteMove(m.From, m.To)
		out[m.String()] = c.Count(next, colour.Opposite(), depth-1)
	}
	return out
}

// CountFEN parses fen and counts from the side to move.
func CountFEN(fen string, depth int) (uint64, error) {
	board, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		return 0, errors.Wrapf(err, "perft %q", fen)
	}
	return Count(board, toMove, depth), nil
}

// Process returns a worker function counting each item's position.
// Workers built with the same cache share subtree counts.
func Process(divide bool, cache *hashing.NodeCache) worker.ProcessFunc {
	counter := NewCounter(cache)
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, FEN: item.FEN}

		board, toMove, err := engine.ParseFEN(item.FEN)
		if err != nil {
			result.Error = errors.Wrapf(err, "position %d", item.Index+1)
			return result
		}

		if divide {
			result.Divide = counter.Divide(board, toMove, item.Depth)
			for _, n := range result.Divide {
				result.Nodes += n
			}
			return result
		}
		result.Nodes = counter.Count(board, toMove, item.Depth)
		return result
	}
}

// RunBatch counts every position in fens to depth using workers
// goroutines. Results are returned in input order. cache may be nil.
func RunBatch(fens []string, depth, workers int, divide bool, cache *hashing.NodeCache) []worker.ProcessResult {
	items := make([]worker.WorkItem, len(fens))
	for i, fen := range fens {
		items[i] = worker.WorkItem{FEN: fen, Depth: depth, Index: i}
	}
	return worker.Run(workers, items, Process(divide, cache))
}
