// Package hashing provides position hashing and a shared node-count cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed

var (
	pieceKeys       [2][6][numSquares]uint64
	unmovedPawnKeys [2][numSquares]uint64
	blackToMoveKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: keys need not be unpredictable
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	for c := range unmovedPawnKeys {
		for sq := range unmovedPawnKeys[c] {
			unmovedPawnKeys[c][sq] = rng.Uint64()
		}
	}
	blackToMoveKey = rng.Uint64()
}

// GenerateZobristHash hashes the piece placement and side to move.
// Pawns that have not left their starting square hash differently from
// moved pawns on the same square, because only they may step twice.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, pc := range board.PiecesOf(colour) {
			sq := pc.Position.Rank*chess.BoardSize + pc.Position.File
			hash ^= pieceKeys[pc.Colour][pc.Kind][sq]
			if pc.Kind == chess.Pawn && !pc.HasMoved() {
				hash ^= unmovedPawnKeys[pc.Colour][sq]
			}
		}
	}
	if toMove == chess.Black {
		hash ^= blackToMoveKey
	}
	return hash
}
