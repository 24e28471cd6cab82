package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"golang.org/x/exp/slices"
)

// KingOf returns the king of the given colour.
// It panics if the board has no such king.
func KingOf(board *chess.Board, colour chess.Colour) *chess.Piece {
	for _, pc := range board.PiecesOf(colour) {
		if pc.Kind == chess.King {
			return pc
		}
	}
	panic(fmt.Sprintf("engine: no %v king on the board", colour))
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := KingOf(board, colour)
	return isSquareAttacked(board, king.Position, colour.Opposite())
}

// isSquareAttacked returns true if any piece of byColour has p among its raw moves.
func isSquareAttacked(board *chess.Board, p chess.Position, byColour chess.Colour) bool {
	for _, pc := range board.PiecesOf(byColour) {
		if slices.Contains(RawMoves(board, pc), p) {
			return true
		}
	}
	return false
}
