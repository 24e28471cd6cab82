package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsCheckmate returns true if colour is in check and no piece of that
// colour has a legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
