package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// LegalMoves returns the raw moves of pc that do not leave its own king
// in check.
func LegalMoves(board *chess.Board, pc *chess.Piece) []chess.Position {
	var legal []chess.Position
	for _, to := range RawMoves(board, pc) {
		if !movesIntoCheck(board, pc, to) {
			legal = append(legal, to)
		}
	}
	return legal
}

// movesIntoCheck plays the move on a copied board and checks whether the
// mover's king is attacked afterwards.
func movesIntoCheck(board *chess.Board, pc *chess.Piece, to chess.Position) bool {
	testBoard := board.Clone()
	testBoard.ExecuteMove(pc.Position, to)
	return IsInCheck(testBoard, pc.Colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, pc := range board.PiecesOf(colour) {
		for _, to := range RawMoves(board, pc) {
			if !movesIntoCheck(board, pc, to) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move for colour, grouped by piece in
// board order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pc := range board.PiecesOf(colour) {
		for _, to := range LegalMoves(board, pc) {
			moves = append(moves, chess.Move{From: pc.Position, To: to})
		}
	}
	return moves
}
