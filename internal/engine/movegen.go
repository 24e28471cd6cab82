package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// RawMoves returns the destinations reachable by pc's movement rule,
// ignoring whether the move would leave its own king in check.
func RawMoves(board *chess.Board, pc *chess.Piece) []chess.Position {
	switch {
	case pc.Kind == chess.Pawn:
		return pawnMoves(board, pc)
	case pc.Kind.Slides():
		return slidingMoves(board, pc)
	default:
		return steppingMoves(board, pc)
	}
}

// slidingMoves walks each direction until the edge or an occupied cell.
// An opposing piece on the stopping cell is included as a capture.
func slidingMoves(board *chess.Board, pc *chess.Piece) []chess.Position {
	var moves []chess.Position
	for _, dir := range pc.Kind.Directions() {
		for n := 1; ; n++ {
			target := pc.Position.Step(dir, n)
			if !chess.InBounds(target) {
				break
			}
			occupant := board.At(target)
			if occupant == nil {
				moves = append(moves, target)
				continue
			}
			if occupant.Colour != pc.Colour {
				moves = append(moves, target)
			}
			break // Blocked
		}
	}
	return moves
}

// steppingMoves tries a single offset per direction.
func steppingMoves(board *chess.Board, pc *chess.Piece) []chess.Position {
	var moves []chess.Position
	for _, dir := range pc.Kind.Directions() {
		target := pc.Position.Add(dir)
		if board.IsMovableTarget(pc.Colour, target) {
			moves = append(moves, target)
		}
	}
	return moves
}

// pawnMoves generates forward pushes and diagonal captures.
func pawnMoves(board *chess.Board, pc *chess.Piece) []chess.Position {
	var moves []chess.Position
	forward := chess.Direction{DFile: 0, DRank: pc.Colour.Forward()}

	one := pc.Position.Add(forward)
	if chess.InBounds(one) && board.At(one) == nil {
		moves = append(moves, one)
		two := pc.Position.Step(forward, 2)
		if !pc.HasMoved() && chess.InBounds(two) && board.At(two) == nil {
			moves = append(moves, two)
		}
	}

	for _, df := range []int{-1, 1} {
		target := pc.Position.Add(chess.Direction{DFile: df, DRank: forward.DRank})
		if board.IsCapturableTarget(pc.Colour, target) {
			moves = append(moves, target)
		}
	}
	return moves
}
