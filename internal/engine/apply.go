package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"golang.org/x/exp/slices"
)

// Move validates and plays a move for colour from src to dst.
// The returned error wraps one of errors.ErrEmptySource,
// errors.ErrWrongOwner or errors.ErrIllegalDestination; the board is
// unchanged when an error is returned.
func Move(board *chess.Board, colour chess.Colour, src, dst chess.Position) error {
	pc := board.At(src)
	if pc == nil {
		return rejectMove(errors.ErrEmptySource, colour, src, dst)
	}
	if pc.Colour != colour {
		return rejectMove(errors.ErrWrongOwner, colour, src, dst)
	}
	if !slices.Contains(LegalMoves(board, pc), dst) {
		return rejectMove(errors.ErrIllegalDestination, colour, src, dst)
	}

	board.ExecuteMove(src, dst)
	return nil
}

func rejectMove(reason error, colour chess.Colour, src, dst chess.Position) error {
	return &errors.MoveError{
		Err:    reason,
		Colour: colour.String(),
		From:   src.String(),
		To:     dst.String(),
	}
}
