// Package engine provides chess move generation, check detection and move
// validation.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
// Castling rights are omitted because castling is not played.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// fenPieceChars maps kinds to their FEN letters (always English).
var fenPieceChars = map[chess.Kind]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) (chess.Kind, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// PieceToFENLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func PieceToFENLetter(pc *chess.Piece) byte {
	letter, ok := fenPieceChars[pc.Kind]
	if !ok {
		return '?'
	}
	if pc.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// ParseFEN creates a board and the side to move from a FEN string.
// Only the placement and side-to-move fields are read; the remaining
// fields are accepted and ignored.
//
// FEN carries no move history, so a pawn counts as unmoved only when it
// stands on its colour's starting rank.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}
	if err := checkKings(board); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	if IsInCheck(board, toMove.Opposite()) {
		return nil, chess.White, fmt.Errorf("%v is in check with %v to move: %w", toMove.Opposite(), toMove, errors.ErrInvalidFEN)
	}
	return board, toMove, nil
}

// NewBoardFromFEN creates a board from a FEN string, discarding the side to move.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board, _, err := ParseFEN(fen)
	return board, err
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is rank index 0 on the board.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for rank, row := range ranks {
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, ok := ConvertFENCharToKind(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			p := chess.Position{File: file, Rank: rank}
			pc := board.Place(kind, colour, p)
			if kind == chess.Pawn && rank != colour.PawnRank() {
				pc.Start = chess.NoPosition
			}
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// checkKings rejects placements without exactly one king per colour.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, pc := range board.PiecesOf(colour) {
			if pc.Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, kings, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves when it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			pc := board.At(chess.Position{File: file, Rank: rank})
			if pc == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENLetter(pc))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
