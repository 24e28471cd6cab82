package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantToMove chess.Colour
		wantCount  int
		checkFn    func(*chess.Board) bool
	}{
		{
			name:       "initial position",
			fen:        InitialFEN,
			wantToMove: chess.White,
			wantCount:  32,
			checkFn: func(b *chess.Board) bool {
				k := b.At(sq("e1"))
				q := b.At(sq("d8"))
				return k != nil && k.Kind == chess.King && k.Colour == chess.White &&
					q != nil && q.Kind == chess.Queen && q.Colour == chess.Black
			},
		},
		{
			name:       "black to move",
			fen:        "4k3/8/8/8/4P3/8/8/4K3 b - - 0 1",
			wantToMove: chess.Black,
			wantCount:  3,
			checkFn: func(b *chess.Board) bool {
				return b.At(sq("e4")).HasMoved()
			},
		},
		{
			name:       "placement only",
			fen:        "4k3/8/8/8/8/8/8/4K3",
			wantToMove: chess.White,
			wantCount:  2,
		},
		{
			name:       "pawns on their own start rank are unmoved",
			fen:        "4k3/3p4/8/8/8/8/4P3/4K3 w - - 0 1",
			wantToMove: chess.White,
			wantCount:  4,
			checkFn: func(b *chess.Board) bool {
				return !b.At(sq("d7")).HasMoved() && !b.At(sq("e2")).HasMoved()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", tt.fen, err)
			}
			if toMove != tt.wantToMove {
				t.Errorf("toMove = %v, want %v", toMove, tt.wantToMove)
			}
			if got := len(board.PiecesOf(chess.White)) + len(board.PiecesOf(chess.Black)); got != tt.wantCount {
				t.Errorf("piece count = %d, want %d", got, tt.wantCount)
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Error("board contents check failed")
			}
		})
	}
}

func TestParseFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"bad piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"missing white king", "4k3/8/8/8/8/8/8/8 w - - 0 1"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"side not to move in check", "4k3/p7/8/8/8/8/8/K3R3 w - - 0 1"},
		{"black to move with white in check", "4k3/8/8/8/8/8/8/r3K3 b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 0 1",
		"k7/8/1Q6/8/8/8/8/2K5 b - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	}
	for _, fen := range fens {
		board, toMove, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) error = %v", fen, err)
		}
		testutil.AssertEqual(t, BoardToFEN(board, toMove), fen)
	}
}

func TestInitialFENMatchesStandardBoard(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(chess.NewStandardBoard(), chess.White), InitialFEN)
}

func TestPieceToFENLetter(t *testing.T) {
	tests := []struct {
		kind   chess.Kind
		colour chess.Colour
		want   byte
	}{
		{chess.King, chess.White, 'K'},
		{chess.Knight, chess.Black, 'n'},
		{chess.Pawn, chess.Black, 'p'},
		{chess.Queen, chess.White, 'Q'},
	}
	for _, tt := range tests {
		pc := chess.NewPiece(tt.kind, tt.colour, chess.Position{})
		if got := PieceToFENLetter(pc); got != tt.want {
			t.Errorf("PieceToFENLetter(%v) = %c, want %c", pc, got, tt.want)
		}
	}
}
