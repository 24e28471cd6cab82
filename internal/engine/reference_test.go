package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	notnil "github.com/notnil/chess"
)

// referenceFENs have no castling rights, no en passant square and no pawn
// one step from promotion, so both generators describe the same rules.
var referenceFENs = map[string]string{
	"Initial":      InitialFEN,
	"InitialBlack": "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1",
	"Italian":      "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w - - 4 4",
	"Kiwipete":     "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"KiwipeteB":    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
	"Endgame":      "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"Pinned":       "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	"InCheck":      "4k3/8/8/8/7b/8/8/4K1N1 w - - 0 1",
	"FoolsMate":    "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
}

func TestAllLegalMovesMatchesReference(t *testing.T) {
	for name, fen := range referenceFENs {
		t.Run(name, func(t *testing.T) {
			board, toMove, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", fen, err)
			}
			got := []string{}
			for _, m := range AllLegalMoves(board, toMove) {
				got = append(got, m.String())
			}

			opt, err := notnil.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN(%q) error = %v", fen, err)
			}
			want := []string{}
			for _, m := range notnil.NewGame(opt).ValidMoves() {
				want = append(want, m.S1().String()+m.S2().String())
			}

			if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
				t.Errorf("legal moves mismatch (-reference +engine):\n%s", diff)
			}
		})
	}
}
