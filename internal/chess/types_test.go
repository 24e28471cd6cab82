package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Errorf("White.Opposite() = %v; want Black", White.Opposite())
	}
	if Black.Opposite() != White {
		t.Errorf("Black.Opposite() = %v; want White", Black.Opposite())
	}
}

func TestColourRanks(t *testing.T) {
	tests := []struct {
		colour   Colour
		forward  int
		home     int
		pawnRank int
	}{
		{White, -1, 7, 6},
		{Black, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			if got := tt.colour.Forward(); got != tt.forward {
				t.Errorf("Forward() = %d; want %d", got, tt.forward)
			}
			if got := tt.colour.HomeRank(); got != tt.home {
				t.Errorf("HomeRank() = %d; want %d", got, tt.home)
			}
			if got := tt.colour.PawnRank(); got != tt.pawnRank {
				t.Errorf("PawnRank() = %d; want %d", got, tt.pawnRank)
			}
		})
	}
}

func TestKindDirections(t *testing.T) {
	tests := []struct {
		kind   Kind
		count  int
		slides bool
	}{
		{Pawn, 0, false},
		{Knight, 8, false},
		{Bishop, 4, true},
		{Rook, 4, true},
		{Queen, 8, true},
		{King, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := len(tt.kind.Directions()); got != tt.count {
				t.Errorf("len(Directions()) = %d; want %d", got, tt.count)
			}
			if got := tt.kind.Slides(); got != tt.slides {
				t.Errorf("Slides() = %v; want %v", got, tt.slides)
			}
		})
	}
}

func TestRoyalIsDiagonalPlusOrthogonal(t *testing.T) {
	seen := make(map[Direction]bool)
	for _, d := range Royal {
		if seen[d] {
			t.Errorf("duplicate direction %v", d)
		}
		seen[d] = true
	}
	for _, d := range append(append([]Direction{}, Diagonals...), Orthogonals...) {
		if !seen[d] {
			t.Errorf("Royal missing %v", d)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if got := Knight.String(); got != "Knight" {
		t.Errorf("Knight.String() = %q", got)
	}
	if got := Knight.Letter(); got != 'N' {
		t.Errorf("Knight.Letter() = %c", got)
	}
	if got := Kind(42).Letter(); got != '?' {
		t.Errorf("Kind(42).Letter() = %c; want ?", got)
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{0, 0}, "a8"},
		{Position{4, 6}, "e2"},
		{Position{7, 7}, "h1"},
		{Position{3, 4}, "d4"},
		{Position{8, 0}, "(8,0)"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("%#v.String() = %q; want %q", tt.pos, got, tt.want)
		}
	}
}

func TestPositionOffsets(t *testing.T) {
	p := Position{3, 4}
	if got := p.Add(Direction{1, -1}); got != (Position{4, 3}) {
		t.Errorf("Add = %v; want e5", got)
	}
	if got := p.Step(Direction{0, 1}, 3); got != (Position{3, 7}) {
		t.Errorf("Step = %v; want d1", got)
	}
	if got := (Move{From: Position{4, 6}, To: Position{4, 4}}).String(); got != "e2e4" {
		t.Errorf("Move.String() = %q; want e2e4", got)
	}
}
