package model

import "testing"

func sq(t *testing.T, name string) Position {
	t.Helper()
	p, err := ParsePosition(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return p
}

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// play applies moves given in coordinate form ("e2e4", "e7e8q").
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		var promo PieceType
		if len(mv) == 5 {
			p, ok := ParsePieceType(mv[4:])
			if !ok {
				t.Fatalf("bad promotion in %q", mv)
			}
			promo = p
		}
		if _, err := g.MakeMove(sq(t, mv[0:2]), sq(t, mv[2:4]), promo); err != nil {
			t.Fatalf("move %s: %v (fen %s)", mv, err, g.FEN())
		}
	}
}

func hasMoveTo(moves []Move, to Position) (Move, bool) {
	for _, m := range moves {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}
