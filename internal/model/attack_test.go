package model

import "testing"

func TestIsAttacked(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		by     Color
		want   bool
	}{
		{"white pawn attacks diagonally forward", "4k3/8/8/8/8/3P4/8/4K3 w - - 0 1", "e4", White, true},
		{"white pawn does not attack backwards", "4k3/8/8/8/8/3P4/8/K7 w - - 0 1", "e2", White, false},
		{"black pawn attacks downward", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c5", Black, true},
		{"black pawn does not attack forward square", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "d5", Black, false},
		{"knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", "c3", White, true},
		{"rook ray", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a8", White, true},
		{"rook ray blocked", "4k3/8/8/8/P7/8/8/R3K3 w - - 0 1", "a8", White, false},
		{"bishop ray", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "h6", White, true},
		{"queen diagonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "h5", White, true},
		{"queen orthogonal", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d8", White, true},
		{"adjacent king", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", White, true},
		{"king two squares away", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e3", White, false},
		{"own piece does not count", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a8", Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if got := st.Board.IsAttacked(sq(t, tt.square), tt.by); got != tt.want {
				t.Fatalf("IsAttacked(%s, %s) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestInCheckWithoutKing(t *testing.T) {
	b := &BoardState{}
	b.Set(Position{X: 0, Y: 0}, &Piece{Type: Rook, Color: Black})
	st := &GameState{Board: b, ToMove: White}
	if st.InCheck(White) {
		t.Fatalf("expected a board without a white king not to be in check")
	}
}
