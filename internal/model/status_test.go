package model

import (
	"errors"
	"testing"
)

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4")
	if st := g.Status(); st.State != InProgress {
		t.Fatalf("expected in-progress before the mate, got %s", st)
	}
	ply, err := g.MakeMove(sq(t, "d8"), sq(t, "h4"), "")
	if err != nil {
		t.Fatalf("Qh4: %v", err)
	}
	if ply.Notation != "Qh4+" || !ply.Check {
		t.Fatalf("unexpected ply %+v", ply)
	}
	st := g.Status()
	if st.State != Checkmate || st.Winner != Black {
		t.Fatalf("expected checkmate won by black, got %+v", st)
	}
	if moves := g.AllLegalMoves(); len(moves) != 0 {
		t.Fatalf("expected no legal replies, got %v", moves)
	}
	if _, err := g.MakeMove(sq(t, "e1"), sq(t, "f2"), ""); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver after mate, got %v", err)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		state  GameStatus
		reason DrawReason
	}{
		{"start", InitialFEN, InProgress, ""},
		{"king-only stalemate", "8/8/8/8/8/kq6/8/K7 w - - 0 1", Stalemate, ""},
		{"corner stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, ""},
		{"check with escape", "4k3/8/8/8/8/8/8/R3K2r w - - 0 1", Check, ""},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate, ""},
		{"king vs king", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Draw, InsufficientMaterial},
		{"king and knight", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", Draw, InsufficientMaterial},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 b - - 0 1", Draw, InsufficientMaterial},
		{"same colored bishops", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", Draw, InsufficientMaterial},
		{"opposite colored bishops", "4k1b1/8/8/8/8/8/8/2B1K3 w - - 0 1", InProgress, ""},
		{"two knights", "4k3/8/8/8/8/8/8/1NN1K3 w - - 0 1", InProgress, ""},
		{"king and rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", InProgress, ""},
		{"king and pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", InProgress, ""},
		{"fifty-move clock reached", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", Draw, FiftyMove},
		{"fifty-move clock one short", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", InProgress, ""},
		{"mate beats fifty-move", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 120 80", Checkmate, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := mustGame(t, tt.fen).Status()
			if st.State != tt.state || st.Reason != tt.reason {
				t.Fatalf("got %s, want %s(%s)", st, tt.state, tt.reason)
			}
		})
	}
}

func TestStalemateIsNotCheckmate(t *testing.T) {
	g := mustGame(t, "8/8/8/8/8/kq6/8/K7 w - - 0 1")
	st := g.State()
	if st.InCheck(White) {
		t.Fatalf("white king on a1 must not be in check")
	}
	if s := g.Status(); s.State != Stalemate || s.Winner != "" {
		t.Fatalf("expected stalemate without a winner, got %+v", s)
	}
}

func TestFiftyMoveBoundaryThroughPlay(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/8/R3K3 w - - 98 60")
	play(t, g, "a1a2")
	if st := g.Status(); st.State != InProgress {
		t.Fatalf("99 half-moves must still be in progress, got %s", st)
	}
	play(t, g, "e8d8")
	st := g.Status()
	if st.State != Draw || st.Reason != FiftyMove {
		t.Fatalf("100 half-moves must be a fifty-move draw, got %s", st)
	}
	if _, err := g.MakeMove(sq(t, "a2"), sq(t, "a3"), ""); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver after the draw, got %v", err)
	}
}

func TestPawnMoveResetsFiftyMoveClock(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 99 60")
	play(t, g, "e2e3")
	st := g.State()
	if st.HalfMoveClock != 0 {
		t.Fatalf("expected reset clock, got %d", st.HalfMoveClock)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	play(t, g, shuffle...)
	if st := g.Status(); st.State != InProgress {
		t.Fatalf("second occurrence must not draw, got %s", st)
	}
	play(t, g, shuffle[:3]...)
	if st := g.Status(); st.State != InProgress {
		t.Fatalf("expected in-progress, got %s", st)
	}
	play(t, g, shuffle[3])
	st := g.Status()
	if st.State != Draw || st.Reason != ThreefoldRepetition {
		t.Fatalf("third occurrence must draw by repetition, got %s", st)
	}
}

func TestRepetitionRespectsCastlingRights(t *testing.T) {
	// The rook shuffle costs white its kingside right, so the starting
	// placement recurs but never with the same signature.
	g := mustGame(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	moves := []string{"h1h2", "e8d8", "h2h1", "d8e8"}
	play(t, g, moves...)
	play(t, g, moves...)
	if st := g.Status(); st.State != InProgress {
		t.Fatalf("placement seen three times but with different rights; got %s", st)
	}
	play(t, g, "h1h2")
	if st := g.Status(); st.State != Draw || st.Reason != ThreefoldRepetition {
		t.Fatalf("expected repetition after the third h1h2, got %s", st)
	}
}
