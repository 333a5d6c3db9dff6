package model

type GameStatus string

const (
	InProgress GameStatus = "in-progress"
	Check      GameStatus = "check"
	Checkmate  GameStatus = "checkmate"
	Stalemate  GameStatus = "stalemate"
	Draw       GameStatus = "draw"
)

type DrawReason string

const (
	InsufficientMaterial DrawReason = "insufficient-material"
	FiftyMove            DrawReason = "fifty-move"
	ThreefoldRepetition  DrawReason = "threefold-repetition"
)

// Status classifies a position for the side to move. Winner is only set on
// checkmate; Reason only on a draw.
type Status struct {
	State  GameStatus `json:"state"`
	Reason DrawReason `json:"reason,omitempty"`
	Winner Color      `json:"winner,omitempty"`
}

func (s Status) IsTerminal() bool {
	return s.State == Checkmate || s.State == Stalemate || s.State == Draw
}

func (s Status) String() string {
	if s.Reason != "" {
		return string(s.State) + "(" + string(s.Reason) + ")"
	}
	return string(s.State)
}

const fiftyMoveHalfMoves = 100

// Status evaluates the current position for the side to move.
func (g *Game) Status() Status {
	return g.state.classify(g.positions[g.state.signature()])
}

// classify applies the terminal-state rules in order: check and mate, then
// stalemate, then draws by material, by the fifty-move rule and by repetition.
func (s *GameState) classify(repetitions int) Status {
	inCheck := s.InCheck(s.ToMove)
	hasMove := s.hasLegalMove()
	switch {
	case inCheck && hasMove:
		return Status{State: Check}
	case inCheck:
		return Status{State: Checkmate, Winner: s.ToMove.Opposite()}
	case !hasMove:
		return Status{State: Stalemate}
	case s.Board.insufficientMaterial():
		return Status{State: Draw, Reason: InsufficientMaterial}
	case s.HalfMoveClock >= fiftyMoveHalfMoves:
		return Status{State: Draw, Reason: FiftyMove}
	case repetitions >= 3:
		return Status{State: Draw, Reason: ThreefoldRepetition}
	}
	return Status{State: InProgress}
}

// insufficientMaterial covers king vs king, king and one minor piece vs king,
// and king and bishop vs king and bishop with both bishops on the same color.
func (b *BoardState) insufficientMaterial() bool {
	type located struct {
		piece Piece
		pos   Position
	}
	others := []located{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pc := b.Board[y][x]
			if pc == nil || pc.Type == King {
				continue
			}
			if len(others) == 2 {
				return false
			}
			others = append(others, located{piece: *pc, pos: Position{X: x, Y: y}})
		}
	}
	switch len(others) {
	case 0:
		return true
	case 1:
		t := others[0].piece.Type
		return t == Knight || t == Bishop
	default:
		a, c := others[0], others[1]
		return a.piece.Type == Bishop && c.piece.Type == Bishop &&
			a.piece.Color != c.piece.Color &&
			a.pos.isLightSquare() == c.pos.isLightSquare()
	}
}
