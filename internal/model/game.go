package model

import "fmt"

// Game owns one Board/GameState pair and the repetition counter built from its
// history. It is not safe for concurrent use; every game gets its own instance.
type Game struct {
	state     GameState
	positions map[string]int
}

func NewGame() *Game {
	st := newGameState()
	return newGameFromState(&st)
}

// NewGameFromFEN starts a game from a position text.
func NewGameFromFEN(fen string) (*Game, error) {
	st, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGameFromState(st), nil
}

func newGameFromState(st *GameState) *Game {
	g := &Game{
		state:     *st,
		positions: make(map[string]int),
	}
	g.positions[g.state.signature()]++
	return g
}

// Reset puts the board and state back to the standard initial position together.
func (g *Game) Reset() {
	*g = *NewGame()
}

// State returns a deep copy of the current position and history.
func (g *Game) State() GameState {
	return g.state.clone()
}

func (g *Game) ToMove() Color {
	return g.state.ToMove
}

func (g *Game) FEN() string {
	return g.state.FEN()
}

func (g *Game) LegalMoves(from Position) ([]Move, error) {
	return g.state.LegalMoves(from)
}

func (g *Game) AllLegalMoves() []Move {
	return g.state.AllLegalMoves()
}

// Clone returns an independent game with the same position, history and
// repetition counts.
func (g *Game) Clone() *Game {
	c := &Game{
		state:     g.state.clone(),
		positions: make(map[string]int, len(g.positions)),
	}
	for k, v := range g.positions {
		c.positions[k] = v
	}
	return c
}

// MakeMove applies the legal move from -> to. promotion is only read for
// promotion-flagged moves.
func (g *Game) MakeMove(from, to Position, promotion PieceType) (Ply, error) {
	return g.ApplyMove(Move{From: from, To: to, PromotesTo: promotion})
}

// ApplyMove commits move. It is rejected, leaving the game untouched, unless
// it matches a move the legality filter currently produces for move.From.
func (g *Game) ApplyMove(move Move) (Ply, error) {
	if st := g.Status(); st.IsTerminal() {
		return Ply{}, fmt.Errorf("%w: %s", ErrGameOver, st)
	}
	if !boundaryCheck(move.From) || !boundaryCheck(move.To) {
		return Ply{}, fmt.Errorf("%w: out of bounds", ErrInvalidMove)
	}
	piece := g.state.Board.At(move.From)
	if piece == nil {
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, move.From)
	}
	if piece.Color != g.state.ToMove {
		return Ply{}, fmt.Errorf("%w: %s to move", ErrWrongTurn, g.state.ToMove)
	}
	legal, ok := g.state.findLegal(move)
	if !ok {
		return Ply{}, fmt.Errorf("%w: %s%s", ErrInvalidMove, move.From, move.To)
	}
	if legal.Kind == Promotion {
		if move.PromotesTo == "" {
			return Ply{}, fmt.Errorf("%w: %s%s", ErrPromotionRequired, move.From, move.To)
		}
		if !validPromotion(move.PromotesTo) {
			return Ply{}, fmt.Errorf("%w: %q", ErrInvalidPromotion, move.PromotesTo)
		}
		legal.PromotesTo = move.PromotesTo
	}

	next, ply := g.state.apply(legal, *piece)
	g.state = next
	g.positions[ply.Signature]++
	return ply, nil
}

// apply plays a legal move on a copy of the state and returns the copy with
// the committed record. The receiver is never modified.
func (s *GameState) apply(move Move, piece Piece) (GameState, Ply) {
	ply := Ply{
		Piece:     piece,
		From:      move.From,
		To:        move.To,
		Kind:      move.Kind,
		Promotion: move.PromotesTo,
		Notation:  s.getNotation(move, piece),
	}

	next := s.clone()
	if move.CapturedSquare != nil {
		ply.CapturedPiece = next.Board.At(*move.CapturedSquare)
		next.Board.Set(*move.CapturedSquare, nil)
	}
	placed := piece
	if move.PromotesTo != "" {
		placed.Type = move.PromotesTo
	}
	next.Board.Set(move.From, nil)
	next.Board.Set(move.To, &placed)
	if move.isCastle() {
		rm := castleRookMove(move)
		next.Board.Set(rm.To, next.Board.At(rm.From))
		next.Board.Set(rm.From, nil)
		ply.CastleRookMove = &rm
	}

	if piece.Type == King {
		next.Castling.clearColor(piece.Color)
	}
	next.Castling.touch(move.From)
	next.Castling.touch(move.To)

	if move.Kind == DoublePush {
		next.EnPassantTarget = &Position{X: move.From.X, Y: (move.From.Y + move.To.Y) / 2}
	} else {
		next.EnPassantTarget = nil
	}

	if piece.Type == Pawn || move.IsCapture() {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if piece.Color == Black {
		next.FullMoveNumber++
	}

	next.switchTurn()
	ply.Check = next.InCheck(next.ToMove)
	if ply.Check {
		ply.Notation += "+"
	}
	ply.Signature = next.signature()
	next.MoveHistory = append(next.MoveHistory, ply)
	return next, ply
}

func (s *GameState) switchTurn() {
	s.ToMove = s.ToMove.Opposite()
}

func castleRookMove(move Move) CastleRookMove {
	if move.Kind == CastleKingside {
		return CastleRookMove{From: Position{X: 7, Y: move.From.Y}, To: Position{X: 5, Y: move.From.Y}}
	}
	return CastleRookMove{From: Position{X: 0, Y: move.From.Y}, To: Position{X: 3, Y: move.From.Y}}
}

// Snapshot is the read-only view handed to presentation layers and bots.
type Snapshot struct {
	GameState
	FEN      string      `json:"fen"`
	Moves    []MovePair  `json:"moves"`
	MoveText string      `json:"moveText"`
	Status   Status      `json:"status"`
	IsCheck  bool        `json:"isCheck"`
	LastMove *SimpleMove `json:"lastMove"`
}

func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		GameState: st,
		FEN:       st.FEN(),
		Moves:     st.MovePairs(),
		MoveText:  st.MoveText(),
		Status:    g.Status(),
		IsCheck:   st.InCheck(st.ToMove),
	}
	if n := len(st.MoveHistory); n > 0 {
		last := st.MoveHistory[n-1]
		snap.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	return snap
}
