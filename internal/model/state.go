package model

import "strings"

// CastlingRights only ever go from true to false within a game.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func allCastlingRights() CastlingRights {
	return CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}
}

func (c CastlingRights) has(color Color, kind MoveKind) bool {
	switch {
	case color == White && kind == CastleKingside:
		return c.WhiteKingside
	case color == White && kind == CastleQueenside:
		return c.WhiteQueenside
	case color == Black && kind == CastleKingside:
		return c.BlackKingside
	case color == Black && kind == CastleQueenside:
		return c.BlackQueenside
	}
	return false
}

// String renders the rights the way the position text does: a KQkq subset or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// rookCorner is the starting square of the rook that castles on the given wing.
func rookCorner(color Color, kind MoveKind) Position {
	if kind == CastleKingside {
		return Position{X: 7, Y: color.backRow()}
	}
	return Position{X: 0, Y: color.backRow()}
}

// touch clears every right whose rook corner is sq. A piece leaving or
// arriving on a corner means that rook has moved or been captured.
func (c *CastlingRights) touch(sq Position) {
	switch sq {
	case rookCorner(White, CastleKingside):
		c.WhiteKingside = false
	case rookCorner(White, CastleQueenside):
		c.WhiteQueenside = false
	case rookCorner(Black, CastleKingside):
		c.BlackKingside = false
	case rookCorner(Black, CastleQueenside):
		c.BlackQueenside = false
	}
}

func (c *CastlingRights) clearColor(color Color) {
	if color == White {
		c.WhiteKingside, c.WhiteQueenside = false, false
	} else {
		c.BlackKingside, c.BlackQueenside = false, false
	}
}

// GameState is a full position: the board plus everything the position text
// records, and the history of plies that led to it.
type GameState struct {
	Board           *BoardState    `json:"boardState"`
	ToMove          Color          `json:"toMove"`
	Castling        CastlingRights `json:"castling"`
	EnPassantTarget *Position      `json:"enPassantTarget"`
	HalfMoveClock   int            `json:"halfMoveClock"`
	FullMoveNumber  int            `json:"fullMoveNumber"`
	MoveHistory     []Ply          `json:"moveHistory"`
}

func newGameState() GameState {
	return GameState{
		Board:           newBoard(),
		ToMove:          White,
		Castling:        allCastlingRights(),
		EnPassantTarget: nil,
		HalfMoveClock:   0,
		FullMoveNumber:  1,
		MoveHistory:     make([]Ply, 0),
	}
}

func (s *GameState) clone() GameState {
	c := *s
	c.Board = s.Board.Clone()
	if s.EnPassantTarget != nil {
		ep := *s.EnPassantTarget
		c.EnPassantTarget = &ep
	}
	c.MoveHistory = make([]Ply, len(s.MoveHistory), len(s.MoveHistory)+1)
	copy(c.MoveHistory, s.MoveHistory)
	return c
}

// signature identifies a position for repetition counting: placement, side to
// move and castling rights.
func (s *GameState) signature() string {
	return s.Board.placement() + " " + s.ToMove.fenLetter() + " " + s.Castling.String()
}
