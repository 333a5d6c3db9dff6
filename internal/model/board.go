package model

import (
	"fmt"
	"strings"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// ParsePieceType accepts the long names ("queen") and the SAN letters ("Q", "q").
func ParsePieceType(s string) (PieceType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, true
	case "queen", "q":
		return Queen, true
	case "rook", "r":
		return Rook, true
	case "bishop", "b":
		return Bishop, true
	case "knight", "n":
		return Knight, true
	case "pawn", "p":
		return Pawn, true
	}
	return "", false
}

// Piece is an immutable value; only its type, color and location matter.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) fenLetter() byte {
	var c byte
	switch p.Type {
	case King:
		c = 'K'
	case Queen:
		c = 'Q'
	case Rook:
		c = 'R'
	case Bishop:
		c = 'B'
	case Knight:
		c = 'N'
	case Pawn:
		c = 'P'
	}
	if p.Color == Black {
		c += 'a' - 'A'
	}
	return c
}

func pieceFromFENLetter(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return Piece{Type: King, Color: color}, true
	case 'Q':
		return Piece{Type: Queen, Color: color}, true
	case 'R':
		return Piece{Type: Rook, Color: color}, true
	case 'B':
		return Piece{Type: Bishop, Color: color}, true
	case 'N':
		return Piece{Type: Knight, Color: color}, true
	case 'P':
		return Piece{Type: Pawn, Color: color}, true
	}
	return Piece{}, false
}

// Position is a board coordinate. X is the file (0 = a) and Y the row counted
// from the top of the diagram, so Y 0 is rank 8 and Y 7 is rank 1.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.X+97, 8-p.Y)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+97)
}

func (p Position) getRankNotation() string {
	return fmt.Sprintf("%d", 8-p.Y)
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !boundaryCheck(p) {
		return "-"
	}
	return p.getSquareNotation()
}

// ParsePosition converts an algebraic square name such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Position{X: int(s[0] - 'a'), Y: 8 - int(s[1]-'0')}, nil
}

func boundaryCheck(position Position) bool {
	return position.X >= 0 && position.X < 8 && position.Y >= 0 && position.Y < 8
}

// isLightSquare reports whether the square is a light square (h1 and a8 are light).
func (p Position) isLightSquare() bool {
	return (p.X+p.Y)%2 == 0
}

// BoardState is the 8x8 grid. Board[y][x] holds the piece on Position{x, y}.
// It is a plain array so that assigning a BoardState copies the whole grid.
type BoardState struct {
	Board [8][8]*Piece `json:"board"`
}

// At returns the piece on the square, or nil if it is empty or off the board.
func (b *BoardState) At(p Position) *Piece {
	if !boundaryCheck(p) {
		return nil
	}
	return b.Board[p.Y][p.X]
}

// Set places piece on the square; a nil piece empties it.
func (b *BoardState) Set(p Position, piece *Piece) {
	b.Board[p.Y][p.X] = piece
}

// Clone returns an independent copy. Pieces are immutable, so sharing the
// pointers between copies is safe.
func (b *BoardState) Clone() *BoardState {
	c := *b
	return &c
}

// findKing returns the square of color's king. With zero kings on the board it
// reports false; with several it returns the first one found.
func (b *BoardState) findKing(color Color) (Position, bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pc := b.Board[y][x]; pc != nil && pc.Type == King && pc.Color == color {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

func newBoard() *BoardState {
	board := &BoardState{}
	back := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range back {
		board.Board[0][x] = &Piece{Type: t, Color: Black}
		board.Board[7][x] = &Piece{Type: t, Color: White}
	}
	for x := 0; x < 8; x++ {
		board.Board[1][x] = &Piece{Type: Pawn, Color: Black}
		board.Board[6][x] = &Piece{Type: Pawn, Color: White}
	}
	return board
}
