package model

import (
	"fmt"
	"strings"
)

type MoveKind string

const (
	Quiet           MoveKind = "quiet"
	Capture         MoveKind = "capture"
	DoublePush      MoveKind = "double-push"
	EnPassant       MoveKind = "en-passant"
	CastleKingside  MoveKind = "castle-kingside"
	CastleQueenside MoveKind = "castle-queenside"
	Promotion       MoveKind = "promotion"
)

// Move is a candidate or legal move. CapturedSquare is set for every capture
// and differs from To only for en passant. PromotesTo is empty until the
// caller picks a piece for a promotion-flagged move.
type Move struct {
	From           Position  `json:"from"`
	To             Position  `json:"to"`
	Kind           MoveKind  `json:"kind"`
	CapturedSquare *Position `json:"capturedSquare,omitempty"`
	PromotesTo     PieceType `json:"promotesTo,omitempty"`
}

func (m Move) IsCapture() bool {
	return m.CapturedSquare != nil
}

func (m Move) isCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.PromotesTo != "" {
		s += strings.ToLower(m.PromotesTo.getPieceNotation())
	}
	return s
}

func (m Move) String() string {
	return fmt.Sprintf("%s(%s)", m.UCI(), m.Kind)
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Ply is the record of one committed move.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	Kind           MoveKind        `json:"kind"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion"`
	Notation       string          `json:"notation"`
	Check          bool            `json:"check"`
	Signature      string          `json:"signature"`
}

// MovePair groups a white ply with the black reply for move-list display.
// WhitePly is nil when the game started from a position with black to move.
type MovePair struct {
	Number   int  `json:"number"`
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

var promotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

func validPromotion(t PieceType) bool {
	for _, c := range promotionChoices {
		if c == t {
			return true
		}
	}
	return false
}
