package model

import (
	"fmt"
	"strconv"
	"strings"
)

// getNotation builds the algebraic notation of move from the position before
// it is played. The check suffix is added once the resulting position is known.
func (s *GameState) getNotation(move Move, piece Piece) string {
	switch move.Kind {
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	}
	pieceNotationPrefix := piece.Type.getPieceNotation()
	pieceNotationCapture := ""
	if move.IsCapture() {
		pieceNotationCapture = "x"
	}
	pieceNotationSuffix := move.To.getSquareNotation()
	specifier := ""
	if piece.Type == Pawn {
		if move.IsCapture() {
			specifier = move.From.getFileNotation()
		}
		if move.PromotesTo != "" {
			pieceNotationSuffix += "=" + move.PromotesTo.getPieceNotation()
		}
	} else {
		specifier = s.disambiguation(move, piece)
	}
	return fmt.Sprintf("%s%s%s%s", pieceNotationPrefix, specifier, pieceNotationCapture, pieceNotationSuffix)
}

// disambiguation returns the file, rank or full square of the origin when
// another piece of the same type and color can also legally reach move.To.
func (s *GameState) disambiguation(move Move, piece Piece) string {
	sameFile, sameRank, rivals := false, false, false
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			other := Position{X: x, Y: y}
			pc := s.Board.At(other)
			if other == move.From || pc == nil || *pc != piece {
				continue
			}
			for _, m := range s.getLegalMovesForPiece(other) {
				if m.To != move.To {
					continue
				}
				rivals = true
				sameFile = sameFile || other.X == move.From.X
				sameRank = sameRank || other.Y == move.From.Y
			}
		}
	}
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return move.From.getFileNotation()
	case !sameRank:
		return move.From.getRankNotation()
	default:
		return move.From.getSquareNotation()
	}
}

// MovePairs groups the history into numbered full moves.
func (s *GameState) MovePairs() []MovePair {
	pairs := []MovePair{}
	if len(s.MoveHistory) == 0 {
		return pairs
	}
	// Work back from the current move number to the number of the first ply.
	number := s.FullMoveNumber
	for i := len(s.MoveHistory) - 1; i >= 0; i-- {
		if s.MoveHistory[i].Piece.Color == Black {
			number--
		}
	}
	for i := range s.MoveHistory {
		ply := &s.MoveHistory[i]
		if ply.Piece.Color == White || len(pairs) == 0 {
			pairs = append(pairs, MovePair{Number: number})
			number++
		}
		last := &pairs[len(pairs)-1]
		if ply.Piece.Color == White {
			last.WhitePly = ply
		} else {
			last.BlackPly = ply
		}
	}
	return pairs
}

// MoveText renders the history as numbered move text, e.g. "1. e4 e5 2. Nf3".
func (s *GameState) MoveText() string {
	var sb strings.Builder
	for _, pair := range s.MovePairs() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(pair.Number))
		if pair.WhitePly == nil {
			sb.WriteString("...")
		} else {
			sb.WriteString(". ")
			sb.WriteString(pair.WhitePly.Notation)
		}
		if pair.BlackPly != nil {
			sb.WriteByte(' ')
			sb.WriteString(pair.BlackPly.Notation)
		}
	}
	return sb.String()
}
