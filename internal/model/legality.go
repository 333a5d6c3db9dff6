package model

import "fmt"

// LegalMoves returns the legal moves of the piece on from. It is the only
// place that decides whether a move keeps the mover's king safe.
func (s *GameState) LegalMoves(from Position) ([]Move, error) {
	if !boundaryCheck(from) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSquare, from)
	}
	piece := s.Board.At(from)
	if piece == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if piece.Color != s.ToMove {
		return nil, fmt.Errorf("%w: %s piece on %s, %s to move", ErrWrongTurn, piece.Color, from, s.ToMove)
	}
	return s.getLegalMovesForPiece(from), nil
}

// AllLegalMoves returns every legal move for the side to move.
func (s *GameState) AllLegalMoves() []Move {
	legalMoves := []Move{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pc := s.Board.Board[y][x]; pc != nil && pc.Color == s.ToMove {
				legalMoves = append(legalMoves, s.getLegalMovesForPiece(Position{X: x, Y: y})...)
			}
		}
	}
	return legalMoves
}

func (s *GameState) getLegalMovesForPiece(from Position) []Move {
	return s.filterLegalMoves(s.PseudoLegalMoves(from))
}

func (s *GameState) filterLegalMoves(psuedoMoves []Move) []Move {
	legalMoves := []Move{}
	for _, move := range psuedoMoves {
		if !s.leavesKingAttacked(move) {
			legalMoves = append(legalMoves, move)
		}
	}
	return legalMoves
}

// leavesKingAttacked plays move on a throwaway copy of the board and tests the
// mover's king. The copy is dropped as soon as the check is done.
func (s *GameState) leavesKingAttacked(move Move) bool {
	mover := s.Board.At(move.From)
	if mover == nil {
		return true
	}
	scratch := s.Board.Clone()
	if move.CapturedSquare != nil {
		scratch.Set(*move.CapturedSquare, nil)
	}
	scratch.Set(move.From, nil)
	scratch.Set(move.To, mover)
	if move.isCastle() {
		rm := castleRookMove(move)
		scratch.Set(rm.To, scratch.At(rm.From))
		scratch.Set(rm.From, nil)
	}
	return isKingInCheck(scratch, mover.Color)
}

// hasLegalMove short-circuits on the first legal move found for the side to move.
func (s *GameState) hasLegalMove() bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pc := s.Board.Board[y][x]
			if pc == nil || pc.Color != s.ToMove {
				continue
			}
			for _, move := range s.PseudoLegalMoves(Position{X: x, Y: y}) {
				if !s.leavesKingAttacked(move) {
					return true
				}
			}
		}
	}
	return false
}

// findLegal looks up the legal move matching the request's squares. A request
// that names a kind must match it too.
func (s *GameState) findLegal(req Move) (Move, bool) {
	moves, err := s.LegalMoves(req.From)
	if err != nil {
		return Move{}, false
	}
	for _, m := range moves {
		if m.To != req.To {
			continue
		}
		if req.Kind != "" && req.Kind != m.Kind {
			continue
		}
		return m, true
	}
	return Move{}, false
}
