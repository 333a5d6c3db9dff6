package model

// PseudoLegalMoves returns the geometrically valid moves of the piece on from,
// before king safety is considered. It never modifies the board.
func (s *GameState) PseudoLegalMoves(from Position) []Move {
	piece := s.Board.At(from)
	if piece == nil {
		return []Move{}
	}
	switch piece.Type {
	case Pawn:
		return s.getPsuedoPawnMoves(from, *piece)
	case Knight:
		return s.getStepMoves(from, *piece, knightDirs)
	case Bishop:
		return s.getSlidingMoves(from, *piece, bishopDirs)
	case Rook:
		return s.getSlidingMoves(from, *piece, rookDirs)
	case Queen:
		return append(s.getSlidingMoves(from, *piece, bishopDirs), s.getSlidingMoves(from, *piece, rookDirs)...)
	case King:
		return s.getPsuedoKingMoves(from, *piece)
	default:
		return []Move{}
	}
}

func captureAt(p Position) *Position {
	return &p
}

func (s *GameState) getPsuedoPawnMoves(from Position, piece Piece) []Move {
	pawnMoves := []Move{}
	dy := piece.Color.pawnDirection()
	promotes := func(to Position) bool { return to.Y == piece.Color.promotionRow() }

	// Forward one, then two from the starting row.
	one := Position{X: from.X, Y: from.Y + dy}
	if boundaryCheck(one) && s.Board.At(one) == nil {
		kind := Quiet
		if promotes(one) {
			kind = Promotion
		}
		pawnMoves = append(pawnMoves, Move{From: from, To: one, Kind: kind})
		two := Position{X: from.X, Y: from.Y + 2*dy}
		if from.Y == piece.Color.pawnStartRow() && s.Board.At(two) == nil {
			pawnMoves = append(pawnMoves, Move{From: from, To: two, Kind: DoublePush})
		}
	}

	for _, dx := range []int{-1, 1} {
		to := Position{X: from.X + dx, Y: from.Y + dy}
		if !boundaryCheck(to) {
			continue
		}
		if target := s.Board.At(to); target != nil {
			if target.Color == piece.Color {
				continue
			}
			kind := Capture
			if promotes(to) {
				kind = Promotion
			}
			pawnMoves = append(pawnMoves, Move{From: from, To: to, Kind: kind, CapturedSquare: captureAt(to)})
			continue
		}
		// En passant: the target square is only set right after an enemy
		// double push, and the pushed pawn sits beside us on our row.
		if s.EnPassantTarget != nil && *s.EnPassantTarget == to {
			victimSq := Position{X: to.X, Y: from.Y}
			victim := s.Board.At(victimSq)
			if victim != nil && victim.Type == Pawn && victim.Color != piece.Color {
				pawnMoves = append(pawnMoves, Move{From: from, To: to, Kind: EnPassant, CapturedSquare: captureAt(victimSq)})
			}
		}
	}
	return pawnMoves
}

// getStepMoves covers the knight and the king's one-square steps.
func (s *GameState) getStepMoves(from Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := Position{X: from.X + dir.X, Y: from.Y + dir.Y}
		if !boundaryCheck(targetPos) {
			continue
		}
		target := s.Board.At(targetPos)
		switch {
		case target == nil:
			moves = append(moves, Move{From: from, To: targetPos, Kind: Quiet})
		case target.Color != piece.Color:
			moves = append(moves, Move{From: from, To: targetPos, Kind: Capture, CapturedSquare: captureAt(targetPos)})
		}
	}
	return moves
}

func (s *GameState) getSlidingMoves(from Position, piece Piece, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		targetPos := Position{X: from.X + dir.X, Y: from.Y + dir.Y}
		for boundaryCheck(targetPos) {
			target := s.Board.At(targetPos)
			if target == nil {
				moves = append(moves, Move{From: from, To: targetPos, Kind: Quiet})
			} else if target.Color != piece.Color {
				moves = append(moves, Move{From: from, To: targetPos, Kind: Capture, CapturedSquare: captureAt(targetPos)})
				break
			} else {
				break
			}
			targetPos = Position{X: targetPos.X + dir.X, Y: targetPos.Y + dir.Y}
		}
	}
	return moves
}

func (s *GameState) getPsuedoKingMoves(from Position, piece Piece) []Move {
	kingMoves := s.getStepMoves(from, piece, kingDirs)
	for _, kind := range []MoveKind{CastleKingside, CastleQueenside} {
		if s.canCastle(from, piece.Color, kind) {
			to := Position{X: 6, Y: from.Y}
			if kind == CastleQueenside {
				to.X = 2
			}
			kingMoves = append(kingMoves, Move{From: from, To: to, Kind: kind})
		}
	}
	return kingMoves
}

// canCastle checks every castling precondition: the right is still held, king
// and rook stand on their original squares, the squares between them are
// empty, the king is not in check, and neither the square it crosses nor the
// one it lands on is attacked.
func (s *GameState) canCastle(from Position, color Color, kind MoveKind) bool {
	if !s.Castling.has(color, kind) {
		return false
	}
	home := Position{X: 4, Y: color.backRow()}
	if from != home {
		return false
	}
	rook := s.Board.At(rookCorner(color, kind))
	if rook == nil || rook.Type != Rook || rook.Color != color {
		return false
	}
	between, transit := []int{5, 6}, []int{5, 6}
	if kind == CastleQueenside {
		between, transit = []int{1, 2, 3}, []int{3, 2}
	}
	for _, x := range between {
		if s.Board.At(Position{X: x, Y: home.Y}) != nil {
			return false
		}
	}
	opponent := color.Opposite()
	if s.Board.IsAttacked(home, opponent) {
		return false
	}
	for _, x := range transit {
		if s.Board.IsAttacked(Position{X: x, Y: home.Y}, opponent) {
			return false
		}
	}
	return true
}
