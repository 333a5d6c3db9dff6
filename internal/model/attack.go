package model

var (
	rookDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
	bishopDirs = []Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	knightDirs = []Position{{X: 2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: 1}, {X: -2, Y: -1}, {X: 1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: 2}, {X: -1, Y: -2}}
	kingDirs   = []Position{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
)

// IsAttacked reports whether any piece of attackingColor attacks position.
// Nothing is cached: every call rescans from the target square.
func (b *BoardState) IsAttacked(position Position, attackingColor Color) bool {
	if b.rayAttacked(position, attackingColor, rookDirs, Rook) {
		return true
	}
	if b.rayAttacked(position, attackingColor, bishopDirs, Bishop) {
		return true
	}
	if b.stepAttacked(position, attackingColor, knightDirs, Knight) {
		return true
	}
	if b.stepAttacked(position, attackingColor, kingDirs, King) {
		return true
	}
	// A pawn attacks one row ahead of itself, so look one row behind the
	// target from the attacker's point of view.
	dy := -attackingColor.pawnDirection()
	pawnDirs := []Position{{X: -1, Y: dy}, {X: 1, Y: dy}}
	return b.stepAttacked(position, attackingColor, pawnDirs, Pawn)
}

// rayAttacked walks each direction until the first occupied square and checks
// whether it holds the slider (or a queen) of attackingColor.
func (b *BoardState) rayAttacked(position Position, attackingColor Color, dirs []Position, slider PieceType) bool {
	for _, dir := range dirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		for boundaryCheck(targetPos) {
			if pc := b.At(targetPos); pc != nil {
				if pc.Color == attackingColor && (pc.Type == Queen || pc.Type == slider) {
					return true
				}
				break
			}
			targetPos = Position{X: targetPos.X + dir.X, Y: targetPos.Y + dir.Y}
		}
	}
	return false
}

func (b *BoardState) stepAttacked(position Position, attackingColor Color, dirs []Position, attacker PieceType) bool {
	for _, dir := range dirs {
		targetPos := Position{X: position.X + dir.X, Y: position.Y + dir.Y}
		if pc := b.At(targetPos); pc != nil && pc.Color == attackingColor && pc.Type == attacker {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A board without that
// king is never in check.
func (s *GameState) InCheck(color Color) bool {
	return isKingInCheck(s.Board, color)
}

func isKingInCheck(boardState *BoardState, color Color) bool {
	kingPos, ok := boardState.findKing(color)
	if !ok {
		return false
	}
	return boardState.IsAttacked(kingPos, color.Opposite())
}
