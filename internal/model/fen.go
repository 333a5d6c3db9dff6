package model

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the position text of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// placement renders the first field: rank 8 first, ranks separated by '/',
// runs of empty squares as digits, white uppercase and black lowercase.
func (b *BoardState) placement() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		empty := 0
		for x := 0; x < 8; x++ {
			pc := b.Board[y][x]
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.fenLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN encodes the position as the six-field position text.
func (s *GameState) FEN() string {
	ep := "-"
	if s.EnPassantTarget != nil {
		ep = s.EnPassantTarget.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		s.Board.placement(), s.ToMove.fenLetter(), s.Castling.String(), ep, s.HalfMoveClock, s.FullMoveNumber)
}

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN decodes a position text. It fails closed: on any structural
// problem it returns an error and no state at all.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenError("expected 6 fields, got %d", len(fields))
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return nil, err
	}

	st := &GameState{Board: board, MoveHistory: make([]Ply, 0)}

	switch fields[1] {
	case "w":
		st.ToMove = White
	case "b":
		st.ToMove = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	if st.Castling, err = parseCastling(fields[2]); err != nil {
		return nil, err
	}
	for _, color := range []Color{White, Black} {
		for _, kind := range []MoveKind{CastleKingside, CastleQueenside} {
			if st.Castling.has(color, kind) && !board.castlingPiecesHome(color, kind) {
				return nil, fenError("%s %s right without king and rook on their original squares", color, kind)
			}
		}
	}

	if fields[3] != "-" {
		ep, err := ParsePosition(fields[3])
		if err != nil {
			return nil, fenError("en passant square %q", fields[3])
		}
		// Black's double push leaves the target on rank 6, white's on rank 3.
		wantY := 2
		if st.ToMove == Black {
			wantY = 5
		}
		if ep.Y != wantY {
			return nil, fenError("en passant square %s impossible with %s to move", ep, st.ToMove)
		}
		st.EnPassantTarget = &ep
	}

	var ok bool
	if st.HalfMoveClock, ok = parseCounter(fields[4]); !ok {
		return nil, fenError("half-move clock %q", fields[4])
	}
	if st.FullMoveNumber, ok = parseCounter(fields[5]); !ok || st.FullMoveNumber < 1 {
		return nil, fenError("full-move number %q", fields[5])
	}

	if isKingInCheck(st.Board, st.ToMove.Opposite()) {
		return nil, fenError("%s is in check but it is %s to move", st.ToMove.Opposite(), st.ToMove)
	}
	return st, nil
}

// parseCounter accepts only canonical unsigned decimal: no sign and no
// leading zeros, so that encoding the result gives back the same text.
func parseCounter(field string) (int, bool) {
	if field == "" || (len(field) > 1 && field[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(field); i++ {
		if field[i] < '0' || field[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return n, true
}

// castlingPiecesHome reports whether color's king and the rook for the given
// wing still stand where a castling right requires them.
func (b *BoardState) castlingPiecesHome(color Color, kind MoveKind) bool {
	king := b.At(Position{X: 4, Y: color.backRow()})
	rook := b.At(rookCorner(color, kind))
	return king != nil && *king == Piece{Type: King, Color: color} &&
		rook != nil && *rook == Piece{Type: Rook, Color: color}
}

func parsePlacement(field string) (*BoardState, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fenError("expected 8 ranks, got %d", len(ranks))
	}
	board := &BoardState{}
	kings := map[Color]int{}
	for y, rank := range ranks {
		x := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				if x > 8 {
					return nil, fenError("rank %d has more than 8 squares", 8-y)
				}
				continue
			}
			piece, ok := pieceFromFENLetter(c)
			if !ok {
				return nil, fenError("unexpected character %q in rank %d", c, 8-y)
			}
			if x >= 8 {
				return nil, fenError("rank %d has more than 8 squares", 8-y)
			}
			if piece.Type == Pawn && (y == 0 || y == 7) {
				return nil, fenError("pawn on rank %d", 8-y)
			}
			if piece.Type == King {
				kings[piece.Color]++
			}
			board.Board[y][x] = &piece
			x++
		}
		if x != 8 {
			return nil, fenError("rank %d has %d squares", 8-y, x)
		}
	}
	for _, color := range []Color{White, Black} {
		if kings[color] != 1 {
			return nil, fenError("%s has %d kings", color, kings[color])
		}
	}
	return board, nil
}

func parseCastling(field string) (CastlingRights, error) {
	var rights CastlingRights
	if field == "-" {
		return rights, nil
	}
	seen := map[rune]bool{}
	for _, c := range field {
		if seen[c] {
			return CastlingRights{}, fenError("castling rights %q repeat %q", field, c)
		}
		seen[c] = true
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return CastlingRights{}, fenError("castling rights %q", field)
		}
	}
	return rights, nil
}
