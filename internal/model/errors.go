package model

import "errors"

var (
	ErrNoPiece           = errors.New("no piece at from square")
	ErrWrongTurn         = errors.New("not your turn")
	ErrInvalidSquare     = errors.New("invalid square")
	ErrInvalidMove       = errors.New("invalid move, not legal")
	ErrPromotionRequired = errors.New("promotion piece required")
	ErrInvalidPromotion  = errors.New("invalid promotion piece")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidFEN        = errors.New("invalid fen")
)
