package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// pawnDirection is the row delta of a forward pawn step.
func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

func (c Color) promotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) backRow() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) fenLetter() string {
	if c == White {
		return "w"
	}
	return "b"
}
