package board

// Board dimensions, the index layout looks as:
//
//	21 22 23 24 25 26 27
//	14 15 16 17 18 19 20
//	 7  8  9 10 11 12 13
//	 0  1  2  3  4  5  6
const (
	Width  = 7
	Height = 4
	Size   = Width * Height
)

// Sentinel for "no move", passed to the first agent to play
const NoMove = -1

// Color of a stone, also used as the cell state, where None is an empty cell
type Color uint8

const (
	None Color = iota
	Red
	Blue
)

// Returns the other player's color, None stays None
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return None
}

// Glyph used in the debug notation
func (c Color) Glyph() byte {
	switch c {
	case Red:
		return 'x'
	case Blue:
		return 'o'
	}
	return '.'
}

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	}
	return "NONE"
}
