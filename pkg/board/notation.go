package board

import (
	"strings"

	"github.com/pkg/errors"
)

// Text notation of the board, one glyph per cell, rows from the bottom one
// and separated by a space:
//
//	xxxx... ....... ....... .......
//
// where 'x' is a red stone, 'o' a blue one and '.' an empty cell.
// So the above is red winning with a horizontal line in the bottom row.
func (b Board) String() string {
	builder := strings.Builder{}
	builder.Grow(Size + Height - 1)

	for r := 0; r < Height; r++ {
		if r != 0 {
			builder.WriteByte(' ')
		}
		for c := 0; c < Width; c++ {
			builder.WriteByte(b[r*Width+c].Glyph())
		}
	}
	return builder.String()
}

// Same layout as String, but upper case and rows terminated by '-',
// used in error messages and logs:
//
//	XXXX...-.......-.......-.......-
func (b Board) DebugString() string {
	builder := strings.Builder{}
	builder.Grow(Size + Height)

	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			glyph := b[r*Width+c].Glyph()
			if glyph != '.' {
				glyph -= 'a' - 'A'
			}
			builder.WriteByte(glyph)
		}
		builder.WriteByte('-')
	}
	return builder.String()
}

// Parse the board notation, case-insensitive. Every character other than
// 'x', 'o' and '.' is treated as a delimiter and skipped, so both String and
// DebugString outputs are accepted.
func Parse(notation string) (Board, error) {
	var b Board
	n := 0

	for _, ch := range strings.ToLower(notation) {
		var color Color
		switch ch {
		case 'x':
			color = Red
		case 'o':
			color = Blue
		case '.':
			color = None
		default:
			continue
		}

		if n >= Size {
			return Board{}, errors.Errorf("board notation %q has more than %d cells", notation, Size)
		}
		b[n] = color
		n++
	}

	if n != Size {
		return Board{}, errors.Errorf("board notation %q has %d cells, want %d", notation, n, Size)
	}
	return b, nil
}

// Same as Parse, but panics on error, meant for fixtures
func MustParse(notation string) Board {
	b, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return b
}
