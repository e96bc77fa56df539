package board

import "github.com/pkg/errors"

// Board is the 4x7 grid, row-major from the bottom row. Being an array, passing
// it by value makes a snapshot; searches mutate it through a pointer and revert
// every placement before returning.
type Board [Size]Color

// Every straight run of 4 cells, built from the index arithmetic
// (+1 horizontal, +7 vertical, +8 and +6 diagonal)
var lines [][4]int

func init() {
	add := func(start, step int) {
		lines = append(lines, [4]int{start, start + step, start + 2*step, start + 3*step})
	}

	// Horizontal, 4 per row
	for r := 0; r < Height; r++ {
		for c := 0; c+3 < Width; c++ {
			add(r*Width+c, 1)
		}
	}

	// Vertical, exactly one per column since the board is 4 high
	for c := 0; c < Width; c++ {
		add(c, Width)
	}

	// Diagonals from the bottom row, going up-right and up-left
	for c := 0; c+3 < Width; c++ {
		add(c, Width+1)
	}
	for c := 3; c < Width; c++ {
		add(c, Width-1)
	}
}

// Lines returns every 4-cell run a player can win with
func Lines() [][4]int {
	return lines
}

func Index(column, row int) int {
	return row*Width + column
}

func Column(index int) int {
	return index % Width
}

func Row(index int) int {
	return index / Width
}

// IsWinning reports whether 'color' has 4 connected stones in a straight line.
// It checks the whole board and doesn't assume who played last.
func (b *Board) IsWinning(color Color) bool {
	if color == None {
		return false
	}

	for i := range lines {
		l := &lines[i]
		if b[l[0]] == color && b[l[1]] == color && b[l[2]] == color && b[l[3]] == color {
			return true
		}
	}
	return false
}

// Get the first empty cell of the column, scanning from the bottom
func (b *Board) LowestEmptyCell(column int) (int, bool) {
	if column < 0 || column >= Width {
		return NoMove, false
	}

	for i := column; i < Size; i += Width {
		if b[i] == None {
			return i, true
		}
	}
	return NoMove, false
}

// Whether a stone can land on this cell: in range, empty, and supported from below
func (b *Board) IsLegal(index int) bool {
	if index < 0 || index >= Size || b[index] != None {
		return false
	}
	return index < Width || b[index-Width] != None
}

func (b *Board) IsFull() bool {
	for i := Size - Width; i < Size; i++ {
		if b[i] == None {
			return false
		}
	}
	return true
}

// Count the stones of given color
func (b *Board) Count(color Color) int {
	n := 0
	for _, c := range b {
		if c == color {
			n++
		}
	}
	return n
}

// Valid checks the gravity invariant, no stone may float above an empty cell
func (b *Board) Valid() error {
	for i := range b {
		if b[i] > Blue {
			return errors.Errorf("unknown cell value %d at %d", b[i], i)
		}
		if i >= Width && b[i] != None && b[i-Width] == None {
			return errors.Errorf("floating stone at %d (column %d, row %d)", i, Column(i), Row(i))
		}
	}
	return nil
}
