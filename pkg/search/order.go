package search

import (
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Order in which columns are tried during move generation
type Order [board.Width]int

var (
	// Left to right, used by the plain negamax
	AscendingOrder = Order{0, 1, 2, 3, 4, 5, 6}

	// Center-out, strong center moves are found first, which tightens
	// the alpha-beta window early
	DefaultOrder = Order{3, 2, 4, 1, 5, 0, 6}
)

// Build a center-out order, starting at 'start' and alternating left and right
func CenterOut(start int) Order {
	if start < 0 || start >= board.Width {
		start = board.Width / 2
	}

	var o Order
	n := 0
	o[n] = start
	n++
	for d := 1; n < board.Width; d++ {
		if c := start - d; c >= 0 {
			o[n] = c
			n++
		}
		if c := start + d; c < board.Width && n < board.Width {
			o[n] = c
			n++
		}
	}
	return o
}

// Validate that every column appears exactly once
func (o Order) Validate() error {
	var seen [board.Width]bool
	for _, c := range o {
		if c < 0 || c >= board.Width {
			return errors.Errorf("column %d out of range in order %v", c, o)
		}
		if seen[c] {
			return errors.Errorf("column %d repeated in order %v", c, o)
		}
		seen[c] = true
	}
	return nil
}

// Fixed-size list of legal moves, lives on the stack of each search frame
type moveList struct {
	moves [board.Width]int
	size  int
}

func (ml *moveList) generate(b *board.Board, order *Order) {
	ml.size = 0
	for _, c := range order {
		if i, ok := b.LowestEmptyCell(c); ok {
			ml.moves[ml.size] = i
			ml.size++
		}
	}
}
