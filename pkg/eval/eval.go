// Package eval holds the static positional evaluation used at search leaves.
package eval

import (
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Weights is the strategic value of every cell, indexed like the board
type Weights [board.Size]int

// Bound on the magnitude of any static score, a lost position (an opponent's
// line on the board) scores -ScoreLimit and must rank below every evaluation
const ScoreLimit = 10000

// Reference table, center columns weigh more, the two middle rows slightly
// less on the edges than the bottom and top ones
var DefaultWeights = Weights{
	3, 4, 6, 7, 6, 4, 3,
	2, 4, 6, 7, 6, 4, 2,
	2, 4, 6, 7, 6, 4, 2,
	3, 4, 6, 7, 6, 4, 3,
}

// Evaluate returns the sum of weights under 'color' stones minus the sum under
// the opponent's, empty cells count 0. For any table
// Evaluate(b, c) == -Evaluate(b, c.Opponent()).
func (w *Weights) Evaluate(b *board.Board, color board.Color) int {
	if color == board.None {
		return 0
	}

	opponent := color.Opponent()
	score := 0
	for i, cell := range b {
		switch cell {
		case color:
			score += w[i]
		case opponent:
			score -= w[i]
		}
	}
	return score
}

// Mirrored reports whether the table is left-right symmetric
func (w *Weights) Mirrored() bool {
	for r := 0; r < board.Height; r++ {
		for c := 0; c < board.Width/2; c++ {
			if w[board.Index(c, r)] != w[board.Index(board.Width-1-c, r)] {
				return false
			}
		}
	}
	return true
}

// Build a table from configuration, it must contain exactly one value per cell
// and the sum of absolute values must stay below ScoreLimit
func WeightsFromSlice(values []int) (Weights, error) {
	var w Weights
	if len(values) != board.Size {
		return w, errors.Errorf("weights table needs %d values, got %d", board.Size, len(values))
	}

	total := 0
	for i, v := range values {
		if v <= -ScoreLimit || v >= ScoreLimit {
			return w, errors.Errorf("weight %d at cell %d out of range", v, i)
		}
		total += max(v, -v)
	}
	if total >= ScoreLimit {
		return w, errors.Errorf("weights table sums to %d, must stay below %d", total, ScoreLimit)
	}

	copy(w[:], values)
	return w, nil
}

// Evaluate with the DefaultWeights
func Evaluate(b *board.Board, color board.Color) int {
	return DefaultWeights.Evaluate(b, color)
}
