package search

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
	"github.com/IlikeChooros/go-connect4/pkg/eval"
)

const (
	// Score of a node where the opponent already completed a line
	LossScore = -eval.ScoreLimit

	// Root window of the alpha-beta search, wider than any reachable score
	Infinity = 100000

	// Reference default depths
	DefaultNegamaxDepth   = 8
	DefaultAlphaBetaDepth = 10
)

// Static scoring function, called only at leaves.
// Must satisfy Evaluate(b, c) == -Evaluate(b, c.Opponent())
type Evaluator interface {
	Evaluate(b *board.Board, color board.Color) int
}

// Result of a single search call
type Result struct {
	Move  int    // cell index to play, board.NoMove if the root is terminal
	Score int    // negamax score from the perspective of the side to move
	Nodes uint64 // nodes visited by this call
}

// Strategy is a fixed-depth adversarial search. The board is mutated in place
// during the search and restored before Search returns.
type Strategy interface {
	Search(b *board.Board, color board.Color, depth int) Result
	// Cumulative counters over the strategy's lifetime
	Stats() Stats
	Name() string
}

func defaultEvaluator() Evaluator {
	w := eval.DefaultWeights
	return &w
}
