package search

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Shared state and leaf rules of both search variants
type engine struct {
	evaluator Evaluator
	order     Order
	stats     Stats
	listener  StatsListener
	nodes     uint64 // nodes of the current call
}

func newEngine(evaluator Evaluator, order Order) engine {
	if evaluator == nil {
		evaluator = defaultEvaluator()
	}
	return engine{
		evaluator: evaluator,
		order:     order,
		listener:  NewStatsListener(),
	}
}

// Generates the moves of this frame, counts the node and applies the terminal
// rules. The opponent's win is checked before anything else, a line the side
// to move could complete right now is left to the recursion.
// Returns (score, true) when the node is a leaf.
func (e *engine) enter(b *board.Board, color board.Color, depth int, ml *moveList) (int, bool) {
	ml.generate(b, &e.order)
	e.nodes++

	if b.IsWinning(color.Opponent()) {
		return LossScore, true
	}

	if ml.size == 0 || depth <= 0 {
		return e.evaluator.Evaluate(b, color), true
	}
	return 0, false
}

func (e *engine) begin() {
	e.nodes = 0
}

func (e *engine) finish(move, score int) Result {
	result := Result{Move: move, Score: score, Nodes: e.nodes}
	e.stats.Searches++
	e.stats.Nodes += e.nodes
	e.listener.invokeDone(result)
	return result
}

func (e *engine) Stats() Stats {
	return e.stats
}

func (e *engine) Order() Order {
	return e.order
}

func (e *engine) StatsListener() *StatsListener {
	return &e.listener
}

func (e *engine) SetListener(listener StatsListener) {
	e.listener = listener
}
