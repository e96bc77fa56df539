package search

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// AlphaBeta is the negamax search with alpha-beta pruning (fail-hard).
// It returns the same score as Negamax for the same depth, but may pick a
// different move among equally scored ones, because columns are tried
// center-out.
type AlphaBeta struct {
	engine
}

func NewAlphaBeta(evaluator Evaluator) *AlphaBeta {
	return &AlphaBeta{engine: newEngine(evaluator, DefaultOrder)}
}

// Same as NewAlphaBeta with a custom column order, which must be a permutation
// of all columns
func NewAlphaBetaOrdered(evaluator Evaluator, order Order) (*AlphaBeta, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &AlphaBeta{engine: newEngine(evaluator, order)}, nil
}

func (a *AlphaBeta) Name() string {
	return "alphabeta"
}

func (a *AlphaBeta) Search(b *board.Board, color board.Color, depth int) Result {
	a.begin()
	best := board.NoMove
	score := a.alphabeta(b, color, depth, -Infinity, Infinity, &best)
	return a.finish(best, score)
}

// 'best' is non-nil only at the root, where it receives the first move whose
// score exceeded the running alpha
func (a *AlphaBeta) alphabeta(b *board.Board, color board.Color, depth, alpha, beta int, best *int) int {
	var ml moveList
	if score, leaf := a.enter(b, color, depth, &ml); leaf {
		return score
	}

	value := alpha
	for _, m := range ml.moves[:ml.size] {
		b[m] = color
		score := -a.alphabeta(b, color.Opponent(), depth-1, -beta, -value, nil)
		b[m] = board.None

		improved := score > value
		if improved {
			value = score
		}
		if best != nil && (improved || *best == board.NoMove) {
			*best = m
		}

		if best != nil {
			a.listener.invokeRootMove(RootMoveInfo{
				Move: m, Score: score, UpperBound: !improved, BestMove: *best, BestScore: value,
			})
		}

		if value >= beta {
			a.stats.Cutoffs++
			break
		}
	}
	return value
}
