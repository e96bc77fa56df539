package search

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Negamax is the plain fixed-depth minimax in negamax form, it visits the whole
// game tree up to the depth bound. Moves are tried left to right, so on equal
// scores the leftmost column wins.
type Negamax struct {
	engine
}

func NewNegamax(evaluator Evaluator) *Negamax {
	return &Negamax{engine: newEngine(evaluator, AscendingOrder)}
}

func (n *Negamax) Name() string {
	return "negamax"
}

func (n *Negamax) Search(b *board.Board, color board.Color, depth int) Result {
	n.begin()
	best := board.NoMove
	score := n.negamax(b, color, depth, &best)
	return n.finish(best, score)
}

// 'best' is non-nil only at the root
func (n *Negamax) negamax(b *board.Board, color board.Color, depth int, best *int) int {
	var ml moveList
	if score, leaf := n.enter(b, color, depth, &ml); leaf {
		return score
	}

	bestScore := -Infinity
	for _, m := range ml.moves[:ml.size] {
		b[m] = color
		score := -n.negamax(b, color.Opponent(), depth-1, nil)
		b[m] = board.None

		// The root always records a move, even if an evaluator strays
		// out of the (-Infinity, Infinity) window
		if score > bestScore || (best != nil && *best == board.NoMove) {
			bestScore = score
			if best != nil {
				*best = m
			}
		}

		if best != nil {
			n.listener.invokeRootMove(RootMoveInfo{
				Move: m, Score: score, BestMove: *best, BestScore: bestScore,
			})
		}
	}
	return bestScore
}
