package agent

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Greedy drops its stone into the leftmost column that is not full
type Greedy struct {
	tracker
}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Play(opponentMove int) int {
	g.observe(opponentMove)

	for c := 0; c < board.Width; c++ {
		if i, ok := g.board.LowestEmptyCell(c); ok {
			return g.commit(i)
		}
	}
	return board.NoMove
}
