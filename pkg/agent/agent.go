// Package agent defines the contract between the match driver and the players,
// with the search based, greedy and human implementations.
package agent

import (
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Agent is a single player of one match. The driver calls Initialize exactly
// once, then Play on every turn of this agent.
type Agent interface {
	// Receives a copy of the starting board and the agent's color
	Initialize(b board.Board, color board.Color)

	// Returns the cell index to play, given the opponent's last move
	// (board.NoMove if this is the first move of the match)
	Play(opponentMove int) int
}

// Private copy of the match board, kept in sync by recording both the
// opponent's moves and the agent's own
type tracker struct {
	board board.Board
	color board.Color
}

func (t *tracker) Initialize(b board.Board, color board.Color) {
	t.board = b
	t.color = color
}

func (t *tracker) Board() board.Board {
	return t.board
}

func (t *tracker) Color() board.Color {
	return t.color
}

func (t *tracker) observe(opponentMove int) {
	if opponentMove >= 0 && opponentMove < board.Size {
		t.board[opponentMove] = t.color.Opponent()
	}
}

func (t *tracker) commit(move int) int {
	if move >= 0 && move < board.Size {
		t.board[move] = t.color
	}
	return move
}
