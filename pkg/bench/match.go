package bench

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-connect4/pkg/agent"
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// PlayMatch plays one game between two agents, Red moves first. Both agents
// get a copy of the empty board, then alternate Play calls, each receiving the
// opponent's last move. Every returned move is validated against the match
// board; an illegal one ends the match with a *ProtocolError.
// The context is checked between moves, a search already running is not interrupted.
func PlayMatch(ctx context.Context, red, blue agent.Agent, listener Listener) (MatchResult, error) {
	if red == blue {
		return MatchResult{}, ErrSameAgent
	}
	if listener == nil {
		listener = DefaultListener{}
	}

	var b board.Board
	red.Initialize(b, board.Red)
	blue.Initialize(b, board.Blue)

	result := MatchResult{
		Outcome: None,
		Moves:   make([]int, 0, board.Size),
	}
	players := [2]agent.Agent{red, blue}
	color := board.Red
	lastMove := board.NoMove

	for ply := 0; ply < board.Size && result.Outcome == None; ply++ {
		if err := ctx.Err(); err != nil {
			result.Board = b
			return result, err
		}

		move := players[ply%2].Play(lastMove)
		if !b.IsLegal(move) {
			result.Board = b
			return result, &ProtocolError{Color: color, Move: move, Board: b}
		}

		b[move] = color
		result.Moves = append(result.Moves, move)
		log.Debug().Int("ply", ply+1).Stringer("color", color).Int("move", move).Msg("move-played")
		listener.OnMoveMade(MoveInfo{Ply: ply + 1, Color: color, Move: move, Board: b})

		if b.IsWinning(color) {
			result.Outcome = winOutcome(color)
		}
		lastMove = move
		color = color.Opponent()
	}

	if result.Outcome == None {
		result.Outcome = Draw
	}
	result.Board = b

	log.Info().
		Stringer("outcome", result.Outcome).
		Int("moves", len(result.Moves)).
		Str("board", b.String()).
		Msg("match-finished")
	listener.OnFinishedGame(result)
	return result, nil
}
