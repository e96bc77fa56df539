package bench

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Final state of a match
type Outcome int

const (
	None Outcome = iota
	RedWins
	BlueWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red-wins"
	case BlueWins:
		return "blue-wins"
	case Draw:
		return "draw"
	}
	return "none"
}

// Winner's color, board.None on a draw or an unfinished match
func (o Outcome) Winner() board.Color {
	switch o {
	case RedWins:
		return board.Red
	case BlueWins:
		return board.Blue
	}
	return board.None
}

func winOutcome(color board.Color) Outcome {
	if color == board.Red {
		return RedWins
	}
	return BlueWins
}

type MatchResult struct {
	Outcome Outcome
	Moves   []int // cell indices in the order they were played, Red first
	Board   board.Board
}

var ErrSameAgent = errors.New("the same agent instance can't play both colors")

// ProtocolError is returned when an agent plays a move that is out of range,
// on an occupied cell, or floating above an empty one. It ends the match.
type ProtocolError struct {
	Color board.Color
	Move  int
	Board board.Board // before the move
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s played an illegal move %d on %s", e.Color, e.Move, e.Board.DebugString())
}

// Result of a single arena game, from the arena's player 1 perspective
type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// maps a match outcome to which agent won, given player 1's color
func toVersusResult(outcome Outcome, p1Color board.Color) VersusMatchResult {
	switch outcome.Winner() {
	case board.None:
		return VersusDraw
	case p1Color:
		return VersusPl1Win
	}
	return VersusPl2Win
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) record(result VersusMatchResult, outcome Outcome) {
	switch result {
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	case VersusPl2Win:
		atomic.AddUint32(&vas.p2Wins, 1)
	default:
		atomic.AddUint32(&vas.draws, 1)
	}

	// Red always moves first
	switch outcome {
	case RedWins:
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	case BlueWins:
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

// Passed to the arena listener after every finished game
type VersusGameInfo struct {
	Game    int         // index of the game, in [0, NGames)
	P1Color board.Color // color player 1 had in this game
	Result  VersusMatchResult
	Match   MatchResult
	P1Wins  int
	P2Wins  int
	Draws   int
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}
