package bench

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Passed to the match listener after every applied move
type MoveInfo struct {
	Ply   int // 1 for the first move of the match
	Color board.Color
	Move  int
	Board board.Board // after the move
}

// Listener of a single match, called synchronously from PlayMatch
type Listener interface {
	OnMoveMade(info MoveInfo)
	OnFinishedGame(result MatchResult)
}

// Listener of the versus arena. Games run concurrently, so OnFinishedGame
// may be called from several goroutines at once.
type ArenaListener interface {
	OnFinishedGame(info VersusGameInfo)
	OnFinishedWork(summary VersusSummaryInfo)
}

type DefaultListener struct{}

func (DefaultListener) OnMoveMade(MoveInfo)        {}
func (DefaultListener) OnFinishedGame(MatchResult) {}

// PrintListener writes the board after every move, colored according to
// the writer's terminal profile
type PrintListener struct {
	out *termenv.Output
}

func NewPrintListener(w io.Writer) *PrintListener {
	return &PrintListener{out: termenv.NewOutput(w)}
}

// Same as NewPrintListener, with a fixed color profile
func NewPrintListenerWithProfile(w io.Writer, profile termenv.Profile) *PrintListener {
	return &PrintListener{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

func (p *PrintListener) OnMoveMade(info MoveInfo) {
	fmt.Fprintf(p.out, "%d. %s plays %d\n%s\n", info.Ply, info.Color, info.Move, board.Pretty(p.out, &info.Board))
}

func (p *PrintListener) OnFinishedGame(result MatchResult) {
	style := p.out.String(result.Outcome.String()).Bold()
	switch result.Outcome {
	case RedWins:
		style = style.Foreground(termenv.ANSIRed)
	case BlueWins:
		style = style.Foreground(termenv.ANSIBlue)
	}
	fmt.Fprintf(p.out, "%s after %d moves\n", style, len(result.Moves))
}
