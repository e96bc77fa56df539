package bench

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-connect4/pkg/agent"
	"github.com/IlikeChooros/go-connect4/pkg/board"
)

/*
Arena benchmark, plays a series of games between two agent configurations.
Every game builds fresh agents, so no search state leaks between games.
*/

// Anything able to build fresh agents, agent.Spec is the usual one
type AgentFactory interface {
	New(opts agent.Options) (agent.Agent, error)
	String() string
}

// Implemented by factories of agents sharing the terminal (agent.Spec)
type interactive interface {
	Interactive() bool
}

func isInteractive(factory AgentFactory) bool {
	i, ok := factory.(interactive)
	return ok && i.Interactive()
}

type VersusArena struct {
	VersusArenaStats
	Player1  AgentFactory
	Player2  AgentFactory
	NGames   int
	NWorkers int
	// Player 1 always plays Red, otherwise the first mover is drawn per game
	FixedSeats bool
	// Passed to the factories, used by the human agent
	Options  agent.Options
	listener ArenaListener
}

func NewVersusArena(p1, p2 AgentFactory) *VersusArena {
	return &VersusArena{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NWorkers: 2,
		listener: defaultArenaListener{},
	}
}

func (va *VersusArena) Setup(nGames, nWorkers int) *VersusArena {
	va.NGames = max(nGames, 0)
	va.NWorkers = max(nWorkers, 1)
	return va
}

func (va *VersusArena) SetListener(listener ArenaListener) *VersusArena {
	if listener == nil {
		listener = defaultArenaListener{}
	}
	va.listener = listener
	return va
}

// Run plays all games, at most NWorkers at once. The first protocol violation
// (or the context's cancellation) stops the arena and is returned, along with
// the summary of the games finished so far.
// Games with an interactive agent are played one at a time, they all read
// the same input.
func (va *VersusArena) Run(ctx context.Context) (VersusSummaryInfo, error) {
	if va.NWorkers > 1 && (isInteractive(va.Player1) || isInteractive(va.Player2)) {
		log.Warn().Int("workers", va.NWorkers).Msg("interactive-agent-single-worker")
		va.NWorkers = 1
	}

	log.Info().
		Str("player1", va.Player1.String()).
		Str("player2", va.Player2.String()).
		Int("games", va.NGames).
		Int("workers", va.NWorkers).
		Msg("arena-start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(va.NWorkers, 1))

	for i := 0; i < va.NGames; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			return va.playGame(gctx, i)
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	summary := va.Summary()
	va.listener.OnFinishedWork(summary)
	return summary, err
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          va.NWorkers,
		P1Name:           va.Player1.String(),
		P2Name:           va.Player2.String(),
	}
}

func (va *VersusArena) playGame(ctx context.Context, game int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p1, err := va.Player1.New(va.Options)
	if err != nil {
		return errors.WithMessagef(err, "game %d: player 1", game)
	}
	p2, err := va.Player2.New(va.Options)
	if err != nil {
		return errors.WithMessagef(err, "game %d: player 2", game)
	}

	p1Color := board.Red
	red, blue := p1, p2
	if !va.FixedSeats && frand.Intn(2) == 1 {
		p1Color = board.Blue
		red, blue = p2, p1
	}

	match, err := PlayMatch(ctx, red, blue, nil)
	if err != nil {
		return errors.WithMessagef(err, "game %d", game)
	}

	result := toVersusResult(match.Outcome, p1Color)
	va.record(result, match.Outcome)
	va.listener.OnFinishedGame(VersusGameInfo{
		Game:    game,
		P1Color: p1Color,
		Result:  result,
		Match:   match,
		P1Wins:  va.P1Wins(),
		P2Wins:  va.P2Wins(),
		Draws:   va.Draws(),
	})
	return nil
}
