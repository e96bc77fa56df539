package bench

import (
	"github.com/rs/zerolog/log"
)

type defaultArenaListener struct{}

func (defaultArenaListener) OnFinishedGame(VersusGameInfo)    {}
func (defaultArenaListener) OnFinishedWork(VersusSummaryInfo) {}

// LogListener reports arena progress through the global logger, every
// game at debug level and the summary at info
type LogListener struct{}

func (LogListener) OnFinishedGame(info VersusGameInfo) {
	log.Debug().
		Int("game", info.Game).
		Stringer("p1-color", info.P1Color).
		Stringer("outcome", info.Match.Outcome).
		Int("moves", len(info.Match.Moves)).
		Int("p1-wins", info.P1Wins).
		Int("p2-wins", info.P2Wins).
		Int("draws", info.Draws).
		Msg("game-finished")
}

func (LogListener) OnFinishedWork(summary VersusSummaryInfo) {
	log.Info().
		Str("player1", summary.P1Name).
		Str("player2", summary.P2Name).
		Int("games", summary.TotalGames).
		Int("p1-wins", summary.P1Wins).
		Int("p2-wins", summary.P2Wins).
		Int("draws", summary.Draws).
		Int("first-to-move-wins", summary.FirstToMoveWins).
		Msg("arena-finished")
}
