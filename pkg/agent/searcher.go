package agent

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-connect4/pkg/search"
)

// Searcher plays the move found by a fixed-depth search strategy
type Searcher struct {
	tracker
	strategy search.Strategy
	limits   search.Limits
	nodes    uint64
}

func NewSearcher(strategy search.Strategy, limits *search.Limits) *Searcher {
	if limits == nil {
		limits = search.DefaultLimits()
	}
	return &Searcher{strategy: strategy, limits: *limits}
}

// Plain negamax agent, visits the full tree up to 'depth' plies
func NewNegamax(depth int) *Searcher {
	return NewSearcher(search.NewNegamax(nil), search.DefaultLimits().SetDepth(depth))
}

// Alpha-beta agent with the default center-out column order
func NewAlphaBeta(depth int) *Searcher {
	return NewSearcher(search.NewAlphaBeta(nil), search.DefaultLimits().SetDepth(depth))
}

func (s *Searcher) Play(opponentMove int) int {
	s.observe(opponentMove)

	// Always look at least one ply ahead, a depth 0 search has no move to return
	depth := max(s.limits.Depth, 1)
	start := time.Now()
	result := s.strategy.Search(&s.board, s.color, depth)
	s.nodes += result.Nodes

	log.Debug().
		Str("strategy", s.strategy.Name()).
		Stringer("color", s.color).
		Int("depth", depth).
		Int("move", result.Move).
		Int("score", result.Score).
		Uint64("nodes", result.Nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search-done")

	return s.commit(result.Move)
}

// Nodes visited over the agent's lifetime
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

func (s *Searcher) Strategy() search.Strategy {
	return s.strategy
}

func (s *Searcher) Limits() search.Limits {
	return s.limits
}
