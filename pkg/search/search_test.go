package search

import (
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-connect4/pkg/board"
	"github.com/IlikeChooros/go-connect4/pkg/eval"
)

// Play 'plies' random legal moves from the empty board, returns false if
// someone completed a line on the way
func randomPosition(r *rand.Rand, plies int) (board.Board, board.Color, bool) {
	var b board.Board
	color := board.Red
	for n := 0; n < plies; n++ {
		var moves []int
		for c := 0; c < board.Width; c++ {
			if i, ok := b.LowestEmptyCell(c); ok {
				moves = append(moves, i)
			}
		}
		if len(moves) == 0 {
			break
		}
		b[moves[r.Intn(len(moves))]] = color
		if b.IsWinning(color) {
			return b, color, false
		}
		color = color.Opponent()
	}
	return b, color, true
}

func TestAlphaBetaMatchesNegamax(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	positions := 0

	for positions < 20 {
		b, color, ok := randomPosition(r, r.Intn(18))
		if !ok {
			continue
		}
		positions++

		for depth := 1; depth <= 5; depth++ {
			nm := NewNegamax(nil).Search(&b, color, depth)
			ab := NewAlphaBeta(nil).Search(&b, color, depth)

			if nm.Score != ab.Score {
				t.Errorf("%s depth=%d: negamax score %d, alphabeta %d", b, depth, nm.Score, ab.Score)
			}
			if ab.Nodes > nm.Nodes {
				t.Errorf("%s depth=%d: alphabeta visited %d nodes, negamax %d", b, depth, ab.Nodes, nm.Nodes)
			}
			if !b.IsLegal(nm.Move) || !b.IsLegal(ab.Move) {
				t.Errorf("%s depth=%d: illegal move, negamax=%d alphabeta=%d", b, depth, nm.Move, ab.Move)
			}
		}
	}
}

func TestAlphaBetaAnyOrderMatchesNegamax(t *testing.T) {
	b := board.MustParse("xo..... x...... ....... .......")
	nm := NewNegamax(nil).Search(&b, board.Blue, 5)

	for _, order := range []Order{AscendingOrder, DefaultOrder, CenterOut(0), CenterOut(6)} {
		ab, err := NewAlphaBetaOrdered(nil, order)
		if err != nil {
			t.Fatalf("NewAlphaBetaOrdered(%v): %v", order, err)
		}
		if result := ab.Search(&b, board.Blue, 5); result.Score != nm.Score {
			t.Errorf("order %v: score %d, want %d", order, result.Score, nm.Score)
		}
	}

	if _, err := NewAlphaBetaOrdered(nil, Order{0, 0, 1, 2, 3, 4, 5}); err == nil {
		t.Error("expected error for repeated column")
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	b := board.MustParse("xoxo... ox..... ....... .......")
	before := b

	strategies := []Strategy{NewNegamax(nil), NewAlphaBeta(nil)}
	for _, s := range strategies {
		s.Search(&b, board.Red, 6)
		if b != before {
			t.Errorf("%s modified the board: %s, want %s", s.Name(), b, before)
		}
	}
}

func TestImmediateWin(t *testing.T) {
	b := board.MustParse("xxx.... ooo.... ....... .......")

	for _, depth := range []int{1, 2, 3} {
		for _, s := range []Strategy{NewNegamax(nil), NewAlphaBeta(nil)} {
			result := s.Search(&b, board.Red, depth)
			if result.Move != 3 {
				t.Errorf("%s depth=%d: move %d, want 3", s.Name(), depth, result.Move)
			}
			if result.Score != -LossScore {
				t.Errorf("%s depth=%d: score %d, want %d", s.Name(), depth, result.Score, -LossScore)
			}
		}
	}
}

func TestBlocksThreat(t *testing.T) {
	b := board.MustParse("xxx.... oo..... ....... .......")

	for _, depth := range []int{2, 4} {
		for _, s := range []Strategy{NewNegamax(nil), NewAlphaBeta(nil)} {
			if result := s.Search(&b, board.Blue, depth); result.Move != 3 {
				t.Errorf("%s depth=%d: move %d, want 3", s.Name(), depth, result.Move)
			}
		}
	}
}

func TestTerminalRoot(t *testing.T) {
	won := board.MustParse("xxxx... ooo.... ....... .......")
	draw := board.MustParse("xxooxxo ooxxoox xxooxxo ooxxoox")
	empty := board.Board{}

	tests := []struct {
		name  string
		b     board.Board
		color board.Color
		depth int
		score int
	}{
		{"OpponentWon", won, board.Blue, 4, LossScore},
		{"Full", draw, board.Red, 4, eval.Evaluate(&draw, board.Red)},
		{"ZeroDepth", empty, board.Red, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []Strategy{NewNegamax(nil), NewAlphaBeta(nil)} {
				result := s.Search(&tt.b, tt.color, tt.depth)
				if result.Move != board.NoMove {
					t.Errorf("%s: move %d, want NoMove", s.Name(), result.Move)
				}
				if result.Score != tt.score {
					t.Errorf("%s: score %d, want %d", s.Name(), result.Score, tt.score)
				}
				if result.Nodes != 1 {
					t.Errorf("%s: nodes %d, want 1", s.Name(), result.Nodes)
				}
			}
		})
	}
}

func TestNegamaxTiesKeepFirst(t *testing.T) {
	// Uniform weights make every first move score the same at depth 1
	var flat eval.Weights
	for i := range flat {
		flat[i] = 1
	}
	b := board.Board{}

	if result := NewNegamax(&flat).Search(&b, board.Red, 1); result.Move != 0 {
		t.Errorf("negamax move %d, want 0", result.Move)
	}
	if result := NewAlphaBeta(&flat).Search(&b, board.Red, 1); result.Move != 3 {
		t.Errorf("alphabeta move %d, want 3", result.Move)
	}
}

func TestNegamaxNodeCount(t *testing.T) {
	b := board.Board{}
	// Full tree: 1 + 7 + 49 nodes, no line can be completed in 2 plies
	if result := NewNegamax(nil).Search(&b, board.Red, 2); result.Nodes != 57 {
		t.Errorf("nodes %d, want 57", result.Nodes)
	}
}

func TestStatsAndListener(t *testing.T) {
	b := board.MustParse("x...... ....... ....... .......")
	s := NewNegamax(nil)

	rootMoves := 0
	done := 0
	var last Result
	s.StatsListener().
		OnRootMove(func(info RootMoveInfo) {
			rootMoves++
			if info.UpperBound {
				t.Errorf("negamax reported an upper bound for move %d", info.Move)
			}
			if info.BestScore < info.Score {
				t.Errorf("best score %d below move score %d", info.BestScore, info.Score)
			}
		}).
		OnDone(func(r Result) {
			done++
			last = r
		})

	first := s.Search(&b, board.Blue, 3)
	second := s.Search(&b, board.Blue, 2)

	if rootMoves != 2*board.Width {
		t.Errorf("root move callbacks %d, want %d", rootMoves, 2*board.Width)
	}
	if done != 2 || last != second {
		t.Errorf("done callbacks %d, last %+v, want 2 and %+v", done, last, second)
	}

	stats := s.Stats()
	if stats.Searches != 2 || stats.Nodes != first.Nodes+second.Nodes {
		t.Errorf("unexpected %s", stats)
	}
	if stats.Cutoffs != 0 {
		t.Errorf("negamax counted %d cutoffs", stats.Cutoffs)
	}

	ab := NewAlphaBeta(nil)
	ab.Search(&b, board.Blue, 6)
	if ab.Stats().Cutoffs == 0 {
		t.Error("alphabeta counted no cutoffs at depth 6")
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		start int
		want  Order
	}{
		{3, DefaultOrder},
		{0, AscendingOrder},
		{6, Order{6, 5, 4, 3, 2, 1, 0}},
		{1, Order{1, 0, 2, 3, 4, 5, 6}},
		{-1, DefaultOrder},
		{9, DefaultOrder},
	}

	for _, tt := range tests {
		got := CenterOut(tt.start)
		if got != tt.want {
			t.Errorf("CenterOut(%d) = %v, want %v", tt.start, got, tt.want)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("CenterOut(%d): %v", tt.start, err)
		}
	}

	if err := (Order{0, 1, 2, 3, 4, 5, 7}).Validate(); err == nil {
		t.Error("expected out of range error")
	}
}

func TestLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.Depth != DefaultAlphaBetaDepth {
		t.Errorf("default depth %d", limits.Depth)
	}
	if s := limits.String(); s != `{"depth":10}` {
		t.Errorf("String() = %s", s)
	}
	if limits.SetDepth(-3).Depth != 0 {
		t.Errorf("negative depth not clamped: %d", limits.Depth)
	}
}

type evaluatorFunc func(b *board.Board, color board.Color) int

func (f evaluatorFunc) Evaluate(b *board.Board, color board.Color) int {
	return f(b, color)
}

func TestRootMoveOutsideWindow(t *testing.T) {
	// Scores beyond the root window, every blue move looks worse than -Infinity
	huge := evaluatorFunc(func(b *board.Board, color board.Color) int {
		if color == board.Red {
			return 3 * Infinity
		}
		return -3 * Infinity
	})
	b := board.MustParse("xxo.... ....... ....... .......")

	for _, depth := range []int{1, 2} {
		for _, s := range []Strategy{NewNegamax(huge), NewAlphaBeta(huge)} {
			if result := s.Search(&b, board.Blue, depth); !b.IsLegal(result.Move) {
				t.Errorf("%s depth=%d: move %d on a playable board", s.Name(), depth, result.Move)
			}
		}
	}
}

func TestLossScoreBelowEvaluation(t *testing.T) {
	if LossScore != -eval.ScoreLimit {
		t.Errorf("LossScore %d, want %d", LossScore, -eval.ScoreLimit)
	}
}
