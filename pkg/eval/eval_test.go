package eval

import (
	"math/rand"
	"testing"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

func TestEvaluateKnownBoards(t *testing.T) {
	tests := []struct {
		notation string
		want     int // from red's perspective
	}{
		{"....... ....... ....... .......", 0},
		{"...x... ....... ....... .......", 7},
		{"...xo.. ....... ....... .......", 1},
		{"x.....o ....... ....... .......", 0},
		{"o..x... x...... ....... .......", 7 + 2 - 3},
		{"xxxx... ....... ....... .......", 3 + 4 + 6 + 7},
	}

	for _, tt := range tests {
		b := board.MustParse(tt.notation)
		if got := Evaluate(&b, board.Red); got != tt.want {
			t.Errorf("Evaluate(%s, RED) = %d, want %d", tt.notation, got, tt.want)
		}
		if got := Evaluate(&b, board.Blue); got != -tt.want {
			t.Errorf("Evaluate(%s, BLUE) = %d, want %d", tt.notation, got, -tt.want)
		}
	}
}

// Random legal playouts, the evaluation must stay zero-sum at every ply
func TestEvaluateZeroSum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	custom, err := WeightsFromSlice([]int{
		1, 2, 3, 4, 5, 6, 7,
		8, 9, 10, 11, 12, 13, 14,
		15, 16, 17, 18, 19, 20, 21,
		22, 23, 24, 25, 26, 27, 28,
	})
	if err != nil {
		t.Fatal(err)
	}

	for game := 0; game < 200; game++ {
		var b board.Board
		color := board.Red
		for ply := 0; ply < board.Size; ply++ {
			for _, w := range []*Weights{&DefaultWeights, &custom} {
				if a, o := w.Evaluate(&b, board.Red), w.Evaluate(&b, board.Blue); a != -o {
					t.Fatalf("not zero-sum on %s: red %d, blue %d", b, a, o)
				}
			}

			var moves []int
			for c := 0; c < board.Width; c++ {
				if i, ok := b.LowestEmptyCell(c); ok {
					moves = append(moves, i)
				}
			}
			b[moves[r.Intn(len(moves))]] = color
			color = color.Opponent()
		}
	}
}

func TestWeights(t *testing.T) {
	if !DefaultWeights.Mirrored() {
		t.Error("DefaultWeights must be mirrored")
	}

	w := DefaultWeights
	w[0] = 100
	if w.Mirrored() {
		t.Error("Mirrored() = true for an asymmetric table")
	}

	if _, err := WeightsFromSlice(make([]int, 27)); err == nil {
		t.Error("WeightsFromSlice accepted 27 values")
	}

	// The sum of absolute weights must stay below a lost position's score
	tooHeavy := make([]int, board.Size)
	tooHeavy[0], tooHeavy[1] = 60000, 60000
	if _, err := WeightsFromSlice(tooHeavy); err == nil {
		t.Error("WeightsFromSlice accepted weights beyond ScoreLimit")
	}

	balanced := make([]int, board.Size)
	balanced[0], balanced[6] = ScoreLimit/2, -ScoreLimit/2
	if _, err := WeightsFromSlice(balanced); err == nil {
		t.Error("WeightsFromSlice accepted absolute weights summing to ScoreLimit")
	}

	nearLimit := make([]int, board.Size)
	nearLimit[3] = ScoreLimit - 1
	if _, err := WeightsFromSlice(nearLimit); err != nil {
		t.Errorf("WeightsFromSlice rejected a table below the limit: %v", err)
	}
}

func TestEvaluateNone(t *testing.T) {
	b := board.MustParse("xo..... ....... ....... .......")
	if got := Evaluate(&b, board.None); got != 0 {
		t.Errorf("Evaluate(%s, NONE) = %d, want 0", b, got)
	}
}
