package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-connect4/pkg/board"
)

// Human asks for moves on a terminal. The input is a column (0-6); numbers
// from 7 up are taken as raw cell indices, as shown on the rendered board.
// On end of input it returns board.NoMove, which the driver rejects.
type Human struct {
	tracker
	scanner *bufio.Scanner
	out     *termenv.Output
}

func NewHuman(in io.Reader, out *termenv.Output) *Human {
	return &Human{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (h *Human) Play(opponentMove int) int {
	h.observe(opponentMove)

	for {
		fmt.Fprint(h.out, board.Pretty(h.out, &h.board))
		fmt.Fprintf(h.out, "%s to move, column (0-%d): ", h.color, board.Width-1)

		if !h.scanner.Scan() {
			fmt.Fprintln(h.out)
			return board.NoMove
		}

		move, err := h.parseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintln(h.out, h.out.String(err.Error()).Foreground(termenv.ANSIYellow))
			continue
		}
		return h.commit(move)
	}
}

func (h *Human) parseMove(line string) (int, error) {
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return board.NoMove, errors.Errorf("%q is not a number", line)
	}

	if n >= board.Width {
		if !h.board.IsLegal(n) {
			return board.NoMove, errors.Errorf("cell %d is not playable", n)
		}
		return n, nil
	}

	if n < 0 {
		return board.NoMove, errors.Errorf("column %d out of range", n)
	}

	i, ok := h.board.LowestEmptyCell(n)
	if !ok {
		return board.NoMove, errors.Errorf("column %d is full", n)
	}
	return i, nil
}
