package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Pretty renders the board top row first for a terminal. Red stones are a bold
// red 'X', blue ones a bold blue 'O'. Empty cells where a stone can land show
// their index, so a human knows where to play, the rest are '.'.
// Colors follow the profile of the output, an Ascii profile gives plain text.
func Pretty(out *termenv.Output, b *Board) string {
	builder := strings.Builder{}

	for r := Height - 1; r >= 0; r-- {
		for c := 0; c < Width; c++ {
			index := r*Width + c
			switch b[index] {
			case Red:
				builder.WriteString(out.String("X").Foreground(termenv.ANSIRed).Bold().String())
				builder.WriteString("  ")
			case Blue:
				builder.WriteString(out.String("O").Foreground(termenv.ANSIBlue).Bold().String())
				builder.WriteString("  ")
			default:
				if b.IsLegal(index) {
					builder.WriteString(out.String(fmt.Sprintf("%-3d", index)).Foreground(termenv.ANSIWhite).String())
				} else {
					builder.WriteString(out.String(".").Foreground(termenv.ANSIWhite).String())
					builder.WriteString("  ")
				}
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Write the pretty board to 'w', detecting the color profile of the writer
func Fprint(w io.Writer, b *Board) error {
	out := termenv.NewOutput(w)
	_, err := io.WriteString(w, Pretty(out, b))
	return err
}
