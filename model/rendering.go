package model

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	gridPosAlive = "*"
	gridPosDead  = "-"

	ansiGreen = "\033[92m"
	ansiReset = "\033[0m"

	// Cursor home followed by erase-display
	ansiClear = "\033[H\033[2J"
)

// Palette holds the colour codes wrapped around alive cells. A zero Palette
// renders plain text.
type Palette struct {
	Alive string
	Reset string
}

// ColorPalette highlights alive cells in green
func ColorPalette() Palette {
	return Palette{Alive: ansiGreen, Reset: ansiReset}
}

// DetectPalette returns ColorPalette when enabled and f is a terminal,
// otherwise a plain palette
func DetectPalette(enabled bool, f *os.File) Palette {
	if !enabled || f == nil {
		return Palette{}
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return Palette{}
	}
	return ColorPalette()
}

// Frame is the per-tick status shown above the board
type Frame struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out     io.Writer
	Palette Palette
}

// NewTerminalRenderer renders to out using the given palette
func NewTerminalRenderer(out io.Writer, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Palette: palette}
}

// Display renders the board, one row per line
func (r *TerminalRenderer) Display(b *Board) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if b.cells[row][col] == Alive {
				fmt.Fprintf(r.Out, "%s%s%s ", r.Palette.Alive, gridPosAlive, r.Palette.Reset)
			} else {
				fmt.Fprint(r.Out, gridPosDead+" ")
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Status prints a one-line summary of the current generation
func (r *TerminalRenderer) Status(f Frame, b *Board) {
	density := float64(f.Population) / float64(b.rows*b.cols) * 100
	fmt.Fprintf(r.Out, "Gen: %d | Living: %d | Born: %d | Died: %d | Density: %.1f%%\n",
		f.Generation, f.Population, f.Births, f.Deaths, density)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClear)
}
