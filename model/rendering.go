package model

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	cellAlive = "██"
	cellEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to out, or to stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out}
}

// Display renders the world one X row per line
func (r *TerminalRenderer) Display(w *World) error {
	var (
		bw = bufio.NewWriter(r.Out)
		b  = w.Bounds()
	)
	for x := b.MinX; x <= b.MaxX; x++ {
		for y := b.MinY; y <= b.MaxY; y++ {
			if c, ok := w.Cell(Position{X: x, Y: y}); ok && c.IsAlive() {
				bw.WriteString(cellAlive)
			} else {
				bw.WriteString(cellEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Display] failed to write world")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return errors.Wrap(err, "[Clear] failed to clear terminal")
}
