// SPDX-License-Identifier: MIT

// Package render prints matrices for humans: optional column alignment and
// colour (stored cells highlighted, zero fill dimmed) on top of
// sparse.Matrix.Format.
package render

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/orthosparse/internal/config"
	"github.com/katalvlaran/orthosparse/sparse"
)

// UseColor resolves a colour mode against the destination. In auto mode only
// an *os.File attached to a terminal gets colour.
func UseColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer renders grids. The zero value prints plain, unaligned output
// identical to sparse.Matrix.Print.
type Printer struct {
	// Color enables ANSI colouring.
	Color bool
	// Align right-justifies every entry to the widest one in the matrix.
	Align bool
}

// New returns a Printer for w with colour decided by mode.
func New(mode config.ColorMode, w io.Writer) *Printer {
	return &Printer{Color: UseColor(mode, w), Align: true}
}

// Print writes m to w.
func (p *Printer) Print(w io.Writer, m *sparse.Matrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return err
	}

	return m.Format(w, p.formatter(m))
}

// String renders m into a string.
func (p *Printer) String(m *sparse.Matrix) string {
	var sb strings.Builder
	_ = p.Print(&sb, m)

	return sb.String()
}

func (p *Printer) formatter(m *sparse.Matrix) sparse.CellFormatter {
	width := 0
	if p.Align {
		width = columnWidth(m)
	}
	stored := color.New(color.FgGreen, color.Bold)
	zero := color.New(color.Faint)
	if p.Color {
		stored.EnableColor()
		zero.EnableColor()
	} else {
		stored.DisableColor()
		zero.DisableColor()
	}

	return func(v float64, isStored bool) string {
		s := pad(sparse.FormatValue(v, isStored), width)
		if isStored {
			return stored.Sprint(s)
		}

		return zero.Sprint(s)
	}
}

// columnWidth is the widest entry the grid will contain.
func columnWidth(m *sparse.Matrix) int {
	w := 0
	if m.Len() < m.Rows()*m.Cols() {
		w = 1 // some "0" fill
	}
	for c := range m.All() {
		if n := utf8.RuneCountInString(sparse.FormatValue(c.Value, true)); n > w {
			w = n
		}
	}

	return w
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}

	return s
}
