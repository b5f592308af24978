// SPDX-License-Identifier: MIT

// Package spy draws the sparsity pattern of a matrix: one square marker per
// stored cell, column on the x axis and row on the y axis with row 1 at the
// top, the way MATLAB's spy does.
package spy

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/orthosparse/sparse"
)

// ErrFormat is returned for an output format other than png or svg.
var ErrFormat = errors.New("spy: unsupported format")

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Default canvas size in centimetres.
const (
	DefaultWidth  = 12.0
	DefaultHeight = 12.0
)

// Options controls the figure. Zero fields take defaults.
type Options struct {
	Title  string
	Format string  // png (default) or svg
	Width  float64 // cm
	Height float64 // cm
}

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	o.Format = strings.ToLower(o.Format)
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}

	return o
}

// FormatFromPath picks the format from a file extension, defaulting to png.
func FormatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), "."+FormatSVG) {
		return FormatSVG
	}

	return FormatPNG
}

// Render writes the spy plot of m to w.
func Render(w io.Writer, m *sparse.Matrix, opts Options) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("spy: %w", err)
	}
	opts = opts.withDefaults()
	if opts.Format != FormatPNG && opts.Format != FormatSVG {
		return fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}

	p, err := Plot(m, opts.Title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Centimeter, vg.Length(opts.Height)*vg.Centimeter, opts.Format)
	if err != nil {
		return fmt.Errorf("spy: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("spy: write: %w", err)
	}

	return nil
}

// Plot builds the figure without rendering it.
func Plot(m *sparse.Matrix, title string) (*plot.Plot, error) {
	p := plot.New()
	if title == "" {
		title = fmt.Sprintf("%d×%d, nnz = %d", m.Rows(), m.Cols(), m.Len())
	}
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Tick.Marker = rowTicks{}

	if m.Len() > 0 {
		pts := make(plotter.XYs, 0, m.Len())
		for c := range m.All() {
			pts = append(pts, plotter.XY{X: float64(c.Col), Y: -float64(c.Row)})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("spy: %w", err)
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Color = color.RGBA{R: 0x1f, G: 0x3b, B: 0x8c, A: 0xff}
		p.Add(s)
	}

	// Fixed ranges keep the frame equal to the matrix even where rows or
	// columns are empty.
	p.X.Min, p.X.Max = 0.5, float64(max(m.Cols(), 1))+0.5
	p.Y.Min, p.Y.Max = -float64(max(m.Rows(), 1))-0.5, -0.5

	return p, nil
}

// rowTicks labels the negated y axis with positive row numbers.
type rowTicks struct{}

func (rowTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = strconv.FormatFloat(0-ticks[i].Value, 'g', -1, 64)
		}
	}

	return ticks
}
