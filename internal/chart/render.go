package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/user/ecc_plotter_go/internal/results"
)

// ConfigurationError marks a mismatch between a chart's declared series and
// the columns actually loaded. It is a wiring defect, never a data problem.
type ConfigurationError struct {
	File   string
	Column string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("series column %q was not loaded from %s", e.Column, e.File)
}

// Render maps the spec's series onto a semilog chart. Every series keeps its
// full point count and x-order; values outside the y-range are clipped by the
// axis, not dropped.
func Render(spec Spec, table *results.Table) (*plot.Plot, error) {
	applyGlobalStyle()

	xs, ok := table.Column(spec.XColumn)
	if !ok {
		return nil, &ConfigurationError{File: table.Path, Column: spec.XColumn}
	}

	p := plot.New()
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Label.TextStyle.Font.Size = axisLabelFontSize
	p.Y.Label.TextStyle.Font.Size = axisLabelFontSize
	p.X.Tick.Label.Font.Size = tickLabelFontSize
	p.Y.Tick.Label.Font.Size = tickLabelFontSize

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 128}
	grid.Vertical.Width = gridLineWidth
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Color = color.Gray{Y: 128}
	grid.Horizontal.Width = gridLineWidth
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	for _, s := range spec.Series {
		ys, ok := table.Column(s.Column)
		if !ok {
			return nil, &ConfigurationError{File: table.Path, Column: s.Column}
		}

		line, err := plotter.NewLine(seriesPoints(xs, ys))
		if err != nil {
			return nil, errors.Wrapf(err, "building line for %q", s.Column)
		}
		line.LineStyle.Width = lineWidth
		line.Color = s.Color
		p.Add(line)

		if s.Marker == MarkerNone {
			p.Legend.Add(s.Label, line)
			continue
		}
		scatter, err := plotter.NewScatter(seriesPoints(xs, ys))
		if err != nil {
			return nil, errors.Wrapf(err, "building markers for %q", s.Column)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  s.Color,
			Radius: markerRadius,
			Shape:  glyphShape(s.Marker),
		}
		p.Add(scatter)
		p.Legend.Add(s.Label, line, scatter)
	}

	// Set the axis ranges after every series is added: Plot.Add widens the
	// ranges to cover each plotter's data, and the y-range must stay pinned
	// to [YMin, YMax] no matter what the data holds.
	p.Y.Min, p.Y.Max = spec.YMin, spec.YMax
	if len(xs) > 0 {
		p.X.Min, p.X.Max = floats.Min(xs), floats.Max(xs)
	}

	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = legendFontSize

	if spec.Annotation != "" {
		if err := addAnnotation(p, spec); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// seriesPoints pairs the shared x column with one y column. The table
// guarantees equal lengths.
func seriesPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// glyphShape returns the hollow glyph for a marker kind. Rings mark the
// soft-decision / BER family, squares the hard-decision / BLER family.
func glyphShape(m Marker) draw.GlyphDrawer {
	if m == MarkerSquare {
		return draw.SquareGlyph{}
	}
	return draw.RingGlyph{}
}

// addAnnotation places the code-parameter note just inside the lower-right
// corner of the plot area. The vertical nudge is taken in log space so the
// text clears the axis on the decade scale.
func addAnnotation(p *plot.Plot, spec Spec) error {
	x := p.X.Max - 0.02*(p.X.Max-p.X.Min)
	y := spec.YMin * math.Pow(spec.YMax/spec.YMin, 0.03)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{spec.Annotation},
	})
	if err != nil {
		return errors.Wrap(err, "building annotation")
	}
	labels.TextStyle[0].Font = serifFont(annotationFontSize)
	labels.TextStyle[0].XAlign = text.XRight
	labels.TextStyle[0].YAlign = text.YBottom
	p.Add(labels)
	return nil
}
