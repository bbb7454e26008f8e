package chart

import (
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
)

// Figure geometry and raster resolution shared by every chart.
const (
	FigWidth  = 7.5 * vg.Inch
	FigHeight = 6 * vg.Inch
	DPI       = 300
)

// Publication styling constants. These are process-wide defaults, not part of
// the renderer's contract.
const (
	lineWidth          = vg.Length(2.5)
	markerRadius       = vg.Length(4)
	gridLineWidth      = vg.Length(0.6)
	axisLabelFontSize  = vg.Length(18)
	tickLabelFontSize  = vg.Length(14)
	legendFontSize     = vg.Length(14)
	annotationFontSize = vg.Length(14)
)

// Liberation Serif is metrically compatible with Times, the face the charts
// are set in.
var serif = font.Font{Typeface: "Liberation", Variant: "Serif"}

var styleOnce sync.Once

// applyGlobalStyle installs the serif default before the first chart is
// built. Set once at startup, read-only thereafter.
func applyGlobalStyle() {
	styleOnce.Do(func() {
		plot.DefaultFont = serif
	})
}

func serifFont(size vg.Length) font.Font {
	f := serif
	f.Size = size
	return f
}
