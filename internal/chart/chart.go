package chart

import (
	"fmt"
	"image/color"

	"github.com/user/ecc_plotter_go/internal/results"
)

// Marker selects the glyph drawn on a curve's data points. Simulated series
// carry a hollow marker; theoretical references carry none, so the two kinds
// are distinguishable at a glance.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerRing
	MarkerSquare
)

// SeriesSpec describes one curve of a chart: the column it reads, its
// resolved legend label and its fixed styling.
type SeriesSpec struct {
	Column string
	Label  string
	Color  color.Color
	Marker Marker
}

// Spec is the declarative description of one chart. The y-range is always
// [1e-5, 1] regardless of the data; out-of-range points are clipped
// presentationally by the axis, never removed from the series.
type Spec struct {
	XColumn    string
	XLabel     string
	YLabel     string
	YMin, YMax float64
	Series     []SeriesSpec
	Annotation string
}

// FamilySeries is the per-family template a SeriesSpec is resolved from.
// CodedLabel, when non-empty, interpolates (N, K) and is used whenever code
// parameters are known; GenericLabel is the fallback.
type FamilySeries struct {
	Column       string
	GenericLabel string
	CodedLabel   string
	Color        color.Color
	Marker       Marker
}

// Family ties a chart to its input: the filename prefix it is discovered by,
// the columns it needs and the series it draws. Title names the chart in the
// summary report; the chart itself stays title-free.
type Family struct {
	Name       string
	Title      string
	Prefix     string
	XColumn    string
	YLabel     string
	OutputStem string
	Coded      bool
	Series     []FamilySeries
}

var (
	green = color.RGBA{G: 0x80, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

// Families returns the chart catalog: one parameterized pipeline run per
// entry, in rendering order.
func Families() []Family {
	return []Family{
		{
			Name:       "nsc_ber",
			Title:      "NSC Viterbi BER",
			Prefix:     "nsc_ber",
			XColumn:    "EbN0_dB",
			YLabel:     "Bit Error Rate (BER)",
			OutputStem: "nsc_ber_graph",
			Series: []FamilySeries{
				{Column: "BER_soft", GenericLabel: "Soft-decision Viterbi", Color: green, Marker: MarkerRing},
				{Column: "BER_hard", GenericLabel: "Hard-decision Viterbi", Color: blue, Marker: MarkerSquare},
				{Column: "BER_bpsk", GenericLabel: "Uncoded BPSK (theory)", Color: red, Marker: MarkerNone},
			},
		},
		{
			Name:       "rs_ber",
			Title:      "Reed-Solomon BER",
			Prefix:     "rs_ber",
			XColumn:    "EbN0_dB",
			YLabel:     "Bit Error Rate (BER)",
			OutputStem: "rs_ber_graph",
			Coded:      true,
			Series: []FamilySeries{
				{Column: "BER_RS", GenericLabel: "Reed-Solomon BPSK", CodedLabel: "RS(%d,%d) coded BPSK", Color: green, Marker: MarkerRing},
				{Column: "BER_bpsk", GenericLabel: "Uncoded BPSK (theory)", Color: red, Marker: MarkerNone},
			},
		},
		{
			Name:       "rs_bler",
			Title:      "Reed-Solomon BLER",
			Prefix:     "rs_bler",
			XColumn:    "EbN0_dB",
			YLabel:     "Block Error Rate (BLER)",
			OutputStem: "rs_bler_graph",
			Coded:      true,
			Series: []FamilySeries{
				{Column: "BLER_RS", GenericLabel: "Reed-Solomon BPSK", CodedLabel: "RS(%d,%d) coded BPSK", Color: green, Marker: MarkerSquare},
				{Column: "BLER_bpsk", GenericLabel: "Uncoded BPSK (theory)", Color: red, Marker: MarkerNone},
			},
		},
	}
}

// RequiredColumns lists the columns the family's input table must provide.
func (f Family) RequiredColumns() []string {
	cols := []string{f.XColumn}
	for _, s := range f.Series {
		cols = append(cols, s.Column)
	}
	return cols
}

// Spec resolves the family template against the code parameters known for
// this run. A nil params is the valid parameter-free case: generic labels
// and no annotation.
func (f Family) Spec(params *results.SchemeParams) Spec {
	spec := Spec{
		XColumn: f.XColumn,
		XLabel:  "Eb/N0 [dB]",
		YLabel:  f.YLabel,
		YMin:    1e-5,
		YMax:    1,
	}
	for _, s := range f.Series {
		label := s.GenericLabel
		if params != nil && s.CodedLabel != "" {
			label = fmt.Sprintf(s.CodedLabel, params.N, params.K)
		}
		spec.Series = append(spec.Series, SeriesSpec{
			Column: s.Column,
			Label:  label,
			Color:  s.Color,
			Marker: s.Marker,
		})
	}
	if params != nil {
		spec.Annotation = fmt.Sprintf("m=%d", params.M)
	}
	return spec
}
