package chart

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Artifact names the two files a rendered chart is persisted as.
type Artifact struct {
	PNG string
	SVG string
}

// WriteArtifacts persists p under dir as <stem>.png and <stem>.svg, creating
// dir first if needed. Existing files are overwritten without warning; any
// write failure aborts the run, nothing is retried.
func WriteArtifacts(p *plot.Plot, dir, stem string) (Artifact, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifact{}, errors.Wrapf(err, "creating image directory %s", dir)
	}
	art := Artifact{
		PNG: filepath.Join(dir, stem+".png"),
		SVG: filepath.Join(dir, stem+".svg"),
	}

	png, err := PNGBytes(p)
	if err != nil {
		return Artifact{}, err
	}
	if err := os.WriteFile(art.PNG, png, 0o644); err != nil {
		return Artifact{}, errors.Wrapf(err, "writing %s", art.PNG)
	}

	svg, err := SVGBytes(p)
	if err != nil {
		return Artifact{}, err
	}
	if err := os.WriteFile(art.SVG, svg, 0o644); err != nil {
		return Artifact{}, errors.Wrapf(err, "writing %s", art.SVG)
	}
	return art, nil
}

// PNGBytes rasterizes p at the figure size and configured DPI. The canvas is
// exactly the drawn content, no surrounding margin.
func PNGBytes(p *plot.Plot) ([]byte, error) {
	c := vgimg.NewWith(vgimg.UseWH(FigWidth, FigHeight), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}

// SVGBytes renders p to the vector format at the same figure size.
func SVGBytes(p *plot.Plot) ([]byte, error) {
	c := vgsvg.New(FigWidth, FigHeight)
	p.Draw(draw.New(c))
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encoding svg")
	}
	return buf.Bytes(), nil
}
