package chart

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteArtifacts(t *testing.T) {
	chk := require.New(t)
	p, err := Render(familyByName(t, "rs_ber").Spec(nil), rsFixture(t))
	chk.NoError(err)

	// The images directory does not exist yet; creation is recursive.
	dir := filepath.Join(t.TempDir(), "out", "images")
	art, err := WriteArtifacts(p, dir, "rs_ber_graph")
	chk.NoError(err)
	chk.Equal(filepath.Join(dir, "rs_ber_graph.png"), art.PNG)
	chk.Equal(filepath.Join(dir, "rs_ber_graph.svg"), art.SVG)

	// Round-trip: the raster artifact decodes to the figure size at the
	// configured DPI.
	raw, err := os.ReadFile(art.PNG)
	chk.NoError(err)
	img, err := png.Decode(bytes.NewReader(raw))
	chk.NoError(err)
	chk.InDelta(7.5*DPI, img.Bounds().Dx(), 2)
	chk.InDelta(6*DPI, img.Bounds().Dy(), 2)

	svg, err := os.ReadFile(art.SVG)
	chk.NoError(err)
	chk.Contains(string(svg), "<svg")
}

func TestWriteArtifactsOverwrites(t *testing.T) {
	chk := require.New(t)
	p, err := Render(familyByName(t, "rs_ber").Spec(nil), rsFixture(t))
	chk.NoError(err)

	dir := t.TempDir()
	_, err = WriteArtifacts(p, dir, "rs_ber_graph")
	chk.NoError(err)
	_, err = WriteArtifacts(p, dir, "rs_ber_graph")
	chk.NoError(err)
}

func TestPNGBytes(t *testing.T) {
	chk := require.New(t)
	p, err := Render(familyByName(t, "rs_bler").Spec(nil), loadFixture(t,
		"EbN0_dB,BLER_RS,BLER_bpsk\n0,0.9,0.95\n5,0.01,0.4\n",
		[]string{"EbN0_dB", "BLER_RS", "BLER_bpsk"},
	))
	chk.NoError(err)

	raw, err := PNGBytes(p)
	chk.NoError(err)
	img, err := png.Decode(bytes.NewReader(raw))
	chk.NoError(err)
	chk.NotZero(img.Bounds().Dx())
}
