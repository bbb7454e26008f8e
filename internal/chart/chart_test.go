package chart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/user/ecc_plotter_go/internal/results"
)

func familyByName(t *testing.T, name string) Family {
	t.Helper()
	for _, f := range Families() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no family %q in catalog", name)
	return Family{}
}

func TestCatalogOrder(t *testing.T) {
	chk := require.New(t)
	var names []string
	for _, f := range Families() {
		names = append(names, f.Name)
	}
	chk.Equal([]string{"nsc_ber", "rs_ber", "rs_bler"}, names)
}

func TestCatalogTitlesDistinct(t *testing.T) {
	chk := require.New(t)
	// Both BER charts share a y-label, so report headings come from Title
	// and every family needs its own.
	seen := make(map[string]bool)
	for _, f := range Families() {
		chk.NotEmpty(f.Title)
		chk.False(seen[f.Title], "duplicate title %q", f.Title)
		seen[f.Title] = true
	}
}

func TestRequiredColumns(t *testing.T) {
	chk := require.New(t)
	chk.Equal(
		[]string{"EbN0_dB", "BER_soft", "BER_hard", "BER_bpsk"},
		familyByName(t, "nsc_ber").RequiredColumns(),
	)
	chk.Equal(
		[]string{"EbN0_dB", "BLER_RS", "BLER_bpsk"},
		familyByName(t, "rs_bler").RequiredColumns(),
	)
}

func TestSpecWithParams(t *testing.T) {
	chk := require.New(t)
	fam := familyByName(t, "rs_ber")
	spec := fam.Spec(&results.SchemeParams{M: 8, N: 255, K: 223})

	chk.Equal("RS(255,223) coded BPSK", spec.Series[0].Label)
	chk.Equal("Uncoded BPSK (theory)", spec.Series[1].Label)
	chk.Equal("m=8", spec.Annotation)
	chk.Equal(1e-5, spec.YMin)
	chk.Equal(1.0, spec.YMax)
}

func TestSpecWithoutParams(t *testing.T) {
	chk := require.New(t)
	spec := familyByName(t, "rs_ber").Spec(nil)

	chk.Equal("Reed-Solomon BPSK", spec.Series[0].Label)
	chk.Empty(spec.Annotation)
}

func TestSpecMarkerConvention(t *testing.T) {
	chk := require.New(t)

	// Simulated series carry a hollow marker, theoretical references none.
	nsc := familyByName(t, "nsc_ber").Spec(nil)
	chk.Equal(MarkerRing, nsc.Series[0].Marker)
	chk.Equal(MarkerSquare, nsc.Series[1].Marker)
	chk.Equal(MarkerNone, nsc.Series[2].Marker)

	bler := familyByName(t, "rs_bler").Spec(nil)
	chk.Equal(MarkerSquare, bler.Series[0].Marker)
	chk.Equal(MarkerNone, bler.Series[1].Marker)
}
