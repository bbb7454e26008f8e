package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("EbN0_dB\n0\n"), 0o644))
	return path
}

func TestLocateSingleMatch(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	want := touch(t, dir, "rs_ber_m8_N255_K223.csv")
	touch(t, dir, "rs_bler_data.csv")

	got, err := Locate(dir, "rs_ber", SelectFirst)
	chk.NoError(err)
	chk.Equal(want, got)
}

func TestLocateNoMatch(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	touch(t, dir, "nsc_ber_data.csv")

	_, err := Locate(dir, "rs_bler", SelectFirst)
	chk.Error(err)
	var missing *MissingInputError
	chk.True(errors.As(err, &missing))
	chk.Equal("rs_bler*", missing.Pattern)
	chk.Contains(err.Error(), "rs_bler*")
}

func TestLocateFirstIsLexicographic(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	touch(t, dir, "rs_ber_v2.csv")
	want := touch(t, dir, "rs_ber_data.csv")

	got, err := Locate(dir, "rs_ber", SelectFirst)
	chk.NoError(err)
	chk.Equal(want, got)
}

func TestLocateNewest(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	older := touch(t, dir, "rs_ber_data.csv")
	newer := touch(t, dir, "rs_ber_v2.csv")

	base := time.Now().Add(-time.Hour)
	chk.NoError(os.Chtimes(older, base, base))
	chk.NoError(os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

	got, err := Locate(dir, "rs_ber", SelectNewest)
	chk.NoError(err)
	chk.Equal(newer, got)
}

func TestLocateStrict(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	want := touch(t, dir, "rs_ber_data.csv")

	got, err := Locate(dir, "rs_ber", SelectStrict)
	chk.NoError(err)
	chk.Equal(want, got)

	touch(t, dir, "rs_ber_v2.csv")
	_, err = Locate(dir, "rs_ber", SelectStrict)
	var ambiguous *AmbiguousInputError
	chk.True(errors.As(err, &ambiguous))
	chk.Len(ambiguous.Candidates, 2)
}

func TestLocateSkipsDirectories(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()
	chk.NoError(os.Mkdir(filepath.Join(dir, "rs_ber_archive"), 0o755))
	want := touch(t, dir, "rs_ber_data.csv")

	got, err := Locate(dir, "rs_ber", SelectFirst)
	chk.NoError(err)
	chk.Equal(want, got)
}

func TestLocateMissingDirectory(t *testing.T) {
	chk := require.New(t)
	_, err := Locate(filepath.Join(t.TempDir(), "nope"), "rs_ber", SelectFirst)
	chk.Error(err)
}

func TestParsePolicy(t *testing.T) {
	chk := require.New(t)
	for _, name := range []string{"first", "newest", "strict"} {
		p, err := ParsePolicy(name)
		chk.NoError(err)
		chk.Equal(SelectPolicy(name), p)
	}
	_, err := ParsePolicy("latest")
	chk.Error(err)
	chk.Contains(err.Error(), "latest")
}
