package results

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// SelectPolicy decides which candidate wins when more than one file in the
// results directory matches a chart's filename prefix.
type SelectPolicy string

const (
	// SelectFirst picks the lexicographically first candidate.
	SelectFirst SelectPolicy = "first"
	// SelectNewest picks the most recently modified candidate.
	SelectNewest SelectPolicy = "newest"
	// SelectStrict treats multiple candidates as an error.
	SelectStrict SelectPolicy = "strict"
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(s string) (SelectPolicy, error) {
	switch p := SelectPolicy(s); p {
	case SelectFirst, SelectNewest, SelectStrict:
		return p, nil
	}
	return "", errors.Errorf("unknown selection policy %q (want first, newest or strict)", s)
}

// Locate scans dir for regular files whose name starts with prefix and
// returns the path of the selected one. Zero matches is a *MissingInputError;
// multiple matches are resolved according to policy.
func Locate(dir, prefix string, policy SelectPolicy) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "reading results directory %s", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", &MissingInputError{Dir: dir, Pattern: prefix + "*"}
	}
	sort.Strings(names)

	switch policy {
	case SelectNewest:
		newest := names[0]
		var newestMod int64
		for _, name := range names {
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				return "", errors.Wrapf(err, "stat %s", name)
			}
			if mod := info.ModTime().UnixNano(); mod > newestMod {
				newest, newestMod = name, mod
			}
		}
		return filepath.Join(dir, newest), nil
	case SelectStrict:
		if len(names) > 1 {
			return "", &AmbiguousInputError{Dir: dir, Pattern: prefix + "*", Candidates: names}
		}
		return filepath.Join(dir, names[0]), nil
	default: // SelectFirst
		return filepath.Join(dir, names[0]), nil
	}
}
