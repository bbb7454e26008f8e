package results

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// SchemeParams is the code parameter record for a Reed-Solomon style block
// code: symbols of M bits, codewords of N symbols carrying K message symbols.
// It may come from the run configuration or be recovered from a result
// filename; either source is optional.
type SchemeParams struct {
	M int `yaml:"m"`
	N int `yaml:"n"`
	K int `yaml:"k"`
}

// Validate checks an explicitly configured record. Filename-derived records
// are deliberately not validated; consistency with a real code (N = 2^m - 1)
// is never checked.
func (p SchemeParams) Validate() error {
	if p.M <= 0 || p.N <= 0 || p.K <= 0 {
		return errors.Errorf("code parameters must be positive, got m=%d N=%d K=%d", p.M, p.N, p.K)
	}
	if p.K > p.N {
		return errors.Errorf("message length K=%d exceeds codeword length N=%d", p.K, p.N)
	}
	return nil
}

var paramPattern = regexp.MustCompile(`m(\d+)_N(\d+)_K(\d+)`)

// ExtractParams attempts to recover code parameters from a filename of the
// form "...m8_N255_K223...". The first match wins. Names without the pattern
// are a supported case: the second return is false and no error is possible.
func ExtractParams(name string) (SchemeParams, bool) {
	m := paramPattern.FindStringSubmatch(name)
	if m == nil {
		return SchemeParams{}, false
	}
	// The pattern admits only digit runs, so Atoi cannot fail here.
	bits, _ := strconv.Atoi(m[1])
	n, _ := strconv.Atoi(m[2])
	k, _ := strconv.Atoi(m[3])
	return SchemeParams{M: bits, N: n, K: k}, true
}
