package results

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Table holds the named numeric columns of one loaded result file. All
// columns have the same length; rows keep the file's order.
type Table struct {
	Path    string
	columns map[string][]float64
	rows    int
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Column returns the named column, or false if the file did not contain it.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Load reads a comma-separated result file with a header row into named
// float columns. Every listed required column must be present (*SchemaError
// otherwise) and every cell must parse as a float (*ParseError otherwise).
// Values are taken as given: no resampling, interpolation or unit conversion.
func Load(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening result file %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s: empty file, expected a header row", path)
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; dup {
			return nil, errors.Errorf("%s: duplicate column %q in header", path, name)
		}
		index[name] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, &SchemaError{File: path, Column: name}
		}
	}

	t := &Table{
		Path:    path,
		columns: make(map[string][]float64, len(header)),
		rows:    len(records) - 1,
	}
	for _, name := range header {
		t.columns[name] = make([]float64, 0, t.rows)
	}
	for rowIdx, row := range records[1:] {
		for _, name := range header {
			cell := row[index[name]]
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &ParseError{File: path, Row: rowIdx + 1, Column: name, Err: err}
			}
			t.columns[name] = append(t.columns[name], val)
		}
	}
	return t, nil
}
