// Package correlation reads fixed-grid correlation matrices: plain CSV files
// with one spectral set per row and one column per nanometer from 380 to
// 780 nm.
package correlation

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
	"github.com/FocuswithJustin/ccss2edr/internal/fileutil"
)

const formatName = "CSV"

// Grid is a parsed correlation matrix.
type Grid struct {
	// Descriptor is the file name up to its first '.'.
	Descriptor string
	Rows       [][]float64
}

// Read opens and parses the correlation file at path.
func Read(path string) (*Grid, error) {
	in, err := fileutil.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return Parse(in, path)
}

// Parse reads a correlation matrix from r. name supplies the descriptor and
// is used in error messages.
func Parse(r io.Reader, name string) (*Grid, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, &errors.ParseError{Format: formatName, Path: name, Message: err.Error(), Err: err}
	}
	if len(records) == 0 {
		return nil, errors.NewParse(formatName, name, "no rows")
	}

	width := len(records[0])
	for i, rec := range records {
		if len(rec) != width {
			return nil, errors.NewParse(formatName, name,
				fmt.Sprintf("row %d has %d columns, row 0 has %d", i, len(rec), width))
		}
	}
	if trailingEmpty(records) {
		width--
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, width)
		for j, cell := range rec[:width] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &errors.ParseError{
					Format:  formatName,
					Path:    name,
					Message: fmt.Sprintf("row %d column %d: %q is not a number", i, j, cell),
					Err:     err,
				}
			}
			row[j] = v
		}
		rows[i] = row
	}
	return &Grid{Descriptor: Descriptor(name), Rows: rows}, nil
}

// trailingEmpty reports whether the last column is blank in every record,
// as left behind by trailing commas.
func trailingEmpty(records [][]string) bool {
	last := len(records[0]) - 1
	if last < 1 {
		return false
	}
	for _, rec := range records {
		if strings.TrimSpace(rec[last]) != "" {
			return false
		}
	}
	return true
}

// Descriptor returns the base name of path up to its first '.'.
func Descriptor(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// DataSet checks the grid shape and returns it as a watt-unit DataSet.
func (g *Grid) DataSet() (*spectral.DataSet, error) {
	return spectral.FromGrid(g.Rows)
}
