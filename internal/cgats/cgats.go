// Package cgats reads keyed-tabular CGATS text files such as .ccss
// calibration files.
//
// A file starts with an identifier line, followed by KEY VALUE header lines,
// a BEGIN_DATA_FORMAT ... END_DATA_FORMAT block naming the columns and a
// BEGIN_DATA ... END_DATA block holding one row per set. Only the first
// table of a file is read.
package cgats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
)

const formatName = "CGATS"

// keywordKey declares a non-standard keyword; its lines are not fields.
const keywordKey = "KEYWORD"

// Table is the first table of a CGATS file.
type Table struct {
	Ident    string
	Fields   map[string]string
	Keys     []string // field names in file order
	Keywords []string // KEYWORD declarations
	Format   []string
	Rows     [][]string
}

// ReadTabular parses a CGATS file from r.
func ReadTabular(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", "", err)
	}
	return Parse("", data)
}

// Parse parses CGATS text. name is used in error messages.
func Parse(name string, data []byte) (*Table, error) {
	if n := len(data); n == 0 || (data[n-1] != '\n' && data[n-1] != '\r') {
		data = append(data[:n:n], '\n')
	}
	f, err := cgatsParser.ParseBytes(name, data)
	if err != nil {
		return nil, &errors.ParseError{Format: formatName, Path: name, Message: err.Error(), Err: err}
	}
	return buildTable(name, f)
}

func buildTable(name string, f *file) (*Table, error) {
	t := &Table{Ident: f.Ident, Fields: make(map[string]string)}
	var haveFormat, haveData bool

	for _, e := range f.Entries {
		switch {
		case e.Field != nil:
			if haveData {
				continue
			}
			key, value := e.Field.Key, fieldValue(e.Field.Value)
			if key == keywordKey {
				t.Keywords = append(t.Keywords, value)
				continue
			}
			if _, dup := t.Fields[key]; !dup {
				t.Keys = append(t.Keys, key)
			}
			t.Fields[key] = value
		case e.Format != nil:
			if haveFormat {
				continue
			}
			haveFormat = true
			t.Format = e.Format.Names
		case e.Data != nil:
			if haveData {
				continue
			}
			if !haveFormat {
				return nil, errors.NewParse(formatName, name, "BEGIN_DATA before BEGIN_DATA_FORMAT")
			}
			haveData = true
			for _, r := range e.Data.Rows {
				if len(r.Values) != len(t.Format) {
					return nil, errors.NewParse(formatName, name, fmt.Sprintf(
						"line %d: %d values, format has %d", r.Pos.Line, len(r.Values), len(t.Format)))
				}
				vals := make([]string, len(r.Values))
				for i, v := range r.Values {
					vals[i] = unquote(v)
				}
				t.Rows = append(t.Rows, vals)
			}
		}
	}
	if !haveData {
		return nil, errors.NewParse(formatName, name, "no BEGIN_DATA block")
	}
	return t, nil
}

// fieldValue joins unquoted header tokens with single spaces.
func fieldValue(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = unquote(tok)
	}
	return strings.Join(parts, " ")
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Has reports whether the header declares key.
func (t *Table) Has(key string) bool {
	_, ok := t.Fields[key]
	return ok
}

// Get returns the value of key, or "" if absent.
func (t *Table) Get(key string) string {
	return t.Fields[key]
}

// Float returns key as a float64. A missing key is a validation error.
func (t *Table) Float(key string) (float64, error) {
	v, ok := t.Fields[key]
	if !ok {
		return 0, errors.NewValidation(key, "required field missing")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, &errors.ValidationError{Field: key, Value: v, Message: "not a number", Err: err}
	}
	return f, nil
}

// Int returns key as an int. A missing key is a validation error.
func (t *Table) Int(key string) (int, error) {
	v, ok := t.Fields[key]
	if !ok {
		return 0, errors.NewValidation(key, "required field missing")
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &errors.ValidationError{Field: key, Value: v, Message: "not an integer", Err: err}
	}
	return n, nil
}

// Matrix returns the data rows as numbers, dropping the first skip columns.
func (t *Table) Matrix(skip int) ([][]float64, error) {
	if skip < 0 || skip > len(t.Format) {
		return nil, errors.NewValidation("skip", fmt.Sprintf("%d outside 0..%d", skip, len(t.Format)))
	}
	out := make([][]float64, len(t.Rows))
	for i, r := range t.Rows {
		vals := make([]float64, len(r)-skip)
		for j, s := range r[skip:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &errors.ParseError{
					Format:  formatName,
					Message: fmt.Sprintf("row %d column %s: %q is not a number", i, t.Format[skip+j], s),
					Err:     err,
				}
			}
			vals[j] = v
		}
		out[i] = vals
	}
	return out, nil
}
