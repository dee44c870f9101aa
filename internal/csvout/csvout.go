// Package csvout writes spectral data sets as diagnostic CSV: one row per
// wavelength, with the wavelength in column 0 and one column per set.
package csvout

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cwbudde/algo-vecmath"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
)

// Write writes ds to w in the data set's own units. With normalize, each set
// is scaled so its peak becomes 1; a set whose peak is 0 is written as is.
func Write(w io.Writer, ds *spectral.DataSet, normalize bool) error {
	sets := ds.Sets()
	if normalize {
		for _, s := range sets {
			PeakNormalize(s)
		}
	}

	cw := csv.NewWriter(w)
	wl := ds.Wavelengths()
	record := make([]string, 1+len(sets))
	for b, nm := range wl {
		record[0] = strconv.FormatFloat(nm, 'f', 0, 64)
		for i, s := range sets {
			record[i+1] = strconv.FormatFloat(s[b], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.NewIO("write", "CSV output", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewIO("write", "CSV output", err)
	}
	return nil
}

// PeakNormalize scales s in place by 1/max(s). It reports false, leaving s
// untouched, when the maximum is 0.
func PeakNormalize(s []float64) bool {
	if len(s) == 0 {
		return false
	}
	peak := s[0]
	for _, v := range s[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return false
	}
	vecmath.ScaleBlock(s, s, 1/peak)
	return true
}
