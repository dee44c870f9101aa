package spectral

import (
	"fmt"
	"log/slog"
	"math"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/logging"
)

// spacingTolerance absorbs rounding in (end-start)/(bands-1) for 1 nm sources.
const spacingTolerance = 1e-9

// Raw is a spectral table as declared by a calibration source. Rows must
// already be stripped of any leading identifier column.
type Raw struct {
	NumBands int
	StartNM  float64
	EndNM    float64
	Norm     float64
	NumSets  int
	Rows     [][]float64
}

// Option configures Normalize.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes normalization warnings to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Normalize aligns raw onto the canonical grid. Sources starting before
// 380 nm lose their leading bands with a warning; sources starting after it
// are rejected. Grids coarser than 1 nm are resampled with Sprague
// interpolation, 1 nm grids pass through untouched.
func Normalize(raw Raw, opts ...Option) (*DataSet, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.Or(o.logger)

	if raw.NumBands < 2 {
		return nil, &apperrors.ValidationError{
			Field:   "SPECTRAL_BANDS",
			Value:   fmt.Sprint(raw.NumBands),
			Message: "at least 2 bands are required",
		}
	}
	for i, row := range raw.Rows {
		if len(row) != raw.NumBands {
			return nil, apperrors.NewInconsistent(fmt.Sprintf("bands in set %d", i), raw.NumBands, len(row))
		}
	}

	start, end, bands := raw.StartNM, raw.EndNM, raw.NumBands
	space := (end - start) / float64(bands-1)

	if start > CanonicalStartNM {
		return nil, &apperrors.StartWavelengthError{StartNM: start, LimitNM: CanonicalStartNM}
	}
	skip := 0
	if start < CanonicalStartNM {
		skip = int(math.Floor((CanonicalStartNM - start) / space))
		start = CanonicalStartNM
		bands -= skip
		log.Warn("spectral data does not start at 380 nm, skipping leading bands",
			"skipped", skip, "start_nm", raw.StartNM)
	}
	if bands < 1 {
		return nil, apperrors.NewValidation("SPECTRAL_START_NM", "no bands left at or after 380 nm")
	}

	rows := make([][]float64, len(raw.Rows))
	for i, row := range raw.Rows {
		rows[i] = row[skip:]
	}

	switch {
	case math.Abs(space-CanonicalSpaceNM) <= spacingTolerance:
		// already on the 1 nm grid
	case space > CanonicalSpaceNM:
		var err error
		rows, err = resampleRows(rows, start, end, space)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.NewUnsupported("band spacing", fmt.Sprintf("%g nm is finer than 1 nm", space))
	}

	if raw.NumSets != len(rows) {
		return nil, apperrors.NewInconsistent("spectral sets", raw.NumSets, len(rows))
	}
	return New(start, end, raw.Norm, UnitMilliwatt, rows)
}

// resampleRows interpolates every row from knots start, start+space, ...,
// end onto the integer wavelengths start ... end.
func resampleRows(rows [][]float64, start, end, space float64) ([][]float64, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	n := len(rows[0])
	x := make([]float64, n)
	for k := range x {
		x[k] = start + float64(k)*space
	}
	x[n-1] = end

	xi := make([]float64, int(end-start)+1)
	for k := range xi {
		xi[k] = start + float64(k)
	}

	out := make([][]float64, len(rows))
	for i, row := range rows {
		yi, err := SpragueResample(x, row, xi)
		if err != nil {
			return nil, apperrors.Wrapf(err, "resample set %d", i)
		}
		out[i] = yi
	}
	return out, nil
}
