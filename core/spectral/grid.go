package spectral

import (
	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
)

// Shape of a fixed-grid correlation matrix.
const (
	GridBands   = 401
	GridMinSets = 3
)

// FromGrid builds a DataSet from rows already sampled at 380–780 nm in 1 nm
// steps. Values are taken to be in W/nm/m² and are not resampled.
func FromGrid(rows [][]float64) (*DataSet, error) {
	if len(rows) < GridMinSets {
		return nil, &apperrors.GridShapeError{
			Rows:        len(rows),
			MinRows:     GridMinSets,
			WantCols:    GridBands,
			OffendingAt: -1,
		}
	}
	for i, row := range rows {
		if len(row) != GridBands {
			return nil, &apperrors.GridShapeError{
				Rows:        len(rows),
				Cols:        len(row),
				MinRows:     GridMinSets,
				WantCols:    GridBands,
				OffendingAt: i,
			}
		}
	}
	return New(CanonicalStartNM, CanonicalEndNM, 1.0, UnitWatt, rows)
}
