package convert

import (
	"strings"

	"github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/core/metadata"
	"github.com/FocuswithJustin/ccss2edr/core/spectral"
	"github.com/FocuswithJustin/ccss2edr/internal/cgats"
	"github.com/FocuswithJustin/ccss2edr/internal/fileutil"
)

// Calibration source keywords.
const (
	keyBands   = "SPECTRAL_BANDS"
	keyStartNM = "SPECTRAL_START_NM"
	keyEndNM   = "SPECTRAL_END_NM"
	keyNorm    = "SPECTRAL_NORM"
	keySets    = "NUMBER_OF_SETS"

	spectralColumnPrefix = "SPEC_"
)

// Calibration is a loaded calibration source.
type Calibration struct {
	Table  *cgats.Table
	Fields metadata.Fields
	Raw    spectral.Raw
}

// LoadCalibration reads and decodes the calibration file at path.
func LoadCalibration(path string) (*Calibration, error) {
	data, err := fileutil.ReadAll(path)
	if err != nil {
		return nil, err
	}
	t, err := cgats.Parse(path, data)
	if err != nil {
		return nil, err
	}
	raw, err := CalibrationRaw(t)
	if err != nil {
		return nil, errors.Wrapf(err, "calibration %s", path)
	}
	return &Calibration{Table: t, Fields: metadata.FieldsFromMap(t.Fields), Raw: raw}, nil
}

// CalibrationRaw extracts the declared spectral table from t. Columns before
// the first SPEC_ column, such as SAMPLE_ID, are dropped.
func CalibrationRaw(t *cgats.Table) (spectral.Raw, error) {
	var raw spectral.Raw
	var err error

	if raw.NumBands, err = t.Int(keyBands); err != nil {
		return raw, err
	}
	if raw.StartNM, err = t.Float(keyStartNM); err != nil {
		return raw, err
	}
	if raw.EndNM, err = t.Float(keyEndNM); err != nil {
		return raw, err
	}
	if raw.Norm, err = t.Float(keyNorm); err != nil {
		return raw, err
	}
	if raw.NumSets, err = t.Int(keySets); err != nil {
		return raw, err
	}

	skip := -1
	for i, name := range t.Format {
		if strings.HasPrefix(name, spectralColumnPrefix) {
			skip = i
			break
		}
	}
	if skip < 0 {
		return raw, errors.NewParse("CGATS", "", "no "+spectralColumnPrefix+"* columns in data format")
	}
	if raw.Rows, err = t.Matrix(skip); err != nil {
		return raw, err
	}
	return raw, nil
}
