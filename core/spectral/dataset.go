package spectral

import (
	"fmt"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
)

// Canonical grid used by EDR consumers.
const (
	CanonicalStartNM = 380.0
	CanonicalEndNM   = 780.0
	CanonicalSpaceNM = 1.0
)

// Unit identifies the radiometric unit of the samples in a DataSet.
type Unit int

const (
	// UnitMilliwatt is mW/nm/m², as written by calibration sources.
	UnitMilliwatt Unit = iota
	// UnitWatt is W/nm/m², the unit stored in EDR files.
	UnitWatt
)

func (u Unit) String() string {
	switch u {
	case UnitMilliwatt:
		return "mW/nm/m^2"
	case UnitWatt:
		return "W/nm/m^2"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// DataSet is a normalized set of spectral measurements on a 1 nm grid.
// It is immutable; accessors return copies.
type DataSet struct {
	startNM  float64
	endNM    float64
	spaceNM  float64
	norm     float64
	numBands int
	unit     Unit
	sets     [][]float64
}

// New assembles a DataSet on a 1 nm grid starting at startNM. Every row must
// have the same length, which becomes the band count. Rows are copied.
func New(startNM, endNM, norm float64, unit Unit, rows [][]float64) (*DataSet, error) {
	if len(rows) == 0 {
		return nil, apperrors.NewValidation("sets", "no spectral sets")
	}
	bands := len(rows[0])
	if bands == 0 {
		return nil, apperrors.NewValidation("bands", "spectral sets are empty")
	}
	sets := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != bands {
			return nil, apperrors.NewInconsistent(fmt.Sprintf("bands in set %d", i), bands, len(row))
		}
		sets[i] = append([]float64(nil), row...)
	}
	return &DataSet{
		startNM:  startNM,
		endNM:    endNM,
		spaceNM:  CanonicalSpaceNM,
		norm:     norm,
		numBands: bands,
		unit:     unit,
		sets:     sets,
	}, nil
}

// StartNM returns the wavelength of the first band.
func (d *DataSet) StartNM() float64 { return d.startNM }

// EndNM returns the wavelength of the last band.
func (d *DataSet) EndNM() float64 { return d.endNM }

// SpaceNM returns the band spacing, always 1 nm.
func (d *DataSet) SpaceNM() float64 { return d.spaceNM }

// Norm returns the source normalization scalar.
func (d *DataSet) Norm() float64 { return d.norm }

// NumBands returns the number of samples per set.
func (d *DataSet) NumBands() int { return d.numBands }

// NumSets returns the number of spectral sets.
func (d *DataSet) NumSets() int { return len(d.sets) }

// Unit returns the unit of the samples.
func (d *DataSet) Unit() Unit { return d.unit }

// Set returns a copy of set i.
func (d *DataSet) Set(i int) []float64 {
	return append([]float64(nil), d.sets[i]...)
}

// Sets returns a copy of all sets.
func (d *DataSet) Sets() [][]float64 {
	out := make([][]float64, len(d.sets))
	for i := range d.sets {
		out[i] = d.Set(i)
	}
	return out
}

// Wavelengths returns the wavelength of every band.
func (d *DataSet) Wavelengths() []float64 {
	out := make([]float64, d.numBands)
	for i := range out {
		out[i] = d.startNM + float64(i)*d.spaceNM
	}
	return out
}

// InWatts returns the data set in W/nm/m². Milliwatt data is divided by 1000;
// data already in watts is returned as is, so repeated calls never rescale.
func (d *DataSet) InWatts() *DataSet {
	if d.unit == UnitWatt {
		return d
	}
	out := *d
	out.unit = UnitWatt
	out.sets = make([][]float64, len(d.sets))
	for i, row := range d.sets {
		conv := make([]float64, len(row))
		for j, v := range row {
			conv[j] = v / 1000
		}
		out.sets[i] = conv
	}
	return &out
}
