package spectral

import (
	"errors"
	"testing"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/testutil"
)

func TestNewCopiesRows(t *testing.T) {
	rows := [][]float64{{1, 2, 3}}
	ds, err := New(380, 382, 1, UnitWatt, rows)
	if err != nil {
		t.Fatal(err)
	}
	rows[0][0] = 99
	if got := ds.Set(0)[0]; got != 1 {
		t.Errorf("data set changed with caller rows: %v", got)
	}

	set := ds.Set(0)
	set[1] = 99
	all := ds.Sets()
	all[0][2] = 99
	testutil.RequireSliceEqual(t, ds.Set(0), []float64{1, 2, 3})
}

func TestNewValidation(t *testing.T) {
	if _, err := New(380, 380, 1, UnitWatt, nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("no rows: err = %v, want ErrInvalidInput", err)
	}
	if _, err := New(380, 380, 1, UnitWatt, [][]float64{{}}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("empty rows: err = %v, want ErrInvalidInput", err)
	}
	if _, err := New(380, 382, 1, UnitWatt, [][]float64{{1, 2, 3}, {1, 2}}); !errors.Is(err, apperrors.ErrInconsistent) {
		t.Errorf("ragged rows: err = %v, want ErrInconsistent", err)
	}
}

func TestWavelengths(t *testing.T) {
	ds, err := New(380, 384, 1, UnitMilliwatt, [][]float64{{0, 0, 0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceEqual(t, ds.Wavelengths(), []float64{380, 381, 382, 383, 384})
}

func TestUnitString(t *testing.T) {
	if UnitMilliwatt.String() != "mW/nm/m^2" || UnitWatt.String() != "W/nm/m^2" {
		t.Errorf("unexpected unit names %q %q", UnitMilliwatt, UnitWatt)
	}
	if Unit(7).String() != "Unit(7)" {
		t.Errorf("Unit(7).String() = %q", Unit(7).String())
	}
}
