package spectral

import (
	"errors"
	"testing"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/testutil"
)

func gridRows(n, cols int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = testutil.Ramp(float64(i), 0.01, cols)
	}
	return rows
}

func TestFromGrid(t *testing.T) {
	rows := gridRows(3, 401)
	ds, err := FromGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	if ds.StartNM() != 380 || ds.EndNM() != 780 || ds.SpaceNM() != 1 || ds.Norm() != 1 {
		t.Errorf("grid = %v..%v step %v norm %v", ds.StartNM(), ds.EndNM(), ds.SpaceNM(), ds.Norm())
	}
	if ds.NumBands() != 401 || ds.NumSets() != 3 {
		t.Errorf("bands=%d sets=%d", ds.NumBands(), ds.NumSets())
	}
	if ds.Unit() != UnitWatt {
		t.Errorf("unit = %v, want W", ds.Unit())
	}
	if ds.InWatts() != ds {
		t.Error("grid data is already in watts")
	}
	for i := range rows {
		testutil.RequireSliceEqual(t, ds.Set(i), rows[i])
	}
}

func TestFromGridShape(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		ok   bool
	}{
		{"minimum rows", gridRows(3, 401), true},
		{"many rows", gridRows(12, 401), true},
		{"two rows", gridRows(2, 401), false},
		{"no rows", nil, false},
		{"400 columns", gridRows(3, 400), false},
		{"402 columns", gridRows(4, 402), false},
		{"one ragged row", append(gridRows(3, 401), make([]float64, 399)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGrid(tt.rows)
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, apperrors.ErrInvalidGridShape) {
				t.Fatalf("err = %v, want ErrInvalidGridShape", err)
			}
		})
	}
}
