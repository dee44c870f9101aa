package spectral

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
	"github.com/FocuswithJustin/ccss2edr/internal/testutil"
)

func TestSpragueKnotsAreExact(t *testing.T) {
	x := testutil.Ramp(380, 5, 81)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = math.Sin(float64(i)*0.37) + 0.01*float64(i)
	}
	xi := testutil.Ramp(380, 1, 401)

	yi, err := SpragueResample(x, y, xi)
	if err != nil {
		t.Fatal(err)
	}
	if len(yi) != 401 {
		t.Fatalf("len = %d, want 401", len(yi))
	}
	for k := range y {
		if got := yi[5*k]; got != y[k] {
			t.Fatalf("knot %d (%v nm): got %v want %v", k, x[k], got, y[k])
		}
	}
}

func TestSpragueReproducesLinear(t *testing.T) {
	x := testutil.Ramp(380, 10, 41)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}
	xi := testutil.Ramp(380, 1, 401)
	want := make([]float64, len(xi))
	for i, v := range xi {
		want[i] = 2*v + 1
	}

	yi, err := SpragueResample(x, y, xi)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, yi, want, 1e-9)
}

func TestSpragueConstant(t *testing.T) {
	x := testutil.Ramp(0, 1, 8)
	y := []float64{3, 3, 3, 3, 3, 3, 3, 3}
	yi, err := SpragueResample(x, y, []float64{0.25, 3.5, 6.75})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, yi, []float64{3, 3, 3}, 1e-12)
}

// An interior impulse touches neither boundary extension, so the midpoint
// values follow directly from the interval polynomial coefficients.
func TestSpragueInteriorImpulse(t *testing.T) {
	x := testutil.Ramp(0, 1, 14)
	y := make([]float64, 14)
	y[7] = 1

	s, err := NewSprague(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		x, want float64
	}{
		{6.5, 0.5859375},
		{7.5, 0.5859375},
		{7, 1},
		{2, 0},
	} {
		if got := s.At(tc.x); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("At(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

// Reference values published with the colour-science SpragueInterpolator.
func TestSpragueReferenceValues(t *testing.T) {
	y := []float64{5.9200, 9.3700, 10.8135, 4.5100, 69.5900, 27.8007, 86.0500}
	s, err := NewSprague(testutil.Ramp(0, 1, len(y)), y)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		x, want float64
	}{
		{0.25, 6.7295161},
		{0.5, 7.2185025},
		{0.75, 7.8140625},
	} {
		if got := s.At(tc.x); math.Abs(got-tc.want) > 1e-7 {
			t.Errorf("At(%v) = %.10f, want %v", tc.x, got, tc.want)
		}
	}
}

func TestSpragueBoundaryExtension(t *testing.T) {
	x := testutil.Ramp(0, 1, 8)

	left := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	s, err := NewSprague(x, left)
	if err != nil {
		t.Fatal(err)
	}
	if s.r[0] != 884.0/209 || s.r[1] != 508.0/209 {
		t.Errorf("left padding = %v, %v; want 884/209, 508/209", s.r[0], s.r[1])
	}

	right := []float64{0, 0, 0, 0, 0, 0, 0, 1}
	s, err = NewSprague(x, right)
	if err != nil {
		t.Fatal(err)
	}
	n := len(right)
	if s.r[n+2] != 508.0/209 || s.r[n+3] != 884.0/209 {
		t.Errorf("right padding = %v, %v; want 508/209, 884/209", s.r[n+2], s.r[n+3])
	}
}

func TestSpragueSymmetricData(t *testing.T) {
	x := testutil.Ramp(0, 1, 11)
	y := []float64{0.1, 0.4, 0.9, 1.3, 1.6, 1.7, 1.6, 1.3, 0.9, 0.4, 0.1}
	s, err := NewSprague(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{0.2, 0.5, 1.3, 2.75, 4.1} {
		a, b := s.At(v), s.At(10-v)
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("At(%v) = %v, At(%v) = %v; want symmetric", v, a, 10-v, b)
		}
	}
}

func TestSpragueErrors(t *testing.T) {
	x6 := testutil.Ramp(0, 1, 6)
	y6 := []float64{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name string
		x, y []float64
		xi   []float64
		want error
	}{
		{"too few knots", testutil.Ramp(0, 1, 5), []float64{1, 2, 3, 4, 5}, nil, apperrors.ErrInvalidInput},
		{"length mismatch", x6, y6[:5], nil, apperrors.ErrInconsistent},
		{"not increasing", []float64{0, 1, 2, 2, 3, 4}, y6, nil, apperrors.ErrInvalidInput},
		{"below range", x6, y6, []float64{-0.5}, apperrors.ErrInvalidInput},
		{"above range", x6, y6, []float64{5.01}, apperrors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SpragueResample(tt.x, tt.y, tt.xi)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSpragueAtOutsideRange(t *testing.T) {
	s, err := NewSprague(testutil.Ramp(0, 1, 6), []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(s.At(-1)) || !math.IsNaN(s.At(6)) {
		t.Error("At outside the knot range should be NaN")
	}
	if got := s.At(5); got != 6 {
		t.Errorf("At(last knot) = %v, want 6", got)
	}
}
