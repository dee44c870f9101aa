package spectral

import (
	"math"
	"sort"

	apperrors "github.com/FocuswithJustin/ccss2edr/core/errors"
)

// SpragueMinKnots is the fewest samples Sprague interpolation can work with:
// each boundary extension is fitted through six knots.
const SpragueMinKnots = 6

// spragueBoundary holds the CIE extrapolation weights for the two padding
// ordinates on each side of the data, outer ordinate first on the left and
// inner first on the right. Every row sums to spragueBoundaryDiv.
var spragueBoundary = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

const spragueBoundaryDiv = 209

// Sprague is a Sprague (1880) quintic interpolator over fixed knots.
type Sprague struct {
	x []float64
	// r holds the ordinates padded with two extrapolated values on each side.
	r []float64
}

// NewSprague prepares an interpolator for samples y at strictly increasing knots x.
func NewSprague(x, y []float64) (*Sprague, error) {
	if len(x) != len(y) {
		return nil, apperrors.NewInconsistent("sprague ordinates", len(x), len(y))
	}
	if len(x) < SpragueMinKnots {
		return nil, apperrors.NewValidation("knots", "sprague interpolation needs at least 6 samples")
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, apperrors.NewValidation("knots", "knots must be strictly increasing")
		}
	}

	n := len(y)
	r := make([]float64, n+4)
	copy(r[2:], y)
	head := y[:6]
	tail := y[n-6:]
	r[0] = weighted(spragueBoundary[0], head) / spragueBoundaryDiv
	r[1] = weighted(spragueBoundary[1], head) / spragueBoundaryDiv
	r[n+2] = weighted(spragueBoundary[2], tail) / spragueBoundaryDiv
	r[n+3] = weighted(spragueBoundary[3], tail) / spragueBoundaryDiv

	xs := make([]float64, n)
	copy(xs, x)
	return &Sprague{x: xs, r: r}, nil
}

func weighted(w [6]float64, v []float64) float64 {
	sum := 0.0
	for i := range w {
		sum += w[i] * v[i]
	}
	return sum
}

// At evaluates the interpolant at xv. Knots return their sample exactly.
// Values outside [x0, xn] yield NaN.
func (s *Sprague) At(xv float64) float64 {
	n := len(s.x)
	if xv < s.x[0] || xv > s.x[n-1] || math.IsNaN(xv) {
		return math.NaN()
	}
	k := sort.SearchFloat64s(s.x, xv)
	if s.x[k] == xv {
		return s.r[k+2]
	}

	// xv lies strictly inside [x[k-1], x[k]]; in padded coordinates the
	// interval starts at i = k+1 and the stencil spans r[i-2] .. r[i+3].
	j := k - 1
	t := (xv - s.x[j]) / (s.x[k] - s.x[j])
	return spragueQuintic(t, s.r[j:j+6])
}

// spragueQuintic evaluates the Sprague interval polynomial at t in [0,1]
// for the six ordinates r[i-2], r[i-1], r[i], r[i+1], r[i+2], r[i+3].
func spragueQuintic(t float64, p []float64) float64 {
	rm2, rm1, r0, r1, r2, r3 := p[0], p[1], p[2], p[3], p[4], p[5]

	a0 := r0
	a1 := (2*rm2 - 16*rm1 + 16*r1 - 2*r2) / 24
	a2 := (-rm2 + 16*rm1 - 30*r0 + 16*r1 - r2) / 24
	a3 := (-9*rm2 + 39*rm1 - 70*r0 + 66*r1 - 33*r2 + 7*r3) / 24
	a4 := (13*rm2 - 64*rm1 + 126*r0 - 124*r1 + 61*r2 - 12*r3) / 24
	a5 := (-5*rm2 + 25*rm1 - 50*r0 + 50*r1 - 25*r2 + 5*r3) / 24

	return ((((a5*t+a4)*t+a3)*t+a2)*t+a1)*t + a0
}

// SpragueResample evaluates the Sprague interpolant of (x, y) at every xi.
// All xi must lie within [x0, xn].
func SpragueResample(x, y, xi []float64) ([]float64, error) {
	s, err := NewSprague(x, y)
	if err != nil {
		return nil, err
	}
	lo, hi := x[0], x[len(x)-1]
	out := make([]float64, len(xi))
	for i, v := range xi {
		if v < lo || v > hi || math.IsNaN(v) {
			return nil, &apperrors.ValidationError{
				Field:   "xi",
				Message: "evaluation point outside the sampled range",
			}
		}
		out[i] = s.At(v)
	}
	return out, nil
}
