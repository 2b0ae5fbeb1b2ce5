package monolayer

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// AssertionConfig holds tolerances for layer table comparisons.
type AssertionConfig struct {
	// Absolute tolerance, used near zero
	AbsTol float64

	// Relative tolerance, used for large magnitudes
	RelTol float64
}

// DefaultAssertionConfig returns tolerances suited to SLDs computed from
// scattering lengths of order 1e-4 Å.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		AbsTol: 1e-9,
		RelTol: 1e-12,
	}
}

// AssertLayerStack checks that got has the shape of want and that every
// cell agrees within cfg's tolerances.
func AssertLayerStack(t testing.TB, got mat.Matrix, want [][]float64, cfg AssertionConfig) {
	t.Helper()

	if isNilTable(got) {
		t.Fatalf("layer table is nil, want %d rows", len(want))
		return
	}

	r, c := got.Dims()
	if r != len(want) || c != NumCols {
		t.Fatalf("layer table is %d×%d, want %d×%d", r, c, len(want), NumCols)
	}

	for i, row := range want {
		if len(row) != NumCols {
			t.Fatalf("want row %d has %d columns, need %d", i, len(row), NumCols)
		}
		for j, w := range row {
			g := got.At(i, j)
			if !scalar.EqualWithinAbsOrRel(g, w, cfg.AbsTol, cfg.RelTol) {
				t.Errorf("layer[%d][%d] = %.12g, want %.12g", i, j, g, w)
			}
		}
	}
}

// AssertPlausible checks that a component carries no penalty.
func AssertPlausible(t testing.TB, c Component) {
	t.Helper()

	if logp := c.LogP(); logp != 0 {
		t.Errorf("%s: logp = %v, want 0", c.Name(), logp)
	}
}

// AssertImplausible checks that a component is rejected outright.
func AssertImplausible(t testing.TB, c Component) {
	t.Helper()

	if logp := c.LogP(); !math.IsInf(logp, -1) {
		t.Errorf("%s: logp = %v, want -Inf", c.Name(), logp)
	}
}
