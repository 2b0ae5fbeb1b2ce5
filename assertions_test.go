package monolayer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	errors []string
	fatals []string
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestAssertLayerStack_ReportsMismatch(t *testing.T) {
	got := mat.NewDense(1, NumCols, []float64{10, 2, 0, 3, 0})
	rec := &recorder{TB: t}

	AssertLayerStack(rec, got, [][]float64{{10, 2.5, 0, 3, 0}}, DefaultAssertionConfig())

	assert.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "layer[0][1]")
}

func TestAssertLayerStack_Tolerance(t *testing.T) {
	got := mat.NewDense(1, NumCols, []float64{10, 2 + 1e-13, 0, 3, 0})
	rec := &recorder{TB: t}

	AssertLayerStack(rec, got, [][]float64{{10, 2, 0, 3, 0}}, DefaultAssertionConfig())

	assert.Empty(t, rec.errors)
}

func TestAssertImplausible_ReportsPlausible(t *testing.T) {
	cfg := dppcConfig()
	cfg.TailVolume = Number(600)
	rec := &recorder{TB: t}

	AssertImplausible(rec, mustNew(t, cfg))

	assert.Len(t, rec.errors, 1)
}

func TestAssertLayerStack_NilDense(t *testing.T) {
	rec := &recorder{TB: t}

	AssertLayerStack(rec, NewStructure("empty").Slabs(), [][]float64{{0, 0, 0, 0, 0}}, DefaultAssertionConfig())

	assert.Len(t, rec.fatals, 1)
	assert.Contains(t, rec.fatals[0], "nil")
}
