package monolayer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dppcConfig is a DPPC-like monolayer on light water.
func dppcConfig() Config {
	return Config{
		AreaPerMolecule: Number(50),
		HeadScattering:  Complex(6e-4),
		HeadVolume:      Number(300),
		HeadThickness:   Number(10),
		TailScattering:  Complex(-3e-4),
		TailVolume:      Number(900),
		TailThickness:   Number(15),
		Roughness:       Number(3),
		SolventFraction: Number(0),
		HeadSolvent:     LightWater,
		Name:            "dppc",
	}
}

func mustNew(t testing.TB, cfg Config) *Model {
	t.Helper()
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func TestNew_ComplexScatteringLengthSplits(t *testing.T) {
	cfg := dppcConfig()
	cfg.HeadScattering = Complex(complex(6e-4, 2e-6))

	m := mustNew(t, cfg)

	head := m.HeadScattering()
	assert.Equal(t, "b_heads_real", head.Real.Name())
	assert.Equal(t, "b_heads_imag", head.Imag.Name())
	assert.Equal(t, 6e-4, head.Real.Value())
	assert.Equal(t, 2e-6, head.Imag.Value())
}

func TestNew_RealScatteringLengthGetsZeroImaginary(t *testing.T) {
	cfg := dppcConfig()
	cfg.TailScattering = Number(-3e-4)

	m := mustNew(t, cfg)

	tail := m.TailScattering()
	assert.Equal(t, "b_tails_real", tail.Real.Name())
	assert.Equal(t, "b_tails_imag", tail.Imag.Name())
	assert.Equal(t, -3e-4, tail.Real.Value())
	assert.Equal(t, 0.0, tail.Imag.Value())
}

func TestNew_ParameterScatteringLengthAdoptedAsReal(t *testing.T) {
	b := NewParameter(6e-4, "shared b")
	cfg := dppcConfig()
	cfg.HeadScattering = b

	m := mustNew(t, cfg)

	assert.Same(t, b, m.HeadScattering().Real)
	assert.Equal(t, 0.0, m.HeadScattering().Imag.Value())
}

func TestNew_SLDAdoptedAndShared(t *testing.T) {
	shared := NewSLD(complex(6e-4, 0), "pc head")
	cfg := dppcConfig()
	cfg.HeadScattering = shared

	a := mustNew(t, cfg)
	b := mustNew(t, cfg)

	assert.Same(t, shared.Real, a.HeadScattering().Real)
	assert.Same(t, shared.Imag, a.HeadScattering().Imag)
	assert.Same(t, a.HeadScattering().Real, b.HeadScattering().Real)

	before := a.Slabs().At(0, ColSLDReal)
	shared.Real.SetValue(1.2e-3)
	assert.InDelta(t, 2*before, a.Slabs().At(0, ColSLDReal), 1e-12)
	assert.InDelta(t, 2*before, b.Slabs().At(0, ColSLDReal), 1e-12)
}

func TestNew_ScalarHandlesAdopted(t *testing.T) {
	apm := NewParameter(48, "apm")
	rough := NewParameter(2.5, "rough")
	cfg := dppcConfig()
	cfg.AreaPerMolecule = apm
	cfg.Roughness = rough

	m := mustNew(t, cfg)

	assert.Same(t, apm, m.AreaPerMolecule())
	assert.Same(t, rough, m.Roughness())
	assert.Equal(t, "apm", m.AreaPerMolecule().Name())
}

func TestNew_ParameterNames(t *testing.T) {
	m := mustNew(t, dppcConfig())

	assert.Equal(t, "area_per_molecule", m.AreaPerMolecule().Name())
	assert.Equal(t, "solvent fraction", m.SolventFraction().Name())
	assert.Equal(t, "vm_heads", m.HeadVolume().Name())
	assert.Equal(t, "thickness_heads", m.HeadThickness().Name())
	assert.Equal(t, "vm_tails", m.TailVolume().Name())
	assert.Equal(t, "thickness_tails", m.TailThickness().Name())
	assert.Equal(t, "roughness", m.Roughness().Name())
}

func TestNew_SolventFractionDefaultsToZero(t *testing.T) {
	cfg := dppcConfig()
	cfg.SolventFraction = nil

	m := mustNew(t, cfg)

	assert.Equal(t, 0.0, m.SolventFraction().Value())
}

func TestNew_MissingInput(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*Config)
		field string
	}{
		{"area", func(c *Config) { c.AreaPerMolecule = nil }, "area_per_molecule"},
		{"head scattering", func(c *Config) { c.HeadScattering = nil }, "b_heads"},
		{"tail volume", func(c *Config) { c.TailVolume = nil }, "vm_tails"},
		{"roughness", func(c *Config) { c.Roughness = (*Parameter)(nil) }, "roughness"},
		{"tail sld", func(c *Config) { c.TailScattering = (*SLD)(nil) }, "b_tails"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := dppcConfig()
			tt.clear(&cfg)

			_, err := New(cfg)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingInput))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestNew_ComplexRejectedForScalarSlot(t *testing.T) {
	cfg := dppcConfig()
	cfg.HeadThickness = Complex(10)

	_, err := New(cfg)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNew_UndeclaredHeadSolventRejected(t *testing.T) {
	cfg := dppcConfig()
	cfg.HeadSolvent = HeadSolvent(7)

	_, err := New(cfg)

	assert.ErrorIs(t, err, ErrUnknownSolvent)
}

func TestModel_Parameters(t *testing.T) {
	m := mustNew(t, dppcConfig())

	ps := m.Parameters()

	assert.Equal(t, "dppc", ps.Name())
	assert.Equal(t, []string{
		"area_per_molecule", "solvent fraction",
		"b_heads_real", "b_heads_imag", "vm_heads", "thickness_heads",
		"b_tails_real", "b_tails_imag", "vm_tails", "thickness_tails",
		"roughness",
	}, ps.Names())

	// Same handles across calls, not copies.
	again := m.Parameters()
	for i := 0; i < ps.Len(); i++ {
		assert.Same(t, ps.At(i), again.At(i))
	}
	assert.Same(t, m.Roughness(), ps.At(10))
}

func TestModel_ParametersWriteThrough(t *testing.T) {
	m := mustNew(t, dppcConfig())
	ps := m.Parameters()

	values := ps.Values()
	values[9] = 18 // thickness_tails
	require.NoError(t, ps.SetValues(values))

	assert.Equal(t, 18.0, m.TailThickness().Value())
	assert.Equal(t, 18.0, m.Slabs().At(1, ColThickness))
}

func TestModel_String(t *testing.T) {
	cfg := dppcConfig()
	cfg.HeadSolvent = HeavyWater
	cfg.Reverse = true

	s := mustNew(t, cfg).String()

	assert.True(t, strings.HasPrefix(s, "Monolayer("))
	for _, want := range []string{
		`name="area_per_molecule"`,
		`SLD([Parameter(value=0.0006, name="b_heads_real")`,
		`name="vm_tails"`,
		"head_solvent=d2o",
		`solvfrac=Parameter(value=0, name="solvent fraction")`,
		"reverse_monolayer=true",
		`name="dppc")`,
	} {
		assert.Contains(t, s, want)
	}
}
