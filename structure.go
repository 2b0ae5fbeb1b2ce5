package monolayer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Component is anything that contributes layers to a Structure.
type Component interface {
	Name() string
	// Slabs returns an n×NumCols layer table, top layer first.
	Slabs() *mat.Dense
	// Parameters returns the component's adjustable handles in a stable order.
	Parameters() *Parameters
	// LogP returns a log-probability penalty, 0 when unconstrained.
	LogP() float64
}

var (
	_ Component = (*Model)(nil)
	_ Component = (*Slab)(nil)
	_ Component = (*Structure)(nil)
)

// SlabConfig describes a single homogeneous layer.
type SlabConfig struct {
	Name      string
	Thickness Input // Å
	SLD       Input // 10⁻⁶ Å⁻²; Number, Complex or *SLD
	Roughness Input // Å

	// SolventFraction defaults to 0.
	SolventFraction Input
}

// Slab is a single homogeneous layer, typically a fronting or backing
// medium around a Model.
type Slab struct {
	name      string
	thickness *Parameter
	sld       *SLD
	rough     *Parameter
	vfsolv    *Parameter
}

// NewSlab builds a Slab, resolving every Input into a parameter handle.
func NewSlab(cfg SlabConfig) (*Slab, error) {
	if cfg.SolventFraction == nil {
		cfg.SolventFraction = Number(0)
	}

	s := &Slab{name: cfg.Name}

	var err error
	if s.thickness, err = resolveScalar(cfg.Thickness, cfg.Name+" - thick"); err != nil {
		return nil, fmt.Errorf("slab %q: %w", cfg.Name, err)
	}
	if s.sld, err = resolvePair(cfg.SLD, cfg.Name, cfg.Name+" - sld", cfg.Name+" - isld"); err != nil {
		return nil, fmt.Errorf("slab %q: %w", cfg.Name, err)
	}
	if s.rough, err = resolveScalar(cfg.Roughness, cfg.Name+" - rough"); err != nil {
		return nil, fmt.Errorf("slab %q: %w", cfg.Name, err)
	}
	if s.vfsolv, err = resolveScalar(cfg.SolventFraction, cfg.Name+" - volfrac solvent"); err != nil {
		return nil, fmt.Errorf("slab %q: %w", cfg.Name, err)
	}
	return s, nil
}

// Name returns the layer name.
func (s *Slab) Name() string { return s.name }

// SLD returns the layer's SLD handles.
func (s *Slab) SLD() *SLD { return s.sld }

// Slabs returns the 1×5 layer table built from the current values.
func (s *Slab) Slabs() *mat.Dense {
	return mat.NewDense(1, NumCols, []float64{
		s.thickness.Value(),
		s.sld.Real.Value(),
		s.sld.Imag.Value(),
		s.rough.Value(),
		s.vfsolv.Value(),
	})
}

// Parameters returns thickness, sld, isld, roughness and solvent fraction.
func (s *Slab) Parameters() *Parameters {
	return NewParameters(s.name, s.thickness, s.sld.Real, s.sld.Imag, s.rough, s.vfsolv)
}

// LogP is always 0: a single layer carries no constraint.
func (s *Slab) LogP() float64 { return 0 }

func (s *Slab) String() string {
	return fmt.Sprintf("Slab(%v, %v, %v, name=%q, vfsolv=%v)",
		s.thickness, s.sld, s.rough, s.name, s.vfsolv)
}

// Structure stacks components top to bottom.
type Structure struct {
	name       string
	components []Component
}

// NewStructure creates a structure from components, top first.
func NewStructure(name string, components ...Component) *Structure {
	return &Structure{name: name, components: append([]Component(nil), components...)}
}

// Name returns the structure name.
func (s *Structure) Name() string { return s.name }

// Append adds a component below the current bottom.
func (s *Structure) Append(c Component) {
	s.components = append(s.components, c)
}

// Components returns the components, top first.
func (s *Structure) Components() []Component {
	return append([]Component(nil), s.components...)
}

// Slabs concatenates the components' layer tables. It returns nil when no
// component contributes a layer.
func (s *Structure) Slabs() *mat.Dense {
	var out *mat.Dense
	for _, c := range s.components {
		layers := c.Slabs()
		if layers == nil || layers.IsEmpty() {
			continue
		}
		if out == nil {
			out = mat.DenseCopyOf(layers)
			continue
		}
		var next mat.Dense
		next.Stack(out, layers)
		out = &next
	}
	return out
}

// Parameters flattens the components' parameters in component order.
func (s *Structure) Parameters() *Parameters {
	ps := NewParameters(s.name)
	for _, c := range s.components {
		ps.Extend(c.Parameters())
	}
	return ps
}

// LogP sums the components' penalties. Any −Inf term makes the sum −Inf.
func (s *Structure) LogP() float64 {
	var logp float64
	for _, c := range s.components {
		v := c.LogP()
		if math.IsInf(v, -1) {
			return v
		}
		logp += v
	}
	return logp
}
