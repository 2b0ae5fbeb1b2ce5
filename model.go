package monolayer

import (
	"fmt"
	"log/slog"
)

// Config describes a two-region lipid monolayer.
//
// Scattering lengths (HeadScattering, TailScattering) are in Å, volumes in
// Å³, thicknesses and roughness in Å, area per molecule in Å². Every field
// of type Input is required except SolventFraction, which defaults to 0.
type Config struct {
	AreaPerMolecule Input

	HeadScattering Input // total scattering length of one head group
	HeadVolume     Input // molecular volume of one head group
	HeadThickness  Input

	TailScattering Input
	TailVolume     Input
	TailThickness  Input

	Roughness Input // shared by both interfaces

	// SolventFraction is the volume fraction of solvent mixed into the head
	// region SLD. It is not clamped to [0, 1].
	SolventFraction Input

	HeadSolvent HeadSolvent

	// Reverse emits tail then head instead of head then tail.
	Reverse bool

	Name string

	// Logger receives debug records. Nil uses slog.Default().
	Logger *slog.Logger
}

// region is one chemically distinct part of the monolayer.
type region struct {
	scattering *SLD
	volume     *Parameter
	thickness  *Parameter
}

// sld converts the region's scattering length to a dry SLD in 10⁻⁶ Å⁻².
func (r region) sld() (re, im float64) {
	v := r.volume.Value()
	return r.scattering.Real.Value() / v * sldScale, r.scattering.Imag.Value() / v * sldScale
}

// Model is a lipid monolayer split into a head region and a tail region.
//
// It owns (or adopts) eleven parameters. Only their values change after
// construction; which parameters exist, the solvent choice and the
// ordering are fixed.
type Model struct {
	name string

	apm      *Parameter
	solvfrac *Parameter
	head     region
	tail     region
	rough    *Parameter

	headSolvent HeadSolvent
	reverse     bool

	logger *slog.Logger
}

// New builds a Model, resolving every Input into a parameter handle.
func New(cfg Config) (*Model, error) {
	if !cfg.HeadSolvent.Valid() {
		return nil, fmt.Errorf("monolayer %q: %w: %d", cfg.Name, ErrUnknownSolvent, int(cfg.HeadSolvent))
	}
	if cfg.SolventFraction == nil {
		cfg.SolventFraction = Number(0)
	}

	m := &Model{
		name:        cfg.Name,
		headSolvent: cfg.HeadSolvent,
		reverse:     cfg.Reverse,
		logger:      cfg.Logger,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}

	var err error
	scalar := func(in Input, name string) *Parameter {
		if err != nil {
			return nil
		}
		var p *Parameter
		p, err = resolveScalar(in, name)
		return p
	}
	pair := func(in Input, prefix string) *SLD {
		if err != nil {
			return nil
		}
		var s *SLD
		s, err = resolvePair(in, prefix, prefix+"_real", prefix+"_imag")
		return s
	}

	m.apm = scalar(cfg.AreaPerMolecule, "area_per_molecule")
	m.head.scattering = pair(cfg.HeadScattering, "b_heads")
	m.head.volume = scalar(cfg.HeadVolume, "vm_heads")
	m.head.thickness = scalar(cfg.HeadThickness, "thickness_heads")
	m.tail.scattering = pair(cfg.TailScattering, "b_tails")
	m.tail.volume = scalar(cfg.TailVolume, "vm_tails")
	m.tail.thickness = scalar(cfg.TailThickness, "thickness_tails")
	m.rough = scalar(cfg.Roughness, "roughness")
	m.solvfrac = scalar(cfg.SolventFraction, "solvent fraction")
	if err != nil {
		return nil, fmt.Errorf("monolayer %q: %w", cfg.Name, err)
	}

	m.logger.Debug("monolayer built",
		"name", m.name,
		"head_solvent", m.headSolvent,
		"reverse", m.reverse)

	return m, nil
}

// Name returns the display name.
func (m *Model) Name() string { return m.name }

// AreaPerMolecule returns the area per molecule handle (Å²).
func (m *Model) AreaPerMolecule() *Parameter { return m.apm }

// SolventFraction returns the head solvent fraction handle.
func (m *Model) SolventFraction() *Parameter { return m.solvfrac }

// HeadScattering returns the head scattering length handles (Å).
func (m *Model) HeadScattering() *SLD { return m.head.scattering }

// HeadVolume returns the head molecular volume handle (Å³).
func (m *Model) HeadVolume() *Parameter { return m.head.volume }

// HeadThickness returns the head region thickness handle (Å).
func (m *Model) HeadThickness() *Parameter { return m.head.thickness }

// TailScattering returns the tail scattering length handles (Å).
func (m *Model) TailScattering() *SLD { return m.tail.scattering }

// TailVolume returns the tail molecular volume handle (Å³).
func (m *Model) TailVolume() *Parameter { return m.tail.volume }

// TailThickness returns the tail region thickness handle (Å).
func (m *Model) TailThickness() *Parameter { return m.tail.thickness }

// Roughness returns the interfacial roughness handle (Å).
func (m *Model) Roughness() *Parameter { return m.rough }

// HeadSolvent returns the solvent mixed into the head region.
func (m *Model) HeadSolvent() HeadSolvent { return m.headSolvent }

// Reverse reports whether tail-then-head ordering is emitted.
func (m *Model) Reverse() bool { return m.reverse }

// Parameters returns the eleven adjustable handles in a fixed order:
//
//	area_per_molecule, solvent fraction,
//	b_heads_real, b_heads_imag, vm_heads, thickness_heads,
//	b_tails_real, b_tails_imag, vm_tails, thickness_tails,
//	roughness
//
// The collection is new on every call; the handles are the model's own.
func (m *Model) Parameters() *Parameters {
	return NewParameters(m.name,
		m.apm, m.solvfrac,
		m.head.scattering.Real, m.head.scattering.Imag, m.head.volume, m.head.thickness,
		m.tail.scattering.Real, m.tail.scattering.Imag, m.tail.volume, m.tail.thickness,
		m.rough,
	)
}

// String renders the model in constructor form.
func (m *Model) String() string {
	return fmt.Sprintf("Monolayer(%v, %v, %v, %v, %v, %v, %v, %v, "+
		"head_solvent=%v, solvfrac=%v, reverse_monolayer=%t, name=%q)",
		m.apm,
		m.head.scattering, m.head.volume, m.head.thickness,
		m.tail.scattering, m.tail.volume, m.tail.thickness,
		m.rough, m.headSolvent, m.solvfrac, m.reverse, m.name)
}
