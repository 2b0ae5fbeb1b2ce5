package monolayer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML description of a monolayer, optionally sandwiched
// between a fronting and a backing medium.
//
//	name: dppc
//	area_per_molecule: 50
//	head: {scattering_length: 6.0e-4, volume: 300, thickness: 10}
//	tail: {scattering_length: [-3.0e-4, 0], volume: 900, thickness: 15}
//	roughness: 3
//	solvent_fraction: 0.2
//	head_solvent: d2o
//	fronting: {name: air, sld: 0}
//	backing: {name: d2o, sld: 6.36, roughness: 3}
//
// Pointer fields are required; Validate reports the ones left out.
// Fronting and backing media only require sld; their thickness and
// roughness default to 0.
type File struct {
	Name            string      `yaml:"name"`
	AreaPerMolecule *float64    `yaml:"area_per_molecule"`
	Head            RegionFile  `yaml:"head"`
	Tail            RegionFile  `yaml:"tail"`
	Roughness       *float64    `yaml:"roughness"`
	SolventFraction float64     `yaml:"solvent_fraction"`
	HeadSolvent     HeadSolvent `yaml:"head_solvent"`
	Reverse         bool        `yaml:"reverse"`
	Fronting        *SlabFile   `yaml:"fronting,omitempty"`
	Backing         *SlabFile   `yaml:"backing,omitempty"`
}

// RegionFile describes the head or the tail region.
type RegionFile struct {
	ScatteringLength *ComplexValue `yaml:"scattering_length"` // Å
	Volume           *float64      `yaml:"volume"`            // Å³
	Thickness        *float64      `yaml:"thickness"`         // Å
}

// SlabFile describes a homogeneous medium.
type SlabFile struct {
	Name            string        `yaml:"name"`
	Thickness       float64       `yaml:"thickness"`
	SLD             *ComplexValue `yaml:"sld"` // 10⁻⁶ Å⁻²
	Roughness       float64       `yaml:"roughness"`
	SolventFraction float64       `yaml:"solvent_fraction"`
}

// ComplexValue decodes either a scalar (real part only) or a two element
// sequence [real, imag].
type ComplexValue complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ComplexValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var re float64
		if err := node.Decode(&re); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = ComplexValue(complex(re, 0))
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if len(parts) != 2 {
			return fmt.Errorf("line %d: complex value needs [real, imag], got %d elements", node.Line, len(parts))
		}
		*c = ComplexValue(complex(parts[0], parts[1]))
		return nil
	default:
		return fmt.Errorf("line %d: complex value must be a number or [real, imag]", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c ComplexValue) MarshalYAML() (interface{}, error) {
	if imag(c) == 0 {
		return real(c), nil
	}
	return []float64{real(c), imag(c)}, nil
}

// LoadFile reads a monolayer description from a YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading monolayer file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a monolayer description. Unknown keys are
// rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing monolayer YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every required key that is missing, each wrapping
// ErrMissingInput.
func (f *File) Validate() error {
	var errs []error
	missing := func(present bool, key string) {
		if !present {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingInput, key))
		}
	}

	missing(f.AreaPerMolecule != nil, "area_per_molecule")
	for _, r := range []struct {
		key    string
		region RegionFile
	}{{"head", f.Head}, {"tail", f.Tail}} {
		missing(r.region.ScatteringLength != nil, r.key+".scattering_length")
		missing(r.region.Volume != nil, r.key+".volume")
		missing(r.region.Thickness != nil, r.key+".thickness")
	}
	missing(f.Roughness != nil, "roughness")
	if f.Fronting != nil {
		missing(f.Fronting.SLD != nil, "fronting.sld")
	}
	if f.Backing != nil {
		missing(f.Backing.SLD != nil, "backing.sld")
	}

	return errors.Join(errs...)
}

// Config converts the file into a model Config. Missing keys become nil
// inputs, which New rejects.
func (f *File) Config(logger *slog.Logger) Config {
	return Config{
		AreaPerMolecule: numberInput(f.AreaPerMolecule),
		HeadScattering:  complexInput(f.Head.ScatteringLength),
		HeadVolume:      numberInput(f.Head.Volume),
		HeadThickness:   numberInput(f.Head.Thickness),
		TailScattering:  complexInput(f.Tail.ScatteringLength),
		TailVolume:      numberInput(f.Tail.Volume),
		TailThickness:   numberInput(f.Tail.Thickness),
		Roughness:       numberInput(f.Roughness),
		SolventFraction: Number(f.SolventFraction),
		HeadSolvent:     f.HeadSolvent,
		Reverse:         f.Reverse,
		Name:            f.Name,
		Logger:          logger,
	}
}

// Model builds the monolayer alone.
func (f *File) Model(logger *slog.Logger) (*Model, error) {
	return New(f.Config(logger))
}

// Structure builds fronting, monolayer and backing, skipping absent media.
// The monolayer is returned as well so callers can reach its parameters.
func (f *File) Structure(logger *slog.Logger) (*Structure, *Model, error) {
	m, err := f.Model(logger)
	if err != nil {
		return nil, nil, err
	}

	s := NewStructure(f.Name)
	if f.Fronting != nil {
		slab, err := f.Fronting.slab()
		if err != nil {
			return nil, nil, fmt.Errorf("fronting: %w", err)
		}
		s.Append(slab)
	}
	s.Append(m)
	if f.Backing != nil {
		slab, err := f.Backing.slab()
		if err != nil {
			return nil, nil, fmt.Errorf("backing: %w", err)
		}
		s.Append(slab)
	}
	return s, m, nil
}

func (sf *SlabFile) slab() (*Slab, error) {
	return NewSlab(SlabConfig{
		Name:            sf.Name,
		Thickness:       Number(sf.Thickness),
		SLD:             complexInput(sf.SLD),
		Roughness:       Number(sf.Roughness),
		SolventFraction: Number(sf.SolventFraction),
	})
}

func numberInput(v *float64) Input {
	if v == nil {
		return nil
	}
	return Number(*v)
}

func complexInput(v *ComplexValue) Input {
	if v == nil {
		return nil
	}
	return Complex(*v)
}
