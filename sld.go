package monolayer

import "fmt"

// SLD is a complex quantity held as two independently adjustable handles.
//
// Depending on where it is used it carries a scattering length density
// (10⁻⁶ Å⁻², as in a Slab) or a total scattering length (Å, as the head or
// tail input of a Model). Passing the same *SLD to several components
// shares its handles between them.
type SLD struct {
	Name string
	Real *Parameter
	Imag *Parameter
}

// NewSLD creates an SLD with fresh handles named "<name> - sld" and
// "<name> - isld".
func NewSLD(value complex128, name string) *SLD {
	return &SLD{
		Name: name,
		Real: NewParameter(real(value), name+" - sld"),
		Imag: NewParameter(imag(value), name+" - isld"),
	}
}

// Complex returns the current value.
func (s *SLD) Complex() complex128 {
	return complex(s.Real.Value(), s.Imag.Value())
}

// Parameters returns the real and imaginary handles.
func (s *SLD) Parameters() *Parameters {
	return NewParameters(s.Name, s.Real, s.Imag)
}

// Slab creates a single homogeneous layer of this SLD. The layer shares the
// SLD's handles.
func (s *SLD) Slab(thickness, roughness Input) (*Slab, error) {
	return NewSlab(SlabConfig{
		Name:      s.Name,
		Thickness: thickness,
		SLD:       s,
		Roughness: roughness,
	})
}

func (s *SLD) String() string {
	return fmt.Sprintf("SLD([%v, %v], name=%q)", s.Real, s.Imag, s.Name)
}

func (*SLD) isInput() {}
