package monolayer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownParameter is returned when a name lookup finds no parameter.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrLengthMismatch is returned when a value vector does not line up
	// with the parameters it is written to.
	ErrLengthMismatch = errors.New("value count does not match parameter count")
)

// Parameter is a named scalar whose value an optimizer may change between
// evaluations. Components hold *Parameter rather than float64 so that every
// reader sees the current value without any synchronization callback.
//
// A Parameter is not safe for concurrent mutation. The caller serializes
// updates relative to model evaluation.
type Parameter struct {
	name  string
	value float64
}

// NewParameter creates a parameter with an initial value.
func NewParameter(value float64, name string) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Value returns the current value.
func (p *Parameter) Value() float64 { return p.value }

// SetValue replaces the current value.
func (p *Parameter) SetValue(v float64) { p.value = v }

func (p *Parameter) String() string {
	return fmt.Sprintf("Parameter(value=%g, name=%q)", p.value, p.name)
}

func (*Parameter) isInput() {}

// Parameters is an ordered, named collection of parameter handles.
//
// It references the handles, never copies them: writing through
// SetValues or through an element returned by At is visible to the
// component that owns the parameter.
//
// The same handle may appear more than once when components share a
// parameter (for example one SLD adopted by two regions). SetValues then
// writes every occurrence in order, so the last position wins.
type Parameters struct {
	name   string
	params []*Parameter
}

// NewParameters creates a collection holding params in the given order.
func NewParameters(name string, params ...*Parameter) *Parameters {
	ps := &Parameters{name: name}
	ps.Append(params...)
	return ps
}

// Name returns the collection name.
func (ps *Parameters) Name() string { return ps.name }

// Len returns the number of entries.
func (ps *Parameters) Len() int { return len(ps.params) }

// At returns the i-th parameter handle.
func (ps *Parameters) At(i int) *Parameter { return ps.params[i] }

// Append adds handles to the end of the collection.
func (ps *Parameters) Append(params ...*Parameter) {
	ps.params = append(ps.params, params...)
}

// Extend appends every handle of other, preserving its order.
func (ps *Parameters) Extend(other *Parameters) {
	if other == nil {
		return
	}
	ps.params = append(ps.params, other.params...)
}

// All returns the handles in order. The slice is fresh; the handles are not.
func (ps *Parameters) All() []*Parameter {
	out := make([]*Parameter, len(ps.params))
	copy(out, ps.params)
	return out
}

// Get returns the first parameter with the given name.
func (ps *Parameters) Get(name string) (*Parameter, error) {
	for _, p := range ps.params {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %q", ErrUnknownParameter, name, ps.name)
}

// Names returns the parameter names in order.
func (ps *Parameters) Names() []string {
	names := make([]string, len(ps.params))
	for i, p := range ps.params {
		names[i] = p.name
	}
	return names
}

// Values returns the current values as a flat vector, positionally
// matching At.
func (ps *Parameters) Values() []float64 {
	values := make([]float64, len(ps.params))
	for i, p := range ps.params {
		values[i] = p.value
	}
	return values
}

// SetValues writes a flat vector back into the handles.
func (ps *Parameters) SetValues(values []float64) error {
	if len(values) != len(ps.params) {
		return fmt.Errorf("%w: got %d values for %d parameters in %q",
			ErrLengthMismatch, len(values), len(ps.params), ps.name)
	}
	for i, v := range values {
		ps.params[i].value = v
	}
	return nil
}

func (ps *Parameters) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parameters(name=%q)", ps.name)
	for _, p := range ps.params {
		b.WriteString("\n  ")
		b.WriteString(p.String())
	}
	return b.String()
}
