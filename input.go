package monolayer

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when a required constructor input is nil.
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidInput is returned when an input kind cannot serve a slot,
	// such as a complex number given for a thickness.
	ErrInvalidInput = errors.New("invalid input")
)

// Input is anything accepted where a component needs a value at
// construction time. It is a closed set:
//
//   - Number: a plain real value, wrapped in a new Parameter
//   - Complex: a complex value, split into new real and imaginary Parameters
//   - *Parameter: an existing handle, adopted as-is
//   - *SLD: an existing real/imaginary pair, adopted as-is
//
// Inputs are resolved once, when the component is built.
type Input interface {
	isInput()
}

// Number is a plain real Input.
type Number float64

func (Number) isInput() {}

// Complex is a complex Input. Only scattering length and SLD slots accept it.
type Complex complex128

func (Complex) isInput() {}

// resolveScalar turns in into a single parameter handle. name is only used
// when a new parameter has to be created.
func resolveScalar(in Input, name string) (*Parameter, error) {
	switch v := in.(type) {
	case nil:
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
	case Number:
		return NewParameter(float64(v), name), nil
	case *Parameter:
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s cannot take %T", ErrInvalidInput, name, in)
	}
}

// resolvePair turns in into a real/imaginary pair of handles. New parameters
// are named prefix+realSuffix and prefix+imagSuffix.
//
// A bare *Parameter becomes the real part and gets a fresh imaginary part
// fixed at zero.
func resolvePair(in Input, name, realName, imagName string) (*SLD, error) {
	switch v := in.(type) {
	case nil:
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
	case Complex:
		return &SLD{
			Name: name,
			Real: NewParameter(real(v), realName),
			Imag: NewParameter(imag(v), imagName),
		}, nil
	case *SLD:
		if v == nil || v.Real == nil || v.Imag == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
		}
		return &SLD{Name: v.Name, Real: v.Real, Imag: v.Imag}, nil
	case Number:
		return &SLD{
			Name: name,
			Real: NewParameter(float64(v), realName),
			Imag: NewParameter(0, imagName),
		}, nil
	case *Parameter:
		if v == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, name)
		}
		return &SLD{Name: name, Real: v, Imag: NewParameter(0, imagName)}, nil
	default:
		return nil, fmt.Errorf("%w: %s cannot take %T", ErrInvalidInput, name, in)
	}
}
