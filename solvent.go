package monolayer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownSolvent is returned for a head solvent selector that names
// neither light nor heavy water.
var ErrUnknownSolvent = errors.New("unknown head solvent")

// HeadSolvent selects the solvent that penetrates the head region.
// The zero value is LightWater.
type HeadSolvent int

const (
	LightWater HeadSolvent = iota // H₂O
	HeavyWater                    // D₂O
)

// Neutron SLDs of the two waters, in 10⁻⁶ Å⁻².
const (
	LightWaterSLD = 2.3117
	HeavyWaterSLD = 6.02316
)

// ParseHeadSolvent maps a textual selector to a HeadSolvent.
//
// "d2o" and "heavy" select HeavyWater; "", "h2o" and "light" select
// LightWater. Matching ignores case and surrounding space. Anything else is
// rejected.
func ParseHeadSolvent(s string) (HeadSolvent, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "h2o", "light":
		return LightWater, nil
	case "d2o", "heavy":
		return HeavyWater, nil
	default:
		return LightWater, fmt.Errorf("%w: %q", ErrUnknownSolvent, s)
	}
}

// Valid reports whether s is one of the declared solvents.
func (s HeadSolvent) Valid() bool {
	return s == LightWater || s == HeavyWater
}

// SLD returns the solvent SLD in 10⁻⁶ Å⁻², or NaN for an undeclared value.
func (s HeadSolvent) SLD() float64 {
	switch s {
	case LightWater:
		return LightWaterSLD
	case HeavyWater:
		return HeavyWaterSLD
	default:
		return math.NaN()
	}
}

func (s HeadSolvent) String() string {
	switch s {
	case LightWater:
		return "h2o"
	case HeavyWater:
		return "d2o"
	default:
		return fmt.Sprintf("HeadSolvent(%d)", int(s))
	}
}

// UnmarshalYAML decodes a selector string through ParseHeadSolvent.
func (s *HeadSolvent) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("head solvent: %w", err)
	}
	parsed, err := ParseHeadSolvent(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the solvent by its short name.
func (s HeadSolvent) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolvent, int(s))
	}
	return s.String(), nil
}
