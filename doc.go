// Package monolayer builds scattering length density (SLD) depth profiles
// for a two-region lipid monolayer, as used in neutron and X-ray
// reflectometry.
//
// # Overview
//
// A Model turns a handful of physical parameters into a layer table that a
// reflectivity engine can consume:
//
//   - area per molecule (Å²)
//   - head and tail scattering lengths (Å), molecular volumes (Å³) and
//     thicknesses (Å)
//   - one interfacial roughness (Å) shared by both regions
//   - the fraction of solvent penetrating the head region
//
// Each region's SLD is its scattering length divided by its molecular
// volume. Solvent only enters the head region, where it displaces head
// material in proportion to its volume fraction f:
//
//	ρ_head = (1 − f)·b_head/V_head + f·ρ_solvent
//
// # Layer tables
//
// Slabs returns a *mat.Dense with one row per layer, top first, and the
// columns
//
//	[thickness, sld, isld, roughness, solvent fraction]
//
// in Å, 10⁻⁶ Å⁻², 10⁻⁶ Å⁻², Å and dimensionless units. Tables are
// recomputed on every call from the current parameter values.
//
// # Quick Start
//
//	m, err := monolayer.New(monolayer.Config{
//	    AreaPerMolecule: monolayer.Number(50),
//	    HeadScattering:  monolayer.Complex(6e-4),
//	    HeadVolume:      monolayer.Number(300),
//	    HeadThickness:   monolayer.Number(10),
//	    TailScattering:  monolayer.Number(-3e-4),
//	    TailVolume:      monolayer.Number(900),
//	    TailThickness:   monolayer.Number(15),
//	    Roughness:       monolayer.Number(3),
//	    HeadSolvent:     monolayer.HeavyWater,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layers := m.Slabs()         // 2×5
//	params := m.Parameters()    // 11 handles for an optimizer
//	penalty := m.LogP()         // 0 or −Inf
//
// # Parameters
//
// Every adjustable quantity is a *Parameter. Inputs given as Number or
// Complex become new parameters owned by the model; a *Parameter or *SLD
// passed in is adopted, so the same handle can be shared with other
// components. Parameters returns a fresh ordered view over the handles:
// writing to it, for example with SetValues, changes what the next Slabs
// call sees.
//
// # Plausibility
//
// LogP rejects parameter sets where a molecule's head or tail volume does
// not fit in the region's geometric volume (area per molecule ×
// thickness). It is meant to be summed with other terms in a posterior.
//
// # Structures
//
// A Structure stacks components, for example air | monolayer | D₂O, into a
// single table and a single flat parameter list. File loads such a stack
// from YAML.
package monolayer
