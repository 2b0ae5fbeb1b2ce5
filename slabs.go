package monolayer

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Column layout of a layer table. Rows run top to bottom in physical depth.
const (
	ColThickness       = iota // Å
	ColSLDReal                // 10⁻⁶ Å⁻²
	ColSLDImag                // 10⁻⁶ Å⁻²
	ColRoughness              // Å, of the interface above the layer
	ColSolventFraction        // volume fraction of solvent inside the layer
	NumCols
)

// sldScale converts Å/Å³ to 10⁻⁶ Å⁻².
const sldScale = 1e6

const (
	rowHead = 0
	rowTail = 1
)

// Slabs returns the 2×5 layer table built from the current parameter
// values. Nothing is cached: every call recomputes.
//
// The head SLD is a volume-weighted mix of the dry head and the head
// solvent:
//
//	sld_head = (1 − f)·b_head/vm_head·1e6 + f·sld_solvent
//
// The head imaginary part and both tail parts are not solvent corrected.
// The per-layer solvent fraction column is always zero.
func (m *Model) Slabs() *mat.Dense {
	layers := mat.NewDense(2, NumCols, nil)

	layers.Set(rowHead, ColThickness, m.head.thickness.Value())
	layers.Set(rowTail, ColThickness, m.tail.thickness.Value())

	f := m.solvfrac.Value()

	headRe, headIm := m.head.sld()
	layers.Set(rowHead, ColSLDReal, (1-f)*headRe+f*m.headSolvent.SLD())
	layers.Set(rowHead, ColSLDImag, headIm)

	tailRe, tailIm := m.tail.sld()
	layers.Set(rowTail, ColSLDReal, tailRe)
	layers.Set(rowTail, ColSLDImag, tailIm)

	rough := m.rough.Value()
	layers.Set(rowHead, ColRoughness, rough)
	layers.Set(rowTail, ColRoughness, rough)

	if m.reverse {
		flipRows(layers)
		// The roughness column is flipped again on its own, so it keeps
		// its pre-flip order even if the two values ever differ.
		flipCol(layers, ColRoughness)
	}

	return layers
}

// flipRows reverses the row order of d in place.
func flipRows(d *mat.Dense) {
	r, c := d.Dims()
	tmp := make([]float64, c)
	for i, j := 0, r-1; i < j; i, j = i+1, j-1 {
		copy(tmp, d.RawRowView(i))
		d.SetRow(i, d.RawRowView(j))
		d.SetRow(j, tmp)
	}
}

// flipCol reverses column j of d in place.
func flipCol(d *mat.Dense, j int) {
	col := mat.Col(nil, j, d)
	for a, b := 0, len(col)-1; a < b; a, b = a+1, b-1 {
		col[a], col[b] = col[b], col[a]
	}
	d.SetCol(j, col)
}

// Layer is one row of a layer table.
type Layer struct {
	Thickness       float64
	SLDReal         float64
	SLDImag         float64
	Roughness       float64
	SolventFraction float64
}

// LogValue lets a Layer be passed directly as a slog attribute.
func (l Layer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("thickness", l.Thickness),
		slog.Float64("sld", l.SLDReal),
		slog.Float64("isld", l.SLDImag),
		slog.Float64("rough", l.Roughness),
		slog.Float64("vfsolv", l.SolventFraction),
	)
}

// Layers converts a layer table into typed rows. A nil table, including a
// nil *mat.Dense such as an empty Structure returns, yields nil.
func Layers(table mat.Matrix) []Layer {
	if isNilTable(table) {
		return nil
	}
	r, _ := table.Dims()
	out := make([]Layer, r)
	for i := range out {
		out[i] = Layer{
			Thickness:       table.At(i, ColThickness),
			SLDReal:         table.At(i, ColSLDReal),
			SLDImag:         table.At(i, ColSLDImag),
			Roughness:       table.At(i, ColRoughness),
			SolventFraction: table.At(i, ColSolventFraction),
		}
	}
	return out
}

// isNilTable reports whether m is nil or wraps a nil *mat.Dense.
func isNilTable(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)
	return ok && d == nil
}
