package monolayer

import "math"

// VolumeFractions returns the fraction of each region's geometric volume
// (area per molecule × thickness) taken up by one molecule's head or tail.
//
// Zero area or thickness is not guarded and yields ±Inf or NaN.
func (m *Model) VolumeFractions() (head, tail float64) {
	apm := m.apm.Value()
	head = m.head.volume.Value() / (apm * m.head.thickness.Value())
	tail = m.tail.volume.Value() / (apm * m.tail.thickness.Value())
	return head, tail
}

// LogP returns the log-probability penalty for the current values: −Inf
// when either region is packed beyond its geometric volume (volume
// fraction > 1), otherwise 0.
func (m *Model) LogP() float64 {
	head, tail := m.VolumeFractions()
	if head > 1 || tail > 1 {
		m.logger.Debug("unphysical volume fraction",
			"name", m.name,
			"volfrac_head", head,
			"volfrac_tail", tail)
		return math.Inf(-1)
	}
	return 0
}
