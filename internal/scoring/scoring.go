// Package scoring turns bundles of percentile-ranked stats into weighted
// composite scores, and decides which players have enough data behind their
// percentiles to be shown or ranked at all.
package scoring

// NeutralPercentile substitutes for any missing percentile input. A gap in
// the upstream tables must read as league-average, never as zero.
const NeutralPercentile = 50.0

// Bundle carries one player's percentile inputs for a window/split. Absent
// or nil entries resolve to NeutralPercentile.
type Bundle map[Stat]*float64

// Get resolves a single stat with the neutral default applied.
func (b Bundle) Get(s Stat) float64 {
	if v, ok := b[s]; ok && v != nil {
		return *v
	}
	return NeutralPercentile
}

// Compute evaluates the category's formula against the bundle. The result is
// unclamped; typical values land in roughly [-30, 130]. Identical inputs
// always produce identical output.
func Compute(c Category, b Bundle) float64 {
	var total float64
	for _, t := range c.Terms() {
		v := b.Get(t.Stat)
		if t.Alt != "" {
			if alt := b.Get(t.Alt); alt > v {
				v = alt
			}
		}
		if t.Invert {
			v = 100 - v
		}
		total += t.Weight * v
	}
	return total
}

// Float returns a Bundle-ready pointer for a literal value, mostly for tests.
func Float(v float64) *float64 {
	return &v
}
