package scoring

// Band is the visual confidence band a consumer renders for one percentile.
// It is independent of the watchlist gate and is computed for every view.
type Band string

const (
	BandInsufficient Band = "insufficient"
	BandBelowAverage Band = "below_average"
	BandAverage      Band = "average"
	BandAboveAverage Band = "above_average"
	BandElite        Band = "elite"
)

// DefaultDisplayReliability is the reliability below which any percentile is
// presented as insufficient data regardless of its value. This matches the
// is_reliable flag the stats job derives, not the watchlist gate. Overridden
// by engine.display_reliability in config.
const DefaultDisplayReliability = 70

// ConfidenceBand maps (percentile, reliability) to a display band. A nil
// percentile is missing data, not a zero. minReliability <= 0 falls back to
// DefaultDisplayReliability.
func ConfidenceBand(pct *float64, reliability, minReliability int) Band {
	if minReliability <= 0 {
		minReliability = DefaultDisplayReliability
	}
	if pct == nil || reliability < minReliability {
		return BandInsufficient
	}
	switch p := *pct; {
	case p < 40:
		return BandInsufficient
	case p < 50:
		return BandBelowAverage
	case p < 70:
		return BandAverage
	case p < 90:
		return BandAboveAverage
	default:
		return BandElite
	}
}
