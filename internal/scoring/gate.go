package scoring

import "github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"

// Gate is the hard admission rule for watchlists and rankings: a reliability
// floor on the percentile row driving the ranking, and a minimum raw sample
// over the window. A player failing either is excluded outright, not merely
// ranked last.
type Gate struct {
	MinReliability int
	MinAtBats      int
	MinInnings     float64
}

// GateFor builds the gate for a category from the engine config. Relievers
// run a softer reliability floor and a smaller innings minimum; every other
// pitcher category uses the starter thresholds.
func GateFor(c Category, cfg config.EngineConfig) Gate {
	if c.IsBatter() {
		return Gate{
			MinReliability: cfg.MinReliability,
			MinAtBats:      cfg.MinAtBats,
		}
	}
	g := Gate{
		MinReliability: cfg.MinReliability,
		MinInnings:     float64(cfg.MinStarterInnings),
	}
	if c == CategoryReliever {
		g.MinReliability = cfg.RelieverReliability
		g.MinInnings = float64(cfg.MinRelieverInnings)
	}
	return g
}

// Admit applies both gates. The reliability check treats a missing percentile
// row (reliability 0) as failing; only genuine data admits a player.
func (g Gate) Admit(reliability int, atBats int, innings float64) bool {
	if reliability < g.MinReliability {
		return false
	}
	if g.MinAtBats > 0 && atBats < g.MinAtBats {
		return false
	}
	if g.MinInnings > 0 && innings < g.MinInnings {
		return false
	}
	return true
}
