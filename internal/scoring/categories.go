package scoring

// Stat names a percentile input column. All percentiles are stored so that
// higher means a better outcome: the stats job inverts rank at the source for
// ERA, WHIP, BB/K rates, BB/9 and FIP before persisting.
type Stat string

const (
	StatRuns       Stat = "runs"
	StatHR         Stat = "hr"
	StatRBI        Stat = "rbi"
	StatSB         Stat = "sb"
	StatAVG        Stat = "avg"
	StatStrikeouts Stat = "strikeouts"
	StatERA        Stat = "era"
	StatWHIP       Stat = "whip"
	StatQS         Stat = "qs"
	StatSV         Stat = "sv"
	StatHLD        Stat = "hld"
	StatOBP        Stat = "obp"
	StatSLG        Stat = "slg"
	StatISO        Stat = "iso"
	StatBBRate     Stat = "bb_rate"
	StatKRate      Stat = "k_rate"
	StatFIP        Stat = "fip"
	StatKPer9      Stat = "k_per_9"
	StatBBPer9     Stat = "bb_per_9"
	StatOppOPS     Stat = "opp_ops"
)

type Category string

const (
	CategoryBatter   Category = "batter"
	CategoryPitcher  Category = "pitcher"
	CategorySpeed    Category = "speed"
	CategoryContact  Category = "contact"
	CategoryPower    Category = "power"
	CategoryStarter  Category = "starter"
	CategoryReliever Category = "reliever"
	CategoryNRFI     Category = "nrfi"
)

// Term is one weighted input of a category formula. When Alt is set the
// greater of the two percentiles feeds the term (SV vs HLD for relief roles).
// Invert applies 100-x on top of the stored percentile; the stored value is
// already good-is-high, so Invert deliberately re-inverts (the historical
// formulas mix both conventions and watchlist scores must not shift).
type Term struct {
	Stat   Stat
	Alt    Stat
	Weight float64
	Invert bool
}

// categoryTerms is the full formula table, resolved once at package init.
// Weights are in percentile units on a 0-100 scale; outputs are unclamped.
var categoryTerms = map[Category][]Term{
	CategoryBatter: {
		{Stat: StatRuns, Weight: 0.25},
		{Stat: StatHR, Weight: 0.25},
		{Stat: StatRBI, Weight: 0.25},
		{Stat: StatSB, Weight: 0.15},
		{Stat: StatAVG, Weight: 0.10},
	},
	CategoryPitcher: {
		{Stat: StatStrikeouts, Weight: 0.25},
		{Stat: StatQS, Weight: 0.25},
		{Stat: StatSV, Alt: StatHLD, Weight: 0.20},
		{Stat: StatERA, Weight: 0.15, Invert: true},
		{Stat: StatWHIP, Weight: 0.15, Invert: true},
	},
	CategorySpeed: {
		{Stat: StatSB, Weight: 1.00},
		{Stat: StatOBP, Weight: 0.35},
		{Stat: StatAVG, Weight: 0.25},
		{Stat: StatKRate, Weight: -0.30},
		{Stat: StatRuns, Weight: 0.20},
	},
	CategoryContact: {
		{Stat: StatAVG, Weight: 0.60},
		{Stat: StatOBP, Weight: 0.45},
		{Stat: StatBBRate, Weight: 0.25},
		{Stat: StatKRate, Weight: -0.30},
	},
	CategoryPower: {
		{Stat: StatHR, Weight: 0.70},
		{Stat: StatISO, Weight: 0.40},
		{Stat: StatSLG, Weight: 0.35},
		{Stat: StatKRate, Weight: -0.20},
		{Stat: StatRBI, Weight: 0.15},
	},
	CategoryStarter: {
		{Stat: StatKPer9, Weight: 0.45},
		{Stat: StatBBPer9, Weight: -0.30},
		{Stat: StatQS, Weight: 0.30},
		{Stat: StatFIP, Weight: 0.25},
		{Stat: StatWHIP, Weight: 0.15},
		{Stat: StatERA, Weight: 0.10},
	},
	CategoryReliever: {
		{Stat: StatSV, Alt: StatHLD, Weight: 0.55},
		{Stat: StatKPer9, Weight: 0.25},
		{Stat: StatWHIP, Weight: 0.15},
		{Stat: StatFIP, Weight: 0.20},
		{Stat: StatBBPer9, Weight: -0.20},
	},
	// Scored per probable start, not per player window; the opponent term
	// comes from the vs-hand split of the team the pitcher faces.
	CategoryNRFI: {
		{Stat: StatKPer9, Weight: 0.30},
		{Stat: StatFIP, Weight: 0.25},
		{Stat: StatOppOPS, Weight: 0.25, Invert: true},
		{Stat: StatERA, Weight: 0.20},
	},
}

// batterCategories and pitcherCategories map each watchlist/ranking category
// to the stat-row position context it reads.
var categoryPositions = map[Category]string{
	CategoryBatter:   "B",
	CategorySpeed:    "B",
	CategoryContact:  "B",
	CategoryPower:    "B",
	CategoryPitcher:  "P",
	CategoryStarter:  "P",
	CategoryReliever: "P",
	CategoryNRFI:     "P",
}

// WatchlistCategories are the categories exposed as positional watchlists.
var WatchlistCategories = []Category{
	CategorySpeed,
	CategoryContact,
	CategoryPower,
	CategoryStarter,
	CategoryReliever,
}

// ParseCategory resolves a request string to a known category.
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	_, ok := categoryTerms[c]
	return c, ok
}

// Position returns the stat-row position context ("B" or "P") the category
// is computed from.
func (c Category) Position() string {
	return categoryPositions[c]
}

// Terms exposes the resolved formula table for a category. The returned slice
// must not be mutated.
func (c Category) Terms() []Term {
	return categoryTerms[c]
}

// IsBatter reports whether the category reads batter stat rows.
func (c Category) IsBatter() bool {
	return categoryPositions[c] == "B"
}
