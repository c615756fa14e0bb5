package models

import "time"

// RollingStatPercentile holds league-wide percentile ranks (0-100) for the
// raw rolling stats of the same key. All percentiles read "higher = better
// outcome": the stats job inverts rank at the source for stats where raw-low
// is good (ERA, WHIP), so EraPct 90 means a top-decile ERA.
type RollingStatPercentile struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	PlayerID         uint64    `gorm:"not null;uniqueIndex:uniq_player_span_pct,priority:1;index" json:"player_id"`
	SpanDays         int       `gorm:"not null;uniqueIndex:uniq_player_span_pct,priority:2" json:"span_days"`
	SplitType        string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_player_span_pct,priority:3" json:"split_type"`
	Position         string    `gorm:"type:varchar(10);uniqueIndex:uniq_player_span_pct,priority:4" json:"position"`
	RunsPct          *float64  `gorm:"type:numeric(5,2)" json:"runs_pct,omitempty"`
	HRPct            *float64  `gorm:"type:numeric(5,2)" json:"hr_pct,omitempty"`
	RBIPct           *float64  `gorm:"type:numeric(5,2)" json:"rbi_pct,omitempty"`
	SBPct            *float64  `gorm:"type:numeric(5,2)" json:"sb_pct,omitempty"`
	HitsPct          *float64  `gorm:"type:numeric(5,2)" json:"hits_pct,omitempty"`
	AVGPct           *float64  `gorm:"type:numeric(5,2)" json:"avg_pct,omitempty"`
	StrikeoutsPct    *float64  `gorm:"type:numeric(5,2)" json:"strikeouts_pct,omitempty"`
	EraPct           *float64  `gorm:"type:numeric(5,2)" json:"era_pct,omitempty"`
	WhipPct          *float64  `gorm:"type:numeric(5,2)" json:"whip_pct,omitempty"`
	QSPct            *float64  `gorm:"type:numeric(5,2)" json:"qs_pct,omitempty"`
	SVPct            *float64  `gorm:"type:numeric(5,2)" json:"sv_pct,omitempty"`
	HLDPct           *float64  `gorm:"type:numeric(5,2)" json:"hld_pct,omitempty"`
	ReliabilityScore int       `gorm:"not null;default:0" json:"reliability_score"`
	IsReliable       bool      `gorm:"not null;default:false" json:"is_reliable"`
	UpdatedAt        time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (RollingStatPercentile) TableName() string {
	return "player_rolling_stats_percentiles"
}

// AdvancedRollingStatPercentile is the secondary percentile set for derived
// sabermetrics, keyed identically to RollingStatPercentile. Rate percentiles
// where raw-low is good (k_rate, bb_rate, bb_per_9, fip) are pre-inverted at
// the source like ERA/WHIP above.
type AdvancedRollingStatPercentile struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	PlayerID         uint64    `gorm:"not null;uniqueIndex:uniq_player_span_adv,priority:1;index" json:"player_id"`
	SpanDays         int       `gorm:"not null;uniqueIndex:uniq_player_span_adv,priority:2" json:"span_days"`
	SplitType        string    `gorm:"type:varchar(10);not null;uniqueIndex:uniq_player_span_adv,priority:3" json:"split_type"`
	Position         string    `gorm:"type:varchar(10);uniqueIndex:uniq_player_span_adv,priority:4" json:"position"`
	OBPPct           *float64  `gorm:"type:numeric(5,2)" json:"obp_pct,omitempty"`
	SLGPct           *float64  `gorm:"type:numeric(5,2)" json:"slg_pct,omitempty"`
	OPSPct           *float64  `gorm:"type:numeric(5,2)" json:"ops_pct,omitempty"`
	ISOPct           *float64  `gorm:"type:numeric(5,2)" json:"iso_pct,omitempty"`
	BBRatePct        *float64  `gorm:"type:numeric(5,2)" json:"bb_rate_pct,omitempty"`
	KRatePct         *float64  `gorm:"type:numeric(5,2)" json:"k_rate_pct,omitempty"`
	WOBAPct          *float64  `gorm:"type:numeric(5,2)" json:"woba_pct,omitempty"`
	FIPPct           *float64  `gorm:"type:numeric(5,2)" json:"fip_pct,omitempty"`
	KPer9Pct         *float64  `gorm:"type:numeric(5,2)" json:"k_per_9_pct,omitempty"`
	BBPer9Pct        *float64  `gorm:"type:numeric(5,2)" json:"bb_per_9_pct,omitempty"`
	HRPer9Pct        *float64  `gorm:"type:numeric(5,2)" json:"hr_per_9_pct,omitempty"`
	KBBRatioPct      *float64  `gorm:"type:numeric(5,2)" json:"k_bb_ratio_pct,omitempty"`
	ReliabilityScore int       `gorm:"not null;default:0" json:"reliability_score"`
	IsReliable       bool      `gorm:"not null;default:false" json:"is_reliable"`
	UpdatedAt        time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (AdvancedRollingStatPercentile) TableName() string {
	return "player_advanced_rolling_stats_percentiles"
}
