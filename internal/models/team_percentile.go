package models

import "time"

// TeamRollingStatPercentile ranks whole-team stats against the league for one
// rolling window. Used to grade opponents, never fantasy rosters.
type TeamRollingStatPercentile struct {
	Team              string    `gorm:"type:varchar(10);primaryKey" json:"team"`
	SplitType         string    `gorm:"type:varchar(10);primaryKey" json:"split_type"`
	SpanDays          int       `gorm:"primaryKey" json:"span_days"`
	Position          string    `gorm:"type:varchar(10);primaryKey" json:"position"`
	AvgRunsScoredPct  *float64  `gorm:"type:numeric(5,2)" json:"avg_runs_scored_pct,omitempty"`
	AvgRunsAllowedPct *float64  `gorm:"type:numeric(5,2)" json:"avg_runs_allowed_pct,omitempty"`
	AVGPct            *float64  `gorm:"type:numeric(5,2)" json:"avg_pct,omitempty"`
	OBPPct            *float64  `gorm:"type:numeric(5,2)" json:"obp_pct,omitempty"`
	SLGPct            *float64  `gorm:"type:numeric(5,2)" json:"slg_pct,omitempty"`
	OPSPct            *float64  `gorm:"type:numeric(5,2)" json:"ops_pct,omitempty"`
	EraPct            *float64  `gorm:"type:numeric(5,2)" json:"era_pct,omitempty"`
	WhipPct           *float64  `gorm:"type:numeric(5,2)" json:"whip_pct,omitempty"`
	FIPPct            *float64  `gorm:"type:numeric(5,2)" json:"fip_pct,omitempty"`
	KPer9Pct          *float64  `gorm:"type:numeric(5,2)" json:"k_per_9_pct,omitempty"`
	BBPer9Pct         *float64  `gorm:"type:numeric(5,2)" json:"bb_per_9_pct,omitempty"`
	ReliabilityScore  int       `gorm:"not null;default:0" json:"reliability_score"`
	IsReliable        bool      `gorm:"not null;default:false" json:"is_reliable"`
	UpdatedAt         time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (TeamRollingStatPercentile) TableName() string {
	return "team_rolling_stats_percentiles"
}

// TeamVsPitcherSplitPercentile ranks how a team's offence fares against
// pitchers of a given handedness.
type TeamVsPitcherSplitPercentile struct {
	Team             string    `gorm:"type:varchar(10);primaryKey" json:"team"`
	Throws           string    `gorm:"type:char(1);primaryKey" json:"throws"`
	SpanDays         int       `gorm:"primaryKey" json:"span_days"`
	OPSPct           *float64  `gorm:"type:numeric(5,2)" json:"ops_pct,omitempty"`
	SoRatePct        *float64  `gorm:"type:numeric(5,2)" json:"so_rate_pct,omitempty"`
	BBRatePct        *float64  `gorm:"type:numeric(5,2)" json:"bb_rate_pct,omitempty"`
	ReliabilityScore int       `gorm:"not null;default:0" json:"reliability_score"`
	IsReliable       bool      `gorm:"not null;default:false" json:"is_reliable"`
	UpdatedAt        time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (TeamVsPitcherSplitPercentile) TableName() string {
	return "team_vs_pitcher_splits_percentiles"
}

// TeamVsBatterSplitPercentile ranks how a team's pitching staff fares against
// batters of a given handedness.
type TeamVsBatterSplitPercentile struct {
	Team             string    `gorm:"type:varchar(10);primaryKey" json:"team"`
	Bats             string    `gorm:"type:char(1);primaryKey" json:"bats"`
	SpanDays         int       `gorm:"primaryKey" json:"span_days"`
	OPSPct           *float64  `gorm:"type:numeric(5,2)" json:"ops_pct,omitempty"`
	SoRatePct        *float64  `gorm:"type:numeric(5,2)" json:"so_rate_pct,omitempty"`
	BBRatePct        *float64  `gorm:"type:numeric(5,2)" json:"bb_rate_pct,omitempty"`
	ReliabilityScore int       `gorm:"not null;default:0" json:"reliability_score"`
	IsReliable       bool      `gorm:"not null;default:false" json:"is_reliable"`
	UpdatedAt        time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (TeamVsBatterSplitPercentile) TableName() string {
	return "team_vs_batter_splits_percentiles"
}
