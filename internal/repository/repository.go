package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
)

// Repository is the read boundary over the percentile statistics store plus
// the few maintenance writes this service owns. Everything else in the store
// is written by external sync jobs.
type Repository interface {
	// Candidate rows for watchlists, rankings and team stat views. Rows are
	// identity-filtered only; the reliability gate runs in the service layer.
	ListBatterRows(ctx context.Context, params CandidateParams) ([]BatterRow, error)
	ListPitcherRows(ctx context.Context, params CandidateParams) ([]PitcherRow, error)

	// Schedule strength inputs.
	ListRosterPitcherStarts(ctx context.Context, params RosterStartParams) ([]PitcherStartRow, error)
	ListProbableGames(ctx context.Context, start, end time.Time) ([]models.ProbableGame, error)
	ListRosterBatters(ctx context.Context, teamID uint64) ([]RosterBatterRow, error)
	ListTeamPitchingPercentiles(ctx context.Context, teams []string, spanDays int) ([]models.TeamRollingStatPercentile, error)
	ListTeamVsBatterSplits(ctx context.Context, teams []string, spanDays int) ([]models.TeamVsBatterSplitPercentile, error)

	// Streaming candidates (two-start, daily streamers, NRFI).
	ListProbableStarts(ctx context.Context, params ProbableStartParams) ([]ProbableStartRow, error)

	SearchPlayers(ctx context.Context, query string, limit int) ([]models.Player, error)

	// Retention.
	DeleteProbableGamesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// CandidateParams filters candidate stat rows. SpanDays and Position are
// required; zero-value filters are ignored.
type CandidateParams struct {
	SpanDays      int
	SplitType     string
	Position      string
	FreeAgentOnly bool
	EligibleAt    string // fantasy position eligibility, e.g. "OF", "SP"
	TeamID        *uint64
}

// RosterStartParams scopes probable starts to one fantasy team's pitchers.
type RosterStartParams struct {
	TeamID   uint64
	Start    time.Time
	End      time.Time
	SpanDays int
}

// ProbableStartParams scopes the probables feed for streaming views.
type ProbableStartParams struct {
	Start         time.Time
	End           time.Time
	SpanDays      int
	FreeAgentOnly bool
}

// PlayerIdentity is the slice of player columns every scored view carries.
type PlayerIdentity struct {
	PlayerID          uint64         `json:"id"`
	Name              string         `json:"name"`
	MLBTeam           *string        `json:"mlb_team,omitempty"`
	Status            string         `json:"status"`
	TeamID            *uint64        `json:"team_id,omitempty"`
	EligiblePositions datatypes.JSON `json:"eligible_positions,omitempty"`
	SelectedPosition  *string        `json:"selected_position,omitempty"`
	HeadshotURL       *string        `json:"headshot_url,omitempty"`
}

// BatterRow joins a batter's raw rolling stats with both percentile sets.
type BatterRow struct {
	PlayerIdentity   `gorm:"embedded"`
	SpanDays         int             `json:"span_days"`
	SplitType        string          `json:"split_type"`
	Hits             int             `json:"hits"`
	AtBats           int             `gorm:"column:abs" json:"abs"`
	Runs             int             `json:"runs"`
	HR               int             `json:"hr"`
	RBI              int             `json:"rbi"`
	SB               int             `json:"sb"`
	AVG              decimal.Decimal `json:"avg"`
	RunsPct          *float64        `json:"runs_pct,omitempty"`
	HRPct            *float64        `json:"hr_pct,omitempty"`
	RBIPct           *float64        `json:"rbi_pct,omitempty"`
	SBPct            *float64        `json:"sb_pct,omitempty"`
	AVGPct           *float64        `json:"avg_pct,omitempty"`
	OBPPct           *float64        `json:"obp_pct,omitempty"`
	SLGPct           *float64        `json:"slg_pct,omitempty"`
	ISOPct           *float64        `json:"iso_pct,omitempty"`
	BBRatePct        *float64        `json:"bb_rate_pct,omitempty"`
	KRatePct         *float64        `json:"k_rate_pct,omitempty"`
	ReliabilityScore int             `json:"reliability_score"`
}

// PitcherRow is the pitcher-side counterpart of BatterRow.
type PitcherRow struct {
	PlayerIdentity   `gorm:"embedded"`
	SpanDays         int             `json:"span_days"`
	SplitType        string          `json:"split_type"`
	IP               decimal.Decimal `json:"ip"`
	Strikeouts       int             `json:"strikeouts"`
	QS               int             `json:"qs"`
	SV               int             `json:"sv"`
	HLD              int             `json:"hld"`
	ERA              decimal.Decimal `json:"era"`
	WHIP             decimal.Decimal `json:"whip"`
	StrikeoutsPct    *float64        `json:"strikeouts_pct,omitempty"`
	EraPct           *float64        `json:"era_pct,omitempty"`
	WhipPct          *float64        `json:"whip_pct,omitempty"`
	QSPct            *float64        `json:"qs_pct,omitempty"`
	SVPct            *float64        `json:"sv_pct,omitempty"`
	HLDPct           *float64        `json:"hld_pct,omitempty"`
	KPer9Pct         *float64        `json:"k_per_9_pct,omitempty"`
	BBPer9Pct        *float64        `json:"bb_per_9_pct,omitempty"`
	FIPPct           *float64        `json:"fip_pct,omitempty"`
	ReliabilityScore int             `json:"reliability_score"`
}

// PitcherStartRow is one probable start of a rostered pitcher, joined with
// the percentile inputs of the per-start score.
type PitcherStartRow struct {
	PlayerIdentity  `gorm:"embedded"`
	GameDate        time.Time `json:"game_date"`
	Team            string    `json:"team"`
	Opponent        string    `json:"opponent"`
	Home            bool      `json:"home"`
	OppOPSVsHandPct *float64  `json:"opp_ops_vs_hand_pct,omitempty"`
	FIPPct          *float64  `json:"fip_pct,omitempty"`
	QSPct           *float64  `json:"qs_pct,omitempty"`
	BBPer9Pct       *float64  `json:"bb_per_9_pct,omitempty"`
}

// RosterBatterRow is one rostered batter with the feed identity the hitter
// schedule path needs (MLB club and batting hand).
type RosterBatterRow struct {
	PlayerIdentity `gorm:"embedded"`
	ClubTeam       *string `json:"club_team,omitempty"`
	Bats           *string `json:"bats,omitempty"`
}

// ProbableStartRow is one row of the probables feed joined with the
// pitcher's fantasy identity, 30-day percentiles and the opponent's vs-hand
// split, for the streaming and NRFI views.
type ProbableStartRow struct {
	PlayerIdentity    `gorm:"embedded"`
	GameDate          time.Time       `json:"game_date"`
	Team              string          `json:"team"`
	Opponent          string          `json:"opponent"`
	Home              bool            `json:"home"`
	NormalisedName    string          `json:"-"`
	Accuracy          *float64        `json:"accuracy,omitempty"`
	QSLikelihoodScore *float64        `json:"qs_likelihood_score,omitempty"`
	IP                decimal.Decimal `json:"ip"`
	StrikeoutsPct     *float64        `json:"strikeouts_pct,omitempty"`
	EraPct            *float64        `json:"era_pct,omitempty"`
	WhipPct           *float64        `json:"whip_pct,omitempty"`
	QSPct             *float64        `json:"qs_pct,omitempty"`
	KPer9Pct          *float64        `json:"k_per_9_pct,omitempty"`
	BBPer9Pct         *float64        `json:"bb_per_9_pct,omitempty"`
	FIPPct            *float64        `json:"fip_pct,omitempty"`
	OppOPSVsHandPct   *float64        `json:"opp_ops_vs_hand_pct,omitempty"`
	ReliabilityScore  int             `json:"reliability_score"`
}

// positionColumns maps a fantasy position filter to its eligibility column.
var positionColumns = map[string]string{
	"C":    "is_c",
	"1B":   "is_1b",
	"2B":   "is_2b",
	"3B":   "is_3b",
	"SS":   "is_ss",
	"OF":   "is_of",
	"UTIL": "is_util",
	"SP":   "is_sp",
	"RP":   "is_rp",
}

// PositionColumn resolves a fantasy position to its eligibility column,
// guarding against anything that is not a known position reaching SQL.
func PositionColumn(position string) (string, bool) {
	col, ok := positionColumns[position]
	return col, ok
}
