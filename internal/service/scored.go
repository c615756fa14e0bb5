package service

import (
	"github.com/shopspring/decimal"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/ranking"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

// ScoredPlayer is one ranked row of a watchlist, ranking or team view: the
// player's identity, the composite score that ordered them, and the raw and
// percentile columns of their side of the ball.
type ScoredPlayer struct {
	repository.PlayerIdentity
	SpanDays         int                     `json:"span_days"`
	Score            float64                 `json:"score"`
	ReliabilityScore int                     `json:"reliability_score"`
	Bands            map[string]scoring.Band `json:"bands,omitempty"`
	Batting          *BattingLine            `json:"batting,omitempty"`
	Pitching         *PitchingLine           `json:"pitching,omitempty"`
}

// BattingLine carries a batter row's raw and percentile columns.
type BattingLine struct {
	Hits      int             `json:"hits"`
	AtBats    int             `json:"abs"`
	Runs      int             `json:"runs"`
	HR        int             `json:"hr"`
	RBI       int             `json:"rbi"`
	SB        int             `json:"sb"`
	AVG       decimal.Decimal `json:"avg"`
	RunsPct   *float64        `json:"runs_pct,omitempty"`
	HRPct     *float64        `json:"hr_pct,omitempty"`
	RBIPct    *float64        `json:"rbi_pct,omitempty"`
	SBPct     *float64        `json:"sb_pct,omitempty"`
	AVGPct    *float64        `json:"avg_pct,omitempty"`
	OBPPct    *float64        `json:"obp_pct,omitempty"`
	SLGPct    *float64        `json:"slg_pct,omitempty"`
	ISOPct    *float64        `json:"iso_pct,omitempty"`
	BBRatePct *float64        `json:"bb_rate_pct,omitempty"`
	KRatePct  *float64        `json:"k_rate_pct,omitempty"`
}

// PitchingLine carries a pitcher row's raw and percentile columns.
type PitchingLine struct {
	IP            decimal.Decimal `json:"ip"`
	Strikeouts    int             `json:"strikeouts"`
	QS            int             `json:"qs"`
	SV            int             `json:"sv"`
	HLD           int             `json:"hld"`
	ERA           decimal.Decimal `json:"era"`
	WHIP          decimal.Decimal `json:"whip"`
	StrikeoutsPct *float64        `json:"strikeouts_pct,omitempty"`
	EraPct        *float64        `json:"era_pct,omitempty"`
	WhipPct       *float64        `json:"whip_pct,omitempty"`
	QSPct         *float64        `json:"qs_pct,omitempty"`
	SVPct         *float64        `json:"sv_pct,omitempty"`
	HLDPct        *float64        `json:"hld_pct,omitempty"`
	KPer9Pct      *float64        `json:"k_per_9_pct,omitempty"`
	BBPer9Pct     *float64        `json:"bb_per_9_pct,omitempty"`
	FIPPct        *float64        `json:"fip_pct,omitempty"`
}

// RankedPage is one page of a ranked player list.
type RankedPage struct {
	Category scoring.Category `json:"category"`
	SpanDays int              `json:"span_days"`
	Players  []ScoredPlayer   `json:"players"`
	Meta     ranking.PageMeta `json:"meta"`
}

func batterBundle(r repository.BatterRow) scoring.Bundle {
	return scoring.Bundle{
		scoring.StatRuns:   r.RunsPct,
		scoring.StatHR:     r.HRPct,
		scoring.StatRBI:    r.RBIPct,
		scoring.StatSB:     r.SBPct,
		scoring.StatAVG:    r.AVGPct,
		scoring.StatOBP:    r.OBPPct,
		scoring.StatSLG:    r.SLGPct,
		scoring.StatISO:    r.ISOPct,
		scoring.StatBBRate: r.BBRatePct,
		scoring.StatKRate:  r.KRatePct,
	}
}

func pitcherBundle(r repository.PitcherRow) scoring.Bundle {
	return scoring.Bundle{
		scoring.StatStrikeouts: r.StrikeoutsPct,
		scoring.StatERA:        r.EraPct,
		scoring.StatWHIP:       r.WhipPct,
		scoring.StatQS:         r.QSPct,
		scoring.StatSV:         r.SVPct,
		scoring.StatHLD:        r.HLDPct,
		scoring.StatKPer9:      r.KPer9Pct,
		scoring.StatBBPer9:     r.BBPer9Pct,
		scoring.StatFIP:        r.FIPPct,
	}
}

// bandsFor renders a confidence band per formula input of the category.
// displayFloor is the configured engine.display_reliability threshold.
func bandsFor(c scoring.Category, b scoring.Bundle, reliability, displayFloor int) map[string]scoring.Band {
	bands := make(map[string]scoring.Band, len(c.Terms()))
	for _, t := range c.Terms() {
		bands[string(t.Stat)] = scoring.ConfidenceBand(b[t.Stat], reliability, displayFloor)
		if t.Alt != "" {
			bands[string(t.Alt)] = scoring.ConfidenceBand(b[t.Alt], reliability, displayFloor)
		}
	}
	return bands
}

func scoredFromBatter(r repository.BatterRow, c scoring.Category, displayFloor int) ScoredPlayer {
	b := batterBundle(r)
	return ScoredPlayer{
		PlayerIdentity:   r.PlayerIdentity,
		SpanDays:         r.SpanDays,
		Score:            scoring.Compute(c, b),
		ReliabilityScore: r.ReliabilityScore,
		Bands:            bandsFor(c, b, r.ReliabilityScore, displayFloor),
		Batting: &BattingLine{
			Hits:      r.Hits,
			AtBats:    r.AtBats,
			Runs:      r.Runs,
			HR:        r.HR,
			RBI:       r.RBI,
			SB:        r.SB,
			AVG:       r.AVG,
			RunsPct:   r.RunsPct,
			HRPct:     r.HRPct,
			RBIPct:    r.RBIPct,
			SBPct:     r.SBPct,
			AVGPct:    r.AVGPct,
			OBPPct:    r.OBPPct,
			SLGPct:    r.SLGPct,
			ISOPct:    r.ISOPct,
			BBRatePct: r.BBRatePct,
			KRatePct:  r.KRatePct,
		},
	}
}

func scoredFromPitcher(r repository.PitcherRow, c scoring.Category, displayFloor int) ScoredPlayer {
	b := pitcherBundle(r)
	return ScoredPlayer{
		PlayerIdentity:   r.PlayerIdentity,
		SpanDays:         r.SpanDays,
		Score:            scoring.Compute(c, b),
		ReliabilityScore: r.ReliabilityScore,
		Bands:            bandsFor(c, b, r.ReliabilityScore, displayFloor),
		Pitching: &PitchingLine{
			IP:            r.IP,
			Strikeouts:    r.Strikeouts,
			QS:            r.QS,
			SV:            r.SV,
			HLD:           r.HLD,
			ERA:           r.ERA,
			WHIP:          r.WHIP,
			StrikeoutsPct: r.StrikeoutsPct,
			EraPct:        r.EraPct,
			WhipPct:       r.WhipPct,
			QSPct:         r.QSPct,
			SVPct:         r.SVPct,
			HLDPct:        r.HLDPct,
			KPer9Pct:      r.KPer9Pct,
			BBPer9Pct:     r.BBPer9Pct,
			FIPPct:        r.FIPPct,
		},
	}
}
