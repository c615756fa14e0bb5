package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/ranking"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

// Ranking kinds.
const (
	KindBatters  = "batters"
	KindPitchers = "pitchers"
)

// batterSortKeys and pitcherSortKeys are the only percentile columns an
// explicit sortKey may name. Sorting is always descending; the pre-inverted
// storage convention means descending is "best first" for every key here.
var batterSortKeys = map[string]scoring.Stat{
	"runs":    scoring.StatRuns,
	"hr":      scoring.StatHR,
	"rbi":     scoring.StatRBI,
	"sb":      scoring.StatSB,
	"avg":     scoring.StatAVG,
	"obp":     scoring.StatOBP,
	"slg":     scoring.StatSLG,
	"iso":     scoring.StatISO,
	"bb_rate": scoring.StatBBRate,
	"k_rate":  scoring.StatKRate,
}

var pitcherSortKeys = map[string]scoring.Stat{
	"strikeouts": scoring.StatStrikeouts,
	"era":        scoring.StatERA,
	"whip":       scoring.StatWHIP,
	"qs":         scoring.StatQS,
	"sv":         scoring.StatSV,
	"hld":        scoring.StatHLD,
	"k_per_9":    scoring.StatKPer9,
	"bb_per_9":   scoring.StatBBPer9,
	"fip":        scoring.StatFIP,
}

// RankingsService ranks the full player pool by the side-of-ball composite,
// or by a single named percentile when a sort key is given.
type RankingsService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Engine config.EngineConfig
}

type RankingsParams struct {
	Kind          string
	SpanDays      int
	Page          int
	FreeAgentOnly bool
	Position      string
	SortKey       string
	TeamID        *uint64
}

func (s *RankingsService) GetRankings(ctx context.Context, params RankingsParams) (*RankedPage, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	var category scoring.Category
	var sortKeys map[string]scoring.Stat
	switch params.Kind {
	case KindBatters:
		category = scoring.CategoryBatter
		sortKeys = batterSortKeys
	case KindPitchers:
		category = scoring.CategoryPitcher
		sortKeys = pitcherSortKeys
	default:
		return nil, ErrUnknownCategory
	}
	span := params.SpanDays
	if span == 0 {
		span = s.Engine.DefaultSpanDays
	}
	if !s.Engine.KnownSpan(span) {
		return nil, ErrUnknownWindow
	}
	if params.Position != "" {
		if _, ok := repository.PositionColumn(params.Position); !ok {
			return nil, ErrUnknownPosition
		}
	}
	var sortStat scoring.Stat
	if params.SortKey != "" {
		stat, ok := sortKeys[params.SortKey]
		if !ok {
			return nil, ErrUnknownSortKey
		}
		sortStat = stat
	}

	candidates := repository.CandidateParams{
		SpanDays:      span,
		FreeAgentOnly: params.FreeAgentOnly,
		EligibleAt:    params.Position,
		TeamID:        params.TeamID,
	}
	gate := scoring.GateFor(category, s.Engine)

	var entries []ranking.Entry
	if category.IsBatter() {
		rows, err := s.Repo.ListBatterRows(ctx, candidates)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if !gate.Admit(r.ReliabilityScore, r.AtBats, 0) {
				continue
			}
			scored := scoredFromBatter(r, category, s.Engine.DisplayReliability)
			entries = append(entries, ranking.Entry{
				PlayerID: r.PlayerID,
				Score:    orderValue(scored, batterBundle(r), sortStat),
				Payload:  scored,
			})
		}
	} else {
		rows, err := s.Repo.ListPitcherRows(ctx, candidates)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if !gate.Admit(r.ReliabilityScore, 0, r.IP.InexactFloat64()) {
				continue
			}
			scored := scoredFromPitcher(r, category, s.Engine.DisplayReliability)
			entries = append(entries, ranking.Entry{
				PlayerID: r.PlayerID,
				Score:    orderValue(scored, pitcherBundle(r), sortStat),
				Payload:  scored,
			})
		}
	}

	ranking.Rank(entries)
	pageEntries, meta := ranking.Paginate(entries, params.Page, s.Engine.PageSize)
	players := make([]ScoredPlayer, 0, len(pageEntries))
	for _, e := range pageEntries {
		players = append(players, e.Payload.(ScoredPlayer))
	}
	if s.Logger != nil {
		s.Logger.Debug("rankings built",
			zap.String("kind", params.Kind),
			zap.Int("span_days", span),
			zap.Int("candidates", meta.Total))
	}
	return &RankedPage{Category: category, SpanDays: span, Players: players, Meta: meta}, nil
}

// GetTeamStats is the roster view of one fantasy team: every roster player on
// the requested side, composite-ordered, with no reliability gate so thin
// samples still show.
func (s *RankingsService) GetTeamStats(ctx context.Context, teamID uint64, kind string, spanDays int) ([]ScoredPlayer, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if teamID == 0 {
		return nil, ErrMissingParameter
	}
	var category scoring.Category
	switch kind {
	case KindBatters:
		category = scoring.CategoryBatter
	case KindPitchers:
		category = scoring.CategoryPitcher
	default:
		return nil, ErrUnknownCategory
	}
	span := spanDays
	if span == 0 {
		span = s.Engine.DefaultSpanDays
	}
	if !s.Engine.KnownSpan(span) {
		return nil, ErrUnknownWindow
	}

	candidates := repository.CandidateParams{SpanDays: span, TeamID: &teamID}
	var entries []ranking.Entry
	if category.IsBatter() {
		rows, err := s.Repo.ListBatterRows(ctx, candidates)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			scored := scoredFromBatter(r, category, s.Engine.DisplayReliability)
			entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: scored.Score, Payload: scored})
		}
	} else {
		rows, err := s.Repo.ListPitcherRows(ctx, candidates)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			scored := scoredFromPitcher(r, category, s.Engine.DisplayReliability)
			entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: scored.Score, Payload: scored})
		}
	}
	ranking.Rank(entries)
	players := make([]ScoredPlayer, 0, len(entries))
	for _, e := range entries {
		players = append(players, e.Payload.(ScoredPlayer))
	}
	return players, nil
}

// orderValue picks what a row sorts by: the composite score, or the named
// percentile when a sort key overrides. A missing percentile sinks below any
// real value rather than defaulting to neutral.
func orderValue(scored ScoredPlayer, b scoring.Bundle, sortStat scoring.Stat) float64 {
	if sortStat == "" {
		return scored.Score
	}
	if v := b[sortStat]; v != nil {
		return *v
	}
	return -1
}
