package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/ranking"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

// WatchlistService ranks free agents by a category composite score, gated on
// reliability and sample size so thin-sample players never surface.
type WatchlistService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Engine config.EngineConfig
}

type WatchlistParams struct {
	Category string
	SpanDays int
	Page     int
	Position string
}

func (s *WatchlistService) GetWatchlist(ctx context.Context, params WatchlistParams) (*RankedPage, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if params.Category == "" {
		return nil, ErrMissingParameter
	}
	category, ok := scoring.ParseCategory(params.Category)
	if !ok || category == scoring.CategoryNRFI {
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

	candidates := repository.CandidateParams{
		SpanDays:      span,
		FreeAgentOnly: true,
		EligibleAt:    params.Position,
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
			entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: scored.Score, Payload: scored})
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
			entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: scored.Score, Payload: scored})
		}
	}

	ranking.Rank(entries)
	pageEntries, meta := ranking.Paginate(entries, params.Page, s.Engine.PageSize)
	players := make([]ScoredPlayer, 0, len(pageEntries))
	for _, e := range pageEntries {
		players = append(players, e.Payload.(ScoredPlayer))
	}
	if s.Logger != nil {
		s.Logger.Debug("watchlist built",
			zap.String("category", string(category)),
			zap.Int("span_days", span),
			zap.Int("candidates", meta.Total))
	}
	return &RankedPage{Category: category, SpanDays: span, Players: players, Meta: meta}, nil
}
