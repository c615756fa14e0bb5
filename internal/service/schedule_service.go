package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/schedule"
)

// Schedule-strength kinds.
const (
	KindBatting  = "batting"
	KindPitching = "pitching"
)

// ScheduleService grades a fantasy roster's upcoming week against the
// probables feed: opponent quality for hitters, start quality for pitchers.
type ScheduleService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Engine config.EngineConfig
}

type ScheduleParams struct {
	TeamID   uint64
	Start    time.Time
	End      time.Time
	SpanDays int
	Kind     string
}

// ScheduleStrength is the week outlook for one roster side. Exactly one of
// Pitchers or Hitters is populated, per the requested kind.
type ScheduleStrength struct {
	TeamID   uint64                 `json:"team_id"`
	Start    time.Time              `json:"start"`
	End      time.Time              `json:"end"`
	SpanDays int                    `json:"span_days"`
	Pitchers []schedule.PitcherWeek `json:"pitchers,omitempty"`
	Hitters  []schedule.HitterWeek  `json:"hitters,omitempty"`
}

func (s *ScheduleService) GetScheduleStrength(ctx context.Context, params ScheduleParams) (*ScheduleStrength, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if params.TeamID == 0 {
		return nil, ErrMissingParameter
	}
	if params.Kind != KindBatting && params.Kind != KindPitching {
		return nil, ErrUnknownCategory
	}
	span := params.SpanDays
	if span == 0 {
		span = s.Engine.DefaultSpanDays
	}
	if !s.Engine.KnownSpan(span) {
		return nil, ErrUnknownWindow
	}
	start, end := params.Start, params.End
	if start.IsZero() || end.IsZero() {
		start, end = WeekBounds(time.Now())
	}

	out := &ScheduleStrength{TeamID: params.TeamID, Start: start, End: end, SpanDays: span}
	switch params.Kind {
	case KindPitching:
		rows, err := s.Repo.ListRosterPitcherStarts(ctx, repository.RosterStartParams{
			TeamID:   params.TeamID,
			Start:    start,
			End:      end,
			SpanDays: span,
		})
		if err != nil {
			return nil, err
		}
		weeks := schedule.AggregatePitcherWeeks(rows)
		sort.Slice(weeks, func(i, j int) bool {
			if weeks[i].Score != weeks[j].Score {
				return weeks[i].Score > weeks[j].Score
			}
			return weeks[i].PlayerID < weeks[j].PlayerID
		})
		out.Pitchers = weeks
	case KindBatting:
		batters, err := s.Repo.ListRosterBatters(ctx, params.TeamID)
		if err != nil {
			return nil, err
		}
		games, err := s.Repo.ListProbableGames(ctx, start, end)
		if err != nil {
			return nil, err
		}
		quality, err := s.opponentQuality(ctx, games, span)
		if err != nil {
			return nil, err
		}
		weeks := schedule.AggregateHitterWeeks(batters, games, quality)
		sort.Slice(weeks, func(i, j int) bool {
			if weeks[i].Score != weeks[j].Score {
				return weeks[i].Score > weeks[j].Score
			}
			return weeks[i].PlayerID < weeks[j].PlayerID
		})
		out.Hitters = weeks
	}
	if s.Logger != nil {
		s.Logger.Debug("schedule strength built",
			zap.Uint64("team_id", params.TeamID),
			zap.String("kind", params.Kind),
			zap.Time("start", start),
			zap.Time("end", end))
	}
	return out, nil
}

// ProbableStart is one scored upcoming start of a rostered pitcher.
type ProbableStart struct {
	repository.PlayerIdentity
	GameDate time.Time `json:"game_date"`
	Team     string    `json:"team"`
	Opponent string    `json:"opponent"`
	Home     bool      `json:"home"`
	Score    float64   `json:"score"`
}

// GetTeamProbablePitchers lists every probable start of one fantasy team's
// rostered pitchers in the window, scored and date-ordered.
func (s *ScheduleService) GetTeamProbablePitchers(ctx context.Context, params ScheduleParams) ([]ProbableStart, error) {
	rows, err := s.rosterStarts(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]ProbableStart, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProbableStart{
			PlayerIdentity: r.PlayerIdentity,
			GameDate:       r.GameDate,
			Team:           r.Team,
			Opponent:       r.Opponent,
			Home:           r.Home,
			Score:          schedule.StartScore(r.OppOPSVsHandPct, r.FIPPct, r.QSPct, r.BBPer9Pct, r.Home),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GameDate.Equal(out[j].GameDate) {
			return out[i].GameDate.Before(out[j].GameDate)
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

// GetTeamTwoStartPitchers is the rostered counterpart of the free-agent
// two-start view: pitchers on the team with at least two probable starts in
// the window, most starts first.
func (s *ScheduleService) GetTeamTwoStartPitchers(ctx context.Context, params ScheduleParams) ([]schedule.PitcherWeek, error) {
	rows, err := s.rosterStarts(ctx, params)
	if err != nil {
		return nil, err
	}
	weeks := schedule.AggregatePitcherWeeks(rows)
	out := weeks[:0]
	for _, w := range weeks {
		if w.Starts >= 2 {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Starts != out[j].Starts {
			return out[i].Starts > out[j].Starts
		}
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

// rosterStarts validates the shared team/window parameters and loads the
// team's probable starts.
func (s *ScheduleService) rosterStarts(ctx context.Context, params ScheduleParams) ([]repository.PitcherStartRow, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if params.TeamID == 0 {
		return nil, ErrMissingParameter
	}
	span := params.SpanDays
	if span == 0 {
		span = s.Engine.DefaultSpanDays
	}
	if !s.Engine.KnownSpan(span) {
		return nil, ErrUnknownWindow
	}
	start, end := params.Start, params.End
	if start.IsZero() || end.IsZero() {
		start, end = WeekBounds(time.Now())
	}
	return s.Repo.ListRosterPitcherStarts(ctx, repository.RosterStartParams{
		TeamID:   params.TeamID,
		Start:    start,
		End:      end,
		SpanDays: span,
	})
}

// opponentQuality loads the pitching-staff percentiles and vs-hand splits of
// every club appearing in the window's games.
func (s *ScheduleService) opponentQuality(ctx context.Context, games []models.ProbableGame, spanDays int) (map[string]schedule.OpponentQuality, error) {
	seen := make(map[string]bool)
	var teams []string
	for _, g := range games {
		for _, team := range []string{g.Team, g.Opponent} {
			if team != "" && !seen[team] {
				seen[team] = true
				teams = append(teams, team)
			}
		}
	}
	quality := make(map[string]schedule.OpponentQuality, len(teams))
	if len(teams) == 0 {
		return quality, nil
	}

	pitching, err := s.Repo.ListTeamPitchingPercentiles(ctx, teams, spanDays)
	if err != nil {
		return nil, err
	}
	for _, row := range pitching {
		q := quality[row.Team]
		q.WHIPPct = row.WhipPct
		q.FIPPct = row.FIPPct
		quality[row.Team] = q
	}

	splits, err := s.Repo.ListTeamVsBatterSplits(ctx, teams, spanDays)
	if err != nil {
		return nil, err
	}
	for _, row := range splits {
		q := quality[row.Team]
		if q.OPSVsBats == nil {
			q.OPSVsBats = make(map[string]*float64, 3)
		}
		q.OPSVsBats[row.Bats] = row.OPSPct
		quality[row.Team] = q
	}
	return quality, nil
}
