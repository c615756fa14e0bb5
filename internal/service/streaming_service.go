package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/ranking"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/schedule"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

// nrfiHomeBonus nudges home starts, mirroring the schedule home bonus at a
// smaller scale since only one inning is in play.
const nrfiHomeBonus = 2.0

// StreamingService surfaces pickup targets from the probables feed: two-start
// free agents, single-day streamers and no-run-first-inning starts.
type StreamingService struct {
	Repo   repository.Repository
	Logger *zap.Logger
	Engine config.EngineConfig
}

// TwoStartCandidate is a free-agent pitcher with at least two probable starts
// in the window.
type TwoStartCandidate struct {
	repository.PlayerIdentity
	Starts           int                  `json:"starts"`
	Score            float64              `json:"score"`
	Lines            []schedule.StartLine `json:"lines"`
	ReliabilityScore int                  `json:"reliability_score"`
}

// StreamCandidate is one scored probable start.
type StreamCandidate struct {
	repository.PlayerIdentity
	GameDate          time.Time `json:"game_date"`
	Team              string    `json:"team"`
	Opponent          string    `json:"opponent"`
	Home              bool      `json:"home"`
	Score             float64   `json:"score"`
	QSLikelihoodScore *float64  `json:"qs_likelihood_score,omitempty"`
	Accuracy          *float64  `json:"accuracy,omitempty"`
	ReliabilityScore  int       `json:"reliability_score"`
}

func (s *StreamingService) span() int {
	if s.Engine.StreamingSpanDays > 0 {
		return s.Engine.StreamingSpanDays
	}
	return s.Engine.DefaultSpanDays
}

// GetTwoStartCandidates finds free agents whose normalised name appears on at
// least two probable starts in the window. Grouping is by normalised name,
// not player id, because feed rows may land before the id is linked.
func (s *StreamingService) GetTwoStartCandidates(ctx context.Context, start, end time.Time) ([]TwoStartCandidate, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if start.IsZero() || end.IsZero() {
		start, end = WeekBounds(time.Now())
	}
	rows, err := s.Repo.ListProbableStarts(ctx, repository.ProbableStartParams{
		Start:         start,
		End:           end,
		SpanDays:      s.span(),
		FreeAgentOnly: true,
	})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*TwoStartCandidate)
	seenDay := make(map[string]bool)
	var order []string
	for _, r := range rows {
		key := r.NormalisedName
		if key == "" {
			key = strings.ToLower(r.Name)
		}
		dayKey := key + ":" + r.GameDate.Format("2006-01-02")
		if seenDay[dayKey] {
			continue
		}
		seenDay[dayKey] = true
		c, ok := grouped[key]
		if !ok {
			c = &TwoStartCandidate{PlayerIdentity: r.PlayerIdentity, ReliabilityScore: r.ReliabilityScore}
			grouped[key] = c
			order = append(order, key)
		}
		c.Lines = append(c.Lines, schedule.StartLine{
			Date:     r.GameDate,
			Opponent: r.Opponent,
			Home:     r.Home,
			Score:    schedule.StartScore(r.OppOPSVsHandPct, r.FIPPct, r.QSPct, r.BBPer9Pct, r.Home),
		})
	}

	var out []TwoStartCandidate
	for _, key := range order {
		c := grouped[key]
		if len(c.Lines) < 2 {
			continue
		}
		var total float64
		for _, l := range c.Lines {
			total += l.Score
		}
		c.Starts = len(c.Lines)
		c.Score = total / float64(c.Starts)
		out = append(out, *c)
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
	if s.Logger != nil {
		s.Logger.Debug("two-start candidates built", zap.Int("count", len(out)))
	}
	return out, nil
}

// GetDailyStreamCandidates scores every free-agent probable start in the
// window, best first.
func (s *StreamingService) GetDailyStreamCandidates(ctx context.Context, start, end time.Time) ([]StreamCandidate, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if start.IsZero() || end.IsZero() {
		start, end = WeekBounds(time.Now())
	}
	rows, err := s.Repo.ListProbableStarts(ctx, repository.ProbableStartParams{
		Start:         start,
		End:           end,
		SpanDays:      s.span(),
		FreeAgentOnly: true,
	})
	if err != nil {
		return nil, err
	}
	entries := make([]ranking.Entry, 0, len(rows))
	for _, r := range rows {
		c := streamCandidate(r)
		c.Score = schedule.StartScore(r.OppOPSVsHandPct, r.FIPPct, r.QSPct, r.BBPer9Pct, r.Home)
		entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: c.Score, Payload: c})
	}
	ranking.Rank(entries)
	out := make([]StreamCandidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Payload.(StreamCandidate))
	}
	return out, nil
}

// GetNRFICandidates scores every probable start, rostered or not, for
// no-run-first-inning likelihood.
func (s *StreamingService) GetNRFICandidates(ctx context.Context, start, end time.Time) ([]StreamCandidate, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if start.IsZero() || end.IsZero() {
		start, end = WeekBounds(time.Now())
	}
	rows, err := s.Repo.ListProbableStarts(ctx, repository.ProbableStartParams{
		Start:    start,
		End:      end,
		SpanDays: s.span(),
	})
	if err != nil {
		return nil, err
	}
	entries := make([]ranking.Entry, 0, len(rows))
	for _, r := range rows {
		c := streamCandidate(r)
		c.Score = scoring.Compute(scoring.CategoryNRFI, scoring.Bundle{
			scoring.StatKPer9:  r.KPer9Pct,
			scoring.StatFIP:    r.FIPPct,
			scoring.StatOppOPS: r.OppOPSVsHandPct,
			scoring.StatERA:    r.EraPct,
		})
		if r.Home {
			c.Score += nrfiHomeBonus
		}
		entries = append(entries, ranking.Entry{PlayerID: r.PlayerID, Score: c.Score, Payload: c})
	}
	ranking.Rank(entries)
	out := make([]StreamCandidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Payload.(StreamCandidate))
	}
	return out, nil
}

func streamCandidate(r repository.ProbableStartRow) StreamCandidate {
	return StreamCandidate{
		PlayerIdentity:    r.PlayerIdentity,
		GameDate:          r.GameDate,
		Team:              r.Team,
		Opponent:          r.Opponent,
		Home:              r.Home,
		QSLikelihoodScore: r.QSLikelihoodScore,
		Accuracy:          r.Accuracy,
		ReliabilityScore:  r.ReliabilityScore,
	}
}
