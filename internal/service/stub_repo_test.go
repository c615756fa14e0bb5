package service

import (
	"context"
	"time"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

type stubRepo struct {
	batterRows     []repository.BatterRow
	pitcherRows    []repository.PitcherRow
	pitcherStarts  []repository.PitcherStartRow
	probableGames  []models.ProbableGame
	rosterBatters  []repository.RosterBatterRow
	teamPitching   []models.TeamRollingStatPercentile
	vsBatterSplits []models.TeamVsBatterSplitPercentile
	probableStarts []repository.ProbableStartRow
	players        []models.Player

	lastCandidates     repository.CandidateParams
	lastProbableParams repository.ProbableStartParams
	deleteCutoff       time.Time
	deleted            int64
}

func (r *stubRepo) ListBatterRows(_ context.Context, params repository.CandidateParams) ([]repository.BatterRow, error) {
	r.lastCandidates = params
	return r.batterRows, nil
}

func (r *stubRepo) ListPitcherRows(_ context.Context, params repository.CandidateParams) ([]repository.PitcherRow, error) {
	r.lastCandidates = params
	return r.pitcherRows, nil
}

func (r *stubRepo) ListRosterPitcherStarts(_ context.Context, _ repository.RosterStartParams) ([]repository.PitcherStartRow, error) {
	return r.pitcherStarts, nil
}

func (r *stubRepo) ListProbableGames(_ context.Context, _, _ time.Time) ([]models.ProbableGame, error) {
	return r.probableGames, nil
}

func (r *stubRepo) ListRosterBatters(_ context.Context, _ uint64) ([]repository.RosterBatterRow, error) {
	return r.rosterBatters, nil
}

func (r *stubRepo) ListTeamPitchingPercentiles(_ context.Context, _ []string, _ int) ([]models.TeamRollingStatPercentile, error) {
	return r.teamPitching, nil
}

func (r *stubRepo) ListTeamVsBatterSplits(_ context.Context, _ []string, _ int) ([]models.TeamVsBatterSplitPercentile, error) {
	return r.vsBatterSplits, nil
}

func (r *stubRepo) ListProbableStarts(_ context.Context, params repository.ProbableStartParams) ([]repository.ProbableStartRow, error) {
	r.lastProbableParams = params
	return r.probableStarts, nil
}

func (r *stubRepo) SearchPlayers(_ context.Context, _ string, _ int) ([]models.Player, error) {
	return r.players, nil
}

func (r *stubRepo) DeleteProbableGamesBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.deleteCutoff = cutoff
	return r.deleted, nil
}

var _ repository.Repository = (*stubRepo)(nil)

func testEngine() config.EngineConfig {
	return config.EngineConfig{
		DefaultSpanDays:     14,
		SpanDays:            []int{7, 14, 30},
		PageSize:            25,
		MinReliability:      60,
		RelieverReliability: 55,
		MinAtBats:           15,
		MinStarterInnings:   6,
		MinRelieverInnings:  4,
		StreamingSpanDays:   30,
		DisplayReliability:  70,
	}
}

func fp(v float64) *float64 { return &v }
