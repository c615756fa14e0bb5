package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

func TestScheduleStrengthRequiresTeam(t *testing.T) {
	svc := &ScheduleService{Repo: &stubRepo{}, Engine: testEngine()}
	_, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{Kind: KindPitching})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

func TestScheduleStrengthRejectsUnknownKind(t *testing.T) {
	svc := &ScheduleService{Repo: &stubRepo{}, Engine: testEngine()}
	_, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{TeamID: 1, Kind: "fielding"})
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestScheduleStrengthRejectsUnknownWindow(t *testing.T) {
	svc := &ScheduleService{Repo: &stubRepo{}, Engine: testEngine()}
	_, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{TeamID: 1, Kind: KindPitching, SpanDays: 9})
	if !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("expected ErrUnknownWindow, got %v", err)
	}
}

func TestScheduleStrengthPitchingWeek(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{pitcherStarts: []repository.PitcherStartRow{
		{
			PlayerIdentity:  repository.PlayerIdentity{PlayerID: 5, Name: "Ace"},
			GameDate:        day,
			Team:            "NYY",
			Opponent:        "BOS",
			Home:            true,
			OppOPSVsHandPct: fp(40),
			FIPPct:          fp(70),
			QSPct:           fp(60),
			BBPer9Pct:       fp(50),
		},
		{
			PlayerIdentity: repository.PlayerIdentity{PlayerID: 5, Name: "Ace"},
			GameDate:       day.AddDate(0, 0, 4),
			Team:           "NYY",
			Opponent:       "TOR",
			Home:           false,
		},
	}}
	svc := &ScheduleService{Repo: repo, Engine: testEngine()}
	out, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{
		TeamID: 1,
		Kind:   KindPitching,
		Start:  day,
		End:    day.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Pitchers) != 1 {
		t.Fatalf("expected one pitcher week, got %d", len(out.Pitchers))
	}
	if math.Abs(out.Pitchers[0].Score-57.25) > 1e-9 {
		t.Fatalf("week score: got %v, want 57.25", out.Pitchers[0].Score)
	}
}

func TestScheduleStrengthBattingBuildsOpponentQuality(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	club := "NYY"
	bats := "L"
	repo := &stubRepo{
		rosterBatters: []repository.RosterBatterRow{
			{PlayerIdentity: repository.PlayerIdentity{PlayerID: 7, Name: "H"}, ClubTeam: &club, Bats: &bats},
		},
		probableGames: []models.ProbableGame{
			{GameDate: day, Team: "NYY", Opponent: "BOS", Home: true},
		},
		teamPitching: []models.TeamRollingStatPercentile{
			{Team: "BOS", SpanDays: 14, WhipPct: fp(20), FIPPct: fp(20)},
		},
		vsBatterSplits: []models.TeamVsBatterSplitPercentile{
			{Team: "BOS", Bats: "L", SpanDays: 14, OPSPct: fp(20)},
		},
	}
	svc := &ScheduleService{Repo: repo, Engine: testEngine()}
	out, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{
		TeamID: 1,
		Kind:   KindBatting,
		Start:  day,
		End:    day.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Hitters) != 1 {
		t.Fatalf("expected one hitter week, got %d", len(out.Hitters))
	}
	// 0.50*80 + 0.30*80 + 0.20*80 = 80 against a weak staff.
	if math.Abs(out.Hitters[0].Score-80) > 1e-9 {
		t.Fatalf("matchup score: got %v, want 80", out.Hitters[0].Score)
	}
}

func TestTeamProbablePitchersScoredAndDateOrdered(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{pitcherStarts: []repository.PitcherStartRow{
		{
			PlayerIdentity: repository.PlayerIdentity{PlayerID: 9, Name: "Late"},
			GameDate:       day.AddDate(0, 0, 3),
			Team:           "NYY",
			Opponent:       "TOR",
		},
		{
			PlayerIdentity:  repository.PlayerIdentity{PlayerID: 5, Name: "Ace"},
			GameDate:        day,
			Team:            "NYY",
			Opponent:        "BOS",
			Home:            true,
			OppOPSVsHandPct: fp(40),
			FIPPct:          fp(70),
			QSPct:           fp(60),
			BBPer9Pct:       fp(50),
		},
	}}
	svc := &ScheduleService{Repo: repo, Engine: testEngine()}
	starts, err := svc.GetTeamProbablePitchers(context.Background(), ScheduleParams{
		TeamID: 1,
		Start:  day,
		End:    day.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(starts) != 2 {
		t.Fatalf("expected two starts, got %d", len(starts))
	}
	if starts[0].PlayerID != 5 || starts[1].PlayerID != 9 {
		t.Fatalf("starts not date-ordered: %+v", starts)
	}
	if math.Abs(starts[0].Score-64.5) > 1e-9 {
		t.Fatalf("start score: got %v, want 64.5", starts[0].Score)
	}
	if math.Abs(starts[1].Score-50) > 1e-9 {
		t.Fatalf("blank away start: got %v, want 50", starts[1].Score)
	}
}

func TestTeamProbablePitchersRequiresTeam(t *testing.T) {
	svc := &ScheduleService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetTeamProbablePitchers(context.Background(), ScheduleParams{}); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

func TestTeamTwoStartPitchersRequiresTwoStarts(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{pitcherStarts: []repository.PitcherStartRow{
		{PlayerIdentity: repository.PlayerIdentity{PlayerID: 1, Name: "One"}, GameDate: day, Team: "NYY", Opponent: "BOS"},
		{PlayerIdentity: repository.PlayerIdentity{PlayerID: 2, Name: "Two"}, GameDate: day, Team: "NYY", Opponent: "BOS"},
		{PlayerIdentity: repository.PlayerIdentity{PlayerID: 2, Name: "Two"}, GameDate: day.AddDate(0, 0, 5), Team: "NYY", Opponent: "TOR"},
	}}
	svc := &ScheduleService{Repo: repo, Engine: testEngine()}
	weeks, err := svc.GetTeamTwoStartPitchers(context.Background(), ScheduleParams{
		TeamID: 1,
		Start:  day,
		End:    day.AddDate(0, 0, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weeks) != 1 || weeks[0].PlayerID != 2 {
		t.Fatalf("expected only the two-start pitcher, got %+v", weeks)
	}
	if weeks[0].Starts != 2 {
		t.Fatalf("starts: got %d, want 2", weeks[0].Starts)
	}
}

func TestScheduleServiceWithoutRepoFailsClosed(t *testing.T) {
	svc := &ScheduleService{Engine: testEngine()}
	if _, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{TeamID: 1, Kind: KindPitching}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := svc.GetTeamProbablePitchers(context.Background(), ScheduleParams{TeamID: 1}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestScheduleStrengthDefaultsToCurrentWeek(t *testing.T) {
	svc := &ScheduleService{Repo: &stubRepo{}, Engine: testEngine()}
	out, err := svc.GetScheduleStrength(context.Background(), ScheduleParams{TeamID: 1, Kind: KindPitching})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Start.Weekday() != time.Monday || out.End.Weekday() != time.Sunday {
		t.Fatalf("default window should be Monday-Sunday, got %s to %s", out.Start.Weekday(), out.End.Weekday())
	}
	if out.End.Sub(out.Start) != 6*24*time.Hour {
		t.Fatalf("default window should span 7 days, got %v", out.End.Sub(out.Start))
	}
}
