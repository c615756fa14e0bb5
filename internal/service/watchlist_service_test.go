package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

func batterRow(id uint64, reliability, atBats int) repository.BatterRow {
	return repository.BatterRow{
		PlayerIdentity:   repository.PlayerIdentity{PlayerID: id, Name: "B"},
		SpanDays:         14,
		SplitType:        "overall",
		AtBats:           atBats,
		SBPct:            fp(90),
		OBPPct:           fp(70),
		AVGPct:           fp(60),
		KRatePct:         fp(80),
		RunsPct:          fp(50),
		ReliabilityScore: reliability,
	}
}

func pitcherRow(id uint64, reliability int, innings float64) repository.PitcherRow {
	return repository.PitcherRow{
		PlayerIdentity:   repository.PlayerIdentity{PlayerID: id, Name: "P"},
		SpanDays:         14,
		SplitType:        "overall",
		IP:               decimal.NewFromFloat(innings),
		SVPct:            fp(80),
		KPer9Pct:         fp(70),
		WhipPct:          fp(60),
		FIPPct:           fp(60),
		BBPer9Pct:        fp(50),
		ReliabilityScore: reliability,
	}
}

func TestWatchlistGateReliabilityBoundary(t *testing.T) {
	repo := &stubRepo{batterRows: []repository.BatterRow{
		batterRow(1, 59, 40),
		batterRow(2, 60, 40),
	}}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].PlayerID != 2 {
		t.Fatalf("expected only player 2 past the gate, got %+v", page.Players)
	}
}

func TestWatchlistGateAtBatsMinimum(t *testing.T) {
	repo := &stubRepo{batterRows: []repository.BatterRow{
		batterRow(1, 80, 14),
		batterRow(2, 80, 15),
	}}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "power"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].PlayerID != 2 {
		t.Fatalf("expected only the 15-AB player, got %+v", page.Players)
	}
}

func TestWatchlistRelieverRunsSofterGate(t *testing.T) {
	repo := &stubRepo{pitcherRows: []repository.PitcherRow{
		pitcherRow(1, 55, 4),
		pitcherRow(2, 54, 4),
		pitcherRow(3, 55, 3.9),
	}}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "reliever"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].PlayerID != 1 {
		t.Fatalf("reliever gate admitted wrong set: %+v", page.Players)
	}
}

func TestWatchlistStarterInningsGate(t *testing.T) {
	repo := &stubRepo{pitcherRows: []repository.PitcherRow{
		pitcherRow(1, 80, 5.9),
		pitcherRow(2, 80, 6),
	}}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "starter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Players) != 1 || page.Players[0].PlayerID != 2 {
		t.Fatalf("starter gate admitted wrong set: %+v", page.Players)
	}
}

func TestWatchlistRejectsUnknownCategory(t *testing.T) {
	svc := &WatchlistService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "defense"}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "nrfi"}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("nrfi is not a watchlist category, got %v", err)
	}
}

func TestWatchlistRejectsUnknownWindow(t *testing.T) {
	svc := &WatchlistService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed", SpanDays: 21}); !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("expected ErrUnknownWindow, got %v", err)
	}
}

func TestWatchlistWithoutRepoFailsClosed(t *testing.T) {
	svc := &WatchlistService{Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestWatchlistRejectsMissingCategory(t *testing.T) {
	svc := &WatchlistService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{}); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}

func TestWatchlistRejectsUnknownPosition(t *testing.T) {
	svc := &WatchlistService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed", Position: "DH9"}); !errors.Is(err, ErrUnknownPosition) {
		t.Fatalf("expected ErrUnknownPosition, got %v", err)
	}
}

func TestWatchlistQueriesFreeAgentsOnly(t *testing.T) {
	repo := &stubRepo{}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	if _, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "contact", Position: "OF"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.lastCandidates.FreeAgentOnly {
		t.Fatal("watchlist must query free agents only")
	}
	if repo.lastCandidates.EligibleAt != "OF" {
		t.Fatalf("position filter not forwarded: %+v", repo.lastCandidates)
	}
	if repo.lastCandidates.SpanDays != 14 {
		t.Fatalf("default span not applied: %+v", repo.lastCandidates)
	}
}

func TestWatchlistMissingPercentilesScoreNeutral(t *testing.T) {
	row := repository.BatterRow{
		PlayerIdentity:   repository.PlayerIdentity{PlayerID: 1},
		SpanDays:         14,
		AtBats:           30,
		ReliabilityScore: 90,
	}
	repo := &stubRepo{batterRows: []repository.BatterRow{row}}
	svc := &WatchlistService{Repo: repo, Engine: testEngine()}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "contact"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// contact with every input neutral: (0.60+0.45+0.25-0.30)*50 = 50.
	if got := page.Players[0].Score; got != 50 {
		t.Fatalf("neutral contact score: got %v, want 50", got)
	}
	if band := page.Players[0].Bands[string(scoring.StatAVG)]; band != scoring.BandInsufficient {
		t.Fatalf("missing percentile band: got %q, want insufficient", band)
	}
}

func TestWatchlistBandsUseConfiguredDisplayReliability(t *testing.T) {
	repo := &stubRepo{batterRows: []repository.BatterRow{batterRow(1, 75, 40)}}
	engine := testEngine()
	engine.DisplayReliability = 80
	svc := &WatchlistService{Repo: repo, Engine: engine}
	page, err := svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if band := page.Players[0].Bands[string(scoring.StatSB)]; band != scoring.BandInsufficient {
		t.Fatalf("reliability 75 under display floor 80: got %q, want insufficient", band)
	}

	engine.DisplayReliability = 70
	svc = &WatchlistService{Repo: repo, Engine: engine}
	page, err = svc.GetWatchlist(context.Background(), WatchlistParams{Category: "speed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if band := page.Players[0].Bands[string(scoring.StatSB)]; band != scoring.BandElite {
		t.Fatalf("reliability 75 over display floor 70: got %q, want elite", band)
	}
}
