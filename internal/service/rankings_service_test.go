package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

func TestRankingsRejectsUnknownSortKey(t *testing.T) {
	svc := &RankingsService{Repo: &stubRepo{}, Engine: testEngine()}
	_, err := svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters, SortKey: "wins"})
	if !errors.Is(err, ErrUnknownSortKey) {
		t.Fatalf("expected ErrUnknownSortKey, got %v", err)
	}
	// Pitcher keys are not valid for batters.
	_, err = svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters, SortKey: "era"})
	if !errors.Is(err, ErrUnknownSortKey) {
		t.Fatalf("expected ErrUnknownSortKey for cross-kind key, got %v", err)
	}
}

func TestRankingsRejectsUnknownKind(t *testing.T) {
	svc := &RankingsService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetRankings(context.Background(), RankingsParams{Kind: "fielders"}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRankingsSortKeyOverridesComposite(t *testing.T) {
	low := batterRow(1, 90, 40)
	low.HRPct = fp(95)
	low.RunsPct = fp(10)
	high := batterRow(2, 90, 40)
	high.HRPct = fp(10)
	high.RunsPct = fp(99)
	repo := &stubRepo{batterRows: []repository.BatterRow{high, low}}
	svc := &RankingsService{Repo: repo, Engine: testEngine()}

	byComposite, err := svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byComposite.Players[0].PlayerID != 2 {
		t.Fatalf("composite order should put player 2 first, got %d", byComposite.Players[0].PlayerID)
	}
	page, err := svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters, SortKey: "hr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Players[0].PlayerID != 1 {
		t.Fatalf("sortKey=hr should put player 1 first, got %d", page.Players[0].PlayerID)
	}
}

func TestRankingsSortKeyNilSinksBelowAnyValue(t *testing.T) {
	withHR := batterRow(1, 90, 40)
	withHR.HRPct = fp(1)
	noHR := batterRow(2, 90, 40)
	noHR.HRPct = nil
	repo := &stubRepo{batterRows: []repository.BatterRow{noHR, withHR}}
	svc := &RankingsService{Repo: repo, Engine: testEngine()}

	page, err := svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters, SortKey: "hr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Players[0].PlayerID != 1 || page.Players[1].PlayerID != 2 {
		t.Fatalf("nil percentile should sort last: %+v", page.Players)
	}
}

func TestRankingsTiedSortKeyIsDeterministic(t *testing.T) {
	rows := []repository.BatterRow{}
	for _, id := range []uint64{9, 3, 7, 5} {
		r := batterRow(id, 90, 40)
		r.HRPct = fp(75)
		rows = append(rows, r)
	}
	repo := &stubRepo{batterRows: rows}
	svc := &RankingsService{Repo: repo, Engine: testEngine()}

	var first []uint64
	for run := 0; run < 3; run++ {
		page, err := svc.GetRankings(context.Background(), RankingsParams{Kind: KindBatters, SortKey: "hr"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var ids []uint64
		for _, p := range page.Players {
			ids = append(ids, p.PlayerID)
		}
		if first == nil {
			first = ids
			continue
		}
		if !reflect.DeepEqual(first, ids) {
			t.Fatalf("tied order changed across calls: %v vs %v", first, ids)
		}
	}
	if !reflect.DeepEqual(first, []uint64{3, 5, 7, 9}) {
		t.Fatalf("tie-break should be ascending player id, got %v", first)
	}
}

func TestTeamStatsSkipsReliabilityGate(t *testing.T) {
	repo := &stubRepo{batterRows: []repository.BatterRow{batterRow(1, 10, 2)}}
	svc := &RankingsService{Repo: repo, Engine: testEngine()}
	players, err := svc.GetTeamStats(context.Background(), 4, KindBatters, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 1 {
		t.Fatal("team view must include thin-sample roster players")
	}
	if repo.lastCandidates.TeamID == nil || *repo.lastCandidates.TeamID != 4 {
		t.Fatalf("team filter not forwarded: %+v", repo.lastCandidates)
	}
}

func TestTeamStatsRequiresTeam(t *testing.T) {
	svc := &RankingsService{Repo: &stubRepo{}, Engine: testEngine()}
	if _, err := svc.GetTeamStats(context.Background(), 0, KindBatters, 0); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("expected ErrMissingParameter, got %v", err)
	}
}
