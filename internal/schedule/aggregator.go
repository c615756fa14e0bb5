// Package schedule turns the probable-games feed into forward-looking week
// scores: one per rostered pitcher (mean over probable starts) and one per
// rostered hitter (games-weighted mean over opponent matchups).
package schedule

import (
	"sort"
	"time"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/scoring"
)

const homeStartBonus = 3.0

// StartLine is one scored probable start inside a pitcher's week.
type StartLine struct {
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
	Home     bool      `json:"home"`
	Score    float64   `json:"score"`
}

// PitcherWeek is the aggregated schedule outlook for one rostered pitcher.
type PitcherWeek struct {
	repository.PlayerIdentity
	Starts int         `json:"starts"`
	Score  float64     `json:"score"`
	Lines  []StartLine `json:"lines"`
}

// MatchupLine is one opponent series inside a hitter's week.
type MatchupLine struct {
	Opponent string  `json:"opponent"`
	Games    int     `json:"games"`
	Score    float64 `json:"score"`
}

// HitterWeek is the aggregated schedule outlook for one rostered hitter.
type HitterWeek struct {
	repository.PlayerIdentity
	Games    int           `json:"games"`
	Score    float64       `json:"score"`
	Matchups []MatchupLine `json:"matchups"`
}

// StartScore scores a single probable start. Any missing percentile reads as
// neutral 50, so a start against an unknown opponent scores exactly 50 away
// and 53 at home.
func StartScore(oppOPSVsHand, fipPct, qsPct, bbPer9Pct *float64, home bool) float64 {
	b := scoring.Bundle{
		scoring.StatOppOPS: oppOPSVsHand,
		scoring.StatFIP:    fipPct,
		scoring.StatQS:     qsPct,
		scoring.StatBBPer9: bbPer9Pct,
	}
	score := 0.45*(100-b.Get(scoring.StatOppOPS)) +
		0.25*b.Get(scoring.StatFIP) +
		0.20*b.Get(scoring.StatQS) +
		0.10*(100-b.Get(scoring.StatBBPer9))
	if home {
		score += homeStartBonus
	}
	return score
}

// AggregatePitcherWeeks groups scored starts by pitcher. The week score is
// the arithmetic mean over the pitcher's starts; start count rides alongside
// so "most starts" views can order by count rather than score.
func AggregatePitcherWeeks(rows []repository.PitcherStartRow) []PitcherWeek {
	byPlayer := make(map[uint64]*PitcherWeek)
	order := make([]uint64, 0, len(rows))
	for _, r := range rows {
		w, ok := byPlayer[r.PlayerID]
		if !ok {
			w = &PitcherWeek{PlayerIdentity: r.PlayerIdentity}
			byPlayer[r.PlayerID] = w
			order = append(order, r.PlayerID)
		}
		score := StartScore(r.OppOPSVsHandPct, r.FIPPct, r.QSPct, r.BBPer9Pct, r.Home)
		w.Lines = append(w.Lines, StartLine{
			Date:     r.GameDate,
			Opponent: r.Opponent,
			Home:     r.Home,
			Score:    score,
		})
	}
	weeks := make([]PitcherWeek, 0, len(byPlayer))
	for _, id := range order {
		w := byPlayer[id]
		var total float64
		for _, l := range w.Lines {
			total += l.Score
		}
		w.Starts = len(w.Lines)
		w.Score = total / float64(w.Starts)
		weeks = append(weeks, *w)
	}
	return weeks
}

// OpponentQuality carries the percentile inputs of one opposing club's
// pitching staff: overall WHIP and FIP, plus OPS allowed split by the
// batter's hand ("L"/"R"/"S").
type OpponentQuality struct {
	WHIPPct   *float64
	FIPPct    *float64
	OPSVsBats map[string]*float64
}

// MatchupScore scores one hitter-vs-club series. Missing inputs default to
// neutral 50, so a fully unknown opponent scores exactly 50.
func MatchupScore(q OpponentQuality, bats string) float64 {
	b := scoring.Bundle{
		scoring.StatWHIP:   q.WHIPPct,
		scoring.StatFIP:    q.FIPPct,
		scoring.StatOppOPS: q.OPSVsBats[bats],
	}
	return 0.50*(100-b.Get(scoring.StatWHIP)) +
		0.30*(100-b.Get(scoring.StatFIP)) +
		0.20*(100-b.Get(scoring.StatOppOPS))
}

// AggregateHitterWeeks builds one week outlook per rostered hitter. The feed
// lists every game from both clubs' perspectives, so each hitter's games are
// deduplicated on the physical game key before counting; the week score is
// then the games-weighted mean over opponent matchups. The whole aggregate
// lives in this call's memory, so concurrent runs for the same team cannot
// interfere.
func AggregateHitterWeeks(batters []repository.RosterBatterRow, games []models.ProbableGame, quality map[string]OpponentQuality) []HitterWeek {
	weeks := make([]HitterWeek, 0, len(batters))
	for _, batter := range batters {
		w := HitterWeek{PlayerIdentity: batter.PlayerIdentity}
		if batter.ClubTeam == nil || *batter.ClubTeam == "" {
			weeks = append(weeks, w)
			continue
		}
		club := *batter.ClubTeam

		// Pass one: each physical game exactly once, resolved to the club
		// the hitter faces.
		opponentByGame := make(map[string]string)
		for _, g := range games {
			var opponent string
			switch club {
			case g.Team:
				opponent = g.Opponent
			case g.Opponent:
				opponent = g.Team
			default:
				continue
			}
			key := g.GameKey()
			if _, ok := opponentByGame[key]; !ok {
				opponentByGame[key] = opponent
			}
		}

		// Pass two: group by opponent, weight by game count.
		counts := make(map[string]int)
		for _, opponent := range opponentByGame {
			counts[opponent]++
		}
		bats := "R"
		if batter.Bats != nil && *batter.Bats != "" {
			bats = *batter.Bats
		}
		var weighted float64
		for opponent, n := range counts {
			score := MatchupScore(quality[opponent], bats)
			w.Matchups = append(w.Matchups, MatchupLine{Opponent: opponent, Games: n, Score: score})
			weighted += float64(n) * score
			w.Games += n
		}
		sort.Slice(w.Matchups, func(i, j int) bool { return w.Matchups[i].Opponent < w.Matchups[j].Opponent })
		if w.Games > 0 {
			w.Score = weighted / float64(w.Games)
		}
		weeks = append(weeks, w)
	}
	return weeks
}
