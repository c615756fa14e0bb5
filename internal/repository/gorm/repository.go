package gormrepository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

const identityColumns = `
	p.id AS player_id,
	p.name AS name,
	p.mlb_team AS mlb_team,
	p.status AS status,
	p.team_id AS team_id,
	p.eligible_positions AS eligible_positions,
	p.selected_position AS selected_position,
	p.headshot_url AS headshot_url`

// --- Candidate rows ---------------------------------------------------------

func (s *Store) ListBatterRows(ctx context.Context, params repository.CandidateParams) ([]repository.BatterRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("player_rolling_stats AS rs").
		Select(identityColumns + `,
			rs.span_days AS span_days,
			rs.split_type AS split_type,
			rs.hits AS hits,
			rs.abs AS abs,
			rs.runs AS runs,
			rs.hr AS hr,
			rs.rbi AS rbi,
			rs.sb AS sb,
			rs.avg AS avg,
			pct.runs_pct AS runs_pct,
			pct.hr_pct AS hr_pct,
			pct.rbi_pct AS rbi_pct,
			pct.sb_pct AS sb_pct,
			pct.avg_pct AS avg_pct,
			adv.obp_pct AS obp_pct,
			adv.slg_pct AS slg_pct,
			adv.iso_pct AS iso_pct,
			adv.bb_rate_pct AS bb_rate_pct,
			adv.k_rate_pct AS k_rate_pct,
			COALESCE(pct.reliability_score, 0) AS reliability_score`).
		Joins("JOIN players AS p ON p.id = rs.player_id").
		Joins(`LEFT JOIN player_rolling_stats_percentiles AS pct
			ON pct.player_id = rs.player_id
			AND pct.span_days = rs.span_days
			AND pct.split_type = rs.split_type
			AND pct.position = rs.position`).
		Joins(`LEFT JOIN player_advanced_rolling_stats_percentiles AS adv
			ON adv.player_id = rs.player_id
			AND adv.span_days = rs.span_days
			AND adv.split_type = rs.split_type
			AND adv.position = rs.position`).
		Where("rs.position = ?", models.PositionBatter)
	query = applyCandidateFilters(query, params)
	var rows []repository.BatterRow
	if err := query.Order("p.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListPitcherRows(ctx context.Context, params repository.CandidateParams) ([]repository.PitcherRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("player_rolling_stats AS rs").
		Select(identityColumns + `,
			rs.span_days AS span_days,
			rs.split_type AS split_type,
			rs.ip AS ip,
			rs.strikeouts AS strikeouts,
			rs.qs AS qs,
			rs.sv AS sv,
			rs.hld AS hld,
			rs.era AS era,
			rs.whip AS whip,
			pct.strikeouts_pct AS strikeouts_pct,
			pct.era_pct AS era_pct,
			pct.whip_pct AS whip_pct,
			pct.qs_pct AS qs_pct,
			pct.sv_pct AS sv_pct,
			pct.hld_pct AS hld_pct,
			adv.k_per_9_pct AS k_per_9_pct,
			adv.bb_per_9_pct AS bb_per_9_pct,
			adv.fip_pct AS fip_pct,
			COALESCE(pct.reliability_score, 0) AS reliability_score`).
		Joins("JOIN players AS p ON p.id = rs.player_id").
		Joins(`LEFT JOIN player_rolling_stats_percentiles AS pct
			ON pct.player_id = rs.player_id
			AND pct.span_days = rs.span_days
			AND pct.split_type = rs.split_type
			AND pct.position = rs.position`).
		Joins(`LEFT JOIN player_advanced_rolling_stats_percentiles AS adv
			ON adv.player_id = rs.player_id
			AND adv.span_days = rs.span_days
			AND adv.split_type = rs.split_type
			AND adv.position = rs.position`).
		Where("rs.position = ?", models.PositionPitcher)
	query = applyCandidateFilters(query, params)
	var rows []repository.PitcherRow
	if err := query.Order("p.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func applyCandidateFilters(query *gorm.DB, params repository.CandidateParams) *gorm.DB {
	query = query.Where("rs.span_days = ?", params.SpanDays)
	split := params.SplitType
	if strings.TrimSpace(split) == "" {
		split = "overall"
	}
	query = query.Where("rs.split_type = ?", split)
	if params.FreeAgentOnly {
		query = query.Where("p.status = ?", models.StatusFreeAgent)
	}
	if params.TeamID != nil {
		query = query.Where("p.team_id = ?", *params.TeamID)
	}
	if params.EligibleAt != "" {
		if col, ok := repository.PositionColumn(params.EligibleAt); ok {
			query = query.Where("p." + col + " = TRUE")
		}
	}
	return query
}

// --- Schedule strength ------------------------------------------------------

func (s *Store) ListRosterPitcherStarts(ctx context.Context, params repository.RosterStartParams) ([]repository.PitcherStartRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []repository.PitcherStartRow
	err := s.db.WithContext(ctx).
		Table("probable_pitchers AS pp").
		Select(identityColumns + `,
			pp.game_date AS game_date,
			pp.team AS team,
			pp.opponent AS opponent,
			pp.home AS home,
			tvp.ops_pct AS opp_ops_vs_hand_pct,
			adv.fip_pct AS fip_pct,
			pct.qs_pct AS qs_pct,
			adv.bb_per_9_pct AS bb_per_9_pct`).
		Joins("JOIN players AS p ON p.id = pp.player_id").
		Joins("LEFT JOIN player_lookup AS pl ON pl.player_id = p.id").
		Joins(`LEFT JOIN player_rolling_stats_percentiles AS pct
			ON pct.player_id = p.id
			AND pct.span_days = ?
			AND pct.split_type = 'overall'
			AND pct.position = ?`, params.SpanDays, models.PositionPitcher).
		Joins(`LEFT JOIN player_advanced_rolling_stats_percentiles AS adv
			ON adv.player_id = p.id
			AND adv.span_days = ?
			AND adv.split_type = 'overall'
			AND adv.position = ?`, params.SpanDays, models.PositionPitcher).
		Joins(`LEFT JOIN team_vs_pitcher_splits_percentiles AS tvp
			ON tvp.team = pp.opponent
			AND tvp.throws = COALESCE(pl.throws, 'R')
			AND tvp.span_days = ?`, params.SpanDays).
		Where("p.team_id = ?", params.TeamID).
		Where("pp.game_date BETWEEN ? AND ?", params.Start, params.End).
		Order("p.id asc, pp.game_date asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListProbableGames(ctx context.Context, start, end time.Time) ([]models.ProbableGame, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.ProbableGame
	if err := s.db.WithContext(ctx).
		Model(&models.ProbableGame{}).
		Where("game_date BETWEEN ? AND ?", start, end).
		Order("game_date asc, team asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListRosterBatters(ctx context.Context, teamID uint64) ([]repository.RosterBatterRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []repository.RosterBatterRow
	err := s.db.WithContext(ctx).
		Table("players AS p").
		Select(identityColumns+`,
			COALESCE(pl.team, p.mlb_team) AS club_team,
			pl.bats AS bats`).
		Joins("LEFT JOIN player_lookup AS pl ON pl.player_id = p.id").
		Where("p.team_id = ?", teamID).
		Where("p.position = ?", models.PositionBatter).
		Order("p.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListTeamPitchingPercentiles(ctx context.Context, teams []string, spanDays int) ([]models.TeamRollingStatPercentile, error) {
	if s == nil || s.db == nil || len(teams) == 0 {
		return nil, nil
	}
	var items []models.TeamRollingStatPercentile
	if err := s.db.WithContext(ctx).
		Model(&models.TeamRollingStatPercentile{}).
		Where("team IN ?", teams).
		Where("span_days = ?", spanDays).
		Where("split_type = 'overall'").
		Where("position = ?", models.PositionPitcher).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListTeamVsBatterSplits(ctx context.Context, teams []string, spanDays int) ([]models.TeamVsBatterSplitPercentile, error) {
	if s == nil || s.db == nil || len(teams) == 0 {
		return nil, nil
	}
	var items []models.TeamVsBatterSplitPercentile
	if err := s.db.WithContext(ctx).
		Model(&models.TeamVsBatterSplitPercentile{}).
		Where("team IN ?", teams).
		Where("span_days = ?", spanDays).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- Streaming --------------------------------------------------------------

func (s *Store) ListProbableStarts(ctx context.Context, params repository.ProbableStartParams) ([]repository.ProbableStartRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("probable_pitchers AS pp").
		Select(identityColumns + `,
			pp.game_date AS game_date,
			pp.team AS team,
			pp.opponent AS opponent,
			pp.home AS home,
			COALESCE(pp.normalised_name, '') AS normalised_name,
			pp.accuracy AS accuracy,
			pp.qs_likelihood_score AS qs_likelihood_score,
			COALESCE(rs.ip, 0) AS ip,
			pct.strikeouts_pct AS strikeouts_pct,
			pct.era_pct AS era_pct,
			pct.whip_pct AS whip_pct,
			pct.qs_pct AS qs_pct,
			adv.k_per_9_pct AS k_per_9_pct,
			adv.bb_per_9_pct AS bb_per_9_pct,
			adv.fip_pct AS fip_pct,
			tvp.ops_pct AS opp_ops_vs_hand_pct,
			COALESCE(pct.reliability_score, 0) AS reliability_score`).
		Joins("JOIN players AS p ON p.id = pp.player_id").
		Joins("LEFT JOIN player_lookup AS pl ON pl.player_id = p.id").
		Joins(`LEFT JOIN player_rolling_stats AS rs
			ON rs.player_id = p.id
			AND rs.span_days = ?
			AND rs.split_type = 'overall'
			AND rs.position = ?`, params.SpanDays, models.PositionPitcher).
		Joins(`LEFT JOIN player_rolling_stats_percentiles AS pct
			ON pct.player_id = p.id
			AND pct.span_days = ?
			AND pct.split_type = 'overall'
			AND pct.position = ?`, params.SpanDays, models.PositionPitcher).
		Joins(`LEFT JOIN player_advanced_rolling_stats_percentiles AS adv
			ON adv.player_id = p.id
			AND adv.span_days = ?
			AND adv.split_type = 'overall'
			AND adv.position = ?`, params.SpanDays, models.PositionPitcher).
		Joins(`LEFT JOIN team_vs_pitcher_splits_percentiles AS tvp
			ON tvp.team = pp.opponent
			AND tvp.throws = COALESCE(pl.throws, 'R')
			AND tvp.span_days = ?`, params.SpanDays).
		Where("pp.player_id IS NOT NULL").
		Where("pp.game_date BETWEEN ? AND ?", params.Start, params.End)
	if params.FreeAgentOnly {
		query = query.Where("p.status = ?", models.StatusFreeAgent)
	}
	var rows []repository.ProbableStartRow
	if err := query.Order("pp.game_date asc, p.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --- Players ----------------------------------------------------------------

func (s *Store) SearchPlayers(ctx context.Context, search string, limit int) ([]models.Player, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	search = strings.TrimSpace(search)
	if search == "" {
		return nil, nil
	}
	limit = normalizeLimit(limit, 20)
	pattern := "%" + search + "%"
	var items []models.Player
	if err := s.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("name ILIKE ? OR normalised_name ILIKE ?", pattern, pattern).
		Order("name asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --- Retention --------------------------------------------------------------

func (s *Store) DeleteProbableGamesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	if cutoff.IsZero() {
		cutoff = time.Now().UTC()
	}
	res := s.db.WithContext(ctx).
		Where("game_date < ?", cutoff).
		Delete(&models.ProbableGame{})
	return res.RowsAffected, res.Error
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}
