package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/config"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

// RetentionService prunes probable-game rows that have aged past the window
// any view reads. Runs on the cron schedule.
type RetentionService struct {
	Repo      repository.Repository
	Logger    *zap.Logger
	Retention config.RetentionConfig
}

func (s *RetentionService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil {
		return ErrNotConfigured
	}
	if !s.Retention.Enabled {
		return nil
	}
	days := s.Retention.ProbableGameDays
	if days <= 0 {
		days = 10
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := s.Repo.DeleteProbableGamesBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("probable games pruned",
			zap.Time("cutoff", cutoff),
			zap.Int64("deleted", deleted))
	}
	return nil
}
