package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/repository"
)

type PlayerService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *PlayerService) Search(ctx context.Context, query string, limit int) ([]models.Player, error) {
	if s == nil || s.Repo == nil {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrMissingParameter
	}
	return s.Repo.SearchPlayers(ctx, query, limit)
}
