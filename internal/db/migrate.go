package db

import (
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.FantasyTeam{},
		&models.Player{},
		&models.PlayerLookup{},
		&models.RollingStat{},
		&models.RollingStatPercentile{},
		&models.AdvancedRollingStatPercentile{},
		&models.TeamRollingStatPercentile{},
		&models.TeamVsPitcherSplitPercentile{},
		&models.TeamVsBatterSplitPercentile{},
		&models.ProbableGame{},
	)
}
