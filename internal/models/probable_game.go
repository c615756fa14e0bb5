package models

import (
	"fmt"
	"time"
)

// ProbableGame is one row of the probables feed: a scheduled game seen from
// one team's side, with that side's probable pitcher. The same physical game
// may appear twice, once per side.
type ProbableGame struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	FeedGameID        *string   `gorm:"type:varchar(50);index" json:"feed_game_id,omitempty"`
	GameDate          time.Time `gorm:"type:date;not null;index" json:"game_date"`
	Team              string    `gorm:"type:varchar(5);not null" json:"team"`
	Opponent          string    `gorm:"type:varchar(5);not null" json:"opponent"`
	Home              bool      `gorm:"not null;default:false" json:"home"`
	PlayerID          *uint64   `gorm:"index" json:"player_id,omitempty"`
	PitcherName       *string   `gorm:"type:varchar(100)" json:"pitcher_name,omitempty"`
	NormalisedName    *string   `gorm:"type:varchar(100);index" json:"-"`
	Accuracy          *float64  `gorm:"type:numeric(5,2)" json:"accuracy,omitempty"`
	QSLikelihoodScore *float64  `gorm:"type:numeric(6,2)" json:"qs_likelihood_score,omitempty"`
}

func (ProbableGame) TableName() string {
	return "probable_pitchers"
}

// GameKey identifies the physical game regardless of which side reported it.
// The feed's game id wins when present; otherwise the key is built from the
// date and the home/away pair so both sides collapse to one key.
func (g ProbableGame) GameKey() string {
	if g.FeedGameID != nil && *g.FeedGameID != "" {
		return *g.FeedGameID
	}
	home, away := g.Team, g.Opponent
	if !g.Home {
		home, away = g.Opponent, g.Team
	}
	return fmt.Sprintf("%s:%s@%s", g.GameDate.Format("2006-01-02"), away, home)
}
