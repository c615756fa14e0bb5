package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RollingStat is one player's raw box-score aggregate over a rolling window.
// Rows are recomputed by the external stats job; this service never writes
// them. Unique per (player, span_days, split_type, position).
type RollingStat struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement" json:"-"`
	PlayerID   uint64          `gorm:"not null;uniqueIndex:uniq_player_span_raw,priority:1;index" json:"player_id"`
	SpanDays   int             `gorm:"not null;uniqueIndex:uniq_player_span_raw,priority:2" json:"span_days"`
	SplitType  string          `gorm:"type:varchar(10);not null;default:overall;uniqueIndex:uniq_player_span_raw,priority:3" json:"split_type"`
	Position   string          `gorm:"type:varchar(10);uniqueIndex:uniq_player_span_raw,priority:4" json:"position"`
	StartDate  time.Time       `gorm:"type:date;not null" json:"-"`
	EndDate    time.Time       `gorm:"type:date;not null" json:"-"`
	Games      int             `gorm:"not null;default:0" json:"games"`
	Hits       int             `gorm:"not null;default:0" json:"hits"`
	AtBats     int             `gorm:"column:abs;not null;default:0" json:"abs"`
	Runs       int             `gorm:"not null;default:0" json:"runs"`
	HR         int             `gorm:"not null;default:0" json:"hr"`
	RBI        int             `gorm:"not null;default:0" json:"rbi"`
	SB         int             `gorm:"not null;default:0" json:"sb"`
	AVG        decimal.Decimal `gorm:"type:numeric(4,3);not null;default:0" json:"avg"`
	Strikeouts int             `gorm:"not null;default:0" json:"strikeouts"`
	IP         decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"ip"`
	ER         int             `gorm:"not null;default:0" json:"er"`
	QS         int             `gorm:"not null;default:0" json:"qs"`
	SV         int             `gorm:"not null;default:0" json:"sv"`
	HLD        int             `gorm:"not null;default:0" json:"hld"`
	ERA        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"era"`
	WHIP       decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0" json:"whip"`
	UpdatedAt  time.Time       `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (RollingStat) TableName() string {
	return "player_rolling_stats"
}
