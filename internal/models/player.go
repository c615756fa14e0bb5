package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusRostered  = "rostered"
	StatusFreeAgent = "free_agent"
)

// Position contexts for stat rows. Two-way players carry one row per context.
const (
	PositionBatter  = "B"
	PositionPitcher = "P"
)

type Player struct {
	ID                uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	PlatformPlayerID  *string        `gorm:"type:varchar(50);index" json:"platform_player_id,omitempty"`
	TeamID            *uint64        `gorm:"index" json:"team_id,omitempty"`
	Name              string         `gorm:"type:varchar(100);not null" json:"name"`
	NormalisedName    string         `gorm:"type:varchar(100);index" json:"-"`
	MLBTeam           *string        `gorm:"type:varchar(10)" json:"mlb_team,omitempty"`
	Position          string         `gorm:"type:varchar(10);index" json:"position"`
	Status            string         `gorm:"type:varchar(20);not null;default:rostered;index" json:"status"`
	IsC               bool           `gorm:"not null;default:false" json:"-"`
	Is1B              bool           `gorm:"column:is_1b;not null;default:false" json:"-"`
	Is2B              bool           `gorm:"column:is_2b;not null;default:false" json:"-"`
	Is3B              bool           `gorm:"column:is_3b;not null;default:false" json:"-"`
	IsSS              bool           `gorm:"not null;default:false" json:"-"`
	IsOF              bool           `gorm:"not null;default:false" json:"-"`
	IsUtil            bool           `gorm:"not null;default:false" json:"-"`
	IsSP              bool           `gorm:"not null;default:false" json:"-"`
	IsRP              bool           `gorm:"not null;default:false" json:"-"`
	EligiblePositions datatypes.JSON `gorm:"type:jsonb" json:"eligible_positions,omitempty"`
	SelectedPosition  *string        `gorm:"type:varchar(50)" json:"selected_position,omitempty"`
	HeadshotURL       *string        `gorm:"type:varchar(500)" json:"headshot_url,omitempty"`
	CreatedAt         time.Time      `gorm:"type:timestamptz;autoCreateTime" json:"-"`
	UpdatedAt         time.Time      `gorm:"type:timestamptz;autoUpdateTime" json:"-"`
}

func (Player) TableName() string {
	return "players"
}

// PlayerLookup links a fantasy player to the stat feed's identity, including
// handedness used by the vs-hand split tables.
type PlayerLookup struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	PlayerID       uint64    `gorm:"uniqueIndex;not null"`
	FeedPlayerID   *int64    `gorm:"index"`
	NormalisedName string    `gorm:"type:varchar(100);not null;index"`
	FirstName      *string   `gorm:"type:varchar(50)"`
	LastName       *string   `gorm:"type:varchar(50)"`
	Team           *string   `gorm:"type:varchar(10);index"`
	Bats           *string   `gorm:"type:char(1)"`
	Throws         *string   `gorm:"type:char(1)"`
	UpdatedAt      time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (PlayerLookup) TableName() string {
	return "player_lookup"
}

type FantasyTeam struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PlatformTeamID string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"platform_team_id"`
	TeamName       string    `gorm:"type:varchar(100);not null" json:"team_name"`
	IsUserTeam     bool      `gorm:"not null;default:false" json:"is_user_team"`
	CreatedAt      time.Time `gorm:"type:timestamptz;autoCreateTime" json:"-"`
}

func (FantasyTeam) TableName() string {
	return "teams"
}
