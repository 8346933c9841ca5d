package models

import (
	"time"

	"github.com/google/uuid"
)

// Game represents a single game belonging to one team
type Game struct {
	BaseModel
	TeamID         uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string     `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	DurationSec    int        `json:"duration_sec" validate:"gte=0"`
	Location       string     `json:"location" gorm:"size:100" validate:"max=100"`

	// Relationships
	KeyMoments []KeyMoment `json:"key_moments,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}
