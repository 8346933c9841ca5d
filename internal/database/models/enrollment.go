package models

import "github.com/google/uuid"

// Enrollment is a player's membership on a team. One row represents both
// sides of the relation (the team's roster and the player's team list) and
// carries the team-specific presentation info (jersey number, nickname).
type Enrollment struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_player" validate:"required"`
	PlayerID uuid.UUID `json:"player_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_player" validate:"required"`
	Nickname string    `json:"nickname" gorm:"size:50" validate:"max=50"`
	Jersey   string    `json:"jersey" gorm:"size:10" validate:"max=10"`
}

// TableName returns the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
