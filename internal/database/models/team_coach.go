package models

import "github.com/google/uuid"

// TeamCoach links a coach-role user to a team they coach
type TeamCoach struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_coach" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_coach" validate:"required"`
}

// TableName returns the table name for TeamCoach
func (TeamCoach) TableName() string {
	return "team_coaches"
}
