package models

import "github.com/google/uuid"

// Player is the playing profile linked 1:1 to a player-role user
type Player struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`

	// Relationships
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
