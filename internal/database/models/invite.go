package models

import "github.com/google/uuid"

// Invite is a pending request for a player to join a team, addressed by email
type Invite struct {
	BaseModel
	TeamID uuid.UUID    `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email  string       `json:"email" gorm:"not null;size:100" validate:"required,email"`
	Status InviteStatus `json:"status" gorm:"not null;size:10;default:pending" validate:"omitempty,oneof=pending accepted declined"`
}

// TableName returns the table name for Invite
func (Invite) TableName() string {
	return "invites"
}
