package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Notification is an in-app notification addressed to a single user
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Kind    NotificationKind `json:"kind" gorm:"not null;size:30" validate:"required"`
	Message string           `json:"message" gorm:"not null;size:300" validate:"required,max=300"`
	Payload json.RawMessage  `json:"payload,omitempty" gorm:"type:jsonb"`
	Read    bool             `json:"read" gorm:"not null;default:false"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
