package models

import "github.com/google/uuid"

// FullGameRecording is the optional full-length video of a game. FileURL is
// nil while the upload is still in flight.
type FullGameRecording struct {
	BaseModel
	GameID  uuid.UUID `json:"game_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	FileURL *string   `json:"file_url,omitempty" gorm:"size:500"`
}

// TableName returns the table name for FullGameRecording
func (FullGameRecording) TableName() string {
	return "full_game_recordings"
}
