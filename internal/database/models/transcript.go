package models

import "github.com/google/uuid"

// Transcript holds the text recognized from a key moment's audio clip.
// KeyMomentID is the join key back to the moment; GameID is denormalized so
// all transcripts of a game can be fetched in one query.
type Transcript struct {
	BaseModel
	KeyMomentID uuid.UUID `json:"key_moment_id" gorm:"type:uuid;not null;index" validate:"required"`
	GameID      uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	Text        string    `json:"text" gorm:"not null;type:text" validate:"required"`
	Confidence  float64   `json:"confidence" validate:"gte=0,lte=1"`
}

// TableName returns the table name for Transcript
func (Transcript) TableName() string {
	return "transcripts"
}
