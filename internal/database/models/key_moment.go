package models

import "github.com/google/uuid"

// KeyMoment is a time-bounded excerpt of a game with a set of feedback
// recipients. FrameStart and FrameEnd are offsets in seconds from the start
// of the game recording; FrameStart <= FrameEnd always holds.
// FeedbackFor holds the ids of every player entitled to see the moment; a
// moment addressed to the whole roster lists every enrolled player.
type KeyMoment struct {
	BaseModel
	GameID      uuid.UUID `json:"game_id" gorm:"type:uuid;not null;index" validate:"required"`
	FrameStart  float64   `json:"frame_start" gorm:"not null" validate:"gte=0"`
	FrameEnd    float64   `json:"frame_end" gorm:"not null" validate:"gtefield=FrameStart"`
	AudioKey    *string   `json:"audio_key,omitempty" gorm:"size:200"`
	FeedbackFor UUIDList  `json:"feedback_for" gorm:"type:jsonb"`
}

// TableName returns the table name for KeyMoment
func (KeyMoment) TableName() string {
	return "key_moments"
}
