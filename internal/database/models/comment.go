package models

import "github.com/google/uuid"

// Comment is a discussion entry attached to a key moment
type Comment struct {
	BaseModel
	KeyMomentID uuid.UUID `json:"key_moment_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	Text        string    `json:"text" gorm:"not null;size:500" validate:"required,min=1,max=500"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
