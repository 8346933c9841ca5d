package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FullGameRecordingRepository handles database operations for full game recordings
type FullGameRecordingRepository struct {
	db *gorm.DB
}

// NewFullGameRecordingRepository creates a new full game recording repository
func NewFullGameRecordingRepository(db *gorm.DB) *FullGameRecordingRepository {
	return &FullGameRecordingRepository{db: db}
}

// Create creates a new full game recording
func (r *FullGameRecordingRepository) Create(recording *models.FullGameRecording) error {
	return r.db.Create(recording).Error
}

// GetByGameID retrieves the recording of a game
func (r *FullGameRecordingRepository) GetByGameID(gameID uuid.UUID) (*models.FullGameRecording, error) {
	var recording models.FullGameRecording
	err := r.db.First(&recording, "game_id = ?", gameID).Error
	if err != nil {
		return nil, err
	}
	return &recording, nil
}

// Update updates a full game recording
func (r *FullGameRecordingRepository) Update(recording *models.FullGameRecording) error {
	return r.db.Save(recording).Error
}

// DeleteByGameID deletes the recording of a game
func (r *FullGameRecordingRepository) DeleteByGameID(gameID uuid.UUID) error {
	return r.db.Delete(&models.FullGameRecording{}, "game_id = ?", gameID).Error
}
