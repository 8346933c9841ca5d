package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscriptRepository handles database operations for transcripts
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create creates a new transcript
func (r *TranscriptRepository) Create(transcript *models.Transcript) error {
	return r.db.Create(transcript).Error
}

// GetByID retrieves a transcript by ID
func (r *TranscriptRepository) GetByID(id uuid.UUID) (*models.Transcript, error) {
	var transcript models.Transcript
	err := r.db.First(&transcript, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}

// GetByKeyMomentID retrieves the transcript attached to a key moment
func (r *TranscriptRepository) GetByKeyMomentID(keyMomentID uuid.UUID) (*models.Transcript, error) {
	var transcript models.Transcript
	err := r.db.First(&transcript, "key_moment_id = ?", keyMomentID).Error
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}

// GetByGameID retrieves all transcripts of a game
func (r *TranscriptRepository) GetByGameID(gameID uuid.UUID) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	err := r.db.Where("game_id = ?", gameID).Find(&transcripts).Error
	return transcripts, err
}

// GetPreviewByGameID retrieves the first transcripts of a game in creation
// order, bounded by limit
func (r *TranscriptRepository) GetPreviewByGameID(gameID uuid.UUID, limit int) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	err := r.db.Where("game_id = ?", gameID).
		Order("created_at ASC").
		Limit(limit).
		Find(&transcripts).Error
	return transcripts, err
}

// Update updates a transcript
func (r *TranscriptRepository) Update(transcript *models.Transcript) error {
	return r.db.Save(transcript).Error
}

// Delete deletes a transcript
func (r *TranscriptRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Transcript{}, "id = ?", id).Error
}

// DeleteByGameID deletes every transcript of a game
func (r *TranscriptRepository) DeleteByGameID(gameID uuid.UUID) error {
	return r.db.Delete(&models.Transcript{}, "game_id = ?", gameID).Error
}

// DeleteByKeyMomentID deletes the transcript attached to a key moment
func (r *TranscriptRepository) DeleteByKeyMomentID(keyMomentID uuid.UUID) error {
	return r.db.Delete(&models.Transcript{}, "key_moment_id = ?", keyMomentID).Error
}
