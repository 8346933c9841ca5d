package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyMomentRepository handles database operations for key moments
type KeyMomentRepository struct {
	db *gorm.DB
}

// NewKeyMomentRepository creates a new key moment repository
func NewKeyMomentRepository(db *gorm.DB) *KeyMomentRepository {
	return &KeyMomentRepository{db: db}
}

// Create creates a new key moment
func (r *KeyMomentRepository) Create(moment *models.KeyMoment) error {
	return r.db.Create(moment).Error
}

// GetByID retrieves a key moment by ID
func (r *KeyMomentRepository) GetByID(id uuid.UUID) (*models.KeyMoment, error) {
	var moment models.KeyMoment
	err := r.db.First(&moment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &moment, nil
}

// GetByGameID retrieves all key moments of a game
func (r *KeyMomentRepository) GetByGameID(gameID uuid.UUID) ([]models.KeyMoment, error) {
	var moments []models.KeyMoment
	err := r.db.Where("game_id = ?", gameID).Find(&moments).Error
	return moments, err
}

// Update updates a key moment
func (r *KeyMomentRepository) Update(moment *models.KeyMoment) error {
	return r.db.Save(moment).Error
}

// Delete deletes a key moment
func (r *KeyMomentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.KeyMoment{}, "id = ?", id).Error
}

// DeleteByGameID deletes every key moment of a game
func (r *KeyMomentRepository) DeleteByGameID(gameID uuid.UUID) error {
	return r.db.Delete(&models.KeyMoment{}, "game_id = ?", gameID).Error
}

// AssignPlayerToFullTeamMoments appends playerID to the recipient set of
// every key moment in the game that was addressed to the entire roster.
// A moment counts as whole-team when its recipient set size equals the
// roster size as it was before the player joined; smaller sets are targeted
// feedback and stay untouched.
func (r *KeyMomentRepository) AssignPlayerToFullTeamMoments(gameID uuid.UUID, rosterSize int, playerID uuid.UUID) error {
	var moments []models.KeyMoment
	if err := r.db.Where("game_id = ?", gameID).Find(&moments).Error; err != nil {
		return err
	}
	for i := range moments {
		moment := &moments[i]
		if len(moment.FeedbackFor) != rosterSize || moment.FeedbackFor.Contains(playerID) {
			continue
		}
		moment.FeedbackFor = append(moment.FeedbackFor, playerID)
		if err := r.db.Model(moment).Update("feedback_for", moment.FeedbackFor).Error; err != nil {
			return err
		}
	}
	return nil
}
