package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uuid.UUID) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// GetByTeamID retrieves all games of a team, most recent first
func (r *GameRepository) GetByTeamID(teamID uuid.UUID) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&games).Error
	return games, err
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete deletes a game
func (r *GameRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Game{}, "id = ?", id).Error
}
