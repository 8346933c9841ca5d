package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players and enrollments
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player profile
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByUserID retrieves the player profile linked to a user account
func (r *PlayerRepository) GetByUserID(userID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// IsEnrolled reports whether the player is already on the team
func (r *PlayerRepository) IsEnrolled(playerID, teamID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("player_id = ? AND team_id = ?", playerID, teamID).
		Count(&count).Error
	return count > 0, err
}

// Enroll writes a membership row for the player on a team
func (r *PlayerRepository) Enroll(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// UpdateEnrollment updates an existing membership row
func (r *PlayerRepository) UpdateEnrollment(enrollment *models.Enrollment) error {
	return r.db.Save(enrollment).Error
}

// Unenroll removes the player's membership row for a team
func (r *PlayerRepository) Unenroll(playerID, teamID uuid.UUID) error {
	return r.db.Delete(&models.Enrollment{}, "player_id = ? AND team_id = ?", playerID, teamID).Error
}

// GetEnrollment retrieves the player's membership row for a team
func (r *PlayerRepository) GetEnrollment(playerID, teamID uuid.UUID) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.First(&enrollment, "player_id = ? AND team_id = ?", playerID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// GetEnrollmentsByTeamID retrieves every membership row of a team
func (r *PlayerRepository) GetEnrollmentsByTeamID(teamID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Where("team_id = ?", teamID).Find(&enrollments).Error
	return enrollments, err
}

// GetFeedbackRow resolves a feedback recipient in one query: account name
// from users joined through players, jersey and nickname from the player's
// enrollment on the given team.
func (r *PlayerRepository) GetFeedbackRow(playerID, teamID uuid.UUID) (*PlayerFeedbackRow, error) {
	var row PlayerFeedbackRow
	err := r.db.Model(&models.Player{}).
		Select("players.id AS player_id, users.first_name, users.last_name, enrollments.nickname, enrollments.jersey").
		Joins("JOIN users ON users.id = players.user_id").
		Joins("LEFT JOIN enrollments ON enrollments.player_id = players.id AND enrollments.team_id = ?", teamID).
		Where("players.id = ?", playerID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.PlayerID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
