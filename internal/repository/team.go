package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByAccessCode retrieves a team by its join access code
func (r *TeamRepository) GetByAccessCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "access_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCoachID retrieves all teams coached by the given user
func (r *TeamRepository) GetByCoachID(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN team_coaches ON team_coaches.team_id = teams.id").
		Where("team_coaches.user_id = ?", userID).
		Find(&teams).Error
	return teams, err
}

// GetByPlayerID retrieves all teams the given player is enrolled on
func (r *TeamRepository) GetByPlayerID(playerID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Joins("JOIN enrollments ON enrollments.team_id = teams.id").
		Where("enrollments.player_id = ?", playerID).
		Find(&teams).Error
	return teams, err
}

// GetRosterSize returns the number of players enrolled on a team. The team
// row is read first so a deleted team surfaces as ErrRecordNotFound rather
// than an empty roster.
func (r *TeamRepository) GetRosterSize(teamID uuid.UUID) (int, error) {
	var team models.Team
	if err := r.db.Select("id").First(&team, "id = ?", teamID).Error; err != nil {
		return 0, err
	}
	var count int64
	err := r.db.Model(&models.Enrollment{}).Where("team_id = ?", teamID).Count(&count).Error
	return int(count), err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// AddCoach links a coach to a team
func (r *TeamRepository) AddCoach(teamID, userID uuid.UUID) error {
	return r.db.Create(&models.TeamCoach{TeamID: teamID, UserID: userID}).Error
}

// RemoveCoach unlinks a coach from a team
func (r *TeamRepository) RemoveCoach(teamID, userID uuid.UUID) error {
	return r.db.Delete(&models.TeamCoach{}, "team_id = ? AND user_id = ?", teamID, userID).Error
}

// GetCoachIDs returns the user ids of every coach on a team
func (r *TeamRepository) GetCoachIDs(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.TeamCoach{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &ids).Error
	return ids, err
}
