package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteRepository handles database operations for invites
type InviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create creates a new invite
func (r *InviteRepository) Create(invite *models.Invite) error {
	return r.db.Create(invite).Error
}

// GetByID retrieves an invite by ID
func (r *InviteRepository) GetByID(id uuid.UUID) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.First(&invite, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

// GetByTeamID retrieves all invites of a team
func (r *InviteRepository) GetByTeamID(teamID uuid.UUID) ([]models.Invite, error) {
	var invites []models.Invite
	err := r.db.Where("team_id = ?", teamID).Find(&invites).Error
	return invites, err
}

// Update updates an invite
func (r *InviteRepository) Update(invite *models.Invite) error {
	return r.db.Save(invite).Error
}

// Delete deletes an invite
func (r *InviteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invite{}, "id = ?", id).Error
}
