package memory

import (
	"team-feedback-backend/internal/database/models"
	"team-feedback-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerStore implements repository.PlayerRepositoryInterface over the in-memory store
type PlayerStore struct {
	s *Store
}

// Create creates a new player profile
func (p *PlayerStore) Create(player *models.Player) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	stamp(&player.BaseModel)
	p.s.players = append(p.s.players, *player)
	return nil
}

// GetByID retrieves a player by ID
func (p *PlayerStore) GetByID(id uuid.UUID) (*models.Player, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, player := range p.s.players {
		if player.ID == id {
			copy := player
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByUserID retrieves the player profile linked to a user account
func (p *PlayerStore) GetByUserID(userID uuid.UUID) (*models.Player, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, player := range p.s.players {
		if player.UserID == userID {
			copy := player
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// IsEnrolled reports whether the player is already on the team
func (p *PlayerStore) IsEnrolled(playerID, teamID uuid.UUID) (bool, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, enrollment := range p.s.enrollments {
		if enrollment.PlayerID == playerID && enrollment.TeamID == teamID {
			return true, nil
		}
	}
	return false, nil
}

// Enroll writes a membership row for the player on a team
func (p *PlayerStore) Enroll(enrollment *models.Enrollment) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, existing := range p.s.enrollments {
		if existing.PlayerID == enrollment.PlayerID && existing.TeamID == enrollment.TeamID {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&enrollment.BaseModel)
	p.s.enrollments = append(p.s.enrollments, *enrollment)
	return nil
}

// UpdateEnrollment updates an existing membership row
func (p *PlayerStore) UpdateEnrollment(enrollment *models.Enrollment) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for i := range p.s.enrollments {
		if p.s.enrollments[i].ID == enrollment.ID {
			stamp(&enrollment.BaseModel)
			p.s.enrollments[i] = *enrollment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Unenroll removes the player's membership row for a team
func (p *PlayerStore) Unenroll(playerID, teamID uuid.UUID) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for i := range p.s.enrollments {
		if p.s.enrollments[i].PlayerID == playerID && p.s.enrollments[i].TeamID == teamID {
			p.s.enrollments = append(p.s.enrollments[:i], p.s.enrollments[i+1:]...)
			return nil
		}
	}
	return nil
}

// GetEnrollment retrieves the player's membership row for a team
func (p *PlayerStore) GetEnrollment(playerID, teamID uuid.UUID) (*models.Enrollment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for _, enrollment := range p.s.enrollments {
		if enrollment.PlayerID == playerID && enrollment.TeamID == teamID {
			copy := enrollment
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetEnrollmentsByTeamID retrieves every membership row of a team
func (p *PlayerStore) GetEnrollmentsByTeamID(teamID uuid.UUID) ([]models.Enrollment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var enrollments []models.Enrollment
	for _, enrollment := range p.s.enrollments {
		if enrollment.TeamID == teamID {
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

// GetFeedbackRow resolves a feedback recipient's name and team info
func (p *PlayerStore) GetFeedbackRow(playerID, teamID uuid.UUID) (*repository.PlayerFeedbackRow, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	var player *models.Player
	for i := range p.s.players {
		if p.s.players[i].ID == playerID {
			player = &p.s.players[i]
			break
		}
	}
	if player == nil {
		return nil, gorm.ErrRecordNotFound
	}

	// The user join is inner: a player whose account is gone resolves to
	// nothing, same as the SQL query.
	var owner *models.User
	for i := range p.s.users {
		if p.s.users[i].ID == player.UserID {
			owner = &p.s.users[i]
			break
		}
	}
	if owner == nil {
		return nil, gorm.ErrRecordNotFound
	}

	row := repository.PlayerFeedbackRow{
		PlayerID:  playerID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
	}
	for _, enrollment := range p.s.enrollments {
		if enrollment.PlayerID == playerID && enrollment.TeamID == teamID {
			row.Nickname = enrollment.Nickname
			row.Jersey = enrollment.Jersey
			break
		}
	}
	return &row, nil
}
