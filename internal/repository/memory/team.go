package memory

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamStore implements repository.TeamRepositoryInterface over the in-memory store
type TeamStore struct {
	s *Store
}

// Create creates a new team
func (t *TeamStore) Create(team *models.Team) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, existing := range t.s.teams {
		if existing.AccessCode == team.AccessCode {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&team.BaseModel)
	t.s.teams = append(t.s.teams, *team)
	return nil
}

// GetByID retrieves a team by ID
func (t *TeamStore) GetByID(id uuid.UUID) (*models.Team, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	for _, team := range t.s.teams {
		if team.ID == id {
			copy := team
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByAccessCode retrieves a team by its join access code
func (t *TeamStore) GetByAccessCode(code string) (*models.Team, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	for _, team := range t.s.teams {
		if team.AccessCode == code {
			copy := team
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByCoachID retrieves all teams coached by the given user
func (t *TeamStore) GetByCoachID(userID uuid.UUID) ([]models.Team, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var teams []models.Team
	for _, link := range t.s.teamCoaches {
		if link.UserID != userID {
			continue
		}
		for _, team := range t.s.teams {
			if team.ID == link.TeamID {
				teams = append(teams, team)
			}
		}
	}
	return teams, nil
}

// GetByPlayerID retrieves all teams the given player is enrolled on
func (t *TeamStore) GetByPlayerID(playerID uuid.UUID) ([]models.Team, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var teams []models.Team
	for _, enrollment := range t.s.enrollments {
		if enrollment.PlayerID != playerID {
			continue
		}
		for _, team := range t.s.teams {
			if team.ID == enrollment.TeamID {
				teams = append(teams, team)
			}
		}
	}
	return teams, nil
}

// GetRosterSize returns the number of players enrolled on a team
func (t *TeamStore) GetRosterSize(teamID uuid.UUID) (int, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	found := false
	for _, team := range t.s.teams {
		if team.ID == teamID {
			found = true
			break
		}
	}
	if !found {
		return 0, gorm.ErrRecordNotFound
	}
	count := 0
	for _, enrollment := range t.s.enrollments {
		if enrollment.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

// Update updates a team
func (t *TeamStore) Update(team *models.Team) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range t.s.teams {
		if t.s.teams[i].ID == team.ID {
			stamp(&team.BaseModel)
			t.s.teams[i] = *team
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a team
func (t *TeamStore) Delete(id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range t.s.teams {
		if t.s.teams[i].ID == id {
			t.s.teams = append(t.s.teams[:i], t.s.teams[i+1:]...)
			return nil
		}
	}
	return nil
}

// AddCoach links a coach to a team
func (t *TeamStore) AddCoach(teamID, userID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, link := range t.s.teamCoaches {
		if link.TeamID == teamID && link.UserID == userID {
			return gorm.ErrDuplicatedKey
		}
	}
	link := models.TeamCoach{TeamID: teamID, UserID: userID}
	stamp(&link.BaseModel)
	t.s.teamCoaches = append(t.s.teamCoaches, link)
	return nil
}

// RemoveCoach unlinks a coach from a team
func (t *TeamStore) RemoveCoach(teamID, userID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for i := range t.s.teamCoaches {
		if t.s.teamCoaches[i].TeamID == teamID && t.s.teamCoaches[i].UserID == userID {
			t.s.teamCoaches = append(t.s.teamCoaches[:i], t.s.teamCoaches[i+1:]...)
			return nil
		}
	}
	return nil
}

// GetCoachIDs returns the user ids of every coach on a team
func (t *TeamStore) GetCoachIDs(teamID uuid.UUID) ([]uuid.UUID, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	var ids []uuid.UUID
	for _, link := range t.s.teamCoaches {
		if link.TeamID == teamID {
			ids = append(ids, link.UserID)
		}
	}
	return ids, nil
}
