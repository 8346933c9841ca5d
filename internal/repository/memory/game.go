package memory

import (
	"sort"

	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameStore implements repository.GameRepositoryInterface over the in-memory store
type GameStore struct {
	s *Store
}

// Create creates a new game
func (g *GameStore) Create(game *models.Game) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	stamp(&game.BaseModel)
	g.s.games = append(g.s.games, *game)
	return nil
}

// GetByID retrieves a game by ID
func (g *GameStore) GetByID(id uuid.UUID) (*models.Game, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	for _, game := range g.s.games {
		if game.ID == id {
			copy := game
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByTeamID retrieves all games of a team, most recent first
func (g *GameStore) GetByTeamID(teamID uuid.UUID) ([]models.Game, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()
	var games []models.Game
	for _, game := range g.s.games {
		if game.TeamID == teamID {
			games = append(games, game)
		}
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	return games, nil
}

// Update updates a game
func (g *GameStore) Update(game *models.Game) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	for i := range g.s.games {
		if g.s.games[i].ID == game.ID {
			stamp(&game.BaseModel)
			g.s.games[i] = *game
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a game
func (g *GameStore) Delete(id uuid.UUID) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	for i := range g.s.games {
		if g.s.games[i].ID == id {
			g.s.games = append(g.s.games[:i], g.s.games[i+1:]...)
			return nil
		}
	}
	return nil
}

// KeyMomentStore implements repository.KeyMomentRepositoryInterface over the in-memory store
type KeyMomentStore struct {
	s *Store
}

// Create creates a new key moment
func (k *KeyMomentStore) Create(moment *models.KeyMoment) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	stamp(&moment.BaseModel)
	k.s.keyMoments = append(k.s.keyMoments, *moment)
	return nil
}

// GetByID retrieves a key moment by ID
func (k *KeyMomentStore) GetByID(id uuid.UUID) (*models.KeyMoment, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()
	for _, moment := range k.s.keyMoments {
		if moment.ID == id {
			copy := moment
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByGameID retrieves all key moments of a game
func (k *KeyMomentStore) GetByGameID(gameID uuid.UUID) ([]models.KeyMoment, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()
	var moments []models.KeyMoment
	for _, moment := range k.s.keyMoments {
		if moment.GameID == gameID {
			moments = append(moments, moment)
		}
	}
	return moments, nil
}

// Update updates a key moment
func (k *KeyMomentStore) Update(moment *models.KeyMoment) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	for i := range k.s.keyMoments {
		if k.s.keyMoments[i].ID == moment.ID {
			stamp(&moment.BaseModel)
			k.s.keyMoments[i] = *moment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a key moment
func (k *KeyMomentStore) Delete(id uuid.UUID) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	for i := range k.s.keyMoments {
		if k.s.keyMoments[i].ID == id {
			k.s.keyMoments = append(k.s.keyMoments[:i], k.s.keyMoments[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteByGameID deletes every key moment of a game
func (k *KeyMomentStore) DeleteByGameID(gameID uuid.UUID) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	kept := k.s.keyMoments[:0]
	for _, moment := range k.s.keyMoments {
		if moment.GameID != gameID {
			kept = append(kept, moment)
		}
	}
	k.s.keyMoments = kept
	return nil
}

// AssignPlayerToFullTeamMoments appends playerID to every whole-team
// recipient set in the game; targeted sets stay untouched.
func (k *KeyMomentStore) AssignPlayerToFullTeamMoments(gameID uuid.UUID, rosterSize int, playerID uuid.UUID) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()
	for i := range k.s.keyMoments {
		moment := &k.s.keyMoments[i]
		if moment.GameID != gameID {
			continue
		}
		if len(moment.FeedbackFor) != rosterSize || moment.FeedbackFor.Contains(playerID) {
			continue
		}
		moment.FeedbackFor = append(moment.FeedbackFor, playerID)
	}
	return nil
}
