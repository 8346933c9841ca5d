package memory

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStore implements repository.UserRepositoryInterface over the in-memory store
type UserStore struct {
	s *Store
}

// Create creates a new user
func (u *UserStore) Create(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	stamp(&user.BaseModel)
	u.s.users = append(u.s.users, *user)
	return nil
}

// GetByID retrieves a user by ID
func (u *UserStore) GetByID(id uuid.UUID) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.ID == id {
			copy := user
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByEmail retrieves a user by email
func (u *UserStore) GetByEmail(email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.Email == email {
			copy := user
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Update updates a user
func (u *UserStore) Update(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == user.ID {
			stamp(&user.BaseModel)
			u.s.users[i] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a user
func (u *UserStore) Delete(id uuid.UUID) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == id {
			u.s.users = append(u.s.users[:i], u.s.users[i+1:]...)
			return nil
		}
	}
	return nil
}
