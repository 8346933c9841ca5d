package service

import (
	"errors"
	"fmt"
	"time"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user accounts
type UserService struct {
	repo       repository.UserRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:       repo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateUserRequest represents the data needed to register a user
type CreateUserRequest struct {
	Email     string          `json:"email" validate:"required,email,max=100"`
	FirstName string          `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string          `json:"last_name" validate:"required,min=1,max=50"`
	Role      models.UserRole `json:"role" validate:"required,oneof=coach player"`
}

// UpdateUserRequest represents the data needed to update a user
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Role      models.UserRole `json:"role"`
	PlayerID  *uuid.UUID      `json:"player_id,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// CreateUser registers a new user account. A player-role user also gets a
// player profile created alongside.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := s.convertToResponse(user)
	if user.Role == models.UserRolePlayer {
		player := &models.Player{UserID: user.ID}
		if err := s.playerRepo.Create(player); err != nil {
			return nil, fmt.Errorf("failed to create player profile: %w", err)
		}
		resp.PlayerID = &player.ID
	}
	return resp, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := s.convertToResponse(user)
	s.attachPlayerID(resp)
	return resp, nil
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	resp := s.convertToResponse(user)
	s.attachPlayerID(resp)
	return resp, nil
}

// UpdateUser updates a user's profile fields
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	resp := s.convertToResponse(user)
	s.attachPlayerID(resp)
	return resp, nil
}

func (s *UserService) attachPlayerID(resp *UserResponse) {
	if resp.Role != models.UserRolePlayer {
		return
	}
	player, err := s.playerRepo.GetByUserID(resp.ID)
	if err != nil {
		return
	}
	resp.PlayerID = &player.ID
}

func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}
