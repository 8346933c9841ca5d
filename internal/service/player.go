package service

import (
	"errors"
	"fmt"

	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for player profiles and their
// per-team presentation info
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// UpdateEnrollmentRequest represents the editable per-team player info
type UpdateEnrollmentRequest struct {
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	Jersey   *string `json:"jersey" validate:"omitempty,max=10"`
}

// PlayerResponse represents the response data for a player profile
type PlayerResponse struct {
	ID     uuid.UUID      `json:"id"`
	UserID uuid.UUID      `json:"user_id"`
	Teams  []TeamResponse `json:"teams"`
}

// GetPlayerByID retrieves a player profile with the teams it is enrolled on
func (s *PlayerService) GetPlayerByID(id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	teams, err := s.teamRepo.GetByPlayerID(player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player teams: %w", err)
	}

	resp := &PlayerResponse{
		ID:     player.ID,
		UserID: player.UserID,
		Teams:  make([]TeamResponse, 0, len(teams)),
	}
	for i := range teams {
		resp.Teams = append(resp.Teams, *convertTeamToResponse(&teams[i]))
	}
	return resp, nil
}

// GetPlayerByUserID retrieves the player profile linked to a user account
func (s *PlayerService) GetPlayerByUserID(userID uuid.UUID) (*PlayerResponse, error) {
	player, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return s.GetPlayerByID(player.ID)
}

// UpdateEnrollment updates a player's nickname or jersey number on one team
func (s *PlayerService) UpdateEnrollment(playerID, teamID uuid.UUID, req *UpdateEnrollmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	enrollment, err := s.repo.GetEnrollment(playerID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("failed to get enrollment: %w", err)
	}

	if req.Nickname != nil {
		enrollment.Nickname = *req.Nickname
	}
	if req.Jersey != nil {
		enrollment.Jersey = *req.Jersey
	}

	if err := s.repo.UpdateEnrollment(enrollment); err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	return nil
}
