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
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	// accessCodeAlphabet avoids characters that read ambiguously when a
	// coach dictates the code out loud (0/O, 1/I/L)
	accessCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	accessCodeLength   = 6
	accessCodeAttempts = 5
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	userRepo   repository.UserRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		userRepo:   userRepo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Nickname string `json:"nickname" validate:"max=50"`
	Sport    string `json:"sport" validate:"max=50"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	Sport    *string `json:"sport" validate:"omitempty,max=50"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Nickname   string    `json:"nickname,omitempty"`
	Sport      string    `json:"sport,omitempty"`
	AccessCode string    `json:"access_code"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// CreateTeam creates a new team with a freshly generated access code and
// links the creating coach to it
func (s *TeamService) CreateTeam(req *CreateTeamRequest, userID uuid.UUID) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Role != models.UserRoleCoach {
		return nil, apperrors.ErrCoachOnlyOperation
	}

	code, err := s.generateAccessCode()
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:       req.Name,
		Nickname:   req.Nickname,
		Sport:      req.Sport,
		AccessCode: code,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if err := s.repo.AddCoach(team.ID, userID); err != nil {
		return nil, fmt.Errorf("failed to link coach to team: %w", err)
	}

	return convertTeamToResponse(team), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return convertTeamToResponse(team), nil
}

// GetTeamsByUser lists the teams a user belongs to: coached teams for a
// coach, enrolled teams for a player
func (s *TeamService) GetTeamsByUser(userID uuid.UUID) ([]TeamResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var teams []models.Team
	switch user.Role {
	case models.UserRoleCoach:
		teams, err = s.repo.GetByCoachID(userID)
	case models.UserRolePlayer:
		var player *models.Player
		player, err = s.playerRepo.GetByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to get player profile: %w", err)
		}
		teams, err = s.repo.GetByPlayerID(player.ID)
	default:
		return nil, apperrors.ErrUnknownRole
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *convertTeamToResponse(&teams[i]))
	}
	return responses, nil
}

// UpdateTeam updates a team's settings
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Nickname != nil {
		team.Nickname = *req.Nickname
	}
	if req.Sport != nil {
		team.Sport = *req.Sport
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return convertTeamToResponse(team), nil
}

// RotateAccessCode replaces a team's access code, invalidating the old one
func (s *TeamService) RotateAccessCode(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	code, err := s.generateAccessCode()
	if err != nil {
		return nil, err
	}
	team.AccessCode = code

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return convertTeamToResponse(team), nil
}

// GetRoster lists the enrolled players of a team with their per-team info
func (s *TeamService) GetRoster(teamID uuid.UUID) ([]repository.PlayerFeedbackRow, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	enrollments, err := s.playerRepo.GetEnrollmentsByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	roster := make([]repository.PlayerFeedbackRow, 0, len(enrollments))
	for _, enrollment := range enrollments {
		row, err := s.playerRepo.GetFeedbackRow(enrollment.PlayerID, teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve player %s: %w", enrollment.PlayerID, err)
		}
		roster = append(roster, *row)
	}
	return roster, nil
}

// generateAccessCode produces a short unique join code, retrying on the
// rare collision with an existing team
func (s *TeamService) generateAccessCode() (string, error) {
	for attempt := 0; attempt < accessCodeAttempts; attempt++ {
		code, err := gonanoid.Generate(accessCodeAlphabet, accessCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate access code: %w", err)
		}
		_, err = s.repo.GetByAccessCode(code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check access code uniqueness: %w", err)
		}
	}
	return "", apperrors.ErrAccessCodeGeneration
}

func convertTeamToResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:         team.ID,
		Name:       team.Name,
		Nickname:   team.Nickname,
		Sport:      team.Sport,
		AccessCode: team.AccessCode,
		CreatedAt:  team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  team.UpdatedAt.Format(time.RFC3339),
	}
}
