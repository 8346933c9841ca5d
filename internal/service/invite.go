package service

import (
	"errors"
	"fmt"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/logger"
	"team-feedback-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteService handles business logic for team invites
type InviteService struct {
	repo      repository.InviteRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	notifRepo repository.NotificationRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewInviteService creates a new invite service
func NewInviteService(
	repo repository.InviteRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	notifRepo repository.NotificationRepositoryInterface,
	validator *validator.Validate,
) *InviteService {
	return &InviteService{
		repo:      repo,
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		validator: validator,
		log:       logger.WithComponent("invite_service"),
	}
}

// CreateInviteRequest represents the data needed to invite a player by email
type CreateInviteRequest struct {
	TeamID uuid.UUID `json:"team_id" validate:"required"`
	Email  string    `json:"email" validate:"required,email,max=100"`
}

// InviteResponse represents the response data for an invite
type InviteResponse struct {
	ID     uuid.UUID           `json:"id"`
	TeamID uuid.UUID           `json:"team_id"`
	Email  string              `json:"email"`
	Status models.InviteStatus `json:"status"`
}

// CreateInvite creates a pending invite for an email address on a team
func (s *InviteService) CreateInvite(req *CreateInviteRequest) (*InviteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	existing, err := s.repo.GetByTeamID(req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	for _, invite := range existing {
		if invite.Email == req.Email && invite.Status == models.InviteStatusPending {
			return nil, apperrors.ErrInviteExists
		}
	}

	invite := &models.Invite{
		TeamID: req.TeamID,
		Email:  req.Email,
		Status: models.InviteStatusPending,
	}
	if err := s.repo.Create(invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	s.notifyInvitee(invite, team)

	return convertInviteToResponse(invite), nil
}

// notifyInvitee creates an in-app notification when the invited email
// already belongs to a registered user. Best effort.
func (s *InviteService) notifyInvitee(invite *models.Invite, team *models.Team) {
	user, err := s.userRepo.GetByEmail(invite.Email)
	if err != nil {
		return
	}
	notification := &models.Notification{
		UserID:  user.ID,
		Kind:    models.NotificationKindInviteCreated,
		Message: fmt.Sprintf("You have been invited to join %s", team.Name),
	}
	if err := s.notifRepo.Create(notification); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).
			Warn("failed to create invite notification")
	}
}

// GetInvitesByTeam lists the invites of a team
func (s *InviteService) GetInvitesByTeam(teamID uuid.UUID) ([]InviteResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	invites, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	responses := make([]InviteResponse, 0, len(invites))
	for i := range invites {
		responses = append(responses, *convertInviteToResponse(&invites[i]))
	}
	return responses, nil
}

// ResolveInvite accepts or declines a pending invite
func (s *InviteService) ResolveInvite(id uuid.UUID, accept bool) (*InviteResponse, error) {
	invite, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	if invite.Status != models.InviteStatusPending {
		return nil, apperrors.ErrInviteAlreadyResolved
	}

	if accept {
		invite.Status = models.InviteStatusAccepted
	} else {
		invite.Status = models.InviteStatusDeclined
	}

	if err := s.repo.Update(invite); err != nil {
		return nil, fmt.Errorf("failed to update invite: %w", err)
	}
	return convertInviteToResponse(invite), nil
}

// DeleteInvite removes an invite
func (s *InviteService) DeleteInvite(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return fmt.Errorf("failed to get invite: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
	}
	return nil
}

func convertInviteToResponse(invite *models.Invite) *InviteResponse {
	return &InviteResponse{
		ID:     invite.ID,
		TeamID: invite.TeamID,
		Email:  invite.Email,
		Status: invite.Status,
	}
}
