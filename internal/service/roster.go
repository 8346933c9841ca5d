package service

import (
	"context"
	"errors"
	"fmt"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/logger"
	"team-feedback-backend/internal/repository"
	"team-feedback-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService executes the multi-entity roster workflows: joining a team
// via access code and tearing a team down. Both are sequences of individual
// writes, not transactions; each step's write is atomic but the sequence as
// a whole is not. Two concurrent joins can read the same roster size and
// fix up a key moment inconsistently; this is accepted behavior, callers
// must not rely on cross-document atomicity.
type RosterService struct {
	teamRepo       repository.TeamRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	keyMomentRepo  repository.KeyMomentRepositoryInterface
	transcriptRepo repository.TranscriptRepositoryInterface
	recordingRepo  repository.FullGameRecordingRepositoryInterface
	inviteRepo     repository.InviteRepositoryInterface
	notifRepo      repository.NotificationRepositoryInterface
	assets         storage.AssetStore
	validator      *validator.Validate
	log            *logger.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(
	teamRepo repository.TeamRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	keyMomentRepo repository.KeyMomentRepositoryInterface,
	transcriptRepo repository.TranscriptRepositoryInterface,
	recordingRepo repository.FullGameRecordingRepositoryInterface,
	inviteRepo repository.InviteRepositoryInterface,
	notifRepo repository.NotificationRepositoryInterface,
	assets storage.AssetStore,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		userRepo:       userRepo,
		gameRepo:       gameRepo,
		keyMomentRepo:  keyMomentRepo,
		transcriptRepo: transcriptRepo,
		recordingRepo:  recordingRepo,
		inviteRepo:     inviteRepo,
		notifRepo:      notifRepo,
		assets:         assets,
		validator:      validator,
		log:            logger.WithComponent("roster_service"),
	}
}

// JoinTeamRequest is the payload of a player joining a team by access code
type JoinTeamRequest struct {
	AccessCode string `json:"access_code" validate:"required,min=4,max=12"`
	Nickname   string `json:"nickname" validate:"max=50"`
	Jersey     string `json:"jersey" validate:"max=10"`
}

// JoinTeam enrolls the requesting user's player profile into the team
// matching the access code.
//
// The roster size is read before the enrollment is written. Whole-team key
// moments are recognized by their recipient count equaling the roster size,
// so reading after the write would make every one of them appear targeted
// and the fix-up would never run.
func (s *RosterService) JoinTeam(req *JoinTeamRequest, userID uuid.UUID) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByAccessCode(req.AccessCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidAccessCode
		}
		return nil, fmt.Errorf("failed to look up access code: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Role != models.UserRolePlayer {
		return nil, apperrors.NewAuthorizationError("only a player can join a team with an access code")
	}

	player, err := s.playerRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player profile: %w", err)
	}

	enrolled, err := s.playerRepo.IsEnrolled(player.ID, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, apperrors.ErrPlayerAlreadyEnrolled
	}

	// Re-resolve through the team row as a guard against a concurrent
	// deletion between the access-code lookup and the writes below.
	rosterSize, err := s.teamRepo.GetRosterSize(team.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to read roster size: %w", err)
	}

	// Historical whole-team feedback gets the new player appended so it
	// keeps covering the entire roster.
	games, err := s.gameRepo.GetByTeamID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team games: %w", err)
	}
	for _, game := range games {
		if err := s.keyMomentRepo.AssignPlayerToFullTeamMoments(game.ID, rosterSize, player.ID); err != nil {
			return nil, fmt.Errorf("failed to update feedback recipients for game %s: %w", game.ID, err)
		}
	}

	enrollment := &models.Enrollment{
		TeamID:   team.ID,
		PlayerID: player.ID,
		Nickname: req.Nickname,
		Jersey:   req.Jersey,
	}
	if err := s.playerRepo.Enroll(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPlayerAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to enroll player: %w", err)
	}

	s.notifyCoaches(team, user)

	return convertTeamToResponse(team), nil
}

// notifyCoaches tells every coach of the team about the new player.
// Notification delivery is best effort and never fails the join.
func (s *RosterService) notifyCoaches(team *models.Team, user *models.User) {
	coachIDs, err := s.teamRepo.GetCoachIDs(team.ID)
	if err != nil {
		s.log.WithError(err).WithField("team_id", team.ID).
			Warn("failed to list coaches for join notification")
		return
	}
	for _, coachID := range coachIDs {
		notification := &models.Notification{
			UserID:  coachID,
			Kind:    models.NotificationKindPlayerJoined,
			Message: fmt.Sprintf("%s %s joined %s", user.FirstName, user.LastName, team.Name),
		}
		if err := s.notifRepo.Create(notification); err != nil {
			s.log.WithError(err).WithField("user_id", coachID).
				Warn("failed to create join notification")
		}
	}
}

// DeleteTeam removes a team and everything that hangs off it: games with
// their key moments, transcripts and recordings, coach links, enrollments
// and invites, then the team row itself. Dependent rows go first because the
// team row is still read along the way. The first error aborts the cascade;
// already-applied steps are not rolled back. Stored assets are cleaned up
// after the fact and never block the deletion.
func (s *RosterService) DeleteTeam(teamID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	games, err := s.gameRepo.GetByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to list team games: %w", err)
	}
	for _, game := range games {
		if err := s.deleteGameData(game.ID); err != nil {
			return err
		}
	}

	coachIDs, err := s.teamRepo.GetCoachIDs(teamID)
	if err != nil {
		return fmt.Errorf("failed to list coaches: %w", err)
	}
	for _, coachID := range coachIDs {
		if err := s.teamRepo.RemoveCoach(teamID, coachID); err != nil {
			return fmt.Errorf("failed to remove coach %s: %w", coachID, err)
		}
	}

	enrollments, err := s.playerRepo.GetEnrollmentsByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to list enrollments: %w", err)
	}
	for _, enrollment := range enrollments {
		if err := s.playerRepo.Unenroll(enrollment.PlayerID, teamID); err != nil {
			return fmt.Errorf("failed to unenroll player %s: %w", enrollment.PlayerID, err)
		}
	}

	invites, err := s.inviteRepo.GetByTeamID(teamID)
	if err != nil {
		return fmt.Errorf("failed to list invites: %w", err)
	}
	for _, invite := range invites {
		if err := s.inviteRepo.Delete(invite.ID); err != nil {
			return fmt.Errorf("failed to delete invite %s: %w", invite.ID, err)
		}
	}

	if err := s.teamRepo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	go s.cleanupAssets(team.ID)

	return nil
}

// deleteGameData removes a game and its dependent rows
func (s *RosterService) deleteGameData(gameID uuid.UUID) error {
	if err := s.transcriptRepo.DeleteByGameID(gameID); err != nil {
		return fmt.Errorf("failed to delete transcripts for game %s: %w", gameID, err)
	}
	if err := s.keyMomentRepo.DeleteByGameID(gameID); err != nil {
		return fmt.Errorf("failed to delete key moments for game %s: %w", gameID, err)
	}
	if err := s.recordingRepo.DeleteByGameID(gameID); err != nil {
		return fmt.Errorf("failed to delete recording for game %s: %w", gameID, err)
	}
	if err := s.gameRepo.Delete(gameID); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", gameID, err)
	}
	return nil
}

// cleanupAssets deletes every stored object under the team's prefix.
// Failures are logged only.
func (s *RosterService) cleanupAssets(teamID uuid.UUID) {
	if err := s.assets.DeletePrefix(context.Background(), storage.TeamPrefix(teamID.String())); err != nil {
		s.log.WithError(err).WithField("team_id", teamID).
			Warn("failed to clean up team assets")
	}
}
