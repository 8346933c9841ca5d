package repository

import (
	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerFeedbackRow is the joined player identity used when resolving
// feedback recipients: account name from users, jersey and nickname from the
// player's enrollment on the requested team.
type PlayerFeedbackRow struct {
	PlayerID  uuid.UUID `json:"player_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Nickname  string    `json:"nickname"`
	Jersey    string    `json:"jersey"`
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByAccessCode(code string) (*models.Team, error)
	GetByCoachID(userID uuid.UUID) ([]models.Team, error)
	GetByPlayerID(playerID uuid.UUID) ([]models.Team, error)
	GetRosterSize(teamID uuid.UUID) (int, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	AddCoach(teamID, userID uuid.UUID) error
	RemoveCoach(teamID, userID uuid.UUID) error
	GetCoachIDs(teamID uuid.UUID) ([]uuid.UUID, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetByUserID(userID uuid.UUID) (*models.Player, error)
	IsEnrolled(playerID, teamID uuid.UUID) (bool, error)
	Enroll(enrollment *models.Enrollment) error
	UpdateEnrollment(enrollment *models.Enrollment) error
	Unenroll(playerID, teamID uuid.UUID) error
	GetEnrollment(playerID, teamID uuid.UUID) (*models.Enrollment, error)
	GetEnrollmentsByTeamID(teamID uuid.UUID) ([]models.Enrollment, error)
	GetFeedbackRow(playerID, teamID uuid.UUID) (*PlayerFeedbackRow, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uuid.UUID) (*models.Game, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uuid.UUID) error
}

// KeyMomentRepositoryInterface defines the interface for key moment repository operations
type KeyMomentRepositoryInterface interface {
	Create(moment *models.KeyMoment) error
	GetByID(id uuid.UUID) (*models.KeyMoment, error)
	GetByGameID(gameID uuid.UUID) ([]models.KeyMoment, error)
	Update(moment *models.KeyMoment) error
	Delete(id uuid.UUID) error
	DeleteByGameID(gameID uuid.UUID) error
	AssignPlayerToFullTeamMoments(gameID uuid.UUID, rosterSize int, playerID uuid.UUID) error
}

// TranscriptRepositoryInterface defines the interface for transcript repository operations
type TranscriptRepositoryInterface interface {
	Create(transcript *models.Transcript) error
	GetByID(id uuid.UUID) (*models.Transcript, error)
	GetByKeyMomentID(keyMomentID uuid.UUID) (*models.Transcript, error)
	GetByGameID(gameID uuid.UUID) ([]models.Transcript, error)
	GetPreviewByGameID(gameID uuid.UUID, limit int) ([]models.Transcript, error)
	Update(transcript *models.Transcript) error
	Delete(id uuid.UUID) error
	DeleteByGameID(gameID uuid.UUID) error
	DeleteByKeyMomentID(keyMomentID uuid.UUID) error
}

// FullGameRecordingRepositoryInterface defines the interface for full game recording repository operations
type FullGameRecordingRepositoryInterface interface {
	Create(recording *models.FullGameRecording) error
	GetByGameID(gameID uuid.UUID) (*models.FullGameRecording, error)
	Update(recording *models.FullGameRecording) error
	DeleteByGameID(gameID uuid.UUID) error
}

// InviteRepositoryInterface defines the interface for invite repository operations
type InviteRepositoryInterface interface {
	Create(invite *models.Invite) error
	GetByID(id uuid.UUID) (*models.Invite, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Invite, error)
	Update(invite *models.Invite) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByKeyMomentID(keyMomentID uuid.UUID) ([]models.Comment, error)
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
