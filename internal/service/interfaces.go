package service

import (
	"team-feedback-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// FeedbackServiceInterface defines the interface for the feedback aggregator
type FeedbackServiceInterface interface {
	GetGameFeedback(gameID, userID uuid.UUID) ([]TranscriptRecord, error)
	GetGameFeedbackWithFullGame(gameID, userID uuid.UUID) (*GameFeedbackResponse, error)
	GetGameFeedbackPreview(gameID, userID uuid.UUID) (*GameFeedbackResponse, error)
}

// RosterServiceInterface defines the interface for the roster workflows
type RosterServiceInterface interface {
	JoinTeam(req *JoinTeamRequest, userID uuid.UUID) (*TeamResponse, error)
	DeleteTeam(teamID uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest, userID uuid.UUID) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	GetTeamsByUser(userID uuid.UUID) ([]TeamResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	RotateAccessCode(id uuid.UUID) (*TeamResponse, error)
	GetRoster(teamID uuid.UUID) ([]repository.PlayerFeedbackRow, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	GetPlayerByID(id uuid.UUID) (*PlayerResponse, error)
	GetPlayerByUserID(userID uuid.UUID) (*PlayerResponse, error)
	UpdateEnrollment(playerID, teamID uuid.UUID, req *UpdateEnrollmentRequest) error
}

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	CreateGame(req *CreateGameRequest) (*GameResponse, error)
	GetGameByID(id uuid.UUID) (*GameResponse, error)
	GetGamesByTeam(teamID uuid.UUID) ([]GameResponse, error)
	UpdateGame(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error)
	DeleteGame(id uuid.UUID) error
	AttachRecording(gameID uuid.UUID, req *AttachRecordingRequest) (*RecordingResponse, error)
}

// KeyMomentServiceInterface defines the interface for key moment service
type KeyMomentServiceInterface interface {
	CreateKeyMoment(req *CreateKeyMomentRequest) (*KeyMomentResponse, error)
	GetKeyMomentByID(id uuid.UUID) (*KeyMomentResponse, error)
	GetKeyMomentsByGame(gameID uuid.UUID) ([]KeyMomentResponse, error)
	DeleteKeyMoment(id uuid.UUID) error
}

// TranscriptServiceInterface defines the interface for transcript service
type TranscriptServiceInterface interface {
	CreateTranscript(req *CreateTranscriptRequest) (*TranscriptResponse, error)
	GetTranscriptByID(id uuid.UUID) (*TranscriptResponse, error)
	UpdateTranscript(id uuid.UUID, req *UpdateTranscriptRequest) (*TranscriptResponse, error)
	DeleteTranscript(id uuid.UUID) error
}

// InviteServiceInterface defines the interface for invite service
type InviteServiceInterface interface {
	CreateInvite(req *CreateInviteRequest) (*InviteResponse, error)
	GetInvitesByTeam(teamID uuid.UUID) ([]InviteResponse, error)
	ResolveInvite(id uuid.UUID, accept bool) (*InviteResponse, error)
	DeleteInvite(id uuid.UUID) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	CreateComment(req *CreateCommentRequest, authorID uuid.UUID) (*CommentResponse, error)
	GetCommentsByKeyMoment(keyMomentID uuid.UUID) ([]CommentResponse, error)
	DeleteComment(id, requesterID uuid.UUID) error
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	GetNotifications(userID uuid.UUID, limit, offset int) (*NotificationListResponse, error)
	MarkNotificationRead(id uuid.UUID) error
	DeleteNotification(id uuid.UUID) error
}
