package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/logger"
	"team-feedback-backend/internal/repository"
	"team-feedback-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameService handles business logic for games
type GameService struct {
	repo           repository.GameRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	keyMomentRepo  repository.KeyMomentRepositoryInterface
	transcriptRepo repository.TranscriptRepositoryInterface
	recordingRepo  repository.FullGameRecordingRepositoryInterface
	assets         storage.AssetStore
	validator      *validator.Validate
	log            *logger.Logger
}

// NewGameService creates a new game service
func NewGameService(
	repo repository.GameRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	keyMomentRepo repository.KeyMomentRepositoryInterface,
	transcriptRepo repository.TranscriptRepositoryInterface,
	recordingRepo repository.FullGameRecordingRepositoryInterface,
	assets storage.AssetStore,
	validator *validator.Validate,
) *GameService {
	return &GameService{
		repo:           repo,
		teamRepo:       teamRepo,
		keyMomentRepo:  keyMomentRepo,
		transcriptRepo: transcriptRepo,
		recordingRepo:  recordingRepo,
		assets:         assets,
		validator:      validator,
		log:            logger.WithComponent("game_service"),
	}
}

// CreateGameRequest represents the data needed to create a game
type CreateGameRequest struct {
	TeamID         uuid.UUID  `json:"team_id" validate:"required"`
	Title          string     `json:"title" validate:"required,min=1,max=100"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	Location       string     `json:"location" validate:"max=100"`
}

// UpdateGameRequest represents the data needed to update a game's settings
type UpdateGameRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=100"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ActualStart    *time.Time `json:"actual_start"`
	DurationSec    *int       `json:"duration_sec" validate:"omitempty,gte=0"`
	Location       *string    `json:"location" validate:"omitempty,max=100"`
}

// GameResponse represents the response data for a game
type GameResponse struct {
	ID             uuid.UUID  `json:"id"`
	TeamID         uuid.UUID  `json:"team_id"`
	Title          string     `json:"title"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
	ActualStart    *time.Time `json:"actual_start,omitempty"`
	DurationSec    int        `json:"duration_sec"`
	Location       string     `json:"location,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// CreateGame creates a new game for a team
func (s *GameService) CreateGame(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	game := &models.Game{
		TeamID:         req.TeamID,
		Title:          req.Title,
		ScheduledStart: req.ScheduledStart,
		Location:       req.Location,
	}
	if err := s.repo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return s.convertToResponse(game), nil
}

// GetGameByID retrieves a game by ID
func (s *GameService) GetGameByID(id uuid.UUID) (*GameResponse, error) {
	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return s.convertToResponse(game), nil
}

// GetGamesByTeam lists the games of a team, most recent first
func (s *GameService) GetGamesByTeam(teamID uuid.UUID) ([]GameResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	games, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	responses := make([]GameResponse, 0, len(games))
	for i := range games {
		responses = append(responses, *s.convertToResponse(&games[i]))
	}
	return responses, nil
}

// UpdateGame updates a game's settings
func (s *GameService) UpdateGame(id uuid.UUID, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.ScheduledStart != nil {
		game.ScheduledStart = req.ScheduledStart
	}
	if req.ActualStart != nil {
		game.ActualStart = req.ActualStart
	}
	if req.DurationSec != nil {
		game.DurationSec = *req.DurationSec
	}
	if req.Location != nil {
		game.Location = *req.Location
	}

	if err := s.repo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return s.convertToResponse(game), nil
}

// DeleteGame removes a game with its key moments, transcripts and recording
// rows, then cleans up the game's stored assets in the background
func (s *GameService) DeleteGame(id uuid.UUID) error {
	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGameNotFound
		}
		return fmt.Errorf("failed to get game: %w", err)
	}

	if err := s.transcriptRepo.DeleteByGameID(id); err != nil {
		return fmt.Errorf("failed to delete transcripts: %w", err)
	}
	if err := s.keyMomentRepo.DeleteByGameID(id); err != nil {
		return fmt.Errorf("failed to delete key moments: %w", err)
	}
	if err := s.recordingRepo.DeleteByGameID(id); err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	prefix := storage.GamePrefix(game.TeamID.String(), game.ID.String())
	go func() {
		if err := s.assets.DeletePrefix(context.Background(), prefix); err != nil {
			s.log.WithError(err).WithField("game_id", game.ID).
				Warn("failed to clean up game assets")
		}
	}()

	return nil
}

// AttachRecordingRequest registers the full-game recording of a game. A nil
// FileURL records that a recording exists but is not yet available.
type AttachRecordingRequest struct {
	FileURL *string `json:"file_url" validate:"omitempty,url,max=500"`
}

// RecordingResponse represents the response data for a full-game recording
type RecordingResponse struct {
	ID      uuid.UUID `json:"id"`
	GameID  uuid.UUID `json:"game_id"`
	FileURL *string   `json:"file_url,omitempty"`
}

// AttachRecording creates or updates the full-game recording row of a game
func (s *GameService) AttachRecording(gameID uuid.UUID, req *AttachRecordingRequest) (*RecordingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	recording, err := s.recordingRepo.GetByGameID(gameID)
	switch {
	case err == nil:
		recording.FileURL = req.FileURL
		if err := s.recordingRepo.Update(recording); err != nil {
			return nil, fmt.Errorf("failed to update recording: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		recording = &models.FullGameRecording{GameID: gameID, FileURL: req.FileURL}
		if err := s.recordingRepo.Create(recording); err != nil {
			return nil, fmt.Errorf("failed to create recording: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}

	return &RecordingResponse{
		ID:      recording.ID,
		GameID:  recording.GameID,
		FileURL: recording.FileURL,
	}, nil
}

func (s *GameService) convertToResponse(game *models.Game) *GameResponse {
	return &GameResponse{
		ID:             game.ID,
		TeamID:         game.TeamID,
		Title:          game.Title,
		ScheduledStart: game.ScheduledStart,
		ActualStart:    game.ActualStart,
		DurationSec:    game.DurationSec,
		Location:       game.Location,
		CreatedAt:      game.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      game.UpdatedAt.Format(time.RFC3339),
	}
}
