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

// KeyMomentService handles business logic for key moments
type KeyMomentService struct {
	repo           repository.KeyMomentRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	transcriptRepo repository.TranscriptRepositoryInterface
	assets         storage.AssetStore
	validator      *validator.Validate
	log            *logger.Logger
}

// NewKeyMomentService creates a new key moment service
func NewKeyMomentService(
	repo repository.KeyMomentRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	transcriptRepo repository.TranscriptRepositoryInterface,
	assets storage.AssetStore,
	validator *validator.Validate,
) *KeyMomentService {
	return &KeyMomentService{
		repo:           repo,
		gameRepo:       gameRepo,
		playerRepo:     playerRepo,
		transcriptRepo: transcriptRepo,
		assets:         assets,
		validator:      validator,
		log:            logger.WithComponent("key_moment_service"),
	}
}

// CreateKeyMomentRequest represents the data needed to create a key moment.
// An empty FeedbackFor means the moment addresses the whole team; it is
// expanded to the current roster at creation time.
type CreateKeyMomentRequest struct {
	GameID      uuid.UUID   `json:"game_id" validate:"required"`
	FrameStart  float64     `json:"frame_start" validate:"gte=0"`
	FrameEnd    float64     `json:"frame_end" validate:"gte=0"`
	AudioKey    *string     `json:"audio_key" validate:"omitempty,max=200"`
	FeedbackFor []uuid.UUID `json:"feedback_for"`
}

// KeyMomentResponse represents the response data for a key moment
type KeyMomentResponse struct {
	ID          uuid.UUID   `json:"id"`
	GameID      uuid.UUID   `json:"game_id"`
	FrameStart  float64     `json:"frame_start"`
	FrameEnd    float64     `json:"frame_end"`
	AudioKey    *string     `json:"audio_key,omitempty"`
	AudioURL    string      `json:"audio_url,omitempty"`
	FeedbackFor []uuid.UUID `json:"feedback_for"`
}

// CreateKeyMoment creates a key moment within a game
func (s *KeyMomentService) CreateKeyMoment(req *CreateKeyMomentRequest) (*KeyMomentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.FrameStart > req.FrameEnd {
		return nil, apperrors.ErrInvalidFrameRange
	}

	game, err := s.gameRepo.GetByID(req.GameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	feedbackFor := models.UUIDList(req.FeedbackFor)
	if len(feedbackFor) == 0 {
		feedbackFor, err = s.currentRoster(game.TeamID)
		if err != nil {
			return nil, err
		}
	}

	moment := &models.KeyMoment{
		GameID:      req.GameID,
		FrameStart:  req.FrameStart,
		FrameEnd:    req.FrameEnd,
		AudioKey:    req.AudioKey,
		FeedbackFor: feedbackFor,
	}
	if err := s.repo.Create(moment); err != nil {
		return nil, fmt.Errorf("failed to create key moment: %w", err)
	}
	return s.convertToResponse(moment), nil
}

// GetKeyMomentByID retrieves a key moment by ID
func (s *KeyMomentService) GetKeyMomentByID(id uuid.UUID) (*KeyMomentResponse, error) {
	moment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyMomentNotFound
		}
		return nil, fmt.Errorf("failed to get key moment: %w", err)
	}
	return s.convertToResponse(moment), nil
}

// GetKeyMomentsByGame lists the key moments of a game
func (s *KeyMomentService) GetKeyMomentsByGame(gameID uuid.UUID) ([]KeyMomentResponse, error) {
	if _, err := s.gameRepo.GetByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	moments, err := s.repo.GetByGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list key moments: %w", err)
	}

	responses := make([]KeyMomentResponse, 0, len(moments))
	for i := range moments {
		responses = append(responses, *s.convertToResponse(&moments[i]))
	}
	return responses, nil
}

// DeleteKeyMoment removes a key moment together with its transcript; the
// audio clip is deleted from storage best effort
func (s *KeyMomentService) DeleteKeyMoment(id uuid.UUID) error {
	moment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKeyMomentNotFound
		}
		return fmt.Errorf("failed to get key moment: %w", err)
	}

	if err := s.transcriptRepo.DeleteByKeyMomentID(id); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete key moment: %w", err)
	}

	if moment.AudioKey != nil {
		key := *moment.AudioKey
		go func() {
			if err := s.assets.Delete(context.Background(), key); err != nil {
				s.log.WithError(err).WithField("key", key).
					Warn("failed to delete audio clip")
			}
		}()
	}
	return nil
}

// currentRoster returns the ids of every player enrolled on the team
func (s *KeyMomentService) currentRoster(teamID uuid.UUID) (models.UUIDList, error) {
	enrollments, err := s.playerRepo.GetEnrollmentsByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	roster := make(models.UUIDList, 0, len(enrollments))
	for _, enrollment := range enrollments {
		roster = append(roster, enrollment.PlayerID)
	}
	return roster, nil
}

func (s *KeyMomentService) convertToResponse(moment *models.KeyMoment) *KeyMomentResponse {
	resp := &KeyMomentResponse{
		ID:          moment.ID,
		GameID:      moment.GameID,
		FrameStart:  moment.FrameStart,
		FrameEnd:    moment.FrameEnd,
		AudioKey:    moment.AudioKey,
		FeedbackFor: moment.FeedbackFor,
	}
	if moment.AudioKey != nil {
		resp.AudioURL = s.assets.PublicURL(*moment.AudioKey)
	}
	return resp
}
