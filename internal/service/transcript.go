package service

import (
	"errors"
	"fmt"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscriptService handles business logic for transcripts
type TranscriptService struct {
	repo          repository.TranscriptRepositoryInterface
	keyMomentRepo repository.KeyMomentRepositoryInterface
	validator     *validator.Validate
}

// NewTranscriptService creates a new transcript service
func NewTranscriptService(repo repository.TranscriptRepositoryInterface, keyMomentRepo repository.KeyMomentRepositoryInterface, validator *validator.Validate) *TranscriptService {
	return &TranscriptService{
		repo:          repo,
		keyMomentRepo: keyMomentRepo,
		validator:     validator,
	}
}

// CreateTranscriptRequest represents the data needed to attach a transcript
// to a key moment
type CreateTranscriptRequest struct {
	KeyMomentID uuid.UUID `json:"key_moment_id" validate:"required"`
	Text        string    `json:"text" validate:"required"`
	Confidence  float64   `json:"confidence" validate:"gte=0,lte=1"`
}

// UpdateTranscriptRequest represents an edit to a transcript's text
type UpdateTranscriptRequest struct {
	Text string `json:"text" validate:"required"`
}

// TranscriptResponse represents the response data for a transcript
type TranscriptResponse struct {
	ID          uuid.UUID `json:"id"`
	KeyMomentID uuid.UUID `json:"key_moment_id"`
	GameID      uuid.UUID `json:"game_id"`
	Text        string    `json:"text"`
	Confidence  float64   `json:"confidence"`
}

// CreateTranscript attaches a transcript to an existing key moment
func (s *TranscriptService) CreateTranscript(req *CreateTranscriptRequest) (*TranscriptResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	moment, err := s.keyMomentRepo.GetByID(req.KeyMomentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyMomentNotFound
		}
		return nil, fmt.Errorf("failed to get key moment: %w", err)
	}

	transcript := &models.Transcript{
		KeyMomentID: moment.ID,
		GameID:      moment.GameID,
		Text:        req.Text,
		Confidence:  req.Confidence,
	}
	if err := s.repo.Create(transcript); err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}
	return convertTranscriptToResponse(transcript), nil
}

// GetTranscriptByID retrieves a transcript by ID
func (s *TranscriptService) GetTranscriptByID(id uuid.UUID) (*TranscriptResponse, error) {
	transcript, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}
	return convertTranscriptToResponse(transcript), nil
}

// UpdateTranscript edits a transcript's text
func (s *TranscriptService) UpdateTranscript(id uuid.UUID, req *UpdateTranscriptRequest) (*TranscriptResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	transcript, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	transcript.Text = req.Text
	if err := s.repo.Update(transcript); err != nil {
		return nil, fmt.Errorf("failed to update transcript: %w", err)
	}
	return convertTranscriptToResponse(transcript), nil
}

// DeleteTranscript removes a transcript
func (s *TranscriptService) DeleteTranscript(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTranscriptNotFound
		}
		return fmt.Errorf("failed to get transcript: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}

func convertTranscriptToResponse(transcript *models.Transcript) *TranscriptResponse {
	return &TranscriptResponse{
		ID:          transcript.ID,
		KeyMomentID: transcript.KeyMomentID,
		GameID:      transcript.GameID,
		Text:        transcript.Text,
		Confidence:  transcript.Confidence,
	}
}
