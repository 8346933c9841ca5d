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

// CommentService handles business logic for key moment comments
type CommentService struct {
	repo          repository.CommentRepositoryInterface
	keyMomentRepo repository.KeyMomentRepositoryInterface
	validator     *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(repo repository.CommentRepositoryInterface, keyMomentRepo repository.KeyMomentRepositoryInterface, validator *validator.Validate) *CommentService {
	return &CommentService{
		repo:          repo,
		keyMomentRepo: keyMomentRepo,
		validator:     validator,
	}
}

// CreateCommentRequest represents the data needed to comment on a key moment
type CreateCommentRequest struct {
	KeyMomentID uuid.UUID `json:"key_moment_id" validate:"required"`
	Text        string    `json:"text" validate:"required,min=1,max=500"`
}

// CommentResponse represents the response data for a comment
type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	KeyMomentID uuid.UUID `json:"key_moment_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Text        string    `json:"text"`
	CreatedAt   string    `json:"created_at"`
}

// CreateComment attaches a comment to a key moment
func (s *CommentService) CreateComment(req *CreateCommentRequest, authorID uuid.UUID) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.keyMomentRepo.GetByID(req.KeyMomentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyMomentNotFound
		}
		return nil, fmt.Errorf("failed to get key moment: %w", err)
	}

	comment := &models.Comment{
		KeyMomentID: req.KeyMomentID,
		AuthorID:    authorID,
		Text:        req.Text,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return convertCommentToResponse(comment), nil
}

// GetCommentsByKeyMoment lists the comments on a key moment, oldest first
func (s *CommentService) GetCommentsByKeyMoment(keyMomentID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.keyMomentRepo.GetByID(keyMomentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyMomentNotFound
		}
		return nil, fmt.Errorf("failed to get key moment: %w", err)
	}

	comments, err := s.repo.GetByKeyMomentID(keyMomentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *convertCommentToResponse(&comments[i]))
	}
	return responses, nil
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *CommentService) DeleteComment(id, requesterID uuid.UUID) error {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.AuthorID != requesterID {
		return apperrors.NewAuthorizationError("only the author can delete a comment")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func convertCommentToResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          comment.ID,
		KeyMomentID: comment.KeyMomentID,
		AuthorID:    comment.AuthorID,
		Text:        comment.Text,
		CreatedAt:   comment.CreatedAt.Format(time.RFC3339),
	}
}
