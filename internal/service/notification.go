package service

import (
	"errors"
	"fmt"
	"time"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles business logic for in-app notifications
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents the response data for a notification
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Kind      models.NotificationKind `json:"kind"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
}

// GetNotifications lists a user's notifications, newest first
func (s *NotificationService) GetNotifications(userID uuid.UUID, limit, offset int) (*NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.repo.GetByUserID(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
		Total:         total,
	}
	for _, notification := range notifications {
		resp.Notifications = append(resp.Notifications, NotificationResponse{
			ID:        notification.ID,
			Kind:      notification.Kind,
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

// MarkNotificationRead marks one notification as read
func (s *NotificationService) MarkNotificationRead(id uuid.UUID) error {
	if err := s.repo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// DeleteNotification removes a notification
func (s *NotificationService) DeleteNotification(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
