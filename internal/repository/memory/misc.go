package memory

import (
	"sort"

	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteStore implements repository.InviteRepositoryInterface over the in-memory store
type InviteStore struct {
	s *Store
}

// Create creates a new invite
func (v *InviteStore) Create(invite *models.Invite) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	stamp(&invite.BaseModel)
	v.s.invites = append(v.s.invites, *invite)
	return nil
}

// GetByID retrieves an invite by ID
func (v *InviteStore) GetByID(id uuid.UUID) (*models.Invite, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, invite := range v.s.invites {
		if invite.ID == id {
			copy := invite
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByTeamID retrieves all invites of a team
func (v *InviteStore) GetByTeamID(teamID uuid.UUID) ([]models.Invite, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var invites []models.Invite
	for _, invite := range v.s.invites {
		if invite.TeamID == teamID {
			invites = append(invites, invite)
		}
	}
	return invites, nil
}

// Update updates an invite
func (v *InviteStore) Update(invite *models.Invite) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i := range v.s.invites {
		if v.s.invites[i].ID == invite.ID {
			stamp(&invite.BaseModel)
			v.s.invites[i] = *invite
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes an invite
func (v *InviteStore) Delete(id uuid.UUID) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	for i := range v.s.invites {
		if v.s.invites[i].ID == id {
			v.s.invites = append(v.s.invites[:i], v.s.invites[i+1:]...)
			return nil
		}
	}
	return nil
}

// CommentStore implements repository.CommentRepositoryInterface over the in-memory store
type CommentStore struct {
	s *Store
}

// Create creates a new comment
func (c *CommentStore) Create(comment *models.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	stamp(&comment.BaseModel)
	c.s.comments = append(c.s.comments, *comment)
	return nil
}

// GetByID retrieves a comment by ID
func (c *CommentStore) GetByID(id uuid.UUID) (*models.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for _, comment := range c.s.comments {
		if comment.ID == id {
			copy := comment
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByKeyMomentID retrieves all comments on a key moment, oldest first
func (c *CommentStore) GetByKeyMomentID(keyMomentID uuid.UUID) ([]models.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var comments []models.Comment
	for _, comment := range c.s.comments {
		if comment.KeyMomentID == keyMomentID {
			comments = append(comments, comment)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

// Delete deletes a comment
func (c *CommentStore) Delete(id uuid.UUID) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for i := range c.s.comments {
		if c.s.comments[i].ID == id {
			c.s.comments = append(c.s.comments[:i], c.s.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// NotificationStore implements repository.NotificationRepositoryInterface over the in-memory store
type NotificationStore struct {
	s *Store
}

// Create creates a new notification
func (n *NotificationStore) Create(notification *models.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	stamp(&notification.BaseModel)
	n.s.notifications = append(n.s.notifications, *notification)
	return nil
}

// GetByUserID retrieves a user's notifications with pagination, newest first
func (n *NotificationStore) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()
	var notifications []models.Notification
	for _, notification := range n.s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	total := int64(len(notifications))
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	if offset >= len(notifications) {
		return nil, total, nil
	}
	notifications = notifications[offset:]
	if len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, total, nil
}

// MarkRead marks a notification as read
func (n *NotificationStore) MarkRead(id uuid.UUID) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	for i := range n.s.notifications {
		if n.s.notifications[i].ID == id {
			n.s.notifications[i].Read = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete deletes a notification
func (n *NotificationStore) Delete(id uuid.UUID) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	for i := range n.s.notifications {
		if n.s.notifications[i].ID == id {
			n.s.notifications = append(n.s.notifications[:i], n.s.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}
