// Package memory provides an in-memory implementation of the repository
// contracts. It backs the service test suites and local development runs
// where a Postgres instance is not available; behavior, including the
// not-found sentinel, matches the gorm-backed repositories.
package memory

import (
	"sync"
	"time"

	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
)

// Store holds all entity collections behind a single mutex. Individual
// operations are atomic; multi-step workflows layered on top are not, which
// mirrors the remote store's per-document write guarantee.
type Store struct {
	mu sync.RWMutex

	users         []models.User
	players       []models.Player
	teams         []models.Team
	teamCoaches   []models.TeamCoach
	enrollments   []models.Enrollment
	games         []models.Game
	keyMoments    []models.KeyMoment
	transcripts   []models.Transcript
	recordings    []models.FullGameRecording
	invites       []models.Invite
	comments      []models.Comment
	notifications []models.Notification
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{}
}

// Teams returns the team repository view of the store
func (s *Store) Teams() *TeamStore { return &TeamStore{s} }

// Players returns the player repository view of the store
func (s *Store) Players() *PlayerStore { return &PlayerStore{s} }

// Users returns the user repository view of the store
func (s *Store) Users() *UserStore { return &UserStore{s} }

// Games returns the game repository view of the store
func (s *Store) Games() *GameStore { return &GameStore{s} }

// KeyMoments returns the key moment repository view of the store
func (s *Store) KeyMoments() *KeyMomentStore { return &KeyMomentStore{s} }

// Transcripts returns the transcript repository view of the store
func (s *Store) Transcripts() *TranscriptStore { return &TranscriptStore{s} }

// FullGameRecordings returns the recording repository view of the store
func (s *Store) FullGameRecordings() *FullGameRecordingStore { return &FullGameRecordingStore{s} }

// Invites returns the invite repository view of the store
func (s *Store) Invites() *InviteStore { return &InviteStore{s} }

// Comments returns the comment repository view of the store
func (s *Store) Comments() *CommentStore { return &CommentStore{s} }

// Notifications returns the notification repository view of the store
func (s *Store) Notifications() *NotificationStore { return &NotificationStore{s} }

func stamp(base *models.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	now := time.Now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}
