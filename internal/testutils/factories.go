package testutils

import (
	"fmt"
	"time"

	"team-feedback-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test coach User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email per instance to avoid unique index conflicts
		Email:     fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		FirstName: "Alex",
		LastName:  "Morgan",
		Role:      models.UserRoleCoach,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets custom first and last names for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player linked to a fresh user id
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: uuid.New(),
	}
}

// WithUser sets the user ID for the player
func (f *PlayerFactory) WithUser(userID uuid.UUID) *models.Player {
	player := f.Create()
	player.UserID = userID
	return player
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Team",
		Nickname: "Testers",
		Sport:    "soccer",
		// Unique code per instance to avoid unique index conflicts
		AccessCode: "T" + id.String()[:5],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithAccessCode sets a custom access code for the team
func (f *TeamFactory) WithAccessCode(code string) *models.Team {
	team := f.Create()
	team.AccessCode = code
	return team
}

// EnrollmentFactory provides methods to create test Enrollment data
type EnrollmentFactory struct{}

// NewEnrollmentFactory creates a new EnrollmentFactory
func NewEnrollmentFactory() *EnrollmentFactory {
	return &EnrollmentFactory{}
}

// Create creates a test Enrollment linking the given team and player
func (f *EnrollmentFactory) Create(teamID, playerID uuid.UUID) *models.Enrollment {
	return &models.Enrollment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   teamID,
		PlayerID: playerID,
		Nickname: "Rookie",
		Jersey:   "10",
	}
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game for the given team
func (f *GameFactory) Create(teamID uuid.UUID) *models.Game {
	start := time.Now().Add(24 * time.Hour)
	return &models.Game{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:         teamID,
		Title:          "Test Game",
		ScheduledStart: &start,
		Location:       "Home Field",
	}
}

// KeyMomentFactory provides methods to create test KeyMoment data
type KeyMomentFactory struct{}

// NewKeyMomentFactory creates a new KeyMomentFactory
func NewKeyMomentFactory() *KeyMomentFactory {
	return &KeyMomentFactory{}
}

// Create creates a test KeyMoment for the given game and recipients
func (f *KeyMomentFactory) Create(gameID uuid.UUID, frameStart, frameEnd float64, recipients ...uuid.UUID) *models.KeyMoment {
	return &models.KeyMoment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:      gameID,
		FrameStart:  frameStart,
		FrameEnd:    frameEnd,
		FeedbackFor: models.UUIDList(recipients),
	}
}

// TranscriptFactory provides methods to create test Transcript data
type TranscriptFactory struct{}

// NewTranscriptFactory creates a new TranscriptFactory
func NewTranscriptFactory() *TranscriptFactory {
	return &TranscriptFactory{}
}

// Create creates a test Transcript for the given key moment and game
func (f *TranscriptFactory) Create(keyMomentID, gameID uuid.UUID, text string) *models.Transcript {
	return &models.Transcript{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		KeyMomentID: keyMomentID,
		GameID:      gameID,
		Text:        text,
		Confidence:  0.95,
	}
}

// RecordingFactory provides methods to create test FullGameRecording data
type RecordingFactory struct{}

// NewRecordingFactory creates a new RecordingFactory
func NewRecordingFactory() *RecordingFactory {
	return &RecordingFactory{}
}

// Create creates a test FullGameRecording with an available file URL
func (f *RecordingFactory) Create(gameID uuid.UUID) *models.FullGameRecording {
	url := "https://cdn.test.com/recordings/" + gameID.String() + ".mp4"
	return &models.FullGameRecording{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GameID:  gameID,
		FileURL: &url,
	}
}

// Pending creates a test FullGameRecording whose upload has not finished
func (f *RecordingFactory) Pending(gameID uuid.UUID) *models.FullGameRecording {
	rec := f.Create(gameID)
	rec.FileURL = nil
	return rec
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Player     *PlayerFactory
	Team       *TeamFactory
	Enrollment *EnrollmentFactory
	Game       *GameFactory
	KeyMoment  *KeyMomentFactory
	Transcript *TranscriptFactory
	Recording  *RecordingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Player:     NewPlayerFactory(),
		Team:       NewTeamFactory(),
		Enrollment: NewEnrollmentFactory(),
		Game:       NewGameFactory(),
		KeyMoment:  NewKeyMomentFactory(),
		Transcript: NewTranscriptFactory(),
		Recording:  NewRecordingFactory(),
	}
}
