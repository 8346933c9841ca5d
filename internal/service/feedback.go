package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/logger"
	"team-feedback-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// previewTranscriptLimit bounds the transcript fetch for summary views
	previewTranscriptLimit = 3

	// recipientResolveConcurrency bounds the fan-out when resolving the
	// union of feedback recipients for a game
	recipientResolveConcurrency = 8
)

// FeedbackService joins transcripts with their key moments and resolved
// recipient identities, applying role-based visibility: a player sees only
// the moments addressed to them, and only their own info on each; a coach
// sees every moment with the full recipient list.
type FeedbackService struct {
	transcriptRepo repository.TranscriptRepositoryInterface
	keyMomentRepo  repository.KeyMomentRepositoryInterface
	recordingRepo  repository.FullGameRecordingRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	playerRepo     repository.PlayerRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	log            *logger.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	transcriptRepo repository.TranscriptRepositoryInterface,
	keyMomentRepo repository.KeyMomentRepositoryInterface,
	recordingRepo repository.FullGameRecordingRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	playerRepo repository.PlayerRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *FeedbackService {
	return &FeedbackService{
		transcriptRepo: transcriptRepo,
		keyMomentRepo:  keyMomentRepo,
		recordingRepo:  recordingRepo,
		gameRepo:       gameRepo,
		playerRepo:     playerRepo,
		userRepo:       userRepo,
		log:            logger.WithComponent("feedback_service"),
	}
}

// FeedbackRecipient is the resolved identity of one feedback recipient as it
// appears on a transcript record
type FeedbackRecipient struct {
	PlayerID  uuid.UUID `json:"player_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Nickname  string    `json:"nickname"`
	Jersey    string    `json:"jersey"`
}

// TranscriptRecord is one joined transcript + key moment + recipients row.
// LocalID is the record's position in its containing list after sorting; it
// is not a stable identifier, the join keys are KeyMomentID and TranscriptID.
type TranscriptRecord struct {
	LocalID      int                 `json:"local_id"`
	KeyMomentID  uuid.UUID           `json:"key_moment_id"`
	TranscriptID uuid.UUID           `json:"transcript_id"`
	Text         string              `json:"text"`
	FrameStart   float64             `json:"frame_start"`
	FrameEnd     float64             `json:"frame_end"`
	AudioKey     *string             `json:"audio_key,omitempty"`
	FeedbackFor  []FeedbackRecipient `json:"feedback_for"`
}

// GameFeedbackResponse carries the visible records of a game and the subset
// that can also be shown as markers inside the full-game recording. The
// second list is empty unless a recording with an uploaded file exists.
type GameFeedbackResponse struct {
	Records         []TranscriptRecord `json:"records"`
	FullGameRecords []TranscriptRecord `json:"full_game_records"`
}

// viewer is the resolved identity of the requesting user
type viewer struct {
	role     models.UserRole
	playerID uuid.UUID
}

// GetGameFeedback returns every transcript record of a game visible to the
// requesting user, sorted chronologically
func (s *FeedbackService) GetGameFeedback(gameID, userID uuid.UUID) ([]TranscriptRecord, error) {
	resp, err := s.collect(gameID, userID, false)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// GetGameFeedbackWithFullGame returns every visible record plus the subset
// eligible for display inside the full-game recording
func (s *FeedbackService) GetGameFeedbackWithFullGame(gameID, userID uuid.UUID) (*GameFeedbackResponse, error) {
	return s.collect(gameID, userID, false)
}

// GetGameFeedbackPreview is GetGameFeedbackWithFullGame bounded to the first
// three transcripts of the game, for summary screens
func (s *FeedbackService) GetGameFeedbackPreview(gameID, userID uuid.UUID) (*GameFeedbackResponse, error) {
	return s.collect(gameID, userID, true)
}

func (s *FeedbackService) collect(gameID, userID uuid.UUID, preview bool) (*GameFeedbackResponse, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	v, err := s.resolveViewer(userID)
	if err != nil {
		return nil, err
	}

	var transcripts []models.Transcript
	if preview {
		transcripts, err = s.transcriptRepo.GetPreviewByGameID(gameID, previewTranscriptLimit)
	} else {
		transcripts, err = s.transcriptRepo.GetByGameID(gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transcripts: %w", err)
	}

	// A game with no transcripts yet is a normal state, not an error.
	if len(transcripts) == 0 {
		return &GameFeedbackResponse{
			Records:         []TranscriptRecord{},
			FullGameRecords: []TranscriptRecord{},
		}, nil
	}

	moments, err := s.keyMomentRepo.GetByGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key moments: %w", err)
	}
	momentsByID := make(map[uuid.UUID]models.KeyMoment, len(moments))
	for _, moment := range moments {
		momentsByID[moment.ID] = moment
	}

	recipients, err := s.resolveRecipients(moments, game.TeamID)
	if err != nil {
		return nil, err
	}

	records := make([]TranscriptRecord, 0, len(transcripts))
	for _, transcript := range transcripts {
		moment, ok := momentsByID[transcript.KeyMomentID]
		if !ok {
			// Dangling reference is tolerated data drift, not a failure.
			s.log.WithFields(map[string]interface{}{
				"transcript_id": transcript.ID,
				"key_moment_id": transcript.KeyMomentID,
				"game_id":       gameID,
			}).Warn("transcript references missing key moment, skipping")
			continue
		}

		record, visible := s.buildRecord(transcript, moment, v, recipients)
		if !visible {
			continue
		}
		records = append(records, record)
	}

	sortRecords(records)

	resp := &GameFeedbackResponse{
		Records:         records,
		FullGameRecords: []TranscriptRecord{},
	}
	if s.fullGameAvailable(gameID) {
		resp.FullGameRecords = cloneRecords(records)
	}
	return resp, nil
}

// resolveViewer loads the requesting user and, for players, the linked
// player profile. Roles outside the closed coach/player enum are rejected.
func (s *FeedbackService) resolveViewer(userID uuid.UUID) (*viewer, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	switch user.Role {
	case models.UserRoleCoach:
		return &viewer{role: models.UserRoleCoach}, nil
	case models.UserRolePlayer:
		player, err := s.playerRepo.GetByUserID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to get player profile: %w", err)
		}
		return &viewer{role: models.UserRolePlayer, playerID: player.ID}, nil
	default:
		return nil, apperrors.ErrUnknownRole
	}
}

// resolveRecipients batch-resolves the union of every recipient id across
// the game's key moments into one lookup. Each id is fetched once no matter
// how many moments reference it. Unresolvable ids are logged and omitted.
func (s *FeedbackService) resolveRecipients(moments []models.KeyMoment, teamID uuid.UUID) (map[uuid.UUID]FeedbackRecipient, error) {
	union := make(map[uuid.UUID]struct{})
	for _, moment := range moments {
		for _, playerID := range moment.FeedbackFor {
			union[playerID] = struct{}{}
		}
	}

	recipients := make(map[uuid.UUID]FeedbackRecipient, len(union))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(recipientResolveConcurrency)
	for playerID := range union {
		playerID := playerID
		g.Go(func() error {
			row, err := s.playerRepo.GetFeedbackRow(playerID, teamID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					s.log.WithField("player_id", playerID).
						Warn("feedback references unknown player, skipping")
					return nil
				}
				return fmt.Errorf("failed to resolve player %s: %w", playerID, err)
			}
			mu.Lock()
			recipients[playerID] = FeedbackRecipient{
				PlayerID:  row.PlayerID,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				Nickname:  row.Nickname,
				Jersey:    row.Jersey,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recipients, nil
}

// buildRecord applies the visibility rule for one transcript. A player gets
// the record only when addressed by its key moment, and then sees only their
// own recipient entry. A coach gets every record with all resolved
// recipients.
func (s *FeedbackService) buildRecord(transcript models.Transcript, moment models.KeyMoment, v *viewer, recipients map[uuid.UUID]FeedbackRecipient) (TranscriptRecord, bool) {
	record := TranscriptRecord{
		KeyMomentID:  moment.ID,
		TranscriptID: transcript.ID,
		Text:         transcript.Text,
		FrameStart:   moment.FrameStart,
		FrameEnd:     moment.FrameEnd,
		AudioKey:     moment.AudioKey,
		FeedbackFor:  []FeedbackRecipient{},
	}

	switch v.role {
	case models.UserRolePlayer:
		if !moment.FeedbackFor.Contains(v.playerID) {
			return TranscriptRecord{}, false
		}
		if info, ok := recipients[v.playerID]; ok {
			record.FeedbackFor = []FeedbackRecipient{info}
		}
		return record, true
	default:
		for _, playerID := range moment.FeedbackFor {
			if info, ok := recipients[playerID]; ok {
				record.FeedbackFor = append(record.FeedbackFor, info)
			}
		}
		return record, true
	}
}

// fullGameAvailable reports whether the game has a recording with an
// uploaded file. Absence of the recording row is a normal state.
func (s *FeedbackService) fullGameAvailable(gameID uuid.UUID) bool {
	recording, err := s.recordingRepo.GetByGameID(gameID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithError(err).WithField("game_id", gameID).
				Warn("failed to check full game recording")
		}
		return false
	}
	return recording.FileURL != nil
}

// sortRecords orders records ascending by frame start and assigns each its
// position as the local id
func sortRecords(records []TranscriptRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FrameStart < records[j].FrameStart
	})
	for i := range records {
		records[i].LocalID = i
	}
}

// cloneRecords copies a record list so the two lists of a response can be
// consumed independently. Local ids are reassigned per list.
func cloneRecords(records []TranscriptRecord) []TranscriptRecord {
	clone := make([]TranscriptRecord, len(records))
	copy(clone, records)
	for i := range clone {
		clone[i].LocalID = i
	}
	return clone
}
