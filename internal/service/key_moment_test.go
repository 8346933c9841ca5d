package service_test

import (
	"testing"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository/memory"
	"team-feedback-backend/internal/service"
	"team-feedback-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// KeyMomentServiceTestSuite exercises key moment creation and deletion over
// the in-memory store
type KeyMomentServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.KeyMomentService

	team      *models.Team
	game      *models.Game
	playerIDs []uuid.UUID
}

func (s *KeyMomentServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewKeyMomentService(
		s.store.KeyMoments(),
		s.store.Games(),
		s.store.Players(),
		s.store.Transcripts(),
		storage.Noop{},
		validator.New(),
	)

	s.team = &models.Team{Name: "Falcons", AccessCode: "FLCN42"}
	s.Require().NoError(s.store.Teams().Create(s.team))
	s.game = &models.Game{TeamID: s.team.ID, Title: "Season opener"}
	s.Require().NoError(s.store.Games().Create(s.game))

	s.playerIDs = nil
	for range [2]int{} {
		player := &models.Player{UserID: uuid.New()}
		s.Require().NoError(s.store.Players().Create(player))
		s.Require().NoError(s.store.Players().Enroll(&models.Enrollment{TeamID: s.team.ID, PlayerID: player.ID}))
		s.playerIDs = append(s.playerIDs, player.ID)
	}
}

func (s *KeyMomentServiceTestSuite) TestCreateTargetedMoment() {
	resp, err := s.service.CreateKeyMoment(&service.CreateKeyMomentRequest{
		GameID:      s.game.ID,
		FrameStart:  12.5,
		FrameEnd:    30,
		FeedbackFor: []uuid.UUID{s.playerIDs[0]},
	})
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{s.playerIDs[0]}, []uuid.UUID(resp.FeedbackFor))
	s.Equal(12.5, resp.FrameStart)
}

func (s *KeyMomentServiceTestSuite) TestCreateWholeTeamMomentExpandsRoster() {
	resp, err := s.service.CreateKeyMoment(&service.CreateKeyMomentRequest{
		GameID:     s.game.ID,
		FrameStart: 0,
		FrameEnd:   10,
	})
	s.Require().NoError(err)
	s.Len(resp.FeedbackFor, len(s.playerIDs))
	for _, id := range s.playerIDs {
		s.True(models.UUIDList(resp.FeedbackFor).Contains(id))
	}
}

func (s *KeyMomentServiceTestSuite) TestCreateRejectsInvertedFrameRange() {
	_, err := s.service.CreateKeyMoment(&service.CreateKeyMomentRequest{
		GameID:     s.game.ID,
		FrameStart: 30,
		FrameEnd:   10,
	})
	s.Require().ErrorIs(err, apperrors.ErrInvalidFrameRange)
}

func (s *KeyMomentServiceTestSuite) TestCreateForMissingGame() {
	_, err := s.service.CreateKeyMoment(&service.CreateKeyMomentRequest{
		GameID:     uuid.New(),
		FrameStart: 0,
		FrameEnd:   10,
	})
	s.Require().ErrorIs(err, apperrors.ErrGameNotFound)
}

func (s *KeyMomentServiceTestSuite) TestDeleteRemovesTranscript() {
	resp, err := s.service.CreateKeyMoment(&service.CreateKeyMomentRequest{
		GameID:      s.game.ID,
		FrameStart:  0,
		FrameEnd:    10,
		FeedbackFor: []uuid.UUID{s.playerIDs[0]},
	})
	s.Require().NoError(err)

	transcript := &models.Transcript{KeyMomentID: resp.ID, GameID: s.game.ID, Text: "clip", Confidence: 0.8}
	s.Require().NoError(s.store.Transcripts().Create(transcript))

	s.Require().NoError(s.service.DeleteKeyMoment(resp.ID))

	_, err = s.store.KeyMoments().GetByID(resp.ID)
	s.Require().Error(err)
	_, err = s.store.Transcripts().GetByID(transcript.ID)
	s.Require().Error(err)
}

func (s *KeyMomentServiceTestSuite) TestDeleteNotFound() {
	err := s.service.DeleteKeyMoment(uuid.New())
	s.Require().ErrorIs(err, apperrors.ErrKeyMomentNotFound)
}

func TestKeyMomentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KeyMomentServiceTestSuite))
}
