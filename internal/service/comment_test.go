package service_test

import (
	"testing"

	"team-feedback-backend/internal/database/models"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/repository/memory"
	"team-feedback-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CommentServiceTestSuite exercises key moment comments over the in-memory store
type CommentServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.CommentService
	moment  *models.KeyMoment
	author  uuid.UUID
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewCommentService(s.store.Comments(), s.store.KeyMoments(), validator.New())

	team := &models.Team{Name: "Falcons", AccessCode: "FLCN42"}
	s.Require().NoError(s.store.Teams().Create(team))
	game := &models.Game{TeamID: team.ID, Title: "Season opener"}
	s.Require().NoError(s.store.Games().Create(game))
	s.moment = &models.KeyMoment{GameID: game.ID, FrameStart: 10, FrameEnd: 20}
	s.Require().NoError(s.store.KeyMoments().Create(s.moment))

	s.author = uuid.New()
}

func (s *CommentServiceTestSuite) TestCreateAndListOldestFirst() {
	first, err := s.service.CreateComment(&service.CreateCommentRequest{KeyMomentID: s.moment.ID, Text: "nice press"}, s.author)
	s.Require().NoError(err)
	_, err = s.service.CreateComment(&service.CreateCommentRequest{KeyMomentID: s.moment.ID, Text: "watch the line"}, s.author)
	s.Require().NoError(err)

	comments, err := s.service.GetCommentsByKeyMoment(s.moment.ID)
	s.Require().NoError(err)
	s.Require().Len(comments, 2)
	s.Equal(first.ID, comments[0].ID)
	s.Equal("nice press", comments[0].Text)
	s.Equal(s.author, comments[0].AuthorID)
}

func (s *CommentServiceTestSuite) TestCreateForMissingKeyMoment() {
	_, err := s.service.CreateComment(&service.CreateCommentRequest{KeyMomentID: uuid.New(), Text: "lost"}, s.author)
	s.Require().ErrorIs(err, apperrors.ErrKeyMomentNotFound)
}

func (s *CommentServiceTestSuite) TestCreateRejectsEmptyText() {
	_, err := s.service.CreateComment(&service.CreateCommentRequest{KeyMomentID: s.moment.ID}, s.author)
	s.Require().Error(err)
}

func (s *CommentServiceTestSuite) TestDeleteOnlyByAuthor() {
	created, err := s.service.CreateComment(&service.CreateCommentRequest{KeyMomentID: s.moment.ID, Text: "mine"}, s.author)
	s.Require().NoError(err)

	err = s.service.DeleteComment(created.ID, uuid.New())
	s.Require().Error(err)
	s.True(apperrors.IsAuthorization(err))

	s.Require().NoError(s.service.DeleteComment(created.ID, s.author))

	err = s.service.DeleteComment(created.ID, s.author)
	s.Require().ErrorIs(err, apperrors.ErrCommentNotFound)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
