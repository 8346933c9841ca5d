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

// InviteServiceTestSuite exercises invite lifecycle over the in-memory store
type InviteServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.InviteService
	team    *models.Team
}

func (s *InviteServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewInviteService(
		s.store.Invites(),
		s.store.Teams(),
		s.store.Users(),
		s.store.Notifications(),
		validator.New(),
	)

	s.team = &models.Team{Name: "Falcons", AccessCode: "FLCN42"}
	s.Require().NoError(s.store.Teams().Create(s.team))
}

func (s *InviteServiceTestSuite) TestCreateInvite() {
	resp, err := s.service.CreateInvite(&service.CreateInviteRequest{
		TeamID: s.team.ID,
		Email:  "new@test.com",
	})
	s.Require().NoError(err)
	s.Equal(models.InviteStatusPending, resp.Status)
	s.Equal("new@test.com", resp.Email)
}

func (s *InviteServiceTestSuite) TestCreateInviteNotifiesRegisteredUser() {
	user := &models.User{Email: "known@test.com", FirstName: "Ana", LastName: "Silva", Role: models.UserRolePlayer}
	s.Require().NoError(s.store.Users().Create(user))

	_, err := s.service.CreateInvite(&service.CreateInviteRequest{
		TeamID: s.team.ID,
		Email:  "known@test.com",
	})
	s.Require().NoError(err)

	notifications, total, err := s.store.Notifications().GetByUserID(user.ID, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(notifications, 1)
	s.Equal(models.NotificationKindInviteCreated, notifications[0].Kind)
	s.Contains(notifications[0].Message, "Falcons")
}

func (s *InviteServiceTestSuite) TestDuplicatePendingInviteRejected() {
	req := &service.CreateInviteRequest{TeamID: s.team.ID, Email: "new@test.com"}
	_, err := s.service.CreateInvite(req)
	s.Require().NoError(err)

	_, err = s.service.CreateInvite(req)
	s.Require().ErrorIs(err, apperrors.ErrInviteExists)
}

func (s *InviteServiceTestSuite) TestResolveInviteAccept() {
	created, err := s.service.CreateInvite(&service.CreateInviteRequest{TeamID: s.team.ID, Email: "new@test.com"})
	s.Require().NoError(err)

	resolved, err := s.service.ResolveInvite(created.ID, true)
	s.Require().NoError(err)
	s.Equal(models.InviteStatusAccepted, resolved.Status)

	// Resolving twice is rejected
	_, err = s.service.ResolveInvite(created.ID, false)
	s.Require().ErrorIs(err, apperrors.ErrInviteAlreadyResolved)
}

func (s *InviteServiceTestSuite) TestResolveInviteDecline() {
	created, err := s.service.CreateInvite(&service.CreateInviteRequest{TeamID: s.team.ID, Email: "new@test.com"})
	s.Require().NoError(err)

	resolved, err := s.service.ResolveInvite(created.ID, false)
	s.Require().NoError(err)
	s.Equal(models.InviteStatusDeclined, resolved.Status)
}

func (s *InviteServiceTestSuite) TestCreateInviteTeamNotFound() {
	_, err := s.service.CreateInvite(&service.CreateInviteRequest{TeamID: uuid.New(), Email: "new@test.com"})
	s.Require().ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (s *InviteServiceTestSuite) TestDeleteInvite() {
	created, err := s.service.CreateInvite(&service.CreateInviteRequest{TeamID: s.team.ID, Email: "new@test.com"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteInvite(created.ID))

	err = s.service.DeleteInvite(created.ID)
	s.Require().ErrorIs(err, apperrors.ErrInviteNotFound)
}

func TestInviteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InviteServiceTestSuite))
}
