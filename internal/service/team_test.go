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

// TeamServiceTestSuite exercises team management over the in-memory store
type TeamServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.TeamService
	coach   *models.User
}

func (s *TeamServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewTeamService(s.store.Teams(), s.store.Users(), s.store.Players(), validator.New())

	s.coach = &models.User{Email: "coach@test.com", FirstName: "Casey", LastName: "Hale", Role: models.UserRoleCoach}
	s.Require().NoError(s.store.Users().Create(s.coach))
}

func (s *TeamServiceTestSuite) TestCreateTeamGeneratesAccessCode() {
	resp, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons", Sport: "soccer"}, s.coach.ID)
	s.Require().NoError(err)
	s.Equal("Falcons", resp.Name)
	s.Len(resp.AccessCode, 6)
	for _, c := range resp.AccessCode {
		s.NotContains("0O1IL", string(c))
	}

	// Creating coach is linked to the team
	coachIDs, err := s.store.Teams().GetCoachIDs(resp.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{s.coach.ID}, coachIDs)
}

func (s *TeamServiceTestSuite) TestCreateTeamRejectsPlayer() {
	player := &models.User{Email: "p@test.com", FirstName: "Ana", LastName: "Silva", Role: models.UserRolePlayer}
	s.Require().NoError(s.store.Users().Create(player))

	_, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons"}, player.ID)
	s.Require().ErrorIs(err, apperrors.ErrCoachOnlyOperation)
}

func (s *TeamServiceTestSuite) TestRotateAccessCodeInvalidatesOldOne() {
	created, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons"}, s.coach.ID)
	s.Require().NoError(err)
	oldCode := created.AccessCode

	rotated, err := s.service.RotateAccessCode(created.ID)
	s.Require().NoError(err)
	s.NotEqual(oldCode, rotated.AccessCode)

	_, err = s.store.Teams().GetByAccessCode(oldCode)
	s.Require().Error(err)
	team, err := s.store.Teams().GetByAccessCode(rotated.AccessCode)
	s.Require().NoError(err)
	s.Equal(created.ID, team.ID)
}

func (s *TeamServiceTestSuite) TestGetTeamsByUserPerRole() {
	created, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons"}, s.coach.ID)
	s.Require().NoError(err)

	user := &models.User{Email: "ana@test.com", FirstName: "Ana", LastName: "Silva", Role: models.UserRolePlayer}
	s.Require().NoError(s.store.Users().Create(user))
	player := &models.Player{UserID: user.ID}
	s.Require().NoError(s.store.Players().Create(player))
	s.Require().NoError(s.store.Players().Enroll(&models.Enrollment{TeamID: created.ID, PlayerID: player.ID}))

	coachTeams, err := s.service.GetTeamsByUser(s.coach.ID)
	s.Require().NoError(err)
	s.Require().Len(coachTeams, 1)
	s.Equal(created.ID, coachTeams[0].ID)

	playerTeams, err := s.service.GetTeamsByUser(user.ID)
	s.Require().NoError(err)
	s.Require().Len(playerTeams, 1)
	s.Equal(created.ID, playerTeams[0].ID)
}

func (s *TeamServiceTestSuite) TestGetRoster() {
	created, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons"}, s.coach.ID)
	s.Require().NoError(err)

	user := &models.User{Email: "ana@test.com", FirstName: "Ana", LastName: "Silva", Role: models.UserRolePlayer}
	s.Require().NoError(s.store.Users().Create(user))
	player := &models.Player{UserID: user.ID}
	s.Require().NoError(s.store.Players().Create(player))
	s.Require().NoError(s.store.Players().Enroll(&models.Enrollment{TeamID: created.ID, PlayerID: player.ID, Nickname: "Ace", Jersey: "7"}))

	roster, err := s.service.GetRoster(created.ID)
	s.Require().NoError(err)
	s.Require().Len(roster, 1)
	s.Equal(player.ID, roster[0].PlayerID)
	s.Equal("Ana", roster[0].FirstName)
	s.Equal("Ace", roster[0].Nickname)
	s.Equal("7", roster[0].Jersey)
}

func (s *TeamServiceTestSuite) TestUpdateTeamPartial() {
	created, err := s.service.CreateTeam(&service.CreateTeamRequest{Name: "Falcons", Nickname: "Birds"}, s.coach.ID)
	s.Require().NoError(err)

	name := "Eagles"
	updated, err := s.service.UpdateTeam(created.ID, &service.UpdateTeamRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal("Eagles", updated.Name)
	s.Equal("Birds", updated.Nickname)
	s.Equal(created.AccessCode, updated.AccessCode)
}

func (s *TeamServiceTestSuite) TestGetTeamNotFound() {
	_, err := s.service.GetTeamByID(uuid.New())
	s.Require().ErrorIs(err, apperrors.ErrTeamNotFound)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
