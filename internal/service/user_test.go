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

// UserServiceTestSuite exercises account registration over the in-memory store
type UserServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service *service.UserService
}

func (s *UserServiceTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.service = service.NewUserService(s.store.Users(), s.store.Players(), validator.New())
}

func (s *UserServiceTestSuite) TestCreateCoach() {
	resp, err := s.service.CreateUser(&service.CreateUserRequest{
		Email:     "coach@test.com",
		FirstName: "Casey",
		LastName:  "Hale",
		Role:      models.UserRoleCoach,
	})
	s.Require().NoError(err)
	s.Equal(models.UserRoleCoach, resp.Role)
	s.Nil(resp.PlayerID)
}

func (s *UserServiceTestSuite) TestCreatePlayerCreatesProfile() {
	resp, err := s.service.CreateUser(&service.CreateUserRequest{
		Email:     "ana@test.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Role:      models.UserRolePlayer,
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.PlayerID)

	player, err := s.store.Players().GetByUserID(resp.ID)
	s.Require().NoError(err)
	s.Equal(*resp.PlayerID, player.ID)
}

func (s *UserServiceTestSuite) TestCreateDuplicateEmail() {
	req := &service.CreateUserRequest{
		Email:     "dup@test.com",
		FirstName: "A",
		LastName:  "B",
		Role:      models.UserRoleCoach,
	}
	_, err := s.service.CreateUser(req)
	s.Require().NoError(err)

	_, err = s.service.CreateUser(req)
	s.Require().ErrorIs(err, apperrors.ErrUserExists)
}

func (s *UserServiceTestSuite) TestCreateRejectsUnknownRole() {
	_, err := s.service.CreateUser(&service.CreateUserRequest{
		Email:     "x@test.com",
		FirstName: "X",
		LastName:  "Y",
		Role:      models.UserRole("admin"),
	})
	s.Require().Error(err)
}

func (s *UserServiceTestSuite) TestUpdateUser() {
	created, err := s.service.CreateUser(&service.CreateUserRequest{
		Email:     "ana@test.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Role:      models.UserRolePlayer,
	})
	s.Require().NoError(err)

	last := "Souza"
	updated, err := s.service.UpdateUser(created.ID, &service.UpdateUserRequest{LastName: &last})
	s.Require().NoError(err)
	s.Equal("Ana", updated.FirstName)
	s.Equal("Souza", updated.LastName)
	s.Require().NotNil(updated.PlayerID)
	s.Equal(*created.PlayerID, *updated.PlayerID)
}

func (s *UserServiceTestSuite) TestGetUserNotFound() {
	_, err := s.service.GetUserByID(uuid.New())
	s.Require().ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
