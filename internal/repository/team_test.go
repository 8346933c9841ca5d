//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-feedback-backend/internal/database/models"
	"team-feedback-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
	suite.NotZero(team.UpdatedAt)
}

// TestCreateDuplicateAccessCode tests that access codes are unique
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateAccessCode() {
	team1 := suite.factories.Team.WithAccessCode("DUPE42")
	err := suite.repo.Create(team1)
	suite.NoError(err)

	team2 := suite.factories.Team.WithAccessCode("DUPE42")
	err = suite.repo.Create(team2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByAccessCode tests looking a team up by its join code
func (suite *TeamRepositoryTestSuite) TestGetByAccessCode() {
	team := suite.factories.Team.WithAccessCode("JOINME")
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByAccessCode("JOINME")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByAccessCode("NOPE99")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByCoachID tests listing teams through the coach linking table
func (suite *TeamRepositoryTestSuite) TestGetByCoachID() {
	coach := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(coach).Error)

	team1 := suite.factories.Team.WithName("Falcons")
	team2 := suite.factories.Team.WithName("Eagles")
	suite.NoError(suite.repo.Create(team1))
	suite.NoError(suite.repo.Create(team2))
	suite.NoError(suite.repo.AddCoach(team1.ID, coach.ID))

	teams, err := suite.repo.GetByCoachID(coach.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(team1.ID, teams[0].ID)
}

// TestGetByPlayerID tests listing teams through the enrollments table
func (suite *TeamRepositoryTestSuite) TestGetByPlayerID() {
	user := suite.factories.User.WithRole(models.UserRolePlayer)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	player := suite.factories.Player.WithUser(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(player).Error)

	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))
	enrollment := suite.factories.Enrollment.Create(team.ID, player.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(enrollment).Error)

	teams, err := suite.repo.GetByPlayerID(player.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(team.ID, teams[0].ID)
}

// TestGetRosterSize tests counting enrollments per team
func (suite *TeamRepositoryTestSuite) TestGetRosterSize() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	size, err := suite.repo.GetRosterSize(team.ID)
	suite.NoError(err)
	suite.Equal(0, size)

	for i := 0; i < 3; i++ {
		user := suite.factories.User.WithRole(models.UserRolePlayer)
		suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
		player := suite.factories.Player.WithUser(user.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(player).Error)
		enrollment := suite.factories.Enrollment.Create(team.ID, player.ID)
		suite.NoError(suite.baseTestSuite.DB.Create(enrollment).Error)
	}

	size, err = suite.repo.GetRosterSize(team.ID)
	suite.NoError(err)
	suite.Equal(3, size)
}

// TestGetRosterSizeMissingTeam tests that a deleted team is reported as
// not found instead of an empty roster
func (suite *TeamRepositoryTestSuite) TestGetRosterSizeMissingTeam() {
	_, err := suite.repo.GetRosterSize(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAddAndRemoveCoach tests the coach linking table round trip
func (suite *TeamRepositoryTestSuite) TestAddAndRemoveCoach() {
	coach := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(coach).Error)
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.AddCoach(team.ID, coach.ID))

	ids, err := suite.repo.GetCoachIDs(team.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{coach.ID}, ids)

	suite.NoError(suite.repo.RemoveCoach(team.ID, coach.ID))

	ids, err = suite.repo.GetCoachIDs(team.ID)
	suite.NoError(err)
	suite.Empty(ids)
}

// TestUpdate tests updating a team
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.factories.Team.WithName("Falcons")
	suite.NoError(suite.repo.Create(team))

	team.Name = "Eagles"
	suite.NoError(suite.repo.Update(team))

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("Eagles", found.Name)
	suite.Equal(team.AccessCode, found.AccessCode)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
