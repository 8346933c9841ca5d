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

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createPlayer persists a player-role user with a linked profile
func (suite *PlayerRepositoryTestSuite) createPlayer(first, last string) (*models.User, *models.Player) {
	user := suite.factories.User.WithRole(models.UserRolePlayer)
	user.FirstName = first
	user.LastName = last
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	player := suite.factories.Player.WithUser(user.ID)
	suite.NoError(suite.repo.Create(player))
	return user, player
}

// TestCreateAndGetByUserID tests the user to player profile link
func (suite *PlayerRepositoryTestSuite) TestCreateAndGetByUserID() {
	user, player := suite.createPlayer("Ana", "Silva")

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.Equal(player.ID, found.ID)

	_, err = suite.repo.GetByUserID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestEnrollAndIsEnrolled tests the membership round trip
func (suite *PlayerRepositoryTestSuite) TestEnrollAndIsEnrolled() {
	_, player := suite.createPlayer("Ana", "Silva")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	enrolled, err := suite.repo.IsEnrolled(player.ID, team.ID)
	suite.NoError(err)
	suite.False(enrolled)

	enrollment := suite.factories.Enrollment.Create(team.ID, player.ID)
	suite.NoError(suite.repo.Enroll(enrollment))

	enrolled, err = suite.repo.IsEnrolled(player.ID, team.ID)
	suite.NoError(err)
	suite.True(enrolled)
}

// TestEnrollDuplicateRejected tests the unique index on team and player
func (suite *PlayerRepositoryTestSuite) TestEnrollDuplicateRejected() {
	_, player := suite.createPlayer("Ana", "Silva")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	suite.NoError(suite.repo.Enroll(suite.factories.Enrollment.Create(team.ID, player.ID)))

	err := suite.repo.Enroll(suite.factories.Enrollment.Create(team.ID, player.ID))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestUpdateEnrollment tests changing nickname and jersey on a membership
func (suite *PlayerRepositoryTestSuite) TestUpdateEnrollment() {
	_, player := suite.createPlayer("Ana", "Silva")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	enrollment := suite.factories.Enrollment.Create(team.ID, player.ID)
	suite.NoError(suite.repo.Enroll(enrollment))

	enrollment.Nickname = "Ace"
	enrollment.Jersey = "7"
	suite.NoError(suite.repo.UpdateEnrollment(enrollment))

	found, err := suite.repo.GetEnrollment(player.ID, team.ID)
	suite.NoError(err)
	suite.Equal("Ace", found.Nickname)
	suite.Equal("7", found.Jersey)
}

// TestUnenroll tests removing a membership row
func (suite *PlayerRepositoryTestSuite) TestUnenroll() {
	_, player := suite.createPlayer("Ana", "Silva")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	suite.NoError(suite.repo.Enroll(suite.factories.Enrollment.Create(team.ID, player.ID)))
	suite.NoError(suite.repo.Unenroll(player.ID, team.ID))

	_, err := suite.repo.GetEnrollment(player.ID, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetFeedbackRow tests the three table recipient join
func (suite *PlayerRepositoryTestSuite) TestGetFeedbackRow() {
	user, player := suite.createPlayer("Ana", "Silva")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	enrollment := suite.factories.Enrollment.Create(team.ID, player.ID)
	enrollment.Nickname = "Ace"
	enrollment.Jersey = "7"
	suite.NoError(suite.repo.Enroll(enrollment))

	row, err := suite.repo.GetFeedbackRow(player.ID, team.ID)
	suite.NoError(err)
	suite.Equal(player.ID, row.PlayerID)
	suite.Equal(user.FirstName, row.FirstName)
	suite.Equal(user.LastName, row.LastName)
	suite.Equal("Ace", row.Nickname)
	suite.Equal("7", row.Jersey)
}

// TestGetFeedbackRowWithoutEnrollment tests that the enrollment join is
// optional so names still resolve for players off the team
func (suite *PlayerRepositoryTestSuite) TestGetFeedbackRowWithoutEnrollment() {
	user, player := suite.createPlayer("Ben", "Okoro")
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	row, err := suite.repo.GetFeedbackRow(player.ID, team.ID)
	suite.NoError(err)
	suite.Equal(user.FirstName, row.FirstName)
	suite.Empty(row.Nickname)
	suite.Empty(row.Jersey)
}

// TestGetFeedbackRowMissingPlayer tests the not found path of the join
func (suite *PlayerRepositoryTestSuite) TestGetFeedbackRowMissingPlayer() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	_, err := suite.repo.GetFeedbackRow(uuid.New(), team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetEnrollmentsByTeamID tests listing a team's memberships
func (suite *PlayerRepositoryTestSuite) TestGetEnrollmentsByTeamID() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	for _, first := range []string{"Ana", "Ben"} {
		_, player := suite.createPlayer(first, "Test")
		suite.NoError(suite.repo.Enroll(suite.factories.Enrollment.Create(team.ID, player.ID)))
	}

	enrollments, err := suite.repo.GetEnrollmentsByTeamID(team.ID)
	suite.NoError(err)
	suite.Len(enrollments, 2)
}

// TestPlayerRepositoryTestSuite runs the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
