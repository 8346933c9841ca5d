//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-feedback-backend/internal/database/models"
	"team-feedback-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FullGameRecordingRepositoryTestSuite tests the FullGameRecordingRepository
type FullGameRecordingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FullGameRecordingRepository
	factories     *testutils.FactorySet

	game *models.Game
}

// SetupSuite runs before all tests in the suite
func (suite *FullGameRecordingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewFullGameRecordingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *FullGameRecordingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *FullGameRecordingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	suite.game = suite.factories.Game.Create(team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.game).Error)
}

// TearDownTest runs after each test
func (suite *FullGameRecordingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByGameID tests the game to recording link
func (suite *FullGameRecordingRepositoryTestSuite) TestCreateAndGetByGameID() {
	recording := suite.factories.Recording.Create(suite.game.ID)
	suite.NoError(suite.repo.Create(recording))

	found, err := suite.repo.GetByGameID(suite.game.ID)
	suite.NoError(err)
	suite.Equal(recording.ID, found.ID)
	suite.NotNil(found.FileURL)
}

// TestOneRecordingPerGame tests the unique index on game_id
func (suite *FullGameRecordingRepositoryTestSuite) TestOneRecordingPerGame() {
	suite.NoError(suite.repo.Create(suite.factories.Recording.Create(suite.game.ID)))

	err := suite.repo.Create(suite.factories.Recording.Pending(suite.game.ID))
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestUpdateSetsFileURL tests finishing an upload
func (suite *FullGameRecordingRepositoryTestSuite) TestUpdateSetsFileURL() {
	recording := suite.factories.Recording.Pending(suite.game.ID)
	suite.NoError(suite.repo.Create(recording))

	url := "https://cdn.test.com/full.mp4"
	recording.FileURL = &url
	suite.NoError(suite.repo.Update(recording))

	found, err := suite.repo.GetByGameID(suite.game.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.FileURL)
	suite.Equal(url, *found.FileURL)
}

// TestDeleteByGameID tests removing the recording with its game
func (suite *FullGameRecordingRepositoryTestSuite) TestDeleteByGameID() {
	suite.NoError(suite.repo.Create(suite.factories.Recording.Create(suite.game.ID)))

	suite.NoError(suite.repo.DeleteByGameID(suite.game.ID))

	_, err := suite.repo.GetByGameID(suite.game.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestFullGameRecordingRepositoryTestSuite runs the test suite
func TestFullGameRecordingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FullGameRecordingRepositoryTestSuite))
}
