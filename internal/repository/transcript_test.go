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

// TranscriptRepositoryTestSuite tests the TranscriptRepository
type TranscriptRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TranscriptRepository
	factories     *testutils.FactorySet

	game *models.Game
}

// SetupSuite runs before all tests in the suite
func (suite *TranscriptRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTranscriptRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TranscriptRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TranscriptRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	suite.game = suite.factories.Game.Create(team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.game).Error)
}

// TearDownTest runs after each test
func (suite *TranscriptRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTranscript persists a moment with an attached transcript
func (suite *TranscriptRepositoryTestSuite) createTranscript(text string) (*models.KeyMoment, *models.Transcript) {
	moment := suite.factories.KeyMoment.Create(suite.game.ID, 0, 10)
	suite.NoError(suite.baseTestSuite.DB.Create(moment).Error)

	transcript := suite.factories.Transcript.Create(moment.ID, suite.game.ID, text)
	suite.NoError(suite.repo.Create(transcript))
	return moment, transcript
}

// TestGetByKeyMomentID tests the moment to transcript link
func (suite *TranscriptRepositoryTestSuite) TestGetByKeyMomentID() {
	moment, transcript := suite.createTranscript("press higher")

	found, err := suite.repo.GetByKeyMomentID(moment.ID)
	suite.NoError(err)
	suite.Equal(transcript.ID, found.ID)
	suite.Equal("press higher", found.Text)
}

// TestGetPreviewByGameID tests that previews are bounded and oldest first
func (suite *TranscriptRepositoryTestSuite) TestGetPreviewByGameID() {
	for _, text := range []string{"one", "two", "three", "four", "five"} {
		suite.createTranscript(text)
	}

	preview, err := suite.repo.GetPreviewByGameID(suite.game.ID, 3)
	suite.NoError(err)
	suite.Len(preview, 3)
}

// TestDeleteByKeyMomentID tests removing the transcript with its moment
func (suite *TranscriptRepositoryTestSuite) TestDeleteByKeyMomentID() {
	moment, transcript := suite.createTranscript("gone")

	suite.NoError(suite.repo.DeleteByKeyMomentID(moment.ID))

	_, err := suite.repo.GetByID(transcript.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteByGameID tests bulk deletion per game
func (suite *TranscriptRepositoryTestSuite) TestDeleteByGameID() {
	_, transcript := suite.createTranscript("gone")

	suite.NoError(suite.repo.DeleteByGameID(suite.game.ID))

	_, err := suite.repo.GetByID(transcript.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTranscriptRepositoryTestSuite runs the test suite
func TestTranscriptRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TranscriptRepositoryTestSuite))
}
