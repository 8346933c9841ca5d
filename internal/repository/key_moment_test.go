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

// KeyMomentRepositoryTestSuite tests the KeyMomentRepository
type KeyMomentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *KeyMomentRepository
	factories     *testutils.FactorySet

	team *models.Team
	game *models.Game
}

// SetupSuite runs before all tests in the suite
func (suite *KeyMomentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewKeyMomentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *KeyMomentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *KeyMomentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.team).Error)
	suite.game = suite.factories.Game.Create(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.game).Error)
}

// TearDownTest runs after each test
func (suite *KeyMomentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests the recipient list survives a round trip through
// its jsonb column
func (suite *KeyMomentRepositoryTestSuite) TestCreateAndGet() {
	recipients := []uuid.UUID{uuid.New(), uuid.New()}
	moment := suite.factories.KeyMoment.Create(suite.game.ID, 12.5, 30, recipients...)

	suite.NoError(suite.repo.Create(moment))

	found, err := suite.repo.GetByID(moment.ID)
	suite.NoError(err)
	suite.Equal(12.5, found.FrameStart)
	suite.Equal(models.UUIDList(recipients), found.FeedbackFor)
}

// TestGetByGameID tests listing moments per game
func (suite *KeyMomentRepositoryTestSuite) TestGetByGameID() {
	otherGame := suite.factories.Game.Create(suite.team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(otherGame).Error)

	suite.NoError(suite.repo.Create(suite.factories.KeyMoment.Create(suite.game.ID, 0, 10)))
	suite.NoError(suite.repo.Create(suite.factories.KeyMoment.Create(suite.game.ID, 20, 30)))
	suite.NoError(suite.repo.Create(suite.factories.KeyMoment.Create(otherGame.ID, 0, 10)))

	moments, err := suite.repo.GetByGameID(suite.game.ID)
	suite.NoError(err)
	suite.Len(moments, 2)
}

// TestAssignPlayerToFullTeamMoments tests that a joining player is appended
// to whole-roster moments while targeted ones stay untouched
func (suite *KeyMomentRepositoryTestSuite) TestAssignPlayerToFullTeamMoments() {
	existing := []uuid.UUID{uuid.New(), uuid.New()}
	wholeTeam := suite.factories.KeyMoment.Create(suite.game.ID, 10, 20, existing...)
	targeted := suite.factories.KeyMoment.Create(suite.game.ID, 30, 40, existing[0])
	suite.NoError(suite.repo.Create(wholeTeam))
	suite.NoError(suite.repo.Create(targeted))

	joiner := uuid.New()
	suite.NoError(suite.repo.AssignPlayerToFullTeamMoments(suite.game.ID, len(existing), joiner))

	found, err := suite.repo.GetByID(wholeTeam.ID)
	suite.NoError(err)
	suite.Len(found.FeedbackFor, 3)
	suite.True(found.FeedbackFor.Contains(joiner))

	found, err = suite.repo.GetByID(targeted.ID)
	suite.NoError(err)
	suite.Len(found.FeedbackFor, 1)
	suite.False(found.FeedbackFor.Contains(joiner))
}

// TestAssignPlayerIsIdempotent tests that reapplying the fix-up does not
// duplicate the player in a recipient list
func (suite *KeyMomentRepositoryTestSuite) TestAssignPlayerIsIdempotent() {
	existing := []uuid.UUID{uuid.New(), uuid.New()}
	moment := suite.factories.KeyMoment.Create(suite.game.ID, 10, 20, existing...)
	suite.NoError(suite.repo.Create(moment))

	joiner := uuid.New()
	suite.NoError(suite.repo.AssignPlayerToFullTeamMoments(suite.game.ID, len(existing), joiner))
	// A second pass with the stale roster size finds the player already present
	suite.NoError(suite.repo.AssignPlayerToFullTeamMoments(suite.game.ID, len(existing), joiner))

	found, err := suite.repo.GetByID(moment.ID)
	suite.NoError(err)
	suite.Len(found.FeedbackFor, 3)
}

// TestDeleteByGameID tests bulk deletion per game
func (suite *KeyMomentRepositoryTestSuite) TestDeleteByGameID() {
	moment := suite.factories.KeyMoment.Create(suite.game.ID, 0, 10)
	suite.NoError(suite.repo.Create(moment))

	suite.NoError(suite.repo.DeleteByGameID(suite.game.ID))

	_, err := suite.repo.GetByID(moment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestKeyMomentRepositoryTestSuite runs the test suite
func TestKeyMomentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KeyMomentRepositoryTestSuite))
}
