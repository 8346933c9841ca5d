package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"team-feedback-backend/internal/api/handlers"
	apperrors "team-feedback-backend/internal/errors"
	"team-feedback-backend/internal/mocks"
	"team-feedback-backend/internal/service"
	"team-feedback-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FeedbackHandlerTestSuite defines the test suite for FeedbackHandler
type FeedbackHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockFeedbackServiceInterface
	handler     *handlers.FeedbackHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *FeedbackHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFeedbackServiceInterface(suite.ctrl)

	suite.handler = handlers.NewFeedbackHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Stand-in for the auth middleware: routes under test see a fixed identity
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	games := v1.Group("/games")
	{
		games.GET("/:id/feedback", suite.handler.GetGameFeedback)
		games.GET("/:id/feedback/full-game", suite.handler.GetGameFeedbackWithFullGame)
		games.GET("/:id/feedback/preview", suite.handler.GetGameFeedbackPreview)
	}
}

// TearDownTest cleans up after each test
func (suite *FeedbackHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetGameFeedback tests the GetGameFeedback handler
func (suite *FeedbackHandlerTestSuite) TestGetGameFeedback() {
	suite.T().Run("Success", func(t *testing.T) {
		gameID := uuid.New()
		playerID := uuid.New()

		expectedRecords := []service.TranscriptRecord{
			{
				LocalID:      0,
				KeyMomentID:  uuid.New(),
				TranscriptID: uuid.New(),
				Text:         "great save",
				FrameStart:   10,
				FrameEnd:     20,
				FeedbackFor: []service.FeedbackRecipient{
					{PlayerID: playerID, FirstName: "Ana", LastName: "Silva", Nickname: "Ace", Jersey: "7"},
				},
			},
			{
				LocalID:      1,
				KeyMomentID:  uuid.New(),
				TranscriptID: uuid.New(),
				Text:         "press higher",
				FrameStart:   30,
				FrameEnd:     45,
				FeedbackFor:  []service.FeedbackRecipient{},
			},
		}

		suite.mockService.EXPECT().
			GetGameFeedback(gameID, suite.userID).
			Return(expectedRecords, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback", gameID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.TranscriptRecord
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "great save", response[0].Text)
		assert.Equal(t, 0, response[0].LocalID)
		assert.Equal(t, "Ace", response[0].FeedbackFor[0].Nickname)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/games/not-a-uuid/feedback", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid game ID")
	})

	suite.T().Run("Game Not Found", func(t *testing.T) {
		gameID := uuid.New()

		suite.mockService.EXPECT().
			GetGameFeedback(gameID, suite.userID).
			Return(nil, apperrors.ErrGameNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback", gameID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Unknown Role", func(t *testing.T) {
		gameID := uuid.New()

		suite.mockService.EXPECT().
			GetGameFeedback(gameID, suite.userID).
			Return(nil, apperrors.ErrUnknownRole).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback", gameID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestGetGameFeedbackWithFullGame tests the partitioned feedback handler
func (suite *FeedbackHandlerTestSuite) TestGetGameFeedbackWithFullGame() {
	suite.T().Run("Success", func(t *testing.T) {
		gameID := uuid.New()
		record := service.TranscriptRecord{
			LocalID:      0,
			KeyMomentID:  uuid.New(),
			TranscriptID: uuid.New(),
			Text:         "great save",
			FeedbackFor:  []service.FeedbackRecipient{},
		}

		expectedResponse := &service.GameFeedbackResponse{
			Records:         []service.TranscriptRecord{record},
			FullGameRecords: []service.TranscriptRecord{record},
		}

		suite.mockService.EXPECT().
			GetGameFeedbackWithFullGame(gameID, suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback/full-game", gameID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.GameFeedbackResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Records, 1)
		assert.Len(t, response.FullGameRecords, 1)
	})

	suite.T().Run("Empty Lists Stay Arrays", func(t *testing.T) {
		gameID := uuid.New()

		suite.mockService.EXPECT().
			GetGameFeedbackWithFullGame(gameID, suite.userID).
			Return(&service.GameFeedbackResponse{
				Records:         []service.TranscriptRecord{},
				FullGameRecords: []service.TranscriptRecord{},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback/full-game", gameID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"records":[]`)
		assert.Contains(t, recorder.Body.String(), `"full_game_records":[]`)
	})
}

// TestGetGameFeedbackPreview tests the preview handler
func (suite *FeedbackHandlerTestSuite) TestGetGameFeedbackPreview() {
	suite.T().Run("Success", func(t *testing.T) {
		gameID := uuid.New()

		suite.mockService.EXPECT().
			GetGameFeedbackPreview(gameID, suite.userID).
			Return(&service.GameFeedbackResponse{
				Records:         make([]service.TranscriptRecord, 3),
				FullGameRecords: []service.TranscriptRecord{},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/games/%s/feedback/preview", gameID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.GameFeedbackResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Records, 3)
	})
}

// TestFeedbackHandlerTestSuite runs the test suite
func TestFeedbackHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackHandlerTestSuite))
}
