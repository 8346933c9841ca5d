package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockTeamService   *mocks.MockTeamServiceInterface
	mockRosterService *mocks.MockRosterServiceInterface
	handler           *handlers.TeamHandler
	httpSuite         *testutils.HTTPTestSuite
	userID            uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockRosterService = mocks.NewMockRosterServiceInterface(suite.ctrl)

	suite.handler = handlers.NewTeamHandler(suite.mockTeamService, suite.mockRosterService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	// Stand-in for the auth middleware: routes under test see a fixed identity
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Next()
	})

	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.POST("/join", suite.handler.JoinTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/access-code", suite.handler.RotateAccessCode)
		teams.GET("/:id/roster", suite.handler.GetRoster)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"name":  "Falcons",
			"sport": "soccer",
		}

		expectedResponse := &service.TeamResponse{
			ID:         teamID,
			Name:       "Falcons",
			Sport:      "soccer",
			AccessCode: "FLCN42",
		}

		suite.mockTeamService.EXPECT().
			CreateTeam(gomock.Any(), suite.userID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.Equal(t, expectedResponse.AccessCode, response.AccessCode)
	})

	suite.T().Run("Player Role Rejected", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name": "Falcons",
		}

		suite.mockTeamService.EXPECT().
			CreateTeam(gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrCoachOnlyOperation).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/teams")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		expectedResponse := &service.TeamResponse{
			ID:         teamID,
			Name:       "Falcons",
			AccessCode: "FLCN42",
		}

		suite.mockTeamService.EXPECT().
			GetTeamByID(teamID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/invalid-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockTeamService.EXPECT().
			GetTeamByID(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedTeams := []service.TeamResponse{
			{ID: uuid.New(), Name: "Falcons", AccessCode: "FLCN42"},
			{ID: uuid.New(), Name: "Eagles", AccessCode: "EGLS77"},
		}

		suite.mockTeamService.EXPECT().
			GetTeamsByUser(suite.userID).
			Return(expectedTeams, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})
}

// TestJoinTeam tests the JoinTeam handler
func (suite *TeamHandlerTestSuite) TestJoinTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"access_code": "FLCN42",
			"nickname":    "Flash",
			"jersey":      "11",
		}

		suite.mockRosterService.EXPECT().
			JoinTeam(gomock.Any(), suite.userID).
			Return(&service.TeamResponse{ID: teamID, Name: "Falcons", AccessCode: "FLCN42"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Access Code", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"access_code": "WRONG1",
		}

		suite.mockRosterService.EXPECT().
			JoinTeam(gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrInvalidAccessCode).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Already Enrolled", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"access_code": "FLCN42",
		}

		suite.mockRosterService.EXPECT().
			JoinTeam(gomock.Any(), suite.userID).
			Return(nil, apperrors.ErrPlayerAlreadyEnrolled).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/join", requestBody)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRotateAccessCode tests the RotateAccessCode handler
func (suite *TeamHandlerTestSuite) TestRotateAccessCode() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockTeamService.EXPECT().
			RotateAccessCode(teamID).
			Return(&service.TeamResponse{ID: teamID, Name: "Falcons", AccessCode: "NEWC0D"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/teams/%s/access-code", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "NEWC0D", response.AccessCode)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockRosterService.EXPECT().
			DeleteTeam(teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockRosterService.EXPECT().
			DeleteTeam(teamID).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
