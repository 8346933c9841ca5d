package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-feedback-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser(role models.UserRole) *models.User {
	user := &models.User{
		Email:     "ana@test.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Role:      role,
	}
	user.ID = uuid.New()
	return user
}

func TestTokenRoundTrip(t *testing.T) {
	service := NewAuthService("test-signing-key", time.Hour)
	user := testUser(models.UserRolePlayer)

	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.UserRolePlayer, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := NewAuthService("test-signing-key", time.Hour)
	other := NewAuthService("different-key", time.Hour)

	token, err := service.GenerateToken(testUser(models.UserRoleCoach))
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewAuthService("test-signing-key", -time.Minute)

	token, err := service.GenerateToken(testUser(models.UserRoleCoach))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	service := NewAuthService("test-signing-key", time.Hour)

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestRequireAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewAuthService("test-signing-key", time.Hour)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("valid token", func(t *testing.T) {
		user := testUser(models.UserRolePlayer)
		token, err := service.GenerateToken(user)
		require.NoError(t, err)

		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), user.ID.String())
	})

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer invalid")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireCoachMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewAuthService("test-signing-key", time.Hour)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.POST("/coach-only", middleware.RequireAuth(), middleware.RequireCoach(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	makeRequest := func(role models.UserRole) *httptest.ResponseRecorder {
		token, err := service.GenerateToken(testUser(role))
		require.NoError(t, err)

		req, _ := http.NewRequest("POST", "/coach-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("coach allowed", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, makeRequest(models.UserRoleCoach).Code)
	})

	t.Run("player forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, makeRequest(models.UserRolePlayer).Code)
	})
}
