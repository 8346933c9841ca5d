package handlers

import (
	"net/http"

	"team-feedback-backend/internal/auth"
	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles HTTP requests for the feedback aggregation views
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// GetGameFeedback lists the transcript records of a game visible to the
// authenticated user
// @Summary Get game feedback
// @Description Transcript + key moment records visible to the caller, sorted chronologically. Players see only their own feedback.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {array} service.TranscriptRecord "Visible records"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/feedback [get]
func (h *FeedbackHandler) GetGameFeedback(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	records, err := h.feedbackService.GetGameFeedback(gameID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetGameFeedbackWithFullGame lists visible records plus the subset shown
// inside the full-game recording
// @Summary Get game feedback with full-game markers
// @Description All visible records plus the subset eligible as markers inside the full-game recording
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameFeedbackResponse "Partitioned records"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/feedback/full-game [get]
func (h *FeedbackHandler) GetGameFeedbackWithFullGame(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.feedbackService.GetGameFeedbackWithFullGame(gameID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetGameFeedbackPreview returns the first few records for summary screens
// @Summary Get game feedback preview
// @Description Bounded to the first three transcripts of the game
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameFeedbackResponse "Preview records"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/feedback/preview [get]
func (h *FeedbackHandler) GetGameFeedbackPreview(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.feedbackService.GetGameFeedbackPreview(gameID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
