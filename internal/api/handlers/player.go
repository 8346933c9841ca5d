package handlers

import (
	"net/http"

	"team-feedback-backend/internal/auth"
	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlayerHandler handles HTTP requests for player profiles
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// GetPlayer retrieves a player profile by ID
// @Summary Get player by ID
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid player ID"})
		return
	}

	player, err := h.playerService.GetPlayerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// GetCurrentPlayer retrieves the authenticated user's player profile
// @Summary Get current player
// @Tags players
// @Accept json
// @Produce json
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Security BearerAuth
// @Router /players/me [get]
func (h *PlayerHandler) GetCurrentPlayer(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	player, err := h.playerService.GetPlayerByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// UpdateEnrollment updates a player's nickname or jersey on one team
// @Summary Update per-team player info
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param team_id path string true "Team ID (UUID)"
// @Param enrollment body service.UpdateEnrollmentRequest true "Enrollment data"
// @Success 204 "Enrollment updated"
// @Failure 404 {object} ErrorResponse "Enrollment not found"
// @Security BearerAuth
// @Router /players/{id}/teams/{team_id} [patch]
func (h *PlayerHandler) UpdateEnrollment(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid player ID"})
		return
	}
	teamID, err := uuid.Parse(c.Param("team_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	var req service.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.playerService.UpdateEnrollment(playerID, teamID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
