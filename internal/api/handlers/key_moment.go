package handlers

import (
	"net/http"

	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyMomentHandler handles HTTP requests for key moments
type KeyMomentHandler struct {
	keyMomentService service.KeyMomentServiceInterface
}

// NewKeyMomentHandler creates a new key moment handler
func NewKeyMomentHandler(keyMomentService service.KeyMomentServiceInterface) *KeyMomentHandler {
	return &KeyMomentHandler{keyMomentService: keyMomentService}
}

// CreateKeyMoment creates a key moment within a game
// @Summary Create key moment
// @Description Create a key moment. Empty feedback_for addresses the whole current roster.
// @Tags key-moments
// @Accept json
// @Produce json
// @Param moment body service.CreateKeyMomentRequest true "Key moment data"
// @Success 201 {object} service.KeyMomentResponse "Successfully created key moment"
// @Failure 400 {object} ErrorResponse "Invalid frame range or request body"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /key-moments [post]
func (h *KeyMomentHandler) CreateKeyMoment(c *gin.Context) {
	var req service.CreateKeyMomentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	moment, err := h.keyMomentService.CreateKeyMoment(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, moment)
}

// GetKeyMoment retrieves a key moment by ID
// @Summary Get key moment by ID
// @Tags key-moments
// @Accept json
// @Produce json
// @Param id path string true "Key moment ID (UUID)"
// @Success 200 {object} service.KeyMomentResponse "Successfully retrieved key moment"
// @Failure 404 {object} ErrorResponse "Key moment not found"
// @Security BearerAuth
// @Router /key-moments/{id} [get]
func (h *KeyMomentHandler) GetKeyMoment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid key moment ID"})
		return
	}

	moment, err := h.keyMomentService.GetKeyMomentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moment)
}

// GetKeyMomentsByGame lists the key moments of a game
// @Summary List key moments by game
// @Tags key-moments
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {array} service.KeyMomentResponse "Successfully retrieved key moments"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/key-moments [get]
func (h *KeyMomentHandler) GetKeyMomentsByGame(c *gin.Context) {
	gameID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	moments, err := h.keyMomentService.GetKeyMomentsByGame(gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moments)
}

// DeleteKeyMoment removes a key moment with its transcript and audio clip
// @Summary Delete key moment
// @Tags key-moments
// @Accept json
// @Produce json
// @Param id path string true "Key moment ID (UUID)"
// @Success 204 "Key moment deleted"
// @Failure 404 {object} ErrorResponse "Key moment not found"
// @Security BearerAuth
// @Router /key-moments/{id} [delete]
func (h *KeyMomentHandler) DeleteKeyMoment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid key moment ID"})
		return
	}

	if err := h.keyMomentService.DeleteKeyMoment(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
