package handlers

import (
	"net/http"

	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameHandler handles HTTP requests for games
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame creates a new game
// @Summary Create a new game
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.CreateGame(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// GetGame retrieves a game by ID
// @Summary Get game by ID
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 200 {object} service.GameResponse "Successfully retrieved game"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	game, err := h.gameService.GetGameByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// GetGamesByTeam lists the games of a team
// @Summary List games by team
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.GameResponse "Successfully retrieved games"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/games [get]
func (h *GameHandler) GetGamesByTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	games, err := h.gameService.GetGamesByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// UpdateGame updates a game's settings
// @Summary Update game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param game body service.UpdateGameRequest true "Game data"
// @Success 200 {object} service.GameResponse "Successfully updated game"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.gameService.UpdateGame(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame removes a game and its dependent data
// @Summary Delete game
// @Description Removes the game with its key moments, transcripts and recording
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Success 204 "Game deleted"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	if err := h.gameService.DeleteGame(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachRecording registers the full-game recording of a game
// @Summary Attach full-game recording
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID (UUID)"
// @Param recording body service.AttachRecordingRequest true "Recording data"
// @Success 200 {object} service.RecordingResponse "Recording registered"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Security BearerAuth
// @Router /games/{id}/recording [put]
func (h *GameHandler) AttachRecording(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid game ID"})
		return
	}

	var req service.AttachRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	recording, err := h.gameService.AttachRecording(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recording)
}
