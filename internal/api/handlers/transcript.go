package handlers

import (
	"net/http"

	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TranscriptHandler handles HTTP requests for transcripts
type TranscriptHandler struct {
	transcriptService service.TranscriptServiceInterface
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(transcriptService service.TranscriptServiceInterface) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// CreateTranscript attaches a transcript to a key moment
// @Summary Create transcript
// @Tags transcripts
// @Accept json
// @Produce json
// @Param transcript body service.CreateTranscriptRequest true "Transcript data"
// @Success 201 {object} service.TranscriptResponse "Successfully created transcript"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Key moment not found"
// @Security BearerAuth
// @Router /transcripts [post]
func (h *TranscriptHandler) CreateTranscript(c *gin.Context) {
	var req service.CreateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	transcript, err := h.transcriptService.CreateTranscript(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transcript)
}

// GetTranscript retrieves a transcript by ID
// @Summary Get transcript by ID
// @Tags transcripts
// @Accept json
// @Produce json
// @Param id path string true "Transcript ID (UUID)"
// @Success 200 {object} service.TranscriptResponse "Successfully retrieved transcript"
// @Failure 404 {object} ErrorResponse "Transcript not found"
// @Security BearerAuth
// @Router /transcripts/{id} [get]
func (h *TranscriptHandler) GetTranscript(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transcript ID"})
		return
	}

	transcript, err := h.transcriptService.GetTranscriptByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// UpdateTranscript edits a transcript's text
// @Summary Update transcript
// @Tags transcripts
// @Accept json
// @Produce json
// @Param id path string true "Transcript ID (UUID)"
// @Param transcript body service.UpdateTranscriptRequest true "Transcript data"
// @Success 200 {object} service.TranscriptResponse "Successfully updated transcript"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Transcript not found"
// @Security BearerAuth
// @Router /transcripts/{id} [put]
func (h *TranscriptHandler) UpdateTranscript(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transcript ID"})
		return
	}

	var req service.UpdateTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	transcript, err := h.transcriptService.UpdateTranscript(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// DeleteTranscript removes a transcript
// @Summary Delete transcript
// @Tags transcripts
// @Accept json
// @Produce json
// @Param id path string true "Transcript ID (UUID)"
// @Success 204 "Transcript deleted"
// @Failure 404 {object} ErrorResponse "Transcript not found"
// @Security BearerAuth
// @Router /transcripts/{id} [delete]
func (h *TranscriptHandler) DeleteTranscript(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid transcript ID"})
		return
	}

	if err := h.transcriptService.DeleteTranscript(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
