package handlers

import (
	"net/http"

	"team-feedback-backend/internal/auth"
	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommentHandler handles HTTP requests for key moment comments
type CommentHandler struct {
	commentService service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment attaches a comment to a key moment
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body service.CreateCommentRequest true "Comment data"
// @Success 201 {object} service.CommentResponse "Successfully created comment"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Key moment not found"
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetCommentsByKeyMoment lists the comments on a key moment
// @Summary List comments by key moment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Key moment ID (UUID)"
// @Success 200 {array} service.CommentResponse "Successfully retrieved comments"
// @Failure 404 {object} ErrorResponse "Key moment not found"
// @Security BearerAuth
// @Router /key-moments/{id}/comments [get]
func (h *CommentHandler) GetCommentsByKeyMoment(c *gin.Context) {
	keyMomentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid key moment ID"})
		return
	}

	comments, err := h.commentService.GetCommentsByKeyMoment(keyMomentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment
// @Summary Delete comment
// @Description Only the comment's author can delete it
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 204 "Comment deleted"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid comment ID"})
		return
	}

	if err := h.commentService.DeleteComment(id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
