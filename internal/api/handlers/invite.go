package handlers

import (
	"net/http"

	"team-feedback-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InviteHandler handles HTTP requests for team invites
type InviteHandler struct {
	inviteService service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// CreateInvite invites a player by email
// @Summary Create invite
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body service.CreateInviteRequest true "Invite data"
// @Success 201 {object} service.InviteResponse "Successfully created invite"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Invite already pending for this email"
// @Security BearerAuth
// @Router /invites [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	var req service.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invite, err := h.inviteService.CreateInvite(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// GetInvitesByTeam lists the invites of a team
// @Summary List invites by team
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.InviteResponse "Successfully retrieved invites"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/invites [get]
func (h *InviteHandler) GetInvitesByTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	invites, err := h.inviteService.GetInvitesByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invites)
}

// AcceptInvite accepts a pending invite
// @Summary Accept invite
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 200 {object} service.InviteResponse "Invite accepted"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 409 {object} ErrorResponse "Invite already resolved"
// @Security BearerAuth
// @Router /invites/{id}/accept [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	h.resolveInvite(c, true)
}

// DeclineInvite declines a pending invite
// @Summary Decline invite
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 200 {object} service.InviteResponse "Invite declined"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Failure 409 {object} ErrorResponse "Invite already resolved"
// @Security BearerAuth
// @Router /invites/{id}/decline [post]
func (h *InviteHandler) DeclineInvite(c *gin.Context) {
	h.resolveInvite(c, false)
}

func (h *InviteHandler) resolveInvite(c *gin.Context, accept bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid invite ID"})
		return
	}

	invite, err := h.inviteService.ResolveInvite(id, accept)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// DeleteInvite removes an invite
// @Summary Delete invite
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Invite ID (UUID)"
// @Success 204 "Invite deleted"
// @Failure 404 {object} ErrorResponse "Invite not found"
// @Security BearerAuth
// @Router /invites/{id} [delete]
func (h *InviteHandler) DeleteInvite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid invite ID"})
		return
	}

	if err := h.inviteService.DeleteInvite(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
