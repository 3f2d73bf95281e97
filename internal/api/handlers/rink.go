package handlers

import (
	"net/http"

	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RinkHandler handles HTTP requests for rinks and their rosters
type RinkHandler struct {
	rinkService service.RinkServiceInterface
}

// NewRinkHandler creates a new rink handler
func NewRinkHandler(rinkService service.RinkServiceInterface) *RinkHandler {
	return &RinkHandler{
		rinkService: rinkService,
	}
}

// CreateRink creates a new rink
// @Summary Create a new rink
// @Description Create a rink, optionally for a match and with up to 4 players. A match can have at most one rink.
// @Tags rinks
// @Accept json
// @Produce json
// @Param rink body service.CreateRinkRequest true "Rink data"
// @Success 201 {object} service.RinkResponse "Successfully created rink"
// @Failure 400 {object} ErrorResponse "Invalid request or more than 4 players"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 409 {object} ErrorResponse "Match already has a rink"
// @Security BearerAuth
// @Router /rinks [post]
func (h *RinkHandler) CreateRink(c *gin.Context) {
	var req service.CreateRinkRequest
	if !bindJSON(c, &req) {
		return
	}

	rink, err := h.rinkService.CreateRink(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rink)
}

// GetRink retrieves a rink by ID
// @Summary Get rink by ID
// @Tags rinks
// @Produce json
// @Param id path string true "Rink ID (UUID)"
// @Success 200 {object} service.RinkResponse "Successfully retrieved rink"
// @Failure 400 {object} ErrorResponse "Invalid rink ID"
// @Failure 404 {object} ErrorResponse "Rink not found"
// @Security BearerAuth
// @Router /rinks/{id} [get]
func (h *RinkHandler) GetRink(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}

	rink, err := h.rinkService.GetRinkByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rink)
}

// ListRinks lists all rinks
// @Summary List rinks
// @Tags rinks
// @Produce json
// @Success 200 {array} service.RinkResponse "Successfully retrieved rinks"
// @Security BearerAuth
// @Router /rinks [get]
func (h *RinkHandler) ListRinks(c *gin.Context) {
	rinks, err := h.rinkService.ListRinks()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rinks)
}

// UpdateRink changes a rink's number or match
// @Summary Update rink
// @Tags rinks
// @Accept json
// @Produce json
// @Param id path string true "Rink ID (UUID)"
// @Param rink body service.UpdateRinkRequest true "Fields to change"
// @Success 200 {object} service.RinkResponse "Successfully updated rink"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Rink or match not found"
// @Failure 409 {object} ErrorResponse "Match already has a rink"
// @Security BearerAuth
// @Router /rinks/{id} [put]
func (h *RinkHandler) UpdateRink(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}

	var req service.UpdateRinkRequest
	if !bindJSON(c, &req) {
		return
	}

	rink, err := h.rinkService.UpdateRink(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rink)
}

// SetPlayers replaces a rink's roster
// @Summary Set rink players
// @Description Replace the roster. More than 4 players is rejected and the roster is left unchanged.
// @Tags rinks
// @Accept json
// @Produce json
// @Param id path string true "Rink ID (UUID)"
// @Param players body service.SetPlayersRequest true "Member IDs"
// @Success 200 {object} service.RinkResponse "Successfully updated roster"
// @Failure 400 {object} ErrorResponse "More than 4 players or unknown member"
// @Failure 404 {object} ErrorResponse "Rink not found"
// @Security BearerAuth
// @Router /rinks/{id}/players [put]
func (h *RinkHandler) SetPlayers(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}

	var req service.SetPlayersRequest
	if !bindJSON(c, &req) {
		return
	}

	rink, err := h.rinkService.SetPlayers(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rink)
}

// AddPlayer puts a member on a rink
// @Summary Add rink player
// @Tags rinks
// @Accept json
// @Produce json
// @Param id path string true "Rink ID (UUID)"
// @Param player body service.AddPlayerRequest true "Member to add"
// @Success 200 {object} service.RinkResponse "Successfully added player"
// @Failure 400 {object} ErrorResponse "Rink already has 4 players or unknown member"
// @Failure 404 {object} ErrorResponse "Rink not found"
// @Security BearerAuth
// @Router /rinks/{id}/players [post]
func (h *RinkHandler) AddPlayer(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}

	var req service.AddPlayerRequest
	if !bindJSON(c, &req) {
		return
	}

	rink, err := h.rinkService.AddPlayer(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rink)
}

// RemovePlayer takes a member off a rink
// @Summary Remove rink player
// @Tags rinks
// @Produce json
// @Param id path string true "Rink ID (UUID)"
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} service.RinkResponse "Successfully removed player"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Rink not found or member not on rink"
// @Security BearerAuth
// @Router /rinks/{id}/players/{memberId} [delete]
func (h *RinkHandler) RemovePlayer(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberId", "member")
	if !ok {
		return
	}

	rink, err := h.rinkService.RemovePlayer(id, memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rink)
}

// DeleteRink deletes a rink
// @Summary Delete rink
// @Tags rinks
// @Param id path string true "Rink ID (UUID)"
// @Success 204 "Successfully deleted rink"
// @Failure 400 {object} ErrorResponse "Invalid rink ID"
// @Failure 404 {object} ErrorResponse "Rink not found"
// @Security BearerAuth
// @Router /rinks/{id} [delete]
func (h *RinkHandler) DeleteRink(c *gin.Context) {
	id, ok := parseID(c, "id", "rink")
	if !ok {
		return
	}

	if err := h.rinkService.DeleteRink(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
