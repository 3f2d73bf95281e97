package handlers

import (
	"net/http"

	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OppositionTeamHandler handles HTTP requests for opposition teams
type OppositionTeamHandler struct {
	teamService service.OppositionTeamServiceInterface
}

// NewOppositionTeamHandler creates a new opposition team handler
func NewOppositionTeamHandler(teamService service.OppositionTeamServiceInterface) *OppositionTeamHandler {
	return &OppositionTeamHandler{
		teamService: teamService,
	}
}

// CreateOppositionTeam creates a new opposition team
// @Summary Create a new opposition team
// @Description Create an opposition team, optionally entering it into competitions
// @Tags opposition-teams
// @Accept json
// @Produce json
// @Param team body service.CreateOppositionTeamRequest true "Opposition team data"
// @Success 201 {object} service.OppositionTeamResponse "Successfully created opposition team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Competition not found"
// @Security BearerAuth
// @Router /opposition-teams [post]
func (h *OppositionTeamHandler) CreateOppositionTeam(c *gin.Context) {
	var req service.CreateOppositionTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateOppositionTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetOppositionTeam retrieves an opposition team by ID
// @Summary Get opposition team by ID
// @Tags opposition-teams
// @Produce json
// @Param id path string true "Opposition team ID (UUID)"
// @Success 200 {object} service.OppositionTeamResponse "Successfully retrieved opposition team"
// @Failure 400 {object} ErrorResponse "Invalid opposition team ID"
// @Failure 404 {object} ErrorResponse "Opposition team not found"
// @Security BearerAuth
// @Router /opposition-teams/{id} [get]
func (h *OppositionTeamHandler) GetOppositionTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "opposition team")
	if !ok {
		return
	}

	team, err := h.teamService.GetOppositionTeamByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListOppositionTeams lists opposition teams
// @Summary List opposition teams
// @Description List opposition teams by name, optionally filtered by competition and searched by name, location or email
// @Tags opposition-teams
// @Produce json
// @Param competition_id query string false "Competition ID (UUID)"
// @Param q query string false "Search text"
// @Success 200 {array} service.OppositionTeamResponse "Successfully retrieved opposition teams"
// @Failure 400 {object} ErrorResponse "Invalid competition ID"
// @Security BearerAuth
// @Router /opposition-teams [get]
func (h *OppositionTeamHandler) ListOppositionTeams(c *gin.Context) {
	params := service.OppositionTeamListParams{Query: c.Query("q")}
	if raw := c.Query("competition_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid competition ID"})
			return
		}
		params.CompetitionID = &id
	}

	teams, err := h.teamService.ListOppositionTeams(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateOppositionTeam updates an opposition team
// @Summary Update opposition team
// @Description Update an opposition team. When competition_ids is present it replaces the team's competitions.
// @Tags opposition-teams
// @Accept json
// @Produce json
// @Param id path string true "Opposition team ID (UUID)"
// @Param team body service.UpdateOppositionTeamRequest true "Fields to change"
// @Success 200 {object} service.OppositionTeamResponse "Successfully updated opposition team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Opposition team or competition not found"
// @Security BearerAuth
// @Router /opposition-teams/{id} [put]
func (h *OppositionTeamHandler) UpdateOppositionTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "opposition team")
	if !ok {
		return
	}

	var req service.UpdateOppositionTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.UpdateOppositionTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SetCompetitions replaces the competitions an opposition team is entered in
// @Summary Set opposition team competitions
// @Tags opposition-teams
// @Accept json
// @Produce json
// @Param id path string true "Opposition team ID (UUID)"
// @Param competitions body service.SetCompetitionsRequest true "Competition IDs"
// @Success 200 {object} service.OppositionTeamResponse "Successfully updated competitions"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Opposition team or competition not found"
// @Security BearerAuth
// @Router /opposition-teams/{id}/competitions [put]
func (h *OppositionTeamHandler) SetCompetitions(c *gin.Context) {
	id, ok := parseID(c, "id", "opposition team")
	if !ok {
		return
	}

	var req service.SetCompetitionsRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.SetCompetitions(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteOppositionTeam deletes an opposition team together with its matches
// @Summary Delete opposition team
// @Tags opposition-teams
// @Param id path string true "Opposition team ID (UUID)"
// @Success 204 "Successfully deleted opposition team"
// @Failure 400 {object} ErrorResponse "Invalid opposition team ID"
// @Failure 404 {object} ErrorResponse "Opposition team not found"
// @Security BearerAuth
// @Router /opposition-teams/{id} [delete]
func (h *OppositionTeamHandler) DeleteOppositionTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "opposition team")
	if !ok {
		return
	}

	if err := h.teamService.DeleteOppositionTeam(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
