package handlers

import (
	"net/http"

	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompetitionHandler handles HTTP requests for competitions
type CompetitionHandler struct {
	competitionService service.CompetitionServiceInterface
}

// NewCompetitionHandler creates a new competition handler
func NewCompetitionHandler(competitionService service.CompetitionServiceInterface) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService: competitionService,
	}
}

// CreateCompetition creates a new competition
// @Summary Create a new competition
// @Description Create a competition. competition_type defaults to 'knockout' (valid values: knockout, league, friendly, tournament).
// @Tags competitions
// @Accept json
// @Produce json
// @Param competition body service.CreateCompetitionRequest true "Competition data"
// @Success 201 {object} service.CompetitionResponse "Successfully created competition"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /competitions [post]
func (h *CompetitionHandler) CreateCompetition(c *gin.Context) {
	var req service.CreateCompetitionRequest
	if !bindJSON(c, &req) {
		return
	}

	competition, err := h.competitionService.CreateCompetition(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, competition)
}

// GetCompetition retrieves a competition by ID
// @Summary Get competition by ID
// @Tags competitions
// @Produce json
// @Param id path string true "Competition ID (UUID)"
// @Success 200 {object} service.CompetitionResponse "Successfully retrieved competition"
// @Failure 400 {object} ErrorResponse "Invalid competition ID"
// @Failure 404 {object} ErrorResponse "Competition not found"
// @Security BearerAuth
// @Router /competitions/{id} [get]
func (h *CompetitionHandler) GetCompetition(c *gin.Context) {
	id, ok := parseID(c, "id", "competition")
	if !ok {
		return
	}

	competition, err := h.competitionService.GetCompetitionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// ListCompetitions lists all competitions
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Success 200 {array} service.CompetitionResponse "Successfully retrieved competitions"
// @Security BearerAuth
// @Router /competitions [get]
func (h *CompetitionHandler) ListCompetitions(c *gin.Context) {
	competitions, err := h.competitionService.ListCompetitions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, competitions)
}

// UpdateCompetition updates a competition
// @Summary Update competition
// @Tags competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID (UUID)"
// @Param competition body service.UpdateCompetitionRequest true "Fields to change"
// @Success 200 {object} service.CompetitionResponse "Successfully updated competition"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Competition not found"
// @Security BearerAuth
// @Router /competitions/{id} [put]
func (h *CompetitionHandler) UpdateCompetition(c *gin.Context) {
	id, ok := parseID(c, "id", "competition")
	if !ok {
		return
	}

	var req service.UpdateCompetitionRequest
	if !bindJSON(c, &req) {
		return
	}

	competition, err := h.competitionService.UpdateCompetition(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// DeleteCompetition deletes a competition together with its matches
// @Summary Delete competition
// @Description Deleting a competition also deletes its matches and their rinks
// @Tags competitions
// @Param id path string true "Competition ID (UUID)"
// @Success 204 "Successfully deleted competition"
// @Failure 400 {object} ErrorResponse "Invalid competition ID"
// @Failure 404 {object} ErrorResponse "Competition not found"
// @Security BearerAuth
// @Router /competitions/{id} [delete]
func (h *CompetitionHandler) DeleteCompetition(c *gin.Context) {
	id, ok := parseID(c, "id", "competition")
	if !ok {
		return
	}

	if err := h.competitionService.DeleteCompetition(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
