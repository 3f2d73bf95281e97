package handlers

import (
	"net/http"
	"time"

	"bowls-club-backend/internal/database/models"
	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateMatch creates a new match
// @Summary Create a new match
// @Description Create a fixture against an opposition team.
// @Description
// @Description Optional Fields with Defaults:
// @Description - home_or_away: Defaults to 'Home' (valid values: Home, Away)
// @Description - scores: leave both empty until the match has been played
// @Tags matches
// @Accept json
// @Produce json
// @Param match body service.CreateMatchRequest true "Match data"
// @Success 201 {object} service.MatchResponse "Successfully created match"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Competition or opposition team not found"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.CreateMatch(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// GetMatch retrieves a match by ID
// @Summary Get match by ID
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, ok := parseID(c, "id", "match")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatchByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// ListMatches lists matches
// @Summary List matches
// @Description List matches newest first, optionally filtered and searched by opposition or competition name
// @Tags matches
// @Produce json
// @Param competition_id query string false "Competition ID (UUID)"
// @Param date query string false "Match day (YYYY-MM-DD)"
// @Param home_or_away query string false "Home or Away"
// @Param q query string false "Search text"
// @Success 200 {array} service.MatchResponse "Successfully retrieved matches"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	params := service.MatchListParams{
		HomeOrAway: c.Query("home_or_away"),
		Query:      c.Query("q"),
	}

	if raw := c.Query("competition_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid competition ID"})
			return
		}
		params.CompetitionID = &id
	}
	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		params.Date = &day
	}
	if params.HomeOrAway != "" && !models.HomeOrAway(params.HomeOrAway).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid home_or_away filter"})
		return
	}

	matches, err := h.matchService.ListMatches(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// UpdateMatch updates a match, including its scores
// @Summary Update match
// @Description Update a match. Set clear_scores to mark a match unplayed again.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Fields to change"
// @Success 200 {object} service.MatchResponse "Successfully updated match"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, ok := parseID(c, "id", "match")
	if !ok {
		return
	}

	var req service.UpdateMatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.matchService.UpdateMatch(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// DeleteMatch deletes a match and its rink
// @Summary Delete match
// @Tags matches
// @Param id path string true "Match ID (UUID)"
// @Success 204 "Successfully deleted match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, ok := parseID(c, "id", "match")
	if !ok {
		return
	}

	if err := h.matchService.DeleteMatch(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
