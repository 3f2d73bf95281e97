package handlers

import (
	"net/http"

	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubHandler handles HTTP requests for the club's own profile
type ClubHandler struct {
	clubService service.ClubServiceInterface
}

// NewClubHandler creates a new club profile handler
func NewClubHandler(clubService service.ClubServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// GetClub retrieves the club profile
// @Summary Get club profile
// @Tags club
// @Produce json
// @Success 200 {object} service.ClubResponse "Successfully retrieved club profile"
// @Failure 404 {object} ErrorResponse "No club profile yet"
// @Security BearerAuth
// @Router /club [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.clubService.GetClub()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// CreateClub creates the club profile
// @Summary Create club profile
// @Description Only one club profile can ever be created
// @Tags club
// @Accept json
// @Produce json
// @Param club body service.ClubRequest true "Club profile"
// @Success 201 {object} service.ClubResponse "Successfully created club profile"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "A club profile already exists"
// @Security BearerAuth
// @Router /club [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req service.ClubRequest
	if !bindJSON(c, &req) {
		return
	}

	club, err := h.clubService.CreateClub(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// UpdateClub replaces the club profile fields
// @Summary Update club profile
// @Tags club
// @Accept json
// @Produce json
// @Param club body service.ClubRequest true "Club profile"
// @Success 200 {object} service.ClubResponse "Successfully updated club profile"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "No club profile yet"
// @Security BearerAuth
// @Router /club [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	var req service.ClubRequest
	if !bindJSON(c, &req) {
		return
	}

	club, err := h.clubService.UpdateClub(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// DeleteClub always refuses
// @Summary Delete club profile
// @Description The club profile cannot be deleted
// @Tags club
// @Produce json
// @Failure 403 {object} ErrorResponse "The club profile cannot be deleted"
// @Failure 404 {object} ErrorResponse "No club profile yet"
// @Security BearerAuth
// @Router /club [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	if err := h.clubService.DeleteClub(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Permissions tells the admin console which profile actions to offer
// @Summary Club profile permissions
// @Tags club
// @Produce json
// @Success 200 {object} service.ClubPermissionsResponse "Available actions"
// @Security BearerAuth
// @Router /club/permissions [get]
func (h *ClubHandler) Permissions(c *gin.Context) {
	perms, err := h.clubService.Permissions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, perms)
}
