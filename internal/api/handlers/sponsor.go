package handlers

import (
	"net/http"

	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SponsorHandler handles HTTP requests for sponsors
type SponsorHandler struct {
	sponsorService service.SponsorServiceInterface
}

// NewSponsorHandler creates a new sponsor handler
func NewSponsorHandler(sponsorService service.SponsorServiceInterface) *SponsorHandler {
	return &SponsorHandler{
		sponsorService: sponsorService,
	}
}

// CreateSponsor creates a new sponsor
// @Summary Create a new sponsor
// @Description Create a sponsor. Upload the logo separately.
// @Tags sponsors
// @Accept json
// @Produce json
// @Param sponsor body service.CreateSponsorRequest true "Sponsor data"
// @Success 201 {object} service.SponsorResponse "Successfully created sponsor"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /sponsors [post]
func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var req service.CreateSponsorRequest
	if !bindJSON(c, &req) {
		return
	}

	sponsor, err := h.sponsorService.CreateSponsor(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sponsor)
}

// GetSponsor retrieves a sponsor by ID
// @Summary Get sponsor by ID
// @Tags sponsors
// @Produce json
// @Param id path string true "Sponsor ID (UUID)"
// @Success 200 {object} service.SponsorResponse "Successfully retrieved sponsor"
// @Failure 400 {object} ErrorResponse "Invalid sponsor ID"
// @Failure 404 {object} ErrorResponse "Sponsor not found"
// @Security BearerAuth
// @Router /sponsors/{id} [get]
func (h *SponsorHandler) GetSponsor(c *gin.Context) {
	id, ok := parseID(c, "id", "sponsor")
	if !ok {
		return
	}

	sponsor, err := h.sponsorService.GetSponsorByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsor)
}

// ListSponsors lists all sponsors
// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {array} service.SponsorResponse "Successfully retrieved sponsors"
// @Security BearerAuth
// @Router /sponsors [get]
func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	sponsors, err := h.sponsorService.ListSponsors()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsors)
}

// UpdateSponsor updates a sponsor
// @Summary Update sponsor
// @Tags sponsors
// @Accept json
// @Produce json
// @Param id path string true "Sponsor ID (UUID)"
// @Param sponsor body service.UpdateSponsorRequest true "Fields to change"
// @Success 200 {object} service.SponsorResponse "Successfully updated sponsor"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Sponsor not found"
// @Security BearerAuth
// @Router /sponsors/{id} [put]
func (h *SponsorHandler) UpdateSponsor(c *gin.Context) {
	id, ok := parseID(c, "id", "sponsor")
	if !ok {
		return
	}

	var req service.UpdateSponsorRequest
	if !bindJSON(c, &req) {
		return
	}

	sponsor, err := h.sponsorService.UpdateSponsor(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsor)
}

// UploadLogo stores a sponsor's logo image
// @Summary Upload sponsor logo
// @Description Upload an image (max 5 MiB) as the sponsor's logo, replacing any previous one
// @Tags sponsors
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Sponsor ID (UUID)"
// @Param logo formData file true "Logo image"
// @Success 200 {object} service.SponsorResponse "Successfully uploaded logo"
// @Failure 400 {object} ErrorResponse "Missing file, not an image or too large"
// @Failure 404 {object} ErrorResponse "Sponsor not found"
// @Failure 503 {object} ErrorResponse "Logo storage is not configured"
// @Security BearerAuth
// @Router /sponsors/{id}/logo [put]
func (h *SponsorHandler) UploadLogo(c *gin.Context) {
	id, ok := parseID(c, "id", "sponsor")
	if !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "logo file is required"})
		return
	}

	sponsor, err := h.sponsorService.UploadLogo(c.Request.Context(), id, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsor)
}

// DeleteSponsor deletes a sponsor and its logo
// @Summary Delete sponsor
// @Tags sponsors
// @Param id path string true "Sponsor ID (UUID)"
// @Success 204 "Successfully deleted sponsor"
// @Failure 400 {object} ErrorResponse "Invalid sponsor ID"
// @Failure 404 {object} ErrorResponse "Sponsor not found"
// @Security BearerAuth
// @Router /sponsors/{id} [delete]
func (h *SponsorHandler) DeleteSponsor(c *gin.Context) {
	id, ok := parseID(c, "id", "sponsor")
	if !ok {
		return
	}

	if err := h.sponsorService.DeleteSponsor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
