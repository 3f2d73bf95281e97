package handlers

import (
	"net/http"
	"strings"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/logger"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SiteHandler renders the public pages. One handler is created per mount
// point so links stay under the prefix the visitor came in on.
type SiteHandler struct {
	siteService service.SiteServiceInterface
	clubName    string
	base        string
}

// NewSiteHandler creates a site handler for pages mounted under base
func NewSiteHandler(siteService service.SiteServiceInterface, clubName, base string) *SiteHandler {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &SiteHandler{
		siteService: siteService,
		clubName:    clubName,
		base:        base,
	}
}

func (h *SiteHandler) page(c *gin.Context, title string) web.Page {
	p := web.Page{Title: title, Base: h.base, ClubName: h.clubName}

	club, err := h.siteService.GetClubProfile()
	if err != nil {
		logger.WithContext(c.Request.Context()).Warnf("failed to load club profile: %v", err)
		return p
	}
	if club != nil {
		p.Club = club
		if club.ShortName != "" {
			p.ClubName = club.ShortName
		}
	}
	return p
}

func (h *SiteHandler) fail(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) {
		h.renderNotFound(c, err.Error())
		return
	}
	logger.WithContext(c.Request.Context()).WithField("path", c.Request.URL.Path).Errorf("page failed: %v", err)
	c.String(http.StatusInternalServerError, "Internal server error")
}

func (h *SiteHandler) renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "404.html", struct {
		web.Page
		Message string
	}{h.page(c, "Not found"), message})
}

// Index renders the landing page
func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "master.html", h.page(c, "Welcome"))
}

// Home renders the club's home page
func (h *SiteHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", h.page(c, "Home"))
}

// Players renders the squads
func (h *SiteHandler) Players(c *gin.Context) {
	squads, err := h.siteService.ListMembers()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "players.html", struct {
		web.Page
		Squads []service.Squad
	}{h.page(c, "Players"), squads})
}

// Competitions renders the list of competitions, each linking to its fixtures
func (h *SiteHandler) Competitions(c *gin.Context) {
	competitions, err := h.siteService.ListCompetitions()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "competitions.html", struct {
		web.Page
		Competitions []models.Competition
	}{h.page(c, "Competitions"), competitions})
}

// Sponsors renders the sponsors page
func (h *SiteHandler) Sponsors(c *gin.Context) {
	sponsors, err := h.siteService.ListSponsors()
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "sponsors.html", struct {
		web.Page
		Sponsors []models.Sponsor
	}{h.page(c, "Sponsors"), sponsors})
}

// FixturesResults renders one competition's fixtures and results.
// An unknown or malformed competition id renders the 404 page.
func (h *SiteHandler) FixturesResults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("competition_id"))
	if err != nil {
		h.renderNotFound(c, "No such competition.")
		return
	}

	results, err := h.siteService.GetFixturesResults(id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "fixtures_results.html", struct {
		web.Page
		Results *service.FixturesResults
	}{h.page(c, results.Competition.Name), results})
}

// NotFound answers unknown routes: JSON for the API, the 404 page otherwise
func (h *SiteHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return
	}
	h.renderNotFound(c, "")
}
