package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"bowls-club-backend/internal/api/handlers"
	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/testutils"
	"bowls-club-backend/internal/web"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SiteHandlerTestSuite defines the test suite for the public pages
type SiteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSiteServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SiteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSiteServiceInterface(suite.ctrl)

	suite.httpSuite = testutils.SetupHTTPTest()
	tmpl, err := web.Templates()
	suite.Require().NoError(err)
	suite.httpSuite.Router.SetHTMLTemplate(tmpl)

	for _, base := range []string{"/", "/bowls_club/"} {
		handler := handlers.NewSiteHandler(suite.mockService, "Crosshands", base)
		pages := suite.httpSuite.Router.Group(base)
		pages.GET("", handler.Index)
		pages.GET("home/", handler.Home)
		pages.GET("players/", handler.Players)
		pages.GET("competitions/", handler.Competitions)
		pages.GET("sponsors/", handler.Sponsors)
		pages.GET("fixtures_results/:competition_id/", handler.FixturesResults)
		if base == "/" {
			suite.httpSuite.Router.NoRoute(handler.NotFound)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *SiteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SiteHandlerTestSuite) noProfile() {
	suite.mockService.EXPECT().GetClubProfile().Return(nil, nil).AnyTimes()
}

// TestHomeUsesProfileShortName tests the header label
func (suite *SiteHandlerTestSuite) TestHomeUsesProfileShortName() {
	suite.mockService.EXPECT().GetClubProfile().Return(&models.OwnClub{
		Name:      "Crosshands Bowls Club",
		ShortName: "Cross Hands BC",
		Location:  "Crosshands",
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/home/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "<h1>Cross Hands BC</h1>")
	suite.Contains(recorder.Body.String(), "Crosshands Bowls Club, Crosshands")
}

// TestIndexWithoutProfile tests the fallback club name
func (suite *SiteHandlerTestSuite) TestIndexWithoutProfile() {
	suite.noProfile()

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "<h1>Crosshands</h1>")
}

// TestLinksFollowMountPoint tests that pages under the prefix link under the prefix
func (suite *SiteHandlerTestSuite) TestLinksFollowMountPoint() {
	suite.noProfile()
	competitionID := uuid.New()
	suite.mockService.EXPECT().ListCompetitions().Return([]models.Competition{
		{BaseModel: models.BaseModel{ID: competitionID}, Name: "County League", CompetitionType: "league"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/bowls_club/competitions/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `href="/bowls_club/fixtures_results/`+competitionID.String()+`/"`)
	suite.Contains(recorder.Body.String(), `href="/bowls_club/players/"`)
}

// TestPlayers tests the squads page
func (suite *SiteHandlerTestSuite) TestPlayers() {
	suite.noProfile()
	suite.mockService.EXPECT().ListMembers().Return([]service.Squad{
		{Team: "Men", Members: []models.Member{{FirstName: "Dai", LastName: "Jones", Role: "Captain"}}},
		{Team: "Ladies", Members: []models.Member{{FirstName: "Mair", LastName: "Evans", Role: "Player"}}},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/players/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	suite.Contains(body, "Dai Jones (Captain)")
	suite.Contains(body, "Mair Evans</li>")
	suite.Less(strings.Index(body, "<h3>Men</h3>"), strings.Index(body, "<h3>Ladies</h3>"))
}

// TestFixturesResults tests a competition's fixtures
func (suite *SiteHandlerTestSuite) TestFixturesResults() {
	suite.noProfile()
	competitionID := uuid.New()
	ours, theirs := 21, 14
	suite.mockService.EXPECT().GetFixturesResults(competitionID).Return(&service.FixturesResults{
		Competition: models.Competition{Name: "County League"},
		Matches: []service.FixtureView{
			{
				Date:            time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC),
				Fixture:         "Crosshands vs Tumble BC - County League",
				HomeOrAway:      "Home",
				CrosshandsScore: &ours,
				OppositionScore: &theirs,
				Played:          true,
				Result:          "win",
			},
		},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fixtures_results/"+competitionID.String()+"/", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	suite.Contains(body, "Crosshands vs Tumble BC - County League")
	suite.Contains(body, "Sat 15 Jun 2024, 14:00")
	suite.Contains(body, "21 - 14")
}

// TestFixturesResultsNotFound tests unknown and malformed competitions
func (suite *SiteHandlerTestSuite) TestFixturesResultsNotFound() {
	suite.noProfile()

	suite.Run("malformed id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/fixtures_results/42/", nil)
		suite.Equal(http.StatusNotFound, recorder.Code)
		suite.Contains(recorder.Body.String(), "No such competition.")
	})

	suite.Run("unknown competition", func() {
		id := uuid.New()
		suite.mockService.EXPECT().GetFixturesResults(id).Return(nil, apperrors.ErrCompetitionNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/bowls_club/fixtures_results/"+id.String()+"/", nil)
		suite.Equal(http.StatusNotFound, recorder.Code)
		suite.Contains(recorder.Body.String(), "Page not found")
	})
}

// TestSponsorsFailure tests a database failure on a page
func (suite *SiteHandlerTestSuite) TestSponsorsFailure() {
	suite.mockService.EXPECT().ListSponsors().Return(nil, errors.New("connection reset"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/sponsors/", nil)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.NotContains(recorder.Body.String(), "connection reset")
}

// TestNoRoute tests unknown paths
func (suite *SiteHandlerTestSuite) TestNoRoute() {
	suite.noProfile()

	suite.Run("api path", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/bowlers", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Not found")
	})

	suite.Run("page path", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/clubhouse/", nil)
		suite.Equal(http.StatusNotFound, recorder.Code)
		suite.Contains(recorder.Body.String(), "We could not find that page.")
	})
}

// TestSiteHandlerTestSuite runs the test suite
func TestSiteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SiteHandlerTestSuite))
}
