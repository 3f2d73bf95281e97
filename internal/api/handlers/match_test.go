package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"bowls-club-backend/internal/api/handlers"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MatchHandlerTestSuite defines the test suite for MatchHandler
type MatchHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockMatchServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MatchHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMatchServiceInterface(suite.ctrl)
	handler := handlers.NewMatchHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	matches := suite.httpSuite.Router.Group("/api/v1/matches")
	{
		matches.GET("", handler.ListMatches)
		matches.POST("", handler.CreateMatch)
		matches.GET("/:id", handler.GetMatch)
		matches.PUT("/:id", handler.UpdateMatch)
		matches.DELETE("/:id", handler.DeleteMatch)
	}
}

// TearDownTest cleans up after each test
func (suite *MatchHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMatchUnknownCompetition tests a match for a missing competition
func (suite *MatchHandlerTestSuite) TestCreateMatchUnknownCompetition() {
	suite.mockService.EXPECT().CreateMatch(gomock.Any()).Return(nil, apperrors.ErrCompetitionNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/matches", map[string]interface{}{
		"competition_id":     uuid.New(),
		"opposition_team_id": uuid.New(),
		"date":               "2024-06-15T14:00:00Z",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "competition not found")
}

// TestListMatchesFilters tests parsing of the list filters
func (suite *MatchHandlerTestSuite) TestListMatchesFilters() {
	competitionID := uuid.New()
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	suite.mockService.EXPECT().
		ListMatches(service.MatchListParams{CompetitionID: &competitionID, Date: &day, HomeOrAway: "Away", Query: "tumble"}).
		Return([]service.MatchResponse{{Fixture: "Tumble vs Crosshands - County League"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/matches?competition_id="+competitionID.String()+"&date=2024-06-15&home_or_away=Away&q=tumble", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Tumble vs Crosshands - County League")
}

// TestListMatchesBadFilters tests rejected filter values
func (suite *MatchHandlerTestSuite) TestListMatchesBadFilters() {
	suite.Run("date", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/matches?date=15/06/2024", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid date")
	})

	suite.Run("home_or_away", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/matches?home_or_away=Neutral", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid home_or_away")
	})

	suite.Run("competition_id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/matches?competition_id=7", nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid competition ID")
	})
}

// TestUpdateMatchScores tests recording a result
func (suite *MatchHandlerTestSuite) TestUpdateMatchScores() {
	id := uuid.New()
	ours, theirs := 21, 18
	suite.mockService.EXPECT().
		UpdateMatch(id, gomock.Any()).
		Return(&service.MatchResponse{ID: id, CrosshandsScore: &ours, OppositionScore: &theirs, Result: "win"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/matches/"+id.String(), map[string]interface{}{
		"crosshands_score": 21,
		"opposition_score": 18,
	})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), `"result":"win"`)
}

// TestDeleteMatchNotFound tests deleting a missing match
func (suite *MatchHandlerTestSuite) TestDeleteMatchNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteMatch(id).Return(apperrors.ErrMatchNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/matches/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestMatchHandlerTestSuite runs the test suite
func TestMatchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}
