package handlers_test

import (
	"net/http"
	"testing"

	"bowls-club-backend/internal/api/handlers"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OppositionTeamHandlerTestSuite defines the test suite for OppositionTeamHandler
type OppositionTeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOppositionTeamServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OppositionTeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOppositionTeamServiceInterface(suite.ctrl)
	handler := handlers.NewOppositionTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	teams := suite.httpSuite.Router.Group("/api/v1/opposition-teams")
	{
		teams.GET("", handler.ListOppositionTeams)
		teams.POST("", handler.CreateOppositionTeam)
		teams.GET("/:id", handler.GetOppositionTeam)
		teams.PUT("/:id", handler.UpdateOppositionTeam)
		teams.PUT("/:id/competitions", handler.SetCompetitions)
		teams.DELETE("/:id", handler.DeleteOppositionTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *OppositionTeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateOppositionTeam tests creating a team with competitions
func (suite *OppositionTeamHandlerTestSuite) TestCreateOppositionTeam() {
	competitionID := uuid.New()
	suite.mockService.EXPECT().
		CreateOppositionTeam(&service.CreateOppositionTeamRequest{Name: "Tumble BC", CompetitionIDs: []uuid.UUID{competitionID}}).
		Return(&service.OppositionTeamResponse{
			ID:           uuid.New(),
			Name:         "Tumble BC",
			Competitions: []service.CompetitionSummary{{ID: competitionID, Name: "County League"}},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/opposition-teams", map[string]interface{}{
		"name":            "Tumble BC",
		"competition_ids": []uuid.UUID{competitionID},
	})

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Contains(recorder.Body.String(), "County League")
}

// TestListOppositionTeamsByCompetition tests the competition filter
func (suite *OppositionTeamHandlerTestSuite) TestListOppositionTeamsByCompetition() {
	competitionID := uuid.New()
	suite.mockService.EXPECT().
		ListOppositionTeams(service.OppositionTeamListParams{CompetitionID: &competitionID}).
		Return([]service.OppositionTeamResponse{{Name: "Tumble BC"}, {Name: "Llanelli BC"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/opposition-teams?competition_id="+competitionID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var response []service.OppositionTeamResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Len(response, 2)
}

// TestListOppositionTeamsBadCompetition tests a malformed filter
func (suite *OppositionTeamHandlerTestSuite) TestListOppositionTeamsBadCompetition() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/opposition-teams?competition_id=league", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid competition ID")
}

// TestSetCompetitionsUnknown tests linking a missing competition
func (suite *OppositionTeamHandlerTestSuite) TestSetCompetitionsUnknown() {
	id := uuid.New()
	suite.mockService.EXPECT().SetCompetitions(id, gomock.Any()).Return(nil, apperrors.ErrCompetitionNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/opposition-teams/"+id.String()+"/competitions", map[string]interface{}{
		"competition_ids": []uuid.UUID{uuid.New()},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "competition not found")
}

// TestDeleteOppositionTeam tests deleting a team
func (suite *OppositionTeamHandlerTestSuite) TestDeleteOppositionTeam() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteOppositionTeam(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/opposition-teams/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestOppositionTeamHandlerTestSuite runs the test suite
func TestOppositionTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OppositionTeamHandlerTestSuite))
}
