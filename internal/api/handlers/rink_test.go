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

// RinkHandlerTestSuite defines the test suite for RinkHandler
type RinkHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRinkServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RinkHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRinkServiceInterface(suite.ctrl)
	handler := handlers.NewRinkHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	rinks := suite.httpSuite.Router.Group("/api/v1/rinks")
	{
		rinks.GET("", handler.ListRinks)
		rinks.POST("", handler.CreateRink)
		rinks.GET("/:id", handler.GetRink)
		rinks.PUT("/:id", handler.UpdateRink)
		rinks.DELETE("/:id", handler.DeleteRink)
		rinks.PUT("/:id/players", handler.SetPlayers)
		rinks.POST("/:id/players", handler.AddPlayer)
		rinks.DELETE("/:id/players/:memberId", handler.RemovePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *RinkHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRinkTooManyPlayers tests that a fifth player is a 400
func (suite *RinkHandlerTestSuite) TestCreateRinkTooManyPlayers() {
	suite.mockService.EXPECT().CreateRink(gomock.Any()).Return(nil, apperrors.ErrRinkRosterFull)

	players := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rinks", map[string]interface{}{
		"number":     1,
		"player_ids": players,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "maximum of 4 players")
}

// TestCreateRinkMatchTaken tests a second rink for a match
func (suite *RinkHandlerTestSuite) TestCreateRinkMatchTaken() {
	suite.mockService.EXPECT().CreateRink(gomock.Any()).Return(nil, apperrors.ErrRinkMatchTaken)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rinks", map[string]interface{}{
		"number":   1,
		"match_id": uuid.New(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "rink already exists for this match")
}

// TestAddPlayer tests putting a member on a rink
func (suite *RinkHandlerTestSuite) TestAddPlayer() {
	id, memberID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().
		AddPlayer(id, &service.AddPlayerRequest{MemberID: memberID}).
		Return(&service.RinkResponse{ID: id, Number: 3, Label: "Rink 3", Players: []service.RinkPlayer{{ID: memberID, Name: "Dai Jones"}}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rinks/"+id.String()+"/players", map[string]interface{}{
		"member_id": memberID,
	})

	suite.Equal(http.StatusOK, recorder.Code)
	var response service.RinkResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Len(response.Players, 1)
	suite.Equal("Rink 3", response.Label)
}

// TestAddPlayerRosterFull tests adding to a full rink
func (suite *RinkHandlerTestSuite) TestAddPlayerRosterFull() {
	id := uuid.New()
	suite.mockService.EXPECT().AddPlayer(id, gomock.Any()).Return(nil, apperrors.ErrRinkRosterFull)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/rinks/"+id.String()+"/players", map[string]interface{}{
		"member_id": uuid.New(),
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestRemovePlayerInvalidMemberID tests a malformed member id
func (suite *RinkHandlerTestSuite) TestRemovePlayerInvalidMemberID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/rinks/"+uuid.NewString()+"/players/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid member ID")
}

// TestRemovePlayerNotOnRink tests removing a member who is not on the rink
func (suite *RinkHandlerTestSuite) TestRemovePlayerNotOnRink() {
	id, memberID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().RemovePlayer(id, memberID).Return(nil, apperrors.ErrMemberNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/rinks/"+id.String()+"/players/"+memberID.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

// TestRinkHandlerTestSuite runs the test suite
func TestRinkHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RinkHandlerTestSuite))
}
