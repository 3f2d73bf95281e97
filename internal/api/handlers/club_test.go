package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"bowls-club-backend/internal/api/handlers"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"
	"bowls-club-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClubHandlerTestSuite defines the test suite for ClubHandler
type ClubHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClubServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ClubHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClubServiceInterface(suite.ctrl)
	handler := handlers.NewClubHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	club := suite.httpSuite.Router.Group("/api/v1/club")
	{
		club.GET("", handler.GetClub)
		club.POST("", handler.CreateClub)
		club.PUT("", handler.UpdateClub)
		club.DELETE("", handler.DeleteClub)
		club.GET("/permissions", handler.Permissions)
	}
}

// TearDownTest cleans up after each test
func (suite *ClubHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func clubBody() map[string]interface{} {
	return map[string]interface{}{
		"name":       "Crosshands Bowls Club",
		"short_name": "Crosshands",
		"location":   "Crosshands, Llanelli",
	}
}

// TestCreateClub tests creating the profile
func (suite *ClubHandlerTestSuite) TestCreateClub() {
	suite.mockService.EXPECT().
		CreateClub(gomock.Any()).
		Return(&service.ClubResponse{Name: "Crosshands Bowls Club", ShortName: "Crosshands"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/club", clubBody())

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.Contains(recorder.Body.String(), `"short_name":"Crosshands"`)
}

// TestCreateClubTwice tests that a second profile is refused
func (suite *ClubHandlerTestSuite) TestCreateClubTwice() {
	suite.mockService.EXPECT().CreateClub(gomock.Any()).Return(nil, apperrors.ErrClubProfileExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/club", clubBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "club profile already exists")
}

// TestGetClubMissing tests reading before a profile exists
func (suite *ClubHandlerTestSuite) TestGetClubMissing() {
	suite.mockService.EXPECT().GetClub().Return(nil, apperrors.ErrClubProfileNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/club", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "club profile not found")
}

// TestDeleteClub tests that the profile cannot be deleted
func (suite *ClubHandlerTestSuite) TestDeleteClub() {
	suite.mockService.EXPECT().DeleteClub().Return(apperrors.ErrClubProfileNotDeletable)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/club", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "cannot be deleted")
}

// TestPermissions tests the admin permission flags
func (suite *ClubHandlerTestSuite) TestPermissions() {
	suite.Run("no profile yet", func() {
		suite.mockService.EXPECT().Permissions().Return(&service.ClubPermissionsResponse{CanAdd: true}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/club/permissions", nil)

		suite.Equal(http.StatusOK, recorder.Code)
		suite.JSONEq(`{"can_add":true,"can_delete":false}`, recorder.Body.String())
	})

	suite.Run("database down", func() {
		suite.mockService.EXPECT().Permissions().Return(nil, errors.New("connection refused"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/club/permissions", nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Internal server error")
	})
}

// TestClubHandlerTestSuite runs the test suite
func TestClubHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClubHandlerTestSuite))
}
