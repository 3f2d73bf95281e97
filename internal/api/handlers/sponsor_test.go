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

// SponsorHandlerTestSuite defines the test suite for SponsorHandler
type SponsorHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSponsorServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SponsorHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSponsorServiceInterface(suite.ctrl)
	handler := handlers.NewSponsorHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	sponsors := suite.httpSuite.Router.Group("/api/v1/sponsors")
	{
		sponsors.GET("", handler.ListSponsors)
		sponsors.POST("", handler.CreateSponsor)
		sponsors.GET("/:id", handler.GetSponsor)
		sponsors.PUT("/:id", handler.UpdateSponsor)
		sponsors.PUT("/:id/logo", handler.UploadLogo)
		sponsors.DELETE("/:id", handler.DeleteSponsor)
	}
}

// TearDownTest cleans up after each test
func (suite *SponsorHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSponsor tests creating a sponsor
func (suite *SponsorHandlerTestSuite) TestCreateSponsor() {
	id := uuid.New()
	suite.mockService.EXPECT().
		CreateSponsor(&service.CreateSponsorRequest{Name: "Hollies Bakery", Website: "https://hollies.example.com"}).
		Return(&service.SponsorResponse{ID: id, Name: "Hollies Bakery", Website: "https://hollies.example.com"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/sponsors", map[string]interface{}{
		"name":    "Hollies Bakery",
		"website": "https://hollies.example.com",
	})

	suite.Equal(http.StatusCreated, recorder.Code)
	var response service.SponsorResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Equal(id, response.ID)
}

// TestUploadLogo tests a multipart logo upload
func (suite *SponsorHandlerTestSuite) TestUploadLogo() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UploadLogo(gomock.Any(), id, gomock.Any()).
		Return(&service.SponsorResponse{ID: id, LogoURL: "https://cdn.example.com/sponsors/" + id.String() + "/logo.png"}, nil)

	recorder := suite.httpSuite.MakeFileUpload(http.MethodPut, "/api/v1/sponsors/"+id.String()+"/logo",
		"logo", "logo.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "logo.png")
}

// TestUploadLogoMissingFile tests an upload without the logo field
func (suite *SponsorHandlerTestSuite) TestUploadLogoMissingFile() {
	recorder := suite.httpSuite.MakeFileUpload(http.MethodPut, "/api/v1/sponsors/"+uuid.NewString()+"/logo",
		"image", "logo.png", "image/png", []byte("png"))

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "logo file is required")
}

// TestUploadLogoErrors tests how service failures map to status codes
func (suite *SponsorHandlerTestSuite) TestUploadLogoErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not an image", apperrors.ErrInvalidLogoType, http.StatusBadRequest},
		{"storage disabled", apperrors.ErrLogoStorageNotConfigured, http.StatusServiceUnavailable},
		{"sponsor missing", apperrors.ErrSponsorNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			id := uuid.New()
			suite.mockService.EXPECT().UploadLogo(gomock.Any(), id, gomock.Any()).Return(nil, tc.err)

			recorder := suite.httpSuite.MakeFileUpload(http.MethodPut, "/api/v1/sponsors/"+id.String()+"/logo",
				"logo", "logo.txt", "text/plain", []byte("hello"))

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, tc.err.Error())
		})
	}
}

// TestDeleteSponsor tests deleting a sponsor
func (suite *SponsorHandlerTestSuite) TestDeleteSponsor() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteSponsor(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/sponsors/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestGetSponsorInvalidID tests a malformed sponsor id
func (suite *SponsorHandlerTestSuite) TestGetSponsorInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/sponsors/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid sponsor ID")
}

// TestSponsorHandlerTestSuite runs the test suite
func TestSponsorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SponsorHandlerTestSuite))
}
