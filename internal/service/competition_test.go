package service_test

import (
	"errors"
	"testing"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CompetitionServiceTestSuite defines the test suite for CompetitionService
type CompetitionServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockCompetitionRepositoryInterface
	service  *service.CompetitionService
}

// SetupTest sets up the test suite
func (suite *CompetitionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCompetitionRepositoryInterface(suite.ctrl)
	suite.service = service.NewCompetitionService(suite.mockRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *CompetitionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCompetitionDefaultsToKnockout tests the default competition type
func (suite *CompetitionServiceTestSuite) TestCreateCompetitionDefaultsToKnockout() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.service.CreateCompetition(&service.CreateCompetitionRequest{Name: "Welsh Cup"})

	suite.NoError(err)
	suite.Equal("Welsh Cup", response.Name)
	suite.Equal("knockout", response.CompetitionType)
}

// TestCreateCompetitionRequiresName tests that an empty name is rejected
func (suite *CompetitionServiceTestSuite) TestCreateCompetitionRequiresName() {
	response, err := suite.service.CreateCompetition(&service.CreateCompetitionRequest{Name: ""})

	suite.Nil(response)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestCreateCompetitionRejectsUnknownType tests the type whitelist
func (suite *CompetitionServiceTestSuite) TestCreateCompetitionRejectsUnknownType() {
	bad := "ladder"
	_, err := suite.service.CreateCompetition(&service.CreateCompetitionRequest{Name: "Ladder", CompetitionType: &bad})

	suite.Error(err)
}

// TestGetCompetitionNotFound tests the not-found mapping
func (suite *CompetitionServiceTestSuite) TestGetCompetitionNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetCompetitionByID(id)

	suite.ErrorIs(err, apperrors.ErrCompetitionNotFound)
	suite.True(apperrors.IsNotFound(err))
}

// TestGetCompetitionDatabaseError tests that other failures are wrapped rather than reported as not found
func (suite *CompetitionServiceTestSuite) TestGetCompetitionDatabaseError() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, errors.New("connection refused"))

	_, err := suite.service.GetCompetitionByID(id)

	suite.Error(err)
	suite.False(apperrors.IsNotFound(err))
	suite.Contains(err.Error(), "connection refused")
}

// TestUpdateCompetition tests renaming a competition
func (suite *CompetitionServiceTestSuite) TestUpdateCompetition() {
	id := uuid.New()
	existing := &models.Competition{BaseModel: models.BaseModel{ID: id}, Name: "Old", CompetitionType: models.CompetitionTypeLeague}
	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(existing).Return(nil)

	name := "New"
	response, err := suite.service.UpdateCompetition(id, &service.UpdateCompetitionRequest{Name: &name})

	suite.NoError(err)
	suite.Equal("New", response.Name)
	suite.Equal("league", response.CompetitionType)
}

// TestListCompetitions tests listing
func (suite *CompetitionServiceTestSuite) TestListCompetitions() {
	suite.mockRepo.EXPECT().GetAll().Return([]models.Competition{{Name: "A"}, {Name: "B"}}, nil)

	responses, err := suite.service.ListCompetitions()

	suite.NoError(err)
	suite.Len(responses, 2)
}

// TestDeleteCompetitionNotFound tests deleting a missing competition
func (suite *CompetitionServiceTestSuite) TestDeleteCompetitionNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.DeleteCompetition(id), apperrors.ErrCompetitionNotFound)
}

// TestCompetitionServiceTestSuite runs the test suite
func TestCompetitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompetitionServiceTestSuite))
}
