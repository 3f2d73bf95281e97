package service_test

import (
	"fmt"
	"testing"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/repository"
	"bowls-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// OppositionTeamServiceTestSuite defines the test suite for OppositionTeamService
type OppositionTeamServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockOppositionTeamRepositoryInterface
	service  *service.OppositionTeamService
}

// SetupTest sets up the test suite
func (suite *OppositionTeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockOppositionTeamRepositoryInterface(suite.ctrl)
	suite.service = service.NewOppositionTeamService(suite.mockRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *OppositionTeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func teamWithCompetitions(id uuid.UUID, names ...string) *models.OppositionTeam {
	team := &models.OppositionTeam{BaseModel: models.BaseModel{ID: id}, Name: "Tumble"}
	for _, n := range names {
		team.Competitions = append(team.Competitions, models.Competition{BaseModel: models.BaseModel{ID: uuid.New()}, Name: n})
	}
	return team
}

// TestCreateOppositionTeam tests creating a team with competitions
func (suite *OppositionTeamServiceTestSuite) TestCreateOppositionTeam() {
	league := uuid.New()
	suite.mockRepo.EXPECT().Create(gomock.Any(), []uuid.UUID{league}).Return(nil)
	suite.mockRepo.EXPECT().GetByID(gomock.Any()).Return(teamWithCompetitions(uuid.New(), "League", "Cup"), nil)

	response, err := suite.service.CreateOppositionTeam(&service.CreateOppositionTeamRequest{
		Name:           "Tumble",
		CompetitionIDs: []uuid.UUID{league},
	})

	suite.NoError(err)
	suite.Equal("League, Cup", response.CompetitionNames)
	suite.Len(response.Competitions, 2)
}

// TestCreateOppositionTeamUnknownCompetition tests that a bad competition id is reported as missing
func (suite *OppositionTeamServiceTestSuite) TestCreateOppositionTeamUnknownCompetition() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("link competitions: %w", gorm.ErrRecordNotFound))

	_, err := suite.service.CreateOppositionTeam(&service.CreateOppositionTeamRequest{
		Name:           "Tumble",
		CompetitionIDs: []uuid.UUID{uuid.New()},
	})

	suite.ErrorIs(err, apperrors.ErrCompetitionNotFound)
}

// TestCreateOppositionTeamInvalidEmail tests contact email validation
func (suite *OppositionTeamServiceTestSuite) TestCreateOppositionTeamInvalidEmail() {
	bad := "not-an-email"
	_, err := suite.service.CreateOppositionTeam(&service.CreateOppositionTeamRequest{Name: "Tumble", ContactEmail: &bad})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestListOppositionTeamsPassesFilter tests the list filter
func (suite *OppositionTeamServiceTestSuite) TestListOppositionTeamsPassesFilter() {
	competitionID := uuid.New()
	suite.mockRepo.EXPECT().
		List(repository.OppositionTeamFilter{CompetitionID: &competitionID, Query: "tum"}).
		Return([]models.OppositionTeam{*teamWithCompetitions(uuid.New(), "League")}, nil)

	responses, err := suite.service.ListOppositionTeams(service.OppositionTeamListParams{CompetitionID: &competitionID, Query: "tum"})

	suite.NoError(err)
	suite.Require().Len(responses, 1)
	suite.Equal("League", responses[0].CompetitionNames)
}

// TestUpdateOppositionTeamReplacesCompetitions tests updating with a competition list
func (suite *OppositionTeamServiceTestSuite) TestUpdateOppositionTeamReplacesCompetitions() {
	id := uuid.New()
	cup := uuid.New()
	existing := teamWithCompetitions(id, "League")
	updated := teamWithCompetitions(id, "Cup")
	ids := []uuid.UUID{cup}
	location := "Tumble"

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil),
		suite.mockRepo.EXPECT().Update(existing).Return(nil),
		suite.mockRepo.EXPECT().SetCompetitions(id, ids).Return(nil),
		suite.mockRepo.EXPECT().GetByID(id).Return(updated, nil),
	)

	response, err := suite.service.UpdateOppositionTeam(id, &service.UpdateOppositionTeamRequest{
		Location:       &location,
		CompetitionIDs: &ids,
	})

	suite.NoError(err)
	suite.Equal("Cup", response.CompetitionNames)
}

// TestSetCompetitionsTeamNotFound tests setting competitions on a missing team
func (suite *OppositionTeamServiceTestSuite) TestSetCompetitionsTeamNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.SetCompetitions(id, &service.SetCompetitionsRequest{})

	suite.ErrorIs(err, apperrors.ErrOppositionTeamNotFound)
}

// TestDeleteOppositionTeam tests deleting a team
func (suite *OppositionTeamServiceTestSuite) TestDeleteOppositionTeam() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.service.DeleteOppositionTeam(id))
}

// TestOppositionTeamServiceTestSuite runs the test suite
func TestOppositionTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OppositionTeamServiceTestSuite))
}
