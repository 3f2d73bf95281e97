package service_test

import (
	"testing"
	"time"

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

// SiteServiceTestSuite defines the test suite for SiteService
type SiteServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCompetitions *mocks.MockCompetitionRepositoryInterface
	mockMatches      *mocks.MockMatchRepositoryInterface
	mockMembers      *mocks.MockMemberRepositoryInterface
	mockSponsors     *mocks.MockSponsorRepositoryInterface
	mockClubs        *mocks.MockOwnClubRepositoryInterface
	service          *service.SiteService
}

// SetupTest sets up the test suite
func (suite *SiteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompetitions = mocks.NewMockCompetitionRepositoryInterface(suite.ctrl)
	suite.mockMatches = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockSponsors = mocks.NewMockSponsorRepositoryInterface(suite.ctrl)
	suite.mockClubs = mocks.NewMockOwnClubRepositoryInterface(suite.ctrl)
	suite.service = service.NewSiteService(
		suite.mockCompetitions,
		suite.mockMatches,
		suite.mockMembers,
		suite.mockSponsors,
		suite.mockClubs,
		"Crosshands",
	)
}

// TearDownTest cleans up after each test
func (suite *SiteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestFixturesResultsUnknownCompetition tests the not-found path
func (suite *SiteServiceTestSuite) TestFixturesResultsUnknownCompetition() {
	id := uuid.New()
	suite.mockCompetitions.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.GetFixturesResults(id)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrCompetitionNotFound)
}

// TestFixturesResultsNoMatches tests a competition that has no fixtures yet
func (suite *SiteServiceTestSuite) TestFixturesResultsNoMatches() {
	id := uuid.New()
	suite.mockCompetitions.EXPECT().GetByID(id).Return(&models.Competition{BaseModel: models.BaseModel{ID: id}, Name: "Cup"}, nil)
	suite.mockMatches.EXPECT().GetByCompetitionID(id).Return(nil, nil)
	suite.mockClubs.EXPECT().Get().Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.service.GetFixturesResults(id)

	suite.NoError(err)
	suite.Equal("Cup", result.Competition.Name)
	suite.NotNil(result.Matches)
	suite.Empty(result.Matches)
}

// TestFixturesResultsWithScores tests rows for played and unplayed matches
func (suite *SiteServiceTestSuite) TestFixturesResultsWithScores() {
	id := uuid.New()
	competition := &models.Competition{BaseModel: models.BaseModel{ID: id}, Name: "Carmarthenshire League"}
	ours, theirs := 21, 14
	matches := []models.Match{
		{
			Date:            time.Date(2024, 5, 4, 14, 0, 0, 0, time.UTC),
			HomeOrAway:      models.Away,
			CrosshandsScore: &ours,
			OppositionScore: &theirs,
			Competition:     competition,
			OppositionTeam:  &models.OppositionTeam{Name: "Tumble"},
		},
		{
			Date:           time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC),
			HomeOrAway:     models.Home,
			Competition:    competition,
			OppositionTeam: &models.OppositionTeam{Name: "Pontyates"},
		},
	}
	suite.mockCompetitions.EXPECT().GetByID(id).Return(competition, nil)
	suite.mockMatches.EXPECT().GetByCompetitionID(id).Return(matches, nil)
	suite.mockClubs.EXPECT().Get().Return(&models.OwnClub{ShortName: "Cross Hands BC"}, nil)

	result, err := suite.service.GetFixturesResults(id)

	suite.Require().NoError(err)
	suite.Require().Len(result.Matches, 2)
	suite.Equal("Tumble vs Cross Hands BC - Carmarthenshire League", result.Matches[0].Fixture)
	suite.True(result.Matches[0].Played)
	suite.Equal("win", result.Matches[0].Result)
	suite.Equal("Tumble", result.Matches[0].Opposition)
	suite.Equal("Cross Hands BC vs Pontyates - Carmarthenshire League", result.Matches[1].Fixture)
	suite.False(result.Matches[1].Played)
	suite.Empty(result.Matches[1].Result)
}

// TestListMembersGroupsSquads tests squad grouping and order
func (suite *SiteServiceTestSuite) TestListMembersGroupsSquads() {
	members := []models.Member{
		{FirstName: "Gwen", LastName: "Davies", Team: models.MemberTeamLadies},
		{FirstName: "Dai", LastName: "Jones", Team: models.MemberTeamMen},
		{FirstName: "Rhys", LastName: "Evans", Team: models.MemberTeamMen},
	}
	suite.mockMembers.EXPECT().List(repository.MemberFilter{}).Return(members, nil)

	squads, err := suite.service.ListMembers()

	suite.Require().NoError(err)
	suite.Require().Len(squads, 2)
	suite.Equal("Men", squads[0].Team)
	suite.Len(squads[0].Members, 2)
	suite.Equal("Ladies", squads[1].Team)
	suite.Equal("Gwen", squads[1].Members[0].FirstName)
}

// TestGetClubProfileMissing tests the pages before a profile is created
func (suite *SiteServiceTestSuite) TestGetClubProfileMissing() {
	suite.mockClubs.EXPECT().Get().Return(nil, gorm.ErrRecordNotFound)

	club, err := suite.service.GetClubProfile()

	suite.NoError(err)
	suite.Nil(club)
}

// TestListSponsors tests the sponsors listing
func (suite *SiteServiceTestSuite) TestListSponsors() {
	suite.mockSponsors.EXPECT().GetAll().Return([]models.Sponsor{{Name: "Hollies Bakery"}}, nil)

	sponsors, err := suite.service.ListSponsors()

	suite.NoError(err)
	suite.Len(sponsors, 1)
}

// TestSiteServiceTestSuite runs the test suite
func TestSiteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SiteServiceTestSuite))
}
