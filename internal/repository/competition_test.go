//go:build integration
// +build integration

package repository

import (
	"testing"

	"bowls-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CompetitionRepositoryTestSuite tests the CompetitionRepository
type CompetitionRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CompetitionRepository
	teams         *OppositionTeamRepository
	matches       *MatchRepository
	rinks         *RinkRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CompetitionRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewCompetitionRepository(db)
	suite.teams = NewOppositionTeamRepository(db)
	suite.matches = NewMatchRepository(db)
	suite.rinks = NewRinkRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CompetitionRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CompetitionRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CompetitionRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests creating and reading back a competition
func (suite *CompetitionRepositoryTestSuite) TestCreateAndGet() {
	competition := suite.factories.Competition.WithName("Over 60s Cup")
	suite.Require().NoError(suite.repo.Create(competition))

	byID, err := suite.repo.GetByID(competition.ID)
	suite.NoError(err)
	suite.Equal("Over 60s Cup", byID.Name)

	byName, err := suite.repo.GetByName("Over 60s Cup")
	suite.NoError(err)
	suite.Equal(competition.ID, byName.ID)
}

// TestGetAllOrderedByName tests listing competitions
func (suite *CompetitionRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Competition.WithName("Pairs")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Competition.WithName("Fours")))

	competitions, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Require().Len(competitions, 2)
	suite.Equal("Fours", competitions[0].Name)
	suite.Equal("Pairs", competitions[1].Name)
}

// TestDeleteCascades tests that deleting a competition removes its matches, their rinks and its opposition links
func (suite *CompetitionRepositoryTestSuite) TestDeleteCascades() {
	competition := suite.factories.Competition.Create()
	suite.Require().NoError(suite.repo.Create(competition))
	team := suite.factories.OppositionTeam.Create()
	suite.Require().NoError(suite.teams.Create(team, []uuid.UUID{competition.ID}))
	match := suite.factories.Match.WithFixture(competition.ID, team.ID)
	suite.Require().NoError(suite.matches.Create(match))
	rink := suite.factories.Rink.ForMatch(match.ID)
	suite.Require().NoError(suite.rinks.Create(rink, nil))

	suite.NoError(suite.repo.Delete(competition.ID))

	_, err := suite.matches.GetByID(match.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.rinks.GetByID(rink.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	stillThere, err := suite.teams.GetByID(team.ID)
	suite.NoError(err)
	suite.Empty(stillThere.Competitions)
}

// TestDeleteNotFound tests deleting a missing competition
func (suite *CompetitionRepositoryTestSuite) TestDeleteNotFound() {
	suite.ErrorIs(suite.repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

// TestCompetitionRepositoryTestSuite runs the test suite
func TestCompetitionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CompetitionRepositoryTestSuite))
}
