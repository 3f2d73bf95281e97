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

// OppositionTeamRepositoryTestSuite tests the OppositionTeamRepository
type OppositionTeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OppositionTeamRepository
	competitions  *CompetitionRepository
	matches       *MatchRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OppositionTeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewOppositionTeamRepository(db)
	suite.competitions = NewCompetitionRepository(db)
	suite.matches = NewMatchRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OppositionTeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OppositionTeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OppositionTeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithCompetitions tests creating a team linked to competitions
func (suite *OppositionTeamRepositoryTestSuite) TestCreateWithCompetitions() {
	league := suite.factories.Competition.WithName("League")
	cup := suite.factories.Competition.WithName("Cup")
	suite.Require().NoError(suite.competitions.Create(league))
	suite.Require().NoError(suite.competitions.Create(cup))

	team := suite.factories.OppositionTeam.Create()
	err := suite.repo.Create(team, []uuid.UUID{league.ID, cup.ID, league.ID})
	suite.NoError(err)

	stored, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Len(stored.Competitions, 2)
}

// TestCreateWithUnknownCompetition tests that a missing competition aborts the create
func (suite *OppositionTeamRepositoryTestSuite) TestCreateWithUnknownCompetition() {
	team := suite.factories.OppositionTeam.Create()

	err := suite.repo.Create(team, []uuid.UUID{uuid.New()})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSetCompetitions tests replacing a team's competitions
func (suite *OppositionTeamRepositoryTestSuite) TestSetCompetitions() {
	league := suite.factories.Competition.WithName("League")
	cup := suite.factories.Competition.WithName("Cup")
	suite.Require().NoError(suite.competitions.Create(league))
	suite.Require().NoError(suite.competitions.Create(cup))
	team := suite.factories.OppositionTeam.Create()
	suite.Require().NoError(suite.repo.Create(team, []uuid.UUID{league.ID}))

	suite.NoError(suite.repo.SetCompetitions(team.ID, []uuid.UUID{cup.ID}))

	stored, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Require().Len(stored.Competitions, 1)
	suite.Equal("Cup", stored.Competitions[0].Name)
}

// TestListFilters tests competition and search filters
func (suite *OppositionTeamRepositoryTestSuite) TestListFilters() {
	league := suite.factories.Competition.Create()
	suite.Require().NoError(suite.competitions.Create(league))
	inLeague := suite.factories.OppositionTeam.WithName("Ammanford")
	other := suite.factories.OppositionTeam.WithName("Llanelli")
	suite.Require().NoError(suite.repo.Create(inLeague, []uuid.UUID{league.ID}))
	suite.Require().NoError(suite.repo.Create(other, nil))

	byCompetition, err := suite.repo.List(OppositionTeamFilter{CompetitionID: &league.ID})
	suite.NoError(err)
	suite.Require().Len(byCompetition, 1)
	suite.Equal("Ammanford", byCompetition[0].Name)

	bySearch, err := suite.repo.List(OppositionTeamFilter{Query: "llan"})
	suite.NoError(err)
	suite.Require().Len(bySearch, 1)
	suite.Equal("Llanelli", bySearch[0].Name)
}

// TestDeleteCascadesMatches tests that deleting a team removes its matches but not its competitions
func (suite *OppositionTeamRepositoryTestSuite) TestDeleteCascadesMatches() {
	competition := suite.factories.Competition.Create()
	suite.Require().NoError(suite.competitions.Create(competition))
	team := suite.factories.OppositionTeam.Create()
	suite.Require().NoError(suite.repo.Create(team, []uuid.UUID{competition.ID}))
	match := suite.factories.Match.WithFixture(competition.ID, team.ID)
	suite.Require().NoError(suite.matches.Create(match))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.matches.GetByID(match.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.competitions.GetByID(competition.ID)
	suite.NoError(err)
}

// TestOppositionTeamRepositoryTestSuite runs the test suite
func TestOppositionTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OppositionTeamRepositoryTestSuite))
}
