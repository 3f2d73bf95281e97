//go:build integration
// +build integration

package repository

import (
	"testing"

	"bowls-club-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OwnClubRepositoryTestSuite tests the club profile and sponsor repositories
type OwnClubRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OwnClubRepository
	sponsors      *SponsorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OwnClubRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOwnClubRepository(suite.baseTestSuite.DB)
	suite.sponsors = NewSponsorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnClubRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OwnClubRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OwnClubRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetEmpty tests reading the profile before one exists
func (suite *OwnClubRepositoryTestSuite) TestGetEmpty() {
	_, err := suite.repo.Get()
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Zero(count)
}

// TestCreateUpdateGet tests the profile lifecycle
func (suite *OwnClubRepositoryTestSuite) TestCreateUpdateGet() {
	club := suite.factories.OwnClub.Create()
	suite.Require().NoError(suite.repo.Create(club))

	club.Location = "Heol Y Parc, Cross Hands"
	suite.NoError(suite.repo.Update(club))

	stored, err := suite.repo.Get()
	suite.NoError(err)
	suite.Equal("Heol Y Parc, Cross Hands", stored.Location)
	suite.Equal(1923, *stored.EstablishedYear)

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestSponsorCRUD tests sponsor storage
func (suite *OwnClubRepositoryTestSuite) TestSponsorCRUD() {
	sponsor := suite.factories.Sponsor.Create()
	suite.Require().NoError(suite.sponsors.Create(sponsor))

	all, err := suite.sponsors.GetAll()
	suite.NoError(err)
	suite.Len(all, 1)

	sponsor.Website = "https://new.example.com"
	suite.NoError(suite.sponsors.Update(sponsor))
	stored, err := suite.sponsors.GetByID(sponsor.ID)
	suite.NoError(err)
	suite.Equal("https://new.example.com", stored.Website)

	suite.NoError(suite.sponsors.Delete(sponsor.ID))
	suite.ErrorIs(suite.sponsors.Delete(sponsor.ID), gorm.ErrRecordNotFound)
}

// TestOwnClubRepositoryTestSuite runs the test suite
func TestOwnClubRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OwnClubRepositoryTestSuite))
}
