//go:build integration
// +build integration

package repository

import (
	"testing"

	"bowls-club-backend/internal/database/models"
	"bowls-club-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	payments      *PaymentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.payments = NewPaymentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new member
func (suite *MemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.Member.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.NotZero(member.CreatedAt)
}

// TestCreateSocialMemberForcesSocialRole tests that Social team members are stored with the Social role
func (suite *MemberRepositoryTestSuite) TestCreateSocialMemberForcesSocialRole() {
	member := suite.factories.Member.WithTeam(models.MemberTeamSocial)
	member.Role = models.MemberRoleCaptain

	suite.Require().NoError(suite.repo.Create(member))

	stored, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleSocial, stored.Role)
}

// TestUpdateToSocialTeamForcesSocialRole tests role normalisation on update
func (suite *MemberRepositoryTestSuite) TestUpdateToSocialTeamForcesSocialRole() {
	member := suite.factories.Member.WithRole(models.MemberRoleViceCaptain)
	suite.Require().NoError(suite.repo.Create(member))

	member.Team = models.MemberTeamSocial
	suite.Require().NoError(suite.repo.Update(member))

	stored, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleSocial, stored.Role)
}

// TestLadiesCaptainKeepsRole tests that non-Social members keep their supplied role
func (suite *MemberRepositoryTestSuite) TestLadiesCaptainKeepsRole() {
	member := suite.factories.Member.WithTeam(models.MemberTeamLadies)
	member.Role = models.MemberRoleCaptain
	suite.Require().NoError(suite.repo.Create(member))

	stored, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.MemberRoleCaptain, stored.Role)
}

// TestGetByIDNotFound tests retrieving a missing member
func (suite *MemberRepositoryTestSuite) TestGetByIDNotFound() {
	member, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(member)
}

// TestList tests filtering and ordering members
func (suite *MemberRepositoryTestSuite) TestList() {
	zed := suite.factories.Member.Create()
	zed.LastName = "Zed"
	abel := suite.factories.Member.Create()
	abel.LastName = "Abel"
	lady := suite.factories.Member.WithTeam(models.MemberTeamLadies)
	lady.FirstName = "Morwenna"
	for _, m := range []*models.Member{zed, abel, lady} {
		suite.Require().NoError(suite.repo.Create(m))
	}

	all, err := suite.repo.List(MemberFilter{})
	suite.NoError(err)
	suite.Len(all, 3)

	men, err := suite.repo.List(MemberFilter{Team: models.MemberTeamMen})
	suite.NoError(err)
	suite.Require().Len(men, 2)
	suite.Equal("Abel", men[0].LastName)
	suite.Equal("Zed", men[1].LastName)

	found, err := suite.repo.List(MemberFilter{Query: "morw"})
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(lady.ID, found[0].ID)
}

// TestGetByEmail tests looking a member up by email
func (suite *MemberRepositoryTestSuite) TestGetByEmail() {
	member := suite.factories.Member.Create()
	member.Email = "dai.jones@example.com"
	suite.Require().NoError(suite.repo.Create(member))

	found, err := suite.repo.GetByEmail("dai.jones@example.com")
	suite.NoError(err)
	suite.Equal(member.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListWildcardsMatchLiterally tests that % and _ in search text are not LIKE wildcards
func (suite *MemberRepositoryTestSuite) TestListWildcardsMatchLiterally() {
	plain := suite.factories.Member.Create()
	plain.Email = "plain@example.com"
	underscored := suite.factories.Member.Create()
	underscored.Email = "under_score@example.com"
	for _, m := range []*models.Member{plain, underscored} {
		suite.Require().NoError(suite.repo.Create(m))
	}

	found, err := suite.repo.List(MemberFilter{Query: "_"})
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(underscored.ID, found[0].ID)

	found, err = suite.repo.List(MemberFilter{Query: "%"})
	suite.NoError(err)
	suite.Empty(found)
}

// TestDeleteCascadesPayments tests that deleting a member removes their payments
func (suite *MemberRepositoryTestSuite) TestDeleteCascadesPayments() {
	member := suite.factories.Member.Create()
	suite.Require().NoError(suite.repo.Create(member))
	payment := suite.factories.Payment.WithMember(member.ID)
	suite.Require().NoError(suite.payments.Create(payment))

	withPayments, err := suite.repo.GetWithPayments(member.ID)
	suite.Require().NoError(err)
	suite.Len(withPayments.Payments, 1)

	suite.NoError(suite.repo.Delete(member.ID))

	remaining, err := suite.payments.GetByMemberID(member.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

// TestDeleteNotFound tests deleting a missing member
func (suite *MemberRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestMemberRepositoryTestSuite runs the test suite
func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
