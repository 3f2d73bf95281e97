package service_test

import (
	"testing"
	"time"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/mocks"
	"bowls-club-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MemberServiceTestSuite defines the test suite for MemberService
type MemberServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberRepo  *mocks.MockMemberRepositoryInterface
	mockPaymentRepo *mocks.MockPaymentRepositoryInterface
	memberService   *service.MemberService
}

// SetupTest sets up the test suite
func (suite *MemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockPaymentRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.memberService = service.NewMemberService(suite.mockMemberRepo, suite.mockPaymentRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *MemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func strPtr(s string) *string { return &s }

// TestCreateSocialMemberGetsSocialRole tests that a Social team member is stored as Social whatever role was asked for
func (suite *MemberServiceTestSuite) TestCreateSocialMemberGetsSocialRole() {
	req := &service.CreateMemberRequest{
		FirstName: "Alice",
		LastName:  "Doe",
		Team:      "Social",
		Role:      strPtr("Captain"),
		Email:     "alice@example.com",
		Phone:     "01269000000",
	}

	suite.mockMemberRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Member) error {
			assert.Equal(suite.T(), models.MemberRoleSocial, m.Role)
			return nil
		}).
		Times(1)

	response, err := suite.memberService.CreateMember(req)

	suite.NoError(err)
	suite.Equal("Social", response.Role)
	suite.Equal("Alice Doe", response.FullName)
}

// TestCreateMemberKeepsRoleOutsideSocial tests that other teams keep the supplied role
func (suite *MemberServiceTestSuite) TestCreateMemberKeepsRoleOutsideSocial() {
	for _, team := range []string{"Men", "Ladies"} {
		for _, role := range []string{"Captain", "Vice-Captain", "Player", "Social"} {
			req := &service.CreateMemberRequest{
				FirstName: "Bryn",
				LastName:  "Jones",
				Team:      team,
				Role:      strPtr(role),
				Email:     "bryn@example.com",
				Phone:     "01269000000",
			}
			suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

			response, err := suite.memberService.CreateMember(req)

			suite.NoError(err)
			suite.Equal(role, response.Role, "team %s", team)
		}
	}
}

// TestCreateMemberDefaultsToPlayer tests the default role
func (suite *MemberServiceTestSuite) TestCreateMemberDefaultsToPlayer() {
	req := &service.CreateMemberRequest{
		FirstName: "Bryn",
		LastName:  "Jones",
		Team:      "Men",
		Email:     "bryn@example.com",
		Phone:     "01269000000",
	}
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.memberService.CreateMember(req)

	suite.NoError(err)
	suite.Equal("Player", response.Role)
}

// TestCreateMemberValidationError tests rejecting an unknown team
func (suite *MemberServiceTestSuite) TestCreateMemberValidationError() {
	req := &service.CreateMemberRequest{
		FirstName: "Bryn",
		LastName:  "Jones",
		Team:      "Juniors",
		Email:     "bryn@example.com",
		Phone:     "01269000000",
	}

	response, err := suite.memberService.CreateMember(req)

	suite.Error(err)
	suite.Nil(response)
	suite.Contains(err.Error(), "validation failed")
}

// TestUpdateMemberMovingToSocial tests that moving a captain to the Social team makes them Social
func (suite *MemberServiceTestSuite) TestUpdateMemberMovingToSocial() {
	id := uuid.New()
	existing := &models.Member{
		BaseModel: models.BaseModel{ID: id},
		FirstName: "Carys",
		LastName:  "Evans",
		Team:      models.MemberTeamLadies,
		Role:      models.MemberRoleCaptain,
	}
	suite.mockMemberRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockMemberRepo.EXPECT().Update(existing).Return(nil)

	response, err := suite.memberService.UpdateMember(id, &service.UpdateMemberRequest{Team: strPtr("Social")})

	suite.NoError(err)
	suite.Equal("Social", response.Team)
	suite.Equal("Social", response.Role)
}

// TestGetMemberNotFound tests the not-found mapping
func (suite *MemberServiceTestSuite) TestGetMemberNotFound() {
	id := uuid.New()
	suite.mockMemberRepo.EXPECT().GetWithPayments(id).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.memberService.GetMemberByID(id)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

// TestGetMemberWithPayments tests that payments come back inline
func (suite *MemberServiceTestSuite) TestGetMemberWithPayments() {
	id := uuid.New()
	member := &models.Member{
		BaseModel: models.BaseModel{ID: id},
		FirstName: "Carys",
		LastName:  "Evans",
		Team:      models.MemberTeamLadies,
		Role:      models.MemberRolePlayer,
		Payments: []models.MembershipPayment{{
			MemberID: id,
			Date:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.RequireFromString("45.50"),
		}},
	}
	suite.mockMemberRepo.EXPECT().GetWithPayments(id).Return(member, nil)

	response, err := suite.memberService.GetMemberByID(id)

	suite.NoError(err)
	suite.Require().Len(response.Payments, 1)
	suite.Equal("2024-04-01", response.Payments[0].Date)
	suite.Equal("45.5", response.Payments[0].Amount.String())
}

// TestDeleteMemberNotFound tests deleting a missing member
func (suite *MemberServiceTestSuite) TestDeleteMemberNotFound() {
	id := uuid.New()
	suite.mockMemberRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.memberService.DeleteMember(id)

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

// TestAddPayment tests recording a payment
func (suite *MemberServiceTestSuite) TestAddPayment() {
	memberID := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(memberID).Return(&models.Member{BaseModel: models.BaseModel{ID: memberID}}, nil)
	suite.mockPaymentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.MembershipPayment) error {
			assert.Equal(suite.T(), memberID, p.MemberID)
			assert.True(suite.T(), p.Amount.Equal(decimal.RequireFromString("45.13")))
			return nil
		})

	response, err := suite.memberService.AddPayment(memberID, &service.CreatePaymentRequest{
		Date:   "2024-04-01",
		Amount: decimal.RequireFromString("45.125"),
	})

	suite.NoError(err)
	suite.Equal("2024-04-01", response.Date)
}

// TestAddPaymentRejectsNegativeAmount tests the non-negative amount rule
func (suite *MemberServiceTestSuite) TestAddPaymentRejectsNegativeAmount() {
	response, err := suite.memberService.AddPayment(uuid.New(), &service.CreatePaymentRequest{
		Date:   "2024-04-01",
		Amount: decimal.RequireFromString("-1.00"),
	})

	suite.Nil(response)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestAddPaymentRejectsBadDate tests the date format rule
func (suite *MemberServiceTestSuite) TestAddPaymentRejectsBadDate() {
	_, err := suite.memberService.AddPayment(uuid.New(), &service.CreatePaymentRequest{
		Date:   "01/04/2024",
		Amount: decimal.RequireFromString("10"),
	})

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestListPayments tests listing a member's payments
func (suite *MemberServiceTestSuite) TestListPayments() {
	memberID := uuid.New()
	suite.mockMemberRepo.EXPECT().GetByID(memberID).Return(&models.Member{}, nil)
	suite.mockPaymentRepo.EXPECT().GetByMemberID(memberID).Return([]models.MembershipPayment{
		{MemberID: memberID, Amount: decimal.NewFromInt(30)},
		{MemberID: memberID, Amount: decimal.NewFromInt(15)},
	}, nil)

	payments, err := suite.memberService.ListPayments(memberID)

	suite.NoError(err)
	suite.Len(payments, 2)
}

// TestDeletePaymentNotFound tests deleting a missing payment
func (suite *MemberServiceTestSuite) TestDeletePaymentNotFound() {
	id := uuid.New()
	suite.mockPaymentRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.memberService.DeletePayment(id), apperrors.ErrPaymentNotFound)
}

// TestMemberServiceTestSuite runs the test suite
func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
