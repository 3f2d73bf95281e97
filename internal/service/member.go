package service

import (
	"fmt"
	"time"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberService handles business logic for members and their membership payments
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	payments  repository.PaymentRepositoryInterface
	validator *validator.Validate
}

// Ensure MemberService implements MemberServiceInterface
var _ MemberServiceInterface = (*MemberService)(nil)

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, payments repository.PaymentRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		payments:  payments,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=50" example:"Alice"`
	LastName  string  `json:"last_name" validate:"required,max=50" example:"Doe"`
	Team      string  `json:"team" validate:"required,oneof=Men Ladies Social" example:"Ladies"`
	Role      *string `json:"role" validate:"omitempty,oneof=Captain Vice-Captain Player Social" example:"Player" default:"Player"` // Optional: defaults to Player; always Social for the Social team
	Email     string  `json:"email" validate:"required,email,max=254"`
	Phone     string  `json:"phone" validate:"required,max=15"`
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Team      *string `json:"team" validate:"omitempty,oneof=Men Ladies Social"`
	Role      *string `json:"role" validate:"omitempty,oneof=Captain Vice-Captain Player Social"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	Phone     *string `json:"phone" validate:"omitempty,max=15"`
}

// MemberListParams narrows a member listing
type MemberListParams struct {
	Team  string
	Role  string
	Query string
}

// CreatePaymentRequest represents a membership payment being recorded
type CreatePaymentRequest struct {
	Date   string          `json:"date" validate:"required,datetime=2006-01-02" example:"2024-04-01"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0" swaggertype:"string" example:"45.00"`
}

// PaymentResponse represents the response data for a membership payment
type PaymentResponse struct {
	ID       uuid.UUID       `json:"id"`
	MemberID uuid.UUID       `json:"member_id"`
	Date     string          `json:"date" example:"2024-04-01"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"45.00"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID        uuid.UUID         `json:"id"`
	FirstName string            `json:"first_name"`
	LastName  string            `json:"last_name"`
	FullName  string            `json:"full_name"`
	Team      string            `json:"team"`
	Role      string            `json:"role"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Payments  []PaymentResponse `json:"payments,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// CreateMember creates a new member. Members of the Social team are always given the Social role.
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	role := models.MemberRolePlayer
	if req.Role != nil {
		role = models.MemberRole(*req.Role)
	}

	member := &models.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Team:      models.MemberTeam(req.Team),
		Role:      role,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	member.NormalizeRole()

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetMemberByID retrieves a member together with their payments
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetWithPayments(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrMemberNotFound, "get member")
	}
	return s.toResponse(member), nil
}

// ListMembers lists members, optionally by team, role or search text
func (s *MemberService) ListMembers(params MemberListParams) ([]MemberResponse, error) {
	members, err := s.repo.List(repository.MemberFilter{
		Team:  models.MemberTeam(params.Team),
		Role:  models.MemberRole(params.Role),
		Query: params.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *s.toResponse(&members[i])
	}
	return responses, nil
}

// UpdateMember updates an existing member, reapplying the Social role rule
func (s *MemberService) UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrMemberNotFound, "get member")
	}

	if req.FirstName != nil {
		member.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		member.LastName = *req.LastName
	}
	if req.Team != nil {
		member.Team = models.MemberTeam(*req.Team)
	}
	if req.Role != nil {
		member.Role = models.MemberRole(*req.Role)
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	member.NormalizeRole()

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.toResponse(member), nil
}

// DeleteMember deletes a member along with their payments and rink places
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrMemberNotFound, "delete member")
	}
	return nil
}

// AddPayment records a membership payment against a member
func (s *MemberService) AddPayment(memberID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(memberID); err != nil {
		return nil, lookupErr(err, apperrors.ErrMemberNotFound, "get member")
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be YYYY-MM-DD")
	}

	payment := &models.MembershipPayment{
		MemberID: memberID,
		Date:     date,
		Amount:   req.Amount.Round(2),
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return toPaymentResponse(payment), nil
}

// ListPayments lists a member's payments, newest first
func (s *MemberService) ListPayments(memberID uuid.UUID) ([]PaymentResponse, error) {
	if _, err := s.repo.GetByID(memberID); err != nil {
		return nil, lookupErr(err, apperrors.ErrMemberNotFound, "get member")
	}

	payments, err := s.payments.GetByMemberID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *toPaymentResponse(&payments[i])
	}
	return responses, nil
}

// DeletePayment deletes a single payment
func (s *MemberService) DeletePayment(id uuid.UUID) error {
	if err := s.payments.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrPaymentNotFound, "delete payment")
	}
	return nil
}

func (s *MemberService) toResponse(member *models.Member) *MemberResponse {
	var payments []PaymentResponse
	for i := range member.Payments {
		payments = append(payments, *toPaymentResponse(&member.Payments[i]))
	}

	return &MemberResponse{
		ID:        member.ID,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		FullName:  member.FullName(),
		Team:      string(member.Team),
		Role:      string(member.Role),
		Email:     member.Email,
		Phone:     member.Phone,
		Payments:  payments,
		CreatedAt: formatTimestamp(member.CreatedAt),
		UpdatedAt: formatTimestamp(member.UpdatedAt),
	}
}

func toPaymentResponse(payment *models.MembershipPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:       payment.ID,
		MemberID: payment.MemberID,
		Date:     payment.Date.Format(dateLayout),
		Amount:   payment.Amount,
	}
}
