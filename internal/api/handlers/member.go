package handlers

import (
	"net/http"

	"bowls-club-backend/internal/database/models"
	"bowls-club-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for members and their membership payments
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember creates a new member
// @Summary Create a new member
// @Description Create a club member.
// @Description
// @Description Optional Fields with Defaults:
// @Description - role: Defaults to 'Player' (valid values: Captain, Vice-Captain, Player, Social)
// @Description
// @Description Members of the Social team always get the Social role, whatever role is sent.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Description Get a member with their membership payments, newest first
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers lists members
// @Summary List members
// @Description List members by team then surname, optionally filtered by team and role and searched by name or email
// @Tags members
// @Produce json
// @Param team query string false "Team (Men, Ladies, Social)"
// @Param role query string false "Role (Captain, Vice-Captain, Player, Social)"
// @Param q query string false "Search text"
// @Success 200 {array} service.MemberResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	team, role := c.Query("team"), c.Query("role")
	if team != "" && !models.MemberTeam(team).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team filter"})
		return
	}
	if role != "" && !models.MemberRole(role).IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid role filter"})
		return
	}

	members, err := h.memberService.ListMembers(service.MemberListParams{
		Team:  team,
		Role:  role,
		Query: c.Query("q"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember updates a member
// @Summary Update member
// @Description Update a member. Moving a member to the Social team sets their role to Social.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	var req service.UpdateMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember deletes a member, their payments and their rink places
// @Summary Delete member
// @Tags members
// @Param id path string true "Member ID (UUID)"
// @Success 204 "Successfully deleted member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// AddPayment records a membership payment
// @Summary Record a membership payment
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param payment body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResponse "Successfully recorded payment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/payments [post]
func (h *MemberHandler) AddPayment(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	var req service.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.memberService.AddPayment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments lists a member's payments
// @Summary List membership payments
// @Tags members
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {array} service.PaymentResponse "Successfully retrieved payments"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id}/payments [get]
func (h *MemberHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c, "id", "member")
	if !ok {
		return
	}

	payments, err := h.memberService.ListPayments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// DeletePayment deletes a membership payment
// @Summary Delete membership payment
// @Tags members
// @Param id path string true "Payment ID (UUID)"
// @Success 204 "Successfully deleted payment"
// @Failure 400 {object} ErrorResponse "Invalid payment ID"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *MemberHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c, "id", "payment")
	if !ok {
		return
	}

	if err := h.memberService.DeletePayment(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
