package repository

import (
	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository handles database operations for membership payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a payment
func (r *PaymentRepository) Create(payment *models.MembershipPayment) error {
	return r.db.Omit("Member").Create(payment).Error
}

// GetByMemberID retrieves a member's payments, newest first
func (r *PaymentRepository) GetByMemberID(memberID uuid.UUID) ([]models.MembershipPayment, error) {
	var payments []models.MembershipPayment
	err := r.db.Where("member_id = ?", memberID).Order("date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// Delete deletes a payment
func (r *PaymentRepository) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&models.MembershipPayment{}, "id = ?", id))
}
