package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MembershipPayment is a subscription payment made by a member
type MembershipPayment struct {
	BaseModel
	MemberID uuid.UUID       `json:"member_id" gorm:"type:uuid;not null;index"`
	Date     time.Time       `json:"date" gorm:"type:date;not null"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`

	// Relationships
	Member *Member `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for MembershipPayment
func (MembershipPayment) TableName() string {
	return "membership_payments"
}
