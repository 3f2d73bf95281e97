package repository

import (
	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members.
// Create and Update apply Member.NormalizeRole before writing, so the
// team-derived role holds whichever path a write comes through.
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	member.NormalizeRole()
	return r.db.Omit("Payments", "Rinks").Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithPayments retrieves a member with their payments, newest first
func (r *MemberRepository) GetWithPayments(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("date DESC")
	}).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves members ordered by team and surname
func (r *MemberRepository) List(filter MemberFilter) ([]models.Member, error) {
	var members []models.Member

	query := r.db.Model(&models.Member{})
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Query != "" {
		p := likePattern(filter.Query)
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", p, p, p)
	}

	if err := query.Order("team").Order("last_name").Order("first_name").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	member.NormalizeRole()
	return r.db.Omit("Payments", "Rinks").Save(member).Error
}

// Delete deletes a member, their payments and their rink places
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM rink_players WHERE member_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.MembershipPayment{}).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Member{}, "id = ?", id))
	})
}
