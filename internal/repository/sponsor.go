package repository

import (
	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SponsorRepository handles database operations for sponsors
type SponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository creates a new sponsor repository
func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

// Create creates a new sponsor
func (r *SponsorRepository) Create(sponsor *models.Sponsor) error {
	return r.db.Create(sponsor).Error
}

// GetByID retrieves a sponsor by ID
func (r *SponsorRepository) GetByID(id uuid.UUID) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	err := r.db.First(&sponsor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// GetAll retrieves all sponsors ordered by name
func (r *SponsorRepository) GetAll() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := r.db.Order("name").Find(&sponsors).Error
	return sponsors, err
}

// Update updates a sponsor
func (r *SponsorRepository) Update(sponsor *models.Sponsor) error {
	return r.db.Save(sponsor).Error
}

// Delete deletes a sponsor
func (r *SponsorRepository) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&models.Sponsor{}, "id = ?", id))
}
