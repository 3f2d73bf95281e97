package repository

import (
	"bowls-club-backend/internal/database/models"

	"gorm.io/gorm"
)

// OwnClubRepository handles database operations for the club profile
type OwnClubRepository struct {
	db *gorm.DB
}

// NewOwnClubRepository creates a new club profile repository
func NewOwnClubRepository(db *gorm.DB) *OwnClubRepository {
	return &OwnClubRepository{db: db}
}

// Create creates the club profile
func (r *OwnClubRepository) Create(club *models.OwnClub) error {
	return r.db.Create(club).Error
}

// Get retrieves the club profile, the earliest if more than one exists
func (r *OwnClubRepository) Get() (*models.OwnClub, error) {
	var club models.OwnClub
	err := r.db.Order("created_at").First(&club).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// Count returns the number of club profiles
func (r *OwnClubRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.OwnClub{}).Count(&count).Error
	return count, err
}

// Update updates the club profile
func (r *OwnClubRepository) Update(club *models.OwnClub) error {
	return r.db.Save(club).Error
}
