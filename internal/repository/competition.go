package repository

import (
	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetitionRepository handles database operations for competitions
type CompetitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository creates a new competition repository
func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

// Create creates a new competition
func (r *CompetitionRepository) Create(competition *models.Competition) error {
	return r.db.Omit("Matches", "OppositionTeams").Create(competition).Error
}

// GetByID retrieves a competition by ID
func (r *CompetitionRepository) GetByID(id uuid.UUID) (*models.Competition, error) {
	var competition models.Competition
	err := r.db.First(&competition, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

// GetByName retrieves a competition by its exact name
func (r *CompetitionRepository) GetByName(name string) (*models.Competition, error) {
	var competition models.Competition
	err := r.db.First(&competition, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &competition, nil
}

// GetAll retrieves all competitions
func (r *CompetitionRepository) GetAll() ([]models.Competition, error) {
	var competitions []models.Competition
	err := r.db.Order("name").Find(&competitions).Error
	if err != nil {
		return nil, err
	}
	return competitions, nil
}

// Update updates a competition
func (r *CompetitionRepository) Update(competition *models.Competition) error {
	return r.db.Omit("Matches", "OppositionTeams").Save(competition).Error
}

// Delete deletes a competition together with its matches and opposition links
func (r *CompetitionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM opposition_team_competitions WHERE competition_id = ?`, id).Error; err != nil {
			return err
		}
		// matches, and through them their rinks, go with the FK cascade
		return affected(tx.Delete(&models.Competition{}, "id = ?", id))
	})
}
