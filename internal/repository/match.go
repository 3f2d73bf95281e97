package repository

import (
	"time"

	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) withRelations() *gorm.DB {
	return r.db.Preload("Competition").Preload("OppositionTeam").Preload("Rink.Players")
}

// Create creates a new match
func (r *MatchRepository) Create(match *models.Match) error {
	return r.db.Omit("Competition", "OppositionTeam", "Rink").Create(match).Error
}

// GetByID retrieves a match with its competition, opposition and rink
func (r *MatchRepository) GetByID(id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.withRelations().First(&match, "matches.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByCompetitionID retrieves all matches in a competition in date order
func (r *MatchRepository) GetByCompetitionID(competitionID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.withRelations().Where("competition_id = ?", competitionID).Order("date").Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// List retrieves matches, most recent first, optionally filtered
func (r *MatchRepository) List(filter MatchFilter) ([]models.Match, error) {
	var matches []models.Match

	query := r.withRelations().Model(&models.Match{})
	if filter.CompetitionID != nil {
		query = query.Where("matches.competition_id = ?", *filter.CompetitionID)
	}
	if filter.Date != nil {
		day := filter.Date.Truncate(24 * time.Hour)
		query = query.Where("matches.date >= ? AND matches.date < ?", day, day.Add(24*time.Hour))
	}
	if filter.HomeOrAway != "" {
		query = query.Where("matches.home_or_away = ?", filter.HomeOrAway)
	}
	if filter.Query != "" {
		p := likePattern(filter.Query)
		query = query.
			Joins("JOIN opposition_teams ON opposition_teams.id = matches.opposition_team_id").
			Joins("JOIN competitions ON competitions.id = matches.competition_id").
			Where("opposition_teams.name ILIKE ? OR competitions.name ILIKE ?", p, p)
	}

	if err := query.Order("matches.date DESC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

// Update updates a match's own fields
func (r *MatchRepository) Update(match *models.Match) error {
	return r.db.Omit("Competition", "OppositionTeam", "Rink").Save(match).Error
}

// Delete deletes a match; its rink goes with it
func (r *MatchRepository) Delete(id uuid.UUID) error {
	return affected(r.db.Delete(&models.Match{}, "id = ?", id))
}
