package repository

import (
	"fmt"

	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OppositionTeamRepository handles database operations for opposition teams
type OppositionTeamRepository struct {
	db *gorm.DB
}

// NewOppositionTeamRepository creates a new opposition team repository
func NewOppositionTeamRepository(db *gorm.DB) *OppositionTeamRepository {
	return &OppositionTeamRepository{db: db}
}

// Create creates a new opposition team linked to the given competitions
func (r *OppositionTeamRepository) Create(team *models.OppositionTeam, competitionIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Competitions", "Matches").Create(team).Error; err != nil {
			return err
		}
		return linkCompetitions(tx, team.ID, competitionIDs)
	})
}

// GetByID retrieves an opposition team with its competitions
func (r *OppositionTeamRepository) GetByID(id uuid.UUID) (*models.OppositionTeam, error) {
	var team models.OppositionTeam
	err := r.db.Preload("Competitions").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves an opposition team by its exact name
func (r *OppositionTeamRepository) GetByName(name string) (*models.OppositionTeam, error) {
	var team models.OppositionTeam
	err := r.db.Preload("Competitions").First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves opposition teams with their competitions, optionally filtered
func (r *OppositionTeamRepository) List(filter OppositionTeamFilter) ([]models.OppositionTeam, error) {
	var teams []models.OppositionTeam

	query := r.db.Model(&models.OppositionTeam{}).Preload("Competitions")
	if filter.CompetitionID != nil {
		query = query.Where("id IN (?)",
			r.db.Table("opposition_team_competitions").Select("opposition_team_id").Where("competition_id = ?", *filter.CompetitionID))
	}
	if filter.Query != "" {
		p := likePattern(filter.Query)
		query = query.Where("name ILIKE ? OR location ILIKE ? OR contact_email ILIKE ?", p, p, p)
	}

	if err := query.Order("name").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates an opposition team's own fields
func (r *OppositionTeamRepository) Update(team *models.OppositionTeam) error {
	return r.db.Omit("Competitions", "Matches").Save(team).Error
}

// SetCompetitions replaces the set of competitions a team is entered in
func (r *OppositionTeamRepository) SetCompetitions(id uuid.UUID, competitionIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.OppositionTeam{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Exec(`DELETE FROM opposition_team_competitions WHERE opposition_team_id = ?`, id).Error; err != nil {
			return err
		}
		return linkCompetitions(tx, id, competitionIDs)
	})
}

// Delete deletes an opposition team together with its matches
func (r *OppositionTeamRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM opposition_team_competitions WHERE opposition_team_id = ?`, id).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.OppositionTeam{}, "id = ?", id))
	})
}

func linkCompetitions(tx *gorm.DB, teamID uuid.UUID, competitionIDs []uuid.UUID) error {
	ids := uniqueIDs(competitionIDs)
	if len(ids) == 0 {
		return nil
	}

	var found int64
	if err := tx.Model(&models.Competition{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return err
	}
	if found != int64(len(ids)) {
		return fmt.Errorf("link competitions: %w", gorm.ErrRecordNotFound)
	}

	rows := make([]map[string]interface{}, 0, len(ids))
	for _, competitionID := range ids {
		rows = append(rows, map[string]interface{}{
			"opposition_team_id": teamID,
			"competition_id":     competitionID,
		})
	}
	return tx.Table("opposition_team_competitions").Create(rows).Error
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
