package repository

import (
	"errors"
	"fmt"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RinkRepository handles database operations for rinks.
// Player changes run in a transaction holding the rink row lock, and every
// roster passes through models.Roster so a rink never holds more than
// models.MaxRinkPlayers members.
type RinkRepository struct {
	db *gorm.DB
}

// NewRinkRepository creates a new rink repository
func NewRinkRepository(db *gorm.DB) *RinkRepository {
	return &RinkRepository{db: db}
}

// Create creates a rink with its initial players
func (r *RinkRepository) Create(rink *models.Rink, playerIDs []uuid.UUID) error {
	roster, err := models.NewRoster(playerIDs...)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureMembersExist(tx, roster.IDs()); err != nil {
			return err
		}
		if err := tx.Omit("Players", "Match").Create(rink).Error; err != nil {
			return matchTaken(err)
		}
		return insertPlayers(tx, rink.ID, roster.IDs())
	})
}

// GetByID retrieves a rink with its players and match
func (r *RinkRepository) GetByID(id uuid.UUID) (*models.Rink, error) {
	var rink models.Rink
	err := r.db.Preload("Players").Preload("Match.OppositionTeam").Preload("Match.Competition").
		First(&rink, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rink, nil
}

// GetByMatchID retrieves the rink assigned to a match
func (r *RinkRepository) GetByMatchID(matchID uuid.UUID) (*models.Rink, error) {
	var rink models.Rink
	err := r.db.Preload("Players").First(&rink, "match_id = ?", matchID).Error
	if err != nil {
		return nil, err
	}
	return &rink, nil
}

// GetAll retrieves all rinks ordered by number
func (r *RinkRepository) GetAll() ([]models.Rink, error) {
	var rinks []models.Rink
	err := r.db.Preload("Players").Preload("Match.OppositionTeam").Preload("Match.Competition").
		Order("number").Find(&rinks).Error
	if err != nil {
		return nil, err
	}
	return rinks, nil
}

// Update updates a rink's number and match assignment
func (r *RinkRepository) Update(rink *models.Rink) error {
	return matchTaken(r.db.Omit("Players", "Match").Save(rink).Error)
}

// matchTaken reports a violation of the one-rink-per-match index as ErrRinkMatchTaken
func matchTaken(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrRinkMatchTaken
	}
	return err
}

// SetPlayers replaces a rink's players
func (r *RinkRepository) SetPlayers(id uuid.UUID, playerIDs []uuid.UUID) error {
	roster, err := models.NewRoster(playerIDs...)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockRink(tx, id); err != nil {
			return err
		}
		if err := ensureMembersExist(tx, roster.IDs()); err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM rink_players WHERE rink_id = ?`, id).Error; err != nil {
			return err
		}
		return insertPlayers(tx, id, roster.IDs())
	})
}

// AddPlayer puts a member on a rink. Adding a member already on the rink is a no-op.
func (r *RinkRepository) AddPlayer(id, memberID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockRink(tx, id); err != nil {
			return err
		}
		if err := ensureMembersExist(tx, []uuid.UUID{memberID}); err != nil {
			return err
		}

		roster, err := currentRoster(tx, id)
		if err != nil {
			return err
		}
		if roster.Contains(memberID) {
			return nil
		}
		if err := roster.Add(memberID); err != nil {
			return err
		}
		return insertPlayers(tx, id, []uuid.UUID{memberID})
	})
}

// RemovePlayer takes a member off a rink
func (r *RinkRepository) RemovePlayer(id, memberID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockRink(tx, id); err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM rink_players WHERE rink_id = ? AND member_id = ?`, id, memberID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMemberNotOnRink
		}
		return nil
	})
}

// Delete deletes a rink and its player assignments
func (r *RinkRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM rink_players WHERE rink_id = ?`, id).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Rink{}, "id = ?", id))
	})
}

// lockRink takes the row lock that serialises roster changes on a rink
func lockRink(tx *gorm.DB, id uuid.UUID) error {
	var rink models.Rink
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&rink, "id = ?", id).Error
}

func currentRoster(tx *gorm.DB, id uuid.UUID) (models.Roster, error) {
	var ids []uuid.UUID
	if err := tx.Table("rink_players").Where("rink_id = ?", id).Pluck("member_id", &ids).Error; err != nil {
		return models.Roster{}, err
	}
	return models.NewRoster(ids...)
}

func ensureMembersExist(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&models.Member{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperrors.ErrRinkPlayerNotFound
	}
	return nil
}

func insertPlayers(tx *gorm.DB, rinkID uuid.UUID, memberIDs []uuid.UUID) error {
	for _, memberID := range memberIDs {
		err := tx.Exec(`INSERT INTO rink_players (rink_id, member_id) VALUES (?, ?) ON CONFLICT DO NOTHING`, rinkID, memberID).Error
		if err != nil {
			return fmt.Errorf("assign player %s: %w", memberID, err)
		}
	}
	return nil
}
