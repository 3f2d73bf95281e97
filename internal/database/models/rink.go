package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Rink is one lane of play within a match, with up to four club players
type Rink struct {
	BaseModel
	Number  int        `json:"number" gorm:"not null"`
	MatchID *uuid.UUID `json:"match_id,omitempty" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	Match   *Match   `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Players []Member `json:"players,omitempty" gorm:"many2many:rink_players;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rink
func (Rink) TableName() string {
	return "rinks"
}

// String returns "Rink N"
func (r *Rink) String() string {
	return fmt.Sprintf("Rink %d", r.Number)
}

// PlayerIDs lists the IDs of the loaded players
func (r *Rink) PlayerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Players))
	for _, p := range r.Players {
		ids = append(ids, p.ID)
	}
	return ids
}
