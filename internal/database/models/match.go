package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchResult is the outcome of a played match from the club's side
type MatchResult string

const (
	MatchResultWin  MatchResult = "win"
	MatchResultLoss MatchResult = "loss"
	MatchResultDraw MatchResult = "draw"
)

// Match is a fixture against an opposition team within a competition
type Match struct {
	BaseModel
	CompetitionID    uuid.UUID  `json:"competition_id" gorm:"type:uuid;not null;index"`
	OppositionTeamID uuid.UUID  `json:"opposition_team_id" gorm:"type:uuid;not null;index"`
	Date             time.Time  `json:"date" gorm:"not null;index"`
	HomeOrAway       HomeOrAway `json:"home_or_away" gorm:"type:varchar(4);not null;default:'Home'"`
	CrosshandsScore  *int       `json:"crosshands_score"`
	OppositionScore  *int       `json:"opposition_score"`

	// Relationships
	Competition    *Competition    `json:"competition,omitempty" gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE"`
	OppositionTeam *OppositionTeam `json:"opposition_team,omitempty" gorm:"foreignKey:OppositionTeamID;constraint:OnDelete:CASCADE"`
	Rink           *Rink           `json:"rink,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// Played reports whether both scores have been recorded
func (m *Match) Played() bool {
	return m.CrosshandsScore != nil && m.OppositionScore != nil
}

// Result returns the outcome for the club, or "" if the match has not been played
func (m *Match) Result() MatchResult {
	if !m.Played() {
		return ""
	}
	switch {
	case *m.CrosshandsScore > *m.OppositionScore:
		return MatchResultWin
	case *m.CrosshandsScore < *m.OppositionScore:
		return MatchResultLoss
	default:
		return MatchResultDraw
	}
}

// Fixture renders the match as "Home vs Away - Competition" with home as our side's label.
// Opposition and competition must be preloaded for their names to appear.
func (m *Match) Fixture(home string) string {
	opposition := ""
	if m.OppositionTeam != nil {
		opposition = m.OppositionTeam.Name
	}
	competition := ""
	if m.Competition != nil {
		competition = m.Competition.Name
	}

	if m.HomeOrAway == Away {
		return fmt.Sprintf("%s vs %s - %s", opposition, home, competition)
	}
	return fmt.Sprintf("%s vs %s - %s", home, opposition, competition)
}
