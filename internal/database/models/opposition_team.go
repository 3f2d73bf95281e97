package models

import "strings"

// OppositionTeam is another club the club plays against
type OppositionTeam struct {
	BaseModel
	Name         string  `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	Location     *string `json:"location,omitempty" gorm:"size:255"`
	ContactEmail *string `json:"contact_email,omitempty" gorm:"size:254"`
	ContactPhone *string `json:"contact_phone,omitempty" gorm:"size:15"`

	// Relationships
	Competitions []Competition `json:"competitions,omitempty" gorm:"many2many:opposition_team_competitions;constraint:OnDelete:CASCADE"`
	Matches      []Match       `json:"matches,omitempty" gorm:"foreignKey:OppositionTeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OppositionTeam
func (OppositionTeam) TableName() string {
	return "opposition_teams"
}

// CompetitionNames joins the names of the loaded competitions with ", "
func (t *OppositionTeam) CompetitionNames() string {
	names := make([]string, 0, len(t.Competitions))
	for _, c := range t.Competitions {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
