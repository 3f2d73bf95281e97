package models

// Competition is a league, cup or friendly series the club enters
type Competition struct {
	BaseModel
	Name            string          `json:"name" gorm:"size:255;not null" validate:"required,max=255"`
	CompetitionType CompetitionType `json:"competition_type" gorm:"type:varchar(50);not null;default:'knockout'"`

	// Relationships
	Matches         []Match          `json:"matches,omitempty" gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE"`
	OppositionTeams []OppositionTeam `json:"opposition_teams,omitempty" gorm:"many2many:opposition_team_competitions;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Competition
func (Competition) TableName() string {
	return "competitions"
}
