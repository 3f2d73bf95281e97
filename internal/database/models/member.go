package models

import (
	"fmt"
)

// Member is a person belonging to the club
type Member struct {
	BaseModel
	FirstName string     `json:"first_name" gorm:"not null;size:50"`
	LastName  string     `json:"last_name" gorm:"not null;size:50"`
	Team      MemberTeam `json:"team" gorm:"type:varchar(6);not null"`
	Role      MemberRole `json:"role" gorm:"type:varchar(15);not null;default:'Player'"`
	Email     string     `json:"email" gorm:"not null;size:254"`
	Phone     string     `json:"phone" gorm:"not null;size:15"`

	// Relationships
	Payments []MembershipPayment `json:"payments,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	Rinks    []Rink              `json:"rinks,omitempty" gorm:"many2many:rink_players;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}

// NormalizeRole applies the role derived from the member's team.
// Members of the Social team always hold the Social role, whatever was supplied.
// It reports whether the role was changed.
func (m *Member) NormalizeRole() bool {
	if m.Team == MemberTeamSocial && m.Role != MemberRoleSocial {
		m.Role = MemberRoleSocial
		return true
	}
	return false
}

// FullName returns "First Last"
func (m *Member) FullName() string {
	return fmt.Sprintf("%s %s", m.FirstName, m.LastName)
}

// String returns "First Last (Role)"
func (m *Member) String() string {
	return fmt.Sprintf("%s (%s)", m.FullName(), m.Role)
}
