package models

// CompetitionType defines the formats a competition can be played in
type CompetitionType string

const (
	CompetitionTypeKnockout   CompetitionType = "knockout"
	CompetitionTypeLeague     CompetitionType = "league"
	CompetitionTypeFriendly   CompetitionType = "friendly"
	CompetitionTypeTournament CompetitionType = "tournament"
)

// MemberTeam is the side of the club a member plays for
type MemberTeam string

const (
	MemberTeamMen    MemberTeam = "Men"
	MemberTeamLadies MemberTeam = "Ladies"
	MemberTeamSocial MemberTeam = "Social"
)

// MemberRole is a member's standing within their team
type MemberRole string

const (
	MemberRoleCaptain     MemberRole = "Captain"
	MemberRoleViceCaptain MemberRole = "Vice-Captain"
	MemberRolePlayer      MemberRole = "Player"
	MemberRoleSocial      MemberRole = "Social"
)

// HomeOrAway records where a match is played
type HomeOrAway string

const (
	Home HomeOrAway = "Home"
	Away HomeOrAway = "Away"
)

// IsValid checks if the CompetitionType is valid
func (c CompetitionType) IsValid() bool {
	switch c {
	case CompetitionTypeKnockout, CompetitionTypeLeague, CompetitionTypeFriendly, CompetitionTypeTournament:
		return true
	}
	return false
}

// IsValid checks if the MemberTeam is valid
func (t MemberTeam) IsValid() bool {
	switch t {
	case MemberTeamMen, MemberTeamLadies, MemberTeamSocial:
		return true
	}
	return false
}

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleCaptain, MemberRoleViceCaptain, MemberRolePlayer, MemberRoleSocial:
		return true
	}
	return false
}

// IsValid checks if the HomeOrAway is valid
func (h HomeOrAway) IsValid() bool {
	return h == Home || h == Away
}
