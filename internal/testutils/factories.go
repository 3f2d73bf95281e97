package testutils

import (
	"fmt"
	"time"

	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompetitionFactory provides methods to create test Competition data
type CompetitionFactory struct{}

// NewCompetitionFactory creates a new CompetitionFactory
func NewCompetitionFactory() *CompetitionFactory {
	return &CompetitionFactory{}
}

// Create creates a test Competition with default values
func (f *CompetitionFactory) Create() *models.Competition {
	id := uuid.New()
	return &models.Competition{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "County League " + id.String()[:6],
		CompetitionType: models.CompetitionTypeLeague,
	}
}

// WithName sets a custom name for the competition
func (f *CompetitionFactory) WithName(name string) *models.Competition {
	competition := f.Create()
	competition.Name = name
	return competition
}

// OppositionTeamFactory provides methods to create test OppositionTeam data
type OppositionTeamFactory struct{}

// NewOppositionTeamFactory creates a new OppositionTeamFactory
func NewOppositionTeamFactory() *OppositionTeamFactory {
	return &OppositionTeamFactory{}
}

// Create creates a test OppositionTeam with default values
func (f *OppositionTeamFactory) Create() *models.OppositionTeam {
	id := uuid.New()
	location := "Bristol"
	return &models.OppositionTeam{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Redland Park " + id.String()[:6],
		Location: &location,
	}
}

// WithName sets a custom name for the opposition team
func (f *OppositionTeamFactory) WithName(name string) *models.OppositionTeam {
	team := f.Create()
	team.Name = name
	return team
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Jean",
		LastName:  "Bowler",
		Team:      models.MemberTeamMen,
		Role:      models.MemberRolePlayer,
		Email:     fmt.Sprintf("jean.%s@example.com", id.String()[:6]),
		Phone:     "01179000000",
	}
}

// WithTeam sets the team for the member
func (f *MemberFactory) WithTeam(team models.MemberTeam) *models.Member {
	member := f.Create()
	member.Team = team
	return member
}

// WithRole sets a custom role for the member
func (f *MemberFactory) WithRole(role models.MemberRole) *models.Member {
	member := f.Create()
	member.Role = role
	return member
}

// PaymentFactory provides methods to create test MembershipPayment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// WithMember creates a test payment for the given member
func (f *PaymentFactory) WithMember(memberID uuid.UUID) *models.MembershipPayment {
	return &models.MembershipPayment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MemberID:  memberID,
		Date:      time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("45.00"),
	}
}

// MatchFactory provides methods to create test Match data
type MatchFactory struct{}

// NewMatchFactory creates a new MatchFactory
func NewMatchFactory() *MatchFactory {
	return &MatchFactory{}
}

// WithFixture creates a test home match between the given competition and opposition
func (f *MatchFactory) WithFixture(competitionID, oppositionID uuid.UUID) *models.Match {
	return &models.Match{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		CompetitionID:    competitionID,
		OppositionTeamID: oppositionID,
		Date:             time.Date(2024, time.June, 15, 14, 0, 0, 0, time.UTC),
		HomeOrAway:       models.Home,
	}
}

// RinkFactory provides methods to create test Rink data
type RinkFactory struct{}

// NewRinkFactory creates a new RinkFactory
func NewRinkFactory() *RinkFactory {
	return &RinkFactory{}
}

// Create creates rink 1 with no match
func (f *RinkFactory) Create() *models.Rink {
	return &models.Rink{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Number:    1,
	}
}

// ForMatch creates rink 1 assigned to the given match
func (f *RinkFactory) ForMatch(matchID uuid.UUID) *models.Rink {
	rink := f.Create()
	rink.MatchID = &matchID
	return rink
}

// SponsorFactory provides methods to create test Sponsor data
type SponsorFactory struct{}

// NewSponsorFactory creates a new SponsorFactory
func NewSponsorFactory() *SponsorFactory {
	return &SponsorFactory{}
}

// Create creates a test Sponsor with default values
func (f *SponsorFactory) Create() *models.Sponsor {
	return &models.Sponsor{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Hollies Bakery",
		LogoKey:   "sponsors/hollies.png",
		LogoURL:   "https://cdn.example.com/sponsors/hollies.png",
		Website:   "https://hollies.example.com",
	}
}

// OwnClubFactory provides methods to create test OwnClub data
type OwnClubFactory struct{}

// NewOwnClubFactory creates a new OwnClubFactory
func NewOwnClubFactory() *OwnClubFactory {
	return &OwnClubFactory{}
}

// Create creates a test OwnClub with default values
func (f *OwnClubFactory) Create() *models.OwnClub {
	year := 1923
	return &models.OwnClub{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            "Crosshands Bowls Club",
		ShortName:       "Crosshands",
		Location:        "Cross Hands",
		EstablishedYear: &year,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Competition    *CompetitionFactory
	OppositionTeam *OppositionTeamFactory
	Member         *MemberFactory
	Payment        *PaymentFactory
	Match          *MatchFactory
	Rink           *RinkFactory
	Sponsor        *SponsorFactory
	OwnClub        *OwnClubFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Competition:    NewCompetitionFactory(),
		OppositionTeam: NewOppositionTeamFactory(),
		Member:         NewMemberFactory(),
		Payment:        NewPaymentFactory(),
		Match:          NewMatchFactory(),
		Rink:           NewRinkFactory(),
		Sponsor:        NewSponsorFactory(),
		OwnClub:        NewOwnClubFactory(),
	}
}
