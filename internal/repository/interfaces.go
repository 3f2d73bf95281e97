package repository

import (
	"time"

	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompetitionRepositoryInterface defines the interface for competition repository operations
type CompetitionRepositoryInterface interface {
	Create(competition *models.Competition) error
	GetByID(id uuid.UUID) (*models.Competition, error)
	GetByName(name string) (*models.Competition, error)
	GetAll() ([]models.Competition, error)
	Update(competition *models.Competition) error
	Delete(id uuid.UUID) error
}

// OppositionTeamFilter narrows an opposition team listing
type OppositionTeamFilter struct {
	CompetitionID *uuid.UUID
	Query         string // matched against name, location and contact email
}

// OppositionTeamRepositoryInterface defines the interface for opposition team repository operations
type OppositionTeamRepositoryInterface interface {
	Create(team *models.OppositionTeam, competitionIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.OppositionTeam, error)
	GetByName(name string) (*models.OppositionTeam, error)
	List(filter OppositionTeamFilter) ([]models.OppositionTeam, error)
	Update(team *models.OppositionTeam) error
	SetCompetitions(id uuid.UUID, competitionIDs []uuid.UUID) error
	Delete(id uuid.UUID) error
}

// MemberFilter narrows a member listing
type MemberFilter struct {
	Team  models.MemberTeam
	Role  models.MemberRole
	Query string // matched against first name, last name and email
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetWithPayments(id uuid.UUID) (*models.Member, error)
	List(filter MemberFilter) ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// PaymentRepositoryInterface defines the interface for membership payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.MembershipPayment) error
	GetByMemberID(memberID uuid.UUID) ([]models.MembershipPayment, error)
	Delete(id uuid.UUID) error
}

// MatchFilter narrows a match listing
type MatchFilter struct {
	CompetitionID *uuid.UUID
	Date          *time.Time // matches on this calendar day
	HomeOrAway    models.HomeOrAway
	Query         string // matched against opposition team and competition names
}

// MatchRepositoryInterface defines the interface for match repository operations
type MatchRepositoryInterface interface {
	Create(match *models.Match) error
	GetByID(id uuid.UUID) (*models.Match, error)
	GetByCompetitionID(competitionID uuid.UUID) ([]models.Match, error)
	List(filter MatchFilter) ([]models.Match, error)
	Update(match *models.Match) error
	Delete(id uuid.UUID) error
}

// RinkRepositoryInterface defines the interface for rink repository operations.
// Every method that changes a rink's players enforces the roster cap.
type RinkRepositoryInterface interface {
	Create(rink *models.Rink, playerIDs []uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Rink, error)
	GetByMatchID(matchID uuid.UUID) (*models.Rink, error)
	GetAll() ([]models.Rink, error)
	Update(rink *models.Rink) error
	SetPlayers(id uuid.UUID, playerIDs []uuid.UUID) error
	AddPlayer(id, memberID uuid.UUID) error
	RemovePlayer(id, memberID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// SponsorRepositoryInterface defines the interface for sponsor repository operations
type SponsorRepositoryInterface interface {
	Create(sponsor *models.Sponsor) error
	GetByID(id uuid.UUID) (*models.Sponsor, error)
	GetAll() ([]models.Sponsor, error)
	Update(sponsor *models.Sponsor) error
	Delete(id uuid.UUID) error
}

// OwnClubRepositoryInterface defines the interface for club profile repository operations.
// The profile is never deleted, so there is no Delete.
type OwnClubRepositoryInterface interface {
	Create(club *models.OwnClub) error
	Get() (*models.OwnClub, error)
	Count() (int64, error)
	Update(club *models.OwnClub) error
}
