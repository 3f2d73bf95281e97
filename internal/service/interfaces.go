package service

import (
	"context"
	"mime/multipart"

	"bowls-club-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompetitionServiceInterface defines the interface for competition service
type CompetitionServiceInterface interface {
	CreateCompetition(req *CreateCompetitionRequest) (*CompetitionResponse, error)
	GetCompetitionByID(id uuid.UUID) (*CompetitionResponse, error)
	ListCompetitions() ([]CompetitionResponse, error)
	UpdateCompetition(id uuid.UUID, req *UpdateCompetitionRequest) (*CompetitionResponse, error)
	DeleteCompetition(id uuid.UUID) error
}

// OppositionTeamServiceInterface defines the interface for opposition team service
type OppositionTeamServiceInterface interface {
	CreateOppositionTeam(req *CreateOppositionTeamRequest) (*OppositionTeamResponse, error)
	GetOppositionTeamByID(id uuid.UUID) (*OppositionTeamResponse, error)
	ListOppositionTeams(params OppositionTeamListParams) ([]OppositionTeamResponse, error)
	UpdateOppositionTeam(id uuid.UUID, req *UpdateOppositionTeamRequest) (*OppositionTeamResponse, error)
	SetCompetitions(id uuid.UUID, req *SetCompetitionsRequest) (*OppositionTeamResponse, error)
	DeleteOppositionTeam(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	CreateMember(req *CreateMemberRequest) (*MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*MemberResponse, error)
	ListMembers(params MemberListParams) ([]MemberResponse, error)
	UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	DeleteMember(id uuid.UUID) error
	AddPayment(memberID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error)
	ListPayments(memberID uuid.UUID) ([]PaymentResponse, error)
	DeletePayment(id uuid.UUID) error
}

// MatchServiceInterface defines the interface for match service
type MatchServiceInterface interface {
	CreateMatch(req *CreateMatchRequest) (*MatchResponse, error)
	GetMatchByID(id uuid.UUID) (*MatchResponse, error)
	ListMatches(params MatchListParams) ([]MatchResponse, error)
	UpdateMatch(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error)
	DeleteMatch(id uuid.UUID) error
}

// RinkServiceInterface defines the interface for rink service
type RinkServiceInterface interface {
	CreateRink(req *CreateRinkRequest) (*RinkResponse, error)
	GetRinkByID(id uuid.UUID) (*RinkResponse, error)
	ListRinks() ([]RinkResponse, error)
	UpdateRink(id uuid.UUID, req *UpdateRinkRequest) (*RinkResponse, error)
	SetPlayers(id uuid.UUID, req *SetPlayersRequest) (*RinkResponse, error)
	AddPlayer(id uuid.UUID, req *AddPlayerRequest) (*RinkResponse, error)
	RemovePlayer(id, memberID uuid.UUID) (*RinkResponse, error)
	DeleteRink(id uuid.UUID) error
}

// SponsorServiceInterface defines the interface for sponsor service
type SponsorServiceInterface interface {
	CreateSponsor(req *CreateSponsorRequest) (*SponsorResponse, error)
	GetSponsorByID(id uuid.UUID) (*SponsorResponse, error)
	ListSponsors() ([]SponsorResponse, error)
	UpdateSponsor(id uuid.UUID, req *UpdateSponsorRequest) (*SponsorResponse, error)
	UploadLogo(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*SponsorResponse, error)
	DeleteSponsor(ctx context.Context, id uuid.UUID) error
}

// ClubServiceInterface defines the interface for the club profile service
type ClubServiceInterface interface {
	GetClub() (*ClubResponse, error)
	CreateClub(req *ClubRequest) (*ClubResponse, error)
	UpdateClub(req *ClubRequest) (*ClubResponse, error)
	DeleteClub() error
	Permissions() (*ClubPermissionsResponse, error)
}

// SiteServiceInterface defines the read-only lookups behind the public pages
type SiteServiceInterface interface {
	ListCompetitions() ([]models.Competition, error)
	GetFixturesResults(competitionID uuid.UUID) (*FixturesResults, error)
	ListMembers() ([]Squad, error)
	ListSponsors() ([]models.Sponsor, error)
	GetClubProfile() (*models.OwnClub, error)
}
