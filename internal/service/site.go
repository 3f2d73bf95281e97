package service

import (
	"errors"
	"fmt"
	"time"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteService serves the read-only lookups behind the public pages
type SiteService struct {
	competitions repository.CompetitionRepositoryInterface
	matches      repository.MatchRepositoryInterface
	members      repository.MemberRepositoryInterface
	sponsors     repository.SponsorRepositoryInterface
	clubs        repository.OwnClubRepositoryInterface
	clubName     string
}

// Ensure SiteService implements SiteServiceInterface
var _ SiteServiceInterface = (*SiteService)(nil)

// NewSiteService creates a new site service
func NewSiteService(
	competitions repository.CompetitionRepositoryInterface,
	matches repository.MatchRepositoryInterface,
	members repository.MemberRepositoryInterface,
	sponsors repository.SponsorRepositoryInterface,
	clubs repository.OwnClubRepositoryInterface,
	clubName string,
) *SiteService {
	return &SiteService{
		competitions: competitions,
		matches:      matches,
		members:      members,
		sponsors:     sponsors,
		clubs:        clubs,
		clubName:     clubName,
	}
}

// FixtureView is one row of a fixtures and results page
type FixtureView struct {
	ID              uuid.UUID
	Date            time.Time
	Opposition      string
	HomeOrAway      string
	Fixture         string
	CrosshandsScore *int
	OppositionScore *int
	Played          bool
	Result          string
}

// FixturesResults is a competition with its matches in date order
type FixturesResults struct {
	Competition models.Competition
	Matches     []FixtureView
}

// Squad is the members of one team
type Squad struct {
	Team    string
	Members []models.Member
}

// ListCompetitions returns every competition
func (s *SiteService) ListCompetitions() ([]models.Competition, error) {
	competitions, err := s.competitions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

// GetFixturesResults returns a competition and its matches. A missing
// competition is ErrCompetitionNotFound; one with no matches has an empty list.
func (s *SiteService) GetFixturesResults(competitionID uuid.UUID) (*FixturesResults, error) {
	competition, err := s.competitions.GetByID(competitionID)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrCompetitionNotFound, "get competition")
	}

	matches, err := s.matches.GetByCompetitionID(competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	home := homeLabel(s.clubs, s.clubName)
	views := make([]FixtureView, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		view := FixtureView{
			ID:              m.ID,
			Date:            m.Date,
			HomeOrAway:      string(m.HomeOrAway),
			Fixture:         m.Fixture(home),
			CrosshandsScore: m.CrosshandsScore,
			OppositionScore: m.OppositionScore,
			Played:          m.Played(),
			Result:          string(m.Result()),
		}
		if m.OppositionTeam != nil {
			view.Opposition = m.OppositionTeam.Name
		}
		views = append(views, view)
	}

	return &FixturesResults{
		Competition: *competition,
		Matches:     views,
	}, nil
}

// ListMembers returns the members grouped into squads in Men, Ladies, Social order
func (s *SiteService) ListMembers() ([]Squad, error) {
	members, err := s.members.List(repository.MemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	order := []models.MemberTeam{models.MemberTeamMen, models.MemberTeamLadies, models.MemberTeamSocial}
	byTeam := make(map[models.MemberTeam][]models.Member, len(order))
	for _, m := range members {
		byTeam[m.Team] = append(byTeam[m.Team], m)
	}

	squads := make([]Squad, 0, len(order))
	for _, team := range order {
		if len(byTeam[team]) == 0 {
			continue
		}
		squads = append(squads, Squad{Team: string(team), Members: byTeam[team]})
	}
	return squads, nil
}

// ListSponsors returns every sponsor
func (s *SiteService) ListSponsors() ([]models.Sponsor, error) {
	sponsors, err := s.sponsors.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}
	return sponsors, nil
}

// GetClubProfile returns the club profile, or nil if none has been created
func (s *SiteService) GetClubProfile() (*models.OwnClub, error) {
	club, err := s.clubs.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get club profile: %w", err)
	}
	return club, nil
}
