package service

import (
	"fmt"
	"time"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchService handles business logic for matches
type MatchService struct {
	repo         repository.MatchRepositoryInterface
	competitions repository.CompetitionRepositoryInterface
	teams        repository.OppositionTeamRepositoryInterface
	clubs        repository.OwnClubRepositoryInterface
	clubName     string
	validator    *validator.Validate
}

// Ensure MatchService implements MatchServiceInterface
var _ MatchServiceInterface = (*MatchService)(nil)

// NewMatchService creates a new match service. clubName labels our side of a
// fixture until a club profile with a short name exists.
func NewMatchService(
	repo repository.MatchRepositoryInterface,
	competitions repository.CompetitionRepositoryInterface,
	teams repository.OppositionTeamRepositoryInterface,
	clubs repository.OwnClubRepositoryInterface,
	clubName string,
	validator *validator.Validate,
) *MatchService {
	return &MatchService{
		repo:         repo,
		competitions: competitions,
		teams:        teams,
		clubs:        clubs,
		clubName:     clubName,
		validator:    validator,
	}
}

// CreateMatchRequest represents the data needed to create a match
type CreateMatchRequest struct {
	CompetitionID    uuid.UUID `json:"competition_id" validate:"required"`
	OppositionTeamID uuid.UUID `json:"opposition_team_id" validate:"required"`
	Date             time.Time `json:"date" validate:"required" example:"2024-06-15T14:00:00Z"`
	HomeOrAway       *string   `json:"home_or_away" validate:"omitempty,oneof=Home Away" default:"Home"` // Optional: defaults to Home
	CrosshandsScore  *int      `json:"crosshands_score" validate:"omitempty,gte=0"`
	OppositionScore  *int      `json:"opposition_score" validate:"omitempty,gte=0"`
}

// UpdateMatchRequest represents the data needed to update a match
type UpdateMatchRequest struct {
	CompetitionID    *uuid.UUID `json:"competition_id"`
	OppositionTeamID *uuid.UUID `json:"opposition_team_id"`
	Date             *time.Time `json:"date"`
	HomeOrAway       *string    `json:"home_or_away" validate:"omitempty,oneof=Home Away"`
	CrosshandsScore  *int       `json:"crosshands_score" validate:"omitempty,gte=0"`
	OppositionScore  *int       `json:"opposition_score" validate:"omitempty,gte=0"`
	ClearScores      bool       `json:"clear_scores"` // marks the match unplayed again
}

// MatchListParams narrows a match listing
type MatchListParams struct {
	CompetitionID *uuid.UUID
	Date          *time.Time
	HomeOrAway    string
	Query         string
}

// MatchResponse represents the response data for a match
type MatchResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CompetitionID      uuid.UUID  `json:"competition_id"`
	CompetitionName    string     `json:"competition_name"`
	OppositionTeamID   uuid.UUID  `json:"opposition_team_id"`
	OppositionTeamName string     `json:"opposition_team_name"`
	Date               time.Time  `json:"date"`
	HomeOrAway         string     `json:"home_or_away"`
	CrosshandsScore    *int       `json:"crosshands_score"`
	OppositionScore    *int       `json:"opposition_score"`
	Result             string     `json:"result,omitempty" example:"win"`
	Fixture            string     `json:"fixture" example:"Crosshands vs Tumble - County League"`
	RinkID             *uuid.UUID `json:"rink_id,omitempty"`
}

// CreateMatch creates a new match
func (s *MatchService) CreateMatch(req *CreateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkParents(req.CompetitionID, req.OppositionTeamID); err != nil {
		return nil, err
	}

	homeOrAway := models.Home
	if req.HomeOrAway != nil {
		homeOrAway = models.HomeOrAway(*req.HomeOrAway)
	}

	match := &models.Match{
		CompetitionID:    req.CompetitionID,
		OppositionTeamID: req.OppositionTeamID,
		Date:             req.Date,
		HomeOrAway:       homeOrAway,
		CrosshandsScore:  req.CrosshandsScore,
		OppositionScore:  req.OppositionScore,
	}
	if err := s.repo.Create(match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return s.GetMatchByID(match.ID)
}

// GetMatchByID retrieves a match with its competition, opposition and rink
func (s *MatchService) GetMatchByID(id uuid.UUID) (*MatchResponse, error) {
	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrMatchNotFound, "get match")
	}
	return s.toResponse(match, homeLabel(s.clubs, s.clubName)), nil
}

// ListMatches lists matches, most recent first
func (s *MatchService) ListMatches(params MatchListParams) ([]MatchResponse, error) {
	matches, err := s.repo.List(repository.MatchFilter{
		CompetitionID: params.CompetitionID,
		Date:          params.Date,
		HomeOrAway:    models.HomeOrAway(params.HomeOrAway),
		Query:         params.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	home := homeLabel(s.clubs, s.clubName)
	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = *s.toResponse(&matches[i], home)
	}
	return responses, nil
}

// UpdateMatch updates a match, including recording its scores
func (s *MatchService) UpdateMatch(id uuid.UUID, req *UpdateMatchRequest) (*MatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	match, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrMatchNotFound, "get match")
	}

	if req.CompetitionID != nil {
		match.CompetitionID = *req.CompetitionID
	}
	if req.OppositionTeamID != nil {
		match.OppositionTeamID = *req.OppositionTeamID
	}
	if req.CompetitionID != nil || req.OppositionTeamID != nil {
		if err := s.checkParents(match.CompetitionID, match.OppositionTeamID); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		match.Date = *req.Date
	}
	if req.HomeOrAway != nil {
		match.HomeOrAway = models.HomeOrAway(*req.HomeOrAway)
	}
	if req.ClearScores {
		match.CrosshandsScore = nil
		match.OppositionScore = nil
	}
	if req.CrosshandsScore != nil {
		match.CrosshandsScore = req.CrosshandsScore
	}
	if req.OppositionScore != nil {
		match.OppositionScore = req.OppositionScore
	}

	if err := s.repo.Update(match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return s.GetMatchByID(id)
}

// DeleteMatch deletes a match and its rink
func (s *MatchService) DeleteMatch(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrMatchNotFound, "delete match")
	}
	return nil
}

func (s *MatchService) checkParents(competitionID, oppositionTeamID uuid.UUID) error {
	if _, err := s.competitions.GetByID(competitionID); err != nil {
		return lookupErr(err, apperrors.ErrCompetitionNotFound, "get competition")
	}
	if _, err := s.teams.GetByID(oppositionTeamID); err != nil {
		return lookupErr(err, apperrors.ErrOppositionTeamNotFound, "get opposition team")
	}
	return nil
}

func (s *MatchService) toResponse(match *models.Match, home string) *MatchResponse {
	resp := &MatchResponse{
		ID:               match.ID,
		CompetitionID:    match.CompetitionID,
		OppositionTeamID: match.OppositionTeamID,
		Date:             match.Date,
		HomeOrAway:       string(match.HomeOrAway),
		CrosshandsScore:  match.CrosshandsScore,
		OppositionScore:  match.OppositionScore,
		Result:           string(match.Result()),
		Fixture:          match.Fixture(home),
	}
	if match.Competition != nil {
		resp.CompetitionName = match.Competition.Name
	}
	if match.OppositionTeam != nil {
		resp.OppositionTeamName = match.OppositionTeam.Name
	}
	if match.Rink != nil {
		resp.RinkID = &match.Rink.ID
	}
	return resp
}
