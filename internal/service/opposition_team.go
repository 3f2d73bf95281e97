package service

import (
	"errors"
	"fmt"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OppositionTeamService handles business logic for opposition teams
type OppositionTeamService struct {
	repo      repository.OppositionTeamRepositoryInterface
	validator *validator.Validate
}

// Ensure OppositionTeamService implements OppositionTeamServiceInterface
var _ OppositionTeamServiceInterface = (*OppositionTeamService)(nil)

// NewOppositionTeamService creates a new opposition team service
func NewOppositionTeamService(repo repository.OppositionTeamRepositoryInterface, validator *validator.Validate) *OppositionTeamService {
	return &OppositionTeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateOppositionTeamRequest represents the data needed to create an opposition team
type CreateOppositionTeamRequest struct {
	Name           string      `json:"name" validate:"required,max=255" example:"Tumble BC"`
	Location       *string     `json:"location" validate:"omitempty,max=255"`
	ContactEmail   *string     `json:"contact_email" validate:"omitempty,email,max=254"`
	ContactPhone   *string     `json:"contact_phone" validate:"omitempty,max=15"`
	CompetitionIDs []uuid.UUID `json:"competition_ids"`
}

// UpdateOppositionTeamRequest represents the data needed to update an opposition team.
// CompetitionIDs, when present, replaces the team's competitions.
type UpdateOppositionTeamRequest struct {
	Name           *string      `json:"name" validate:"omitempty,min=1,max=255"`
	Location       *string      `json:"location" validate:"omitempty,max=255"`
	ContactEmail   *string      `json:"contact_email" validate:"omitempty,email,max=254"`
	ContactPhone   *string      `json:"contact_phone" validate:"omitempty,max=15"`
	CompetitionIDs *[]uuid.UUID `json:"competition_ids"`
}

// SetCompetitionsRequest replaces the competitions an opposition team is entered in
type SetCompetitionsRequest struct {
	CompetitionIDs []uuid.UUID `json:"competition_ids"`
}

// OppositionTeamListParams narrows an opposition team listing
type OppositionTeamListParams struct {
	CompetitionID *uuid.UUID
	Query         string
}

// CompetitionSummary is a competition reference inside another response
type CompetitionSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OppositionTeamResponse represents the response data for an opposition team
type OppositionTeamResponse struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Location         *string              `json:"location,omitempty"`
	ContactEmail     *string              `json:"contact_email,omitempty"`
	ContactPhone     *string              `json:"contact_phone,omitempty"`
	Competitions     []CompetitionSummary `json:"competitions"`
	CompetitionNames string               `json:"competition_names" example:"County League, Over 60s Cup"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
}

// CreateOppositionTeam creates a team and links it to the given competitions
func (s *OppositionTeamService) CreateOppositionTeam(req *CreateOppositionTeamRequest) (*OppositionTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := &models.OppositionTeam{
		Name:         req.Name,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	if err := s.repo.Create(team, req.CompetitionIDs); err != nil {
		return nil, competitionLinkErr(err, "create opposition team")
	}

	return s.reload(team.ID)
}

// GetOppositionTeamByID retrieves an opposition team with its competitions
func (s *OppositionTeamService) GetOppositionTeamByID(id uuid.UUID) (*OppositionTeamResponse, error) {
	return s.reload(id)
}

// ListOppositionTeams lists teams, optionally by competition or search text
func (s *OppositionTeamService) ListOppositionTeams(params OppositionTeamListParams) ([]OppositionTeamResponse, error) {
	teams, err := s.repo.List(repository.OppositionTeamFilter{
		CompetitionID: params.CompetitionID,
		Query:         params.Query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list opposition teams: %w", err)
	}

	responses := make([]OppositionTeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// UpdateOppositionTeam updates a team's details and, optionally, its competitions
func (s *OppositionTeamService) UpdateOppositionTeam(id uuid.UUID, req *UpdateOppositionTeamRequest) (*OppositionTeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrOppositionTeamNotFound, "get opposition team")
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Location != nil {
		team.Location = req.Location
	}
	if req.ContactEmail != nil {
		team.ContactEmail = req.ContactEmail
	}
	if req.ContactPhone != nil {
		team.ContactPhone = req.ContactPhone
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update opposition team: %w", err)
	}
	if req.CompetitionIDs != nil {
		if err := s.repo.SetCompetitions(id, *req.CompetitionIDs); err != nil {
			return nil, competitionLinkErr(err, "set competitions")
		}
	}

	return s.reload(id)
}

// SetCompetitions replaces the competitions a team is entered in
func (s *OppositionTeamService) SetCompetitions(id uuid.UUID, req *SetCompetitionsRequest) (*OppositionTeamResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookupErr(err, apperrors.ErrOppositionTeamNotFound, "get opposition team")
	}
	if err := s.repo.SetCompetitions(id, req.CompetitionIDs); err != nil {
		return nil, competitionLinkErr(err, "set competitions")
	}
	return s.reload(id)
}

// DeleteOppositionTeam deletes a team and every match played against it
func (s *OppositionTeamService) DeleteOppositionTeam(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrOppositionTeamNotFound, "delete opposition team")
	}
	return nil
}

func (s *OppositionTeamService) reload(id uuid.UUID) (*OppositionTeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrOppositionTeamNotFound, "get opposition team")
	}
	return s.toResponse(team), nil
}

// competitionLinkErr reports an unknown competition id as a missing competition
func competitionLinkErr(err error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCompetitionNotFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *OppositionTeamService) toResponse(team *models.OppositionTeam) *OppositionTeamResponse {
	competitions := make([]CompetitionSummary, len(team.Competitions))
	for i, c := range team.Competitions {
		competitions[i] = CompetitionSummary{ID: c.ID, Name: c.Name}
	}
	return &OppositionTeamResponse{
		ID:               team.ID,
		Name:             team.Name,
		Location:         team.Location,
		ContactEmail:     team.ContactEmail,
		ContactPhone:     team.ContactPhone,
		Competitions:     competitions,
		CompetitionNames: team.CompetitionNames(),
		CreatedAt:        formatTimestamp(team.CreatedAt),
		UpdatedAt:        formatTimestamp(team.UpdatedAt),
	}
}
