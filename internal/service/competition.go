package service

import (
	"fmt"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CompetitionService handles business logic for competitions
type CompetitionService struct {
	repo      repository.CompetitionRepositoryInterface
	validator *validator.Validate
}

// Ensure CompetitionService implements CompetitionServiceInterface
var _ CompetitionServiceInterface = (*CompetitionService)(nil)

// NewCompetitionService creates a new competition service
func NewCompetitionService(repo repository.CompetitionRepositoryInterface, validator *validator.Validate) *CompetitionService {
	return &CompetitionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompetitionRequest represents the data needed to create a competition
type CreateCompetitionRequest struct {
	Name            string  `json:"name" validate:"required,max=255" example:"Carmarthenshire League"`
	CompetitionType *string `json:"competition_type" validate:"omitempty,oneof=knockout league friendly tournament" example:"league" default:"knockout"` // Optional: defaults to knockout
}

// UpdateCompetitionRequest represents the data needed to update a competition
type UpdateCompetitionRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=255"`
	CompetitionType *string `json:"competition_type" validate:"omitempty,oneof=knockout league friendly tournament"`
}

// CompetitionResponse represents the response data for a competition
type CompetitionResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	CompetitionType string    `json:"competition_type"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// CreateCompetition creates a new competition
func (s *CompetitionService) CreateCompetition(req *CreateCompetitionRequest) (*CompetitionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	competitionType := models.CompetitionTypeKnockout
	if req.CompetitionType != nil {
		competitionType = models.CompetitionType(*req.CompetitionType)
	}

	competition := &models.Competition{
		Name:            req.Name,
		CompetitionType: competitionType,
	}
	if err := s.repo.Create(competition); err != nil {
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}

	return s.toResponse(competition), nil
}

// GetCompetitionByID retrieves a competition by ID
func (s *CompetitionService) GetCompetitionByID(id uuid.UUID) (*CompetitionResponse, error) {
	competition, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrCompetitionNotFound, "get competition")
	}
	return s.toResponse(competition), nil
}

// ListCompetitions retrieves all competitions
func (s *CompetitionService) ListCompetitions() ([]CompetitionResponse, error) {
	competitions, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	responses := make([]CompetitionResponse, len(competitions))
	for i := range competitions {
		responses[i] = *s.toResponse(&competitions[i])
	}
	return responses, nil
}

// UpdateCompetition updates an existing competition
func (s *CompetitionService) UpdateCompetition(id uuid.UUID, req *UpdateCompetitionRequest) (*CompetitionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	competition, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrCompetitionNotFound, "get competition")
	}

	if req.Name != nil {
		competition.Name = *req.Name
	}
	if req.CompetitionType != nil {
		competition.CompetitionType = models.CompetitionType(*req.CompetitionType)
	}

	if err := s.repo.Update(competition); err != nil {
		return nil, fmt.Errorf("failed to update competition: %w", err)
	}
	return s.toResponse(competition), nil
}

// DeleteCompetition deletes a competition and, with it, every match played in it
func (s *CompetitionService) DeleteCompetition(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrCompetitionNotFound, "delete competition")
	}
	return nil
}

func (s *CompetitionService) toResponse(competition *models.Competition) *CompetitionResponse {
	return &CompetitionResponse{
		ID:              competition.ID,
		Name:            competition.Name,
		CompetitionType: string(competition.CompetitionType),
		CreatedAt:       formatTimestamp(competition.CreatedAt),
		UpdatedAt:       formatTimestamp(competition.UpdatedAt),
	}
}
