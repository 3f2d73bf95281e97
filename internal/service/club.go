package service

import (
	"errors"
	"fmt"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ClubService manages the club's own profile. At most one profile can be
// created and, once created, it can never be deleted.
type ClubService struct {
	repo      repository.OwnClubRepositoryInterface
	validator *validator.Validate
}

// Ensure ClubService implements ClubServiceInterface
var _ ClubServiceInterface = (*ClubService)(nil)

// NewClubService creates a new club profile service
func NewClubService(repo repository.OwnClubRepositoryInterface, validator *validator.Validate) *ClubService {
	return &ClubService{
		repo:      repo,
		validator: validator,
	}
}

// ClubRequest represents the club profile fields
type ClubRequest struct {
	Name            string  `json:"name" validate:"required,max=255" example:"Crosshands Bowls Club"`
	ShortName       string  `json:"short_name" validate:"required,max=50" example:"Crosshands"`
	Location        string  `json:"location" validate:"required,max=255"`
	ContactEmail    *string `json:"contact_email" validate:"omitempty,email,max=254"`
	ContactPhone    *string `json:"contact_phone" validate:"omitempty,max=15"`
	Website         *string `json:"website" validate:"omitempty,url,max=200"`
	EstablishedYear *int    `json:"established_year" validate:"omitempty,gte=1000,lte=9999"`
}

// ClubResponse represents the response data for the club profile
type ClubResponse struct {
	Name            string  `json:"name"`
	ShortName       string  `json:"short_name"`
	Location        string  `json:"location"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	Website         *string `json:"website,omitempty"`
	EstablishedYear *int    `json:"established_year,omitempty"`
	UpdatedAt       string  `json:"updated_at"`
}

// ClubPermissionsResponse tells the admin console which profile actions are available
type ClubPermissionsResponse struct {
	CanAdd    bool `json:"can_add"`
	CanDelete bool `json:"can_delete"`
}

// GetClub retrieves the club profile
func (s *ClubService) GetClub() (*ClubResponse, error) {
	club, err := s.repo.Get()
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrClubProfileNotFound, "get club profile")
	}
	return toClubResponse(club), nil
}

// CreateClub creates the club profile; it is refused once a profile exists
func (s *ClubService) CreateClub(req *ClubRequest) (*ClubResponse, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count club profiles: %w", err)
	}
	if count > 0 {
		return nil, apperrors.ErrClubProfileExists
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	club := &models.OwnClub{}
	applyClubRequest(club, req)
	if err := s.repo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create club profile: %w", err)
	}
	return toClubResponse(club), nil
}

// UpdateClub replaces the club profile fields
func (s *ClubService) UpdateClub(req *ClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	club, err := s.repo.Get()
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrClubProfileNotFound, "get club profile")
	}

	applyClubRequest(club, req)
	if err := s.repo.Update(club); err != nil {
		return nil, fmt.Errorf("failed to update club profile: %w", err)
	}
	return toClubResponse(club), nil
}

// DeleteClub always refuses: the club profile is permanent
func (s *ClubService) DeleteClub() error {
	if _, err := s.repo.Get(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubProfileNotFound
		}
		return fmt.Errorf("failed to get club profile: %w", err)
	}
	return apperrors.ErrClubProfileNotDeletable
}

// Permissions reports whether the console may offer add and delete
func (s *ClubService) Permissions() (*ClubPermissionsResponse, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count club profiles: %w", err)
	}
	return &ClubPermissionsResponse{
		CanAdd:    count == 0,
		CanDelete: false,
	}, nil
}

func applyClubRequest(club *models.OwnClub, req *ClubRequest) {
	club.Name = req.Name
	club.ShortName = req.ShortName
	club.Location = req.Location
	club.ContactEmail = req.ContactEmail
	club.ContactPhone = req.ContactPhone
	club.Website = req.Website
	club.EstablishedYear = req.EstablishedYear
}

func toClubResponse(club *models.OwnClub) *ClubResponse {
	return &ClubResponse{
		Name:            club.Name,
		ShortName:       club.ShortName,
		Location:        club.Location,
		ContactEmail:    club.ContactEmail,
		ContactPhone:    club.ContactPhone,
		Website:         club.Website,
		EstablishedYear: club.EstablishedYear,
		UpdatedAt:       formatTimestamp(club.UpdatedAt),
	}
}
