package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"bowls-club-backend/internal/database/models"
	apperrors "bowls-club-backend/internal/errors"
	"bowls-club-backend/internal/logger"
	"bowls-club-backend/internal/repository"
	"bowls-club-backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxLogoSize caps an uploaded sponsor logo at 5 MiB
const MaxLogoSize = 5 << 20

// SponsorService handles business logic for sponsors and their logos
type SponsorService struct {
	repo      repository.SponsorRepositoryInterface
	uploader  storage.FileUploader
	validator *validator.Validate
}

// Ensure SponsorService implements SponsorServiceInterface
var _ SponsorServiceInterface = (*SponsorService)(nil)

// NewSponsorService creates a new sponsor service. uploader may be nil, in
// which case logo uploads fail with a configuration error.
func NewSponsorService(repo repository.SponsorRepositoryInterface, uploader storage.FileUploader, validator *validator.Validate) *SponsorService {
	return &SponsorService{
		repo:      repo,
		uploader:  uploader,
		validator: validator,
	}
}

// CreateSponsorRequest represents the data needed to create a sponsor
type CreateSponsorRequest struct {
	Name    string `json:"name" validate:"required,max=255" example:"Hollies Bakery"`
	Website string `json:"website" validate:"required,url,max=200" example:"https://hollies.example.com"`
}

// UpdateSponsorRequest represents the data needed to update a sponsor
type UpdateSponsorRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Website *string `json:"website" validate:"omitempty,url,max=200"`
}

// SponsorResponse represents the response data for a sponsor
type SponsorResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL string    `json:"logo_url,omitempty"`
	Website string    `json:"website"`
}

// CreateSponsor creates a new sponsor
func (s *SponsorService) CreateSponsor(req *CreateSponsorRequest) (*SponsorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sponsor := &models.Sponsor{
		Name:    req.Name,
		Website: req.Website,
	}
	if err := s.repo.Create(sponsor); err != nil {
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return toSponsorResponse(sponsor), nil
}

// GetSponsorByID retrieves a sponsor by ID
func (s *SponsorService) GetSponsorByID(id uuid.UUID) (*SponsorResponse, error) {
	sponsor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrSponsorNotFound, "get sponsor")
	}
	return toSponsorResponse(sponsor), nil
}

// ListSponsors lists all sponsors by name
func (s *SponsorService) ListSponsors() ([]SponsorResponse, error) {
	sponsors, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}

	responses := make([]SponsorResponse, len(sponsors))
	for i := range sponsors {
		responses[i] = *toSponsorResponse(&sponsors[i])
	}
	return responses, nil
}

// UpdateSponsor updates a sponsor's name or website
func (s *SponsorService) UpdateSponsor(id uuid.UUID, req *UpdateSponsorRequest) (*SponsorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sponsor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrSponsorNotFound, "get sponsor")
	}
	if req.Name != nil {
		sponsor.Name = *req.Name
	}
	if req.Website != nil {
		sponsor.Website = *req.Website
	}

	if err := s.repo.Update(sponsor); err != nil {
		return nil, fmt.Errorf("failed to update sponsor: %w", err)
	}
	return toSponsorResponse(sponsor), nil
}

// UploadLogo stores a new logo image for a sponsor and removes the one it replaces
func (s *SponsorService) UploadLogo(ctx context.Context, id uuid.UUID, file *multipart.FileHeader) (*SponsorResponse, error) {
	if s.uploader == nil {
		return nil, apperrors.ErrLogoStorageNotConfigured
	}

	if file.Size > MaxLogoSize {
		return nil, apperrors.NewValidationError("logo", "logo must be 5 MiB or smaller")
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	defer src.Close()

	contentType, ext, err := sniffLogo(src)
	if err != nil {
		return nil, err
	}

	sponsor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrSponsorNotFound, "get sponsor")
	}

	key := fmt.Sprintf("sponsors/%s/%s%s", sponsor.ID, uuid.New(), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, src)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo: %w", err)
	}

	previous := sponsor.LogoKey
	sponsor.LogoKey = result.Key
	sponsor.LogoURL = result.Location
	if err := s.repo.Update(sponsor); err != nil {
		s.discard(ctx, result.Key)
		return nil, fmt.Errorf("failed to update sponsor: %w", err)
	}

	if previous != "" {
		s.discard(ctx, previous)
	}
	return toSponsorResponse(sponsor), nil
}

// DeleteSponsor deletes a sponsor and its stored logo
func (s *SponsorService) DeleteSponsor(ctx context.Context, id uuid.UUID) error {
	sponsor, err := s.repo.GetByID(id)
	if err != nil {
		return lookupErr(err, apperrors.ErrSponsorNotFound, "get sponsor")
	}
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrSponsorNotFound, "delete sponsor")
	}
	if sponsor.LogoKey != "" && s.uploader != nil {
		s.discard(ctx, sponsor.LogoKey)
	}
	return nil
}

// discard removes a stored object; failures only leave an orphan behind, so they are logged
func (s *SponsorService) discard(ctx context.Context, key string) {
	if err := s.uploader.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("failed to delete sponsor logo: %v", err)
	}
}

func toSponsorResponse(sponsor *models.Sponsor) *SponsorResponse {
	return &SponsorResponse{
		ID:      sponsor.ID,
		Name:    sponsor.Name,
		LogoURL: sponsor.LogoURL,
		Website: sponsor.Website,
	}
}

// logoTypes maps the accepted logo formats to their file extension
var logoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// sniffLogo detects the logo format from its content, whatever the client
// declared, and rewinds src for the upload
func sniffLogo(src io.ReadSeeker) (string, string, error) {
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to read logo: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", fmt.Errorf("failed to read logo: %w", err)
	}

	for contentType, ext := range logoTypes {
		if mtype.Is(contentType) {
			return contentType, ext, nil
		}
	}
	return "", "", apperrors.ErrInvalidLogoType
}
