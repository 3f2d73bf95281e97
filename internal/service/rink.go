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

// RinkService handles business logic for rinks and their player rosters
type RinkService struct {
	repo      repository.RinkRepositoryInterface
	matches   repository.MatchRepositoryInterface
	clubs     repository.OwnClubRepositoryInterface
	clubName  string
	validator *validator.Validate
}

// Ensure RinkService implements RinkServiceInterface
var _ RinkServiceInterface = (*RinkService)(nil)

// NewRinkService creates a new rink service
func NewRinkService(
	repo repository.RinkRepositoryInterface,
	matches repository.MatchRepositoryInterface,
	clubs repository.OwnClubRepositoryInterface,
	clubName string,
	validator *validator.Validate,
) *RinkService {
	return &RinkService{
		repo:      repo,
		matches:   matches,
		clubs:     clubs,
		clubName:  clubName,
		validator: validator,
	}
}

// CreateRinkRequest represents the data needed to create a rink
type CreateRinkRequest struct {
	Number    int         `json:"number" validate:"required,gte=1" example:"3"`
	MatchID   *uuid.UUID  `json:"match_id"`
	PlayerIDs []uuid.UUID `json:"player_ids"`
}

// UpdateRinkRequest represents the data needed to update a rink's number or match
type UpdateRinkRequest struct {
	Number     *int       `json:"number" validate:"omitempty,gte=1"`
	MatchID    *uuid.UUID `json:"match_id"`
	ClearMatch bool       `json:"clear_match"`
}

// SetPlayersRequest replaces a rink's roster
type SetPlayersRequest struct {
	PlayerIDs []uuid.UUID `json:"player_ids"`
}

// AddPlayerRequest puts one member on a rink
type AddPlayerRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
}

// RinkPlayer is a member on a rink's roster
type RinkPlayer struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Team string    `json:"team"`
}

// RinkResponse represents the response data for a rink
type RinkResponse struct {
	ID      uuid.UUID    `json:"id"`
	Number  int          `json:"number"`
	Label   string       `json:"label" example:"Rink 3"`
	MatchID *uuid.UUID   `json:"match_id,omitempty"`
	Fixture string       `json:"fixture,omitempty"`
	Players []RinkPlayer `json:"players"`
}

// CreateRink creates a rink, optionally assigned to a match and with its first players
func (s *RinkService) CreateRink(req *CreateRinkRequest) (*RinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.checkMatchFree(req.MatchID, uuid.Nil); err != nil {
		return nil, err
	}

	rink := &models.Rink{
		Number:  req.Number,
		MatchID: req.MatchID,
	}
	if err := s.repo.Create(rink, req.PlayerIDs); err != nil {
		if errors.Is(err, apperrors.ErrRinkMatchTaken) {
			return nil, err
		}
		return nil, rosterErr(err, "create rink")
	}

	return s.GetRinkByID(rink.ID)
}

// GetRinkByID retrieves a rink with its roster
func (s *RinkService) GetRinkByID(id uuid.UUID) (*RinkResponse, error) {
	rink, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrRinkNotFound, "get rink")
	}
	return s.toResponse(rink, homeLabel(s.clubs, s.clubName)), nil
}

// ListRinks lists all rinks by number
func (s *RinkService) ListRinks() ([]RinkResponse, error) {
	rinks, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rinks: %w", err)
	}

	home := homeLabel(s.clubs, s.clubName)
	responses := make([]RinkResponse, len(rinks))
	for i := range rinks {
		responses[i] = *s.toResponse(&rinks[i], home)
	}
	return responses, nil
}

// UpdateRink changes a rink's number or match assignment
func (s *RinkService) UpdateRink(id uuid.UUID, req *UpdateRinkRequest) (*RinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	rink, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupErr(err, apperrors.ErrRinkNotFound, "get rink")
	}

	if req.Number != nil {
		rink.Number = *req.Number
	}
	if req.ClearMatch {
		rink.MatchID = nil
	}
	if req.MatchID != nil {
		if err := s.checkMatchFree(req.MatchID, id); err != nil {
			return nil, err
		}
		rink.MatchID = req.MatchID
	}

	if err := s.repo.Update(rink); err != nil {
		if errors.Is(err, apperrors.ErrRinkMatchTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update rink: %w", err)
	}
	return s.GetRinkByID(id)
}

// SetPlayers replaces a rink's roster; more than four players is rejected and the roster is left as it was
func (s *RinkService) SetPlayers(id uuid.UUID, req *SetPlayersRequest) (*RinkResponse, error) {
	if err := s.repo.SetPlayers(id, req.PlayerIDs); err != nil {
		return nil, rosterLookupErr(err, "set rink players")
	}
	return s.GetRinkByID(id)
}

// AddPlayer puts a member on a rink; a fifth player is rejected
func (s *RinkService) AddPlayer(id uuid.UUID, req *AddPlayerRequest) (*RinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.repo.AddPlayer(id, req.MemberID); err != nil {
		return nil, rosterLookupErr(err, "add rink player")
	}
	return s.GetRinkByID(id)
}

// RemovePlayer takes a member off a rink
func (s *RinkService) RemovePlayer(id, memberID uuid.UUID) (*RinkResponse, error) {
	if err := s.repo.RemovePlayer(id, memberID); err != nil {
		if errors.Is(err, apperrors.ErrMemberNotOnRink) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, rosterLookupErr(err, "remove rink player")
	}
	return s.GetRinkByID(id)
}

// DeleteRink deletes a rink
func (s *RinkService) DeleteRink(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return lookupErr(err, apperrors.ErrRinkNotFound, "delete rink")
	}
	return nil
}

// checkMatchFree ensures matchID exists and has no rink other than self
func (s *RinkService) checkMatchFree(matchID *uuid.UUID, self uuid.UUID) error {
	if matchID == nil {
		return nil
	}
	if _, err := s.matches.GetByID(*matchID); err != nil {
		return lookupErr(err, apperrors.ErrMatchNotFound, "get match")
	}
	existing, err := s.repo.GetByMatchID(*matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check rink for match: %w", err)
	}
	if existing.ID != self {
		return apperrors.ErrRinkMatchTaken
	}
	return nil
}

// rosterErr passes roster validation errors through untouched
func rosterErr(err error, action string) error {
	if apperrors.IsValidation(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func rosterLookupErr(err error, action string) error {
	if apperrors.IsValidation(err) {
		return err
	}
	return lookupErr(err, apperrors.ErrRinkNotFound, action)
}

func (s *RinkService) toResponse(rink *models.Rink, home string) *RinkResponse {
	players := make([]RinkPlayer, len(rink.Players))
	for i, p := range rink.Players {
		players[i] = RinkPlayer{ID: p.ID, Name: p.FullName(), Team: string(p.Team)}
	}

	resp := &RinkResponse{
		ID:      rink.ID,
		Number:  rink.Number,
		Label:   rink.String(),
		MatchID: rink.MatchID,
		Players: players,
	}
	if rink.Match != nil {
		resp.Fixture = rink.Match.Fixture(home)
	}
	return resp
}
