package models

import (
	apperrors "bowls-club-backend/internal/errors"

	"github.com/google/uuid"
)

// MaxRinkPlayers is the most members a rink may field
const MaxRinkPlayers = 4

// Roster is the bounded set of members assigned to a rink.
// The zero value is an empty roster.
type Roster struct {
	ids []uuid.UUID
}

// NewRoster builds a roster from ids, dropping duplicates.
// It fails with ErrRinkRosterFull if more than MaxRinkPlayers distinct ids are given.
func NewRoster(ids ...uuid.UUID) (Roster, error) {
	var r Roster
	for _, id := range ids {
		if err := r.Add(id); err != nil {
			return Roster{}, err
		}
	}
	return r, nil
}

// Add puts id on the roster. Adding a member already present is a no-op.
func (r *Roster) Add(id uuid.UUID) error {
	if r.Contains(id) {
		return nil
	}
	if len(r.ids) >= MaxRinkPlayers {
		return apperrors.ErrRinkRosterFull
	}
	r.ids = append(r.ids, id)
	return nil
}

// Remove takes id off the roster and reports whether it was present
func (r *Roster) Remove(id uuid.UUID) bool {
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is on the roster
func (r Roster) Contains(id uuid.UUID) bool {
	for _, existing := range r.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of players on the roster
func (r Roster) Len() int {
	return len(r.ids)
}

// IDs returns a copy of the roster's member ids in insertion order
func (r Roster) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.ids))
	copy(out, r.ids)
	return out
}
