package board

import (
	"errors"

	"github.com/moneylane/moneylane/internal/models"
)

// ErrLocationNotFound is returned for a location index outside the ring.
var ErrLocationNotFound = errors.New("location not found")

// Board is the fixed ring of locations for one session.
type Board struct {
	locations []*models.Location
}

// New creates a board of the given size with empty placeholder locations.
func New(size int) *Board {
	locations := make([]*models.Location, size)
	for i := range locations {
		locations[i] = &models.Location{
			Idx:     i,
			Name:    "Boring Place",
			Actions: []models.Action{},
		}
	}
	return &Board{locations: locations}
}

// Size returns the number of locations on the ring.
func (b *Board) Size() int {
	return len(b.locations)
}

// SetLocation replaces the location at the given index.
func (b *Board) SetLocation(idx int, loc *models.Location) error {
	if idx < 0 || idx >= len(b.locations) {
		return ErrLocationNotFound
	}
	b.locations[idx] = loc
	return nil
}

// Location returns the location at the given index.
func (b *Board) Location(idx int) (*models.Location, error) {
	if idx < 0 || idx >= len(b.locations) {
		return nil, ErrLocationNotFound
	}
	return b.locations[idx], nil
}

// MoveRelative moves the player by delta steps along the ring. Delta may be
// negative or exceed the board size; the destination index is always in
// [0, size).
func (b *Board) MoveRelative(p *models.Player, delta int) (*models.Location, error) {
	size := len(b.locations)
	idx := (p.LocationIdx + delta) % size
	if idx < 0 {
		idx += size
	}
	return b.MoveAbsolute(p, idx)
}

// MoveAbsolute places the player at the given index and returns the
// destination location.
func (b *Board) MoveAbsolute(p *models.Player, idx int) (*models.Location, error) {
	loc, err := b.Location(idx)
	if err != nil {
		return nil, err
	}
	p.LocationIdx = idx
	return loc, nil
}
