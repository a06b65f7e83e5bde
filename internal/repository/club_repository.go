package repository

import (
	"context"
	"errors"

	"club-merch/internal/domain"
)

var ErrClubNotFound = errors.New("club not found")

// ClubRepository defines read access to the registered clubs.
type ClubRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Club, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Club, error)
	List(ctx context.Context) ([]*domain.Club, error)
}

type clubRepository struct {
	clubs  []*domain.Club
	byID   map[string]*domain.Club
	bySlug map[string]*domain.Club
}

// NewClubRepository creates a club repository over the given club set. Slugs
// are assumed unique.
func NewClubRepository(clubs []*domain.Club) ClubRepository {
	byID := make(map[string]*domain.Club, len(clubs))
	bySlug := make(map[string]*domain.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
		bySlug[c.Slug] = c
	}
	return &clubRepository{clubs: clubs, byID: byID, bySlug: bySlug}
}

func (r *clubRepository) FindByID(ctx context.Context, id string) (*domain.Club, error) {
	club, ok := r.byID[id]
	if !ok {
		return nil, ErrClubNotFound
	}
	return club, nil
}

func (r *clubRepository) FindBySlug(ctx context.Context, slug string) (*domain.Club, error) {
	club, ok := r.bySlug[slug]
	if !ok {
		return nil, ErrClubNotFound
	}
	return club, nil
}

func (r *clubRepository) List(ctx context.Context) ([]*domain.Club, error) {
	out := make([]*domain.Club, len(r.clubs))
	copy(out, r.clubs)
	return out, nil
}
