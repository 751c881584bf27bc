package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no status category exists for an identifier.
var ErrNotFound = errors.New("status category not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetCategory returns one category by id, active or not. Callers that need an
// active entry check IsActive themselves; transition validation does.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*StatusCategory, error) {
	return s.repo.GetByID(ctx, id)
}

// ListActive returns active categories ascending by category_order. The
// ordering is total: category maintenance keeps category_order unique among
// active rows.
func (s *Service) ListActive(ctx context.Context) ([]*StatusCategory, error) {
	return s.repo.ListActive(ctx)
}

// FirstActive returns the active category with the lowest category_order,
// used as the default status for newly created visits.
func (s *Service) FirstActive(ctx context.Context) (*StatusCategory, error) {
	cats, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, ErrNotFound
	}
	return cats[0], nil
}
