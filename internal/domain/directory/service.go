package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a directory entity does not exist.
var ErrNotFound = errors.New("directory entry not found")

type Service struct {
	lookup Lookup
}

func NewService(lookup Lookup) *Service {
	return &Service{lookup: lookup}
}

func (s *Service) ListHospitals(ctx context.Context) ([]*Hospital, error) {
	return s.lookup.ListHospitals(ctx)
}

func (s *Service) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return s.lookup.GetHospital(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, hospitalID *uuid.UUID) ([]*Doctor, error) {
	return s.lookup.ListDoctors(ctx, hospitalID)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.lookup.GetDoctor(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, hospitalID uuid.UUID) ([]*Department, error) {
	return s.lookup.ListDepartments(ctx, hospitalID)
}
