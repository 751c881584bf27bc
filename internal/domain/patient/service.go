package patient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no patient exists for an identifier.
var ErrNotFound = errors.New("patient not found")

// SearchLimit caps free-text search results. Results past the cap are
// truncated, not paged.
const SearchLimit = 50

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.PatientCode == "" {
		return fmt.Errorf("patient_code is required")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("date_of_birth is required")
	}
	if p.Gender != nil && !p.Gender.Valid() {
		return fmt.Errorf("invalid gender: %s", *p.Gender)
	}
	p.IsActive = true
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// SearchPatients performs a case-insensitive substring search over first
// name, last name, patient code, and phone, across all hospitals.
func (s *Service) SearchPatients(ctx context.Context, query string) ([]*Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	return s.repo.Search(ctx, query, SearchLimit)
}
