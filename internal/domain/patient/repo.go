package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// Search matches the query case-insensitively as a substring of first
	// name, last name, patient code, or phone, across all hospitals.
	Search(ctx context.Context, query string, limit int) ([]*Patient, error)
}
