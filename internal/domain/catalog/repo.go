package catalog

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StatusCategory, error)
	ListActive(ctx context.Context) ([]*StatusCategory, error)
}
