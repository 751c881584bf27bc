package directory

import (
	"context"

	"github.com/google/uuid"
)

// Lookup is the read-only view other components depend on.
type Lookup interface {
	ListHospitals(ctx context.Context) ([]*Hospital, error)
	GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error)
	ListDoctors(ctx context.Context, hospitalID *uuid.UUID) ([]*Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error)
	ListDepartments(ctx context.Context, hospitalID uuid.UUID) ([]*Department, error)
}
