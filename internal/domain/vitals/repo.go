package vitals

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, v *VitalSigns) error
	ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*VitalSigns, error)
}
