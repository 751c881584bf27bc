package visit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, v *PatientVisit) error
	GetByID(ctx context.Context, id uuid.UUID) (*PatientVisit, error)
	FindActive(ctx context.Context, filter ActiveFilter) ([]*PatientVisit, error)

	// SetStatus is the raw write: it updates current_status_id and the
	// update timestamp without checking transition legality. Validation
	// lives in the service.
	SetStatus(ctx context.Context, id, statusID uuid.UUID) error
	Discharge(ctx context.Context, id uuid.UUID, at time.Time) error

	AddStatusHistory(ctx context.Context, h *StatusHistory) error
	ListStatusHistory(ctx context.Context, visitID uuid.UUID) ([]*StatusHistory, error)
}
