package board

import (
	"context"

	"github.com/google/uuid"
)

// Repository reads the board join views. Board data is derived entirely from
// the visit, patient, catalog and directory tables; nothing here writes.
type Repository interface {
	// ActiveSummaries returns the join row for every visit still on the
	// board, ordered by visit id.
	ActiveSummaries(ctx context.Context) ([]*VisitSummary, error)

	// DoctorSummaries returns the on-board summaries for one doctor's
	// visits. Callers apply worklist ordering.
	DoctorSummaries(ctx context.Context, doctorID uuid.UUID) ([]*VisitSummary, error)
}
