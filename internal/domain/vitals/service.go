package vitals

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/curanet/curanet/internal/domain/visit"
)

var ErrVisitClosed = errors.New("visit is not active")

// VisitLookup is the slice of the visit service the vitals recorder needs.
// Satisfied by *visit.Service.
type VisitLookup interface {
	GetVisit(ctx context.Context, id uuid.UUID) (*visit.PatientVisit, error)
}

type Service struct {
	repo   Repository
	visits VisitLookup
}

func NewService(repo Repository, visits VisitLookup) *Service {
	return &Service{repo: repo, visits: visits}
}

// Record stores a reading against a visit. The visit must still be on the
// board; readings cannot be attached to discharged visits. BMI is derived
// from weight and height when both are present and no value was supplied.
func (s *Service) Record(ctx context.Context, v *VitalSigns) error {
	if v.VisitID == uuid.Nil {
		return fmt.Errorf("visit_id is required")
	}
	if v.RecordedByDoctorID == uuid.Nil {
		return fmt.Errorf("recorded_by_doctor_id is required")
	}

	pv, err := s.visits.GetVisit(ctx, v.VisitID)
	if err != nil {
		return err
	}
	if !pv.OnBoard() {
		return fmt.Errorf("%w: %s", ErrVisitClosed, pv.ID)
	}

	if v.BMI == nil && v.WeightKg != nil && v.HeightCm != nil && *v.HeightCm > 0 {
		m := *v.HeightCm / 100
		bmi := math.Round(*v.WeightKg/(m*m)*10) / 10
		v.BMI = &bmi
	}
	return s.repo.Create(ctx, v)
}

// ListByVisit returns a visit's readings ascending by recorded_at.
func (s *Service) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*VitalSigns, error) {
	if _, err := s.visits.GetVisit(ctx, visitID); err != nil {
		return nil, err
	}
	return s.repo.ListByVisit(ctx, visitID)
}
