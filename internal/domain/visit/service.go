package visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curanet/curanet/internal/domain/catalog"
)

var (
	// ErrNotFound is returned when no visit exists for an identifier.
	ErrNotFound = errors.New("visit not found")
	// ErrInvalidStatus is returned when a target status is not an active
	// catalog entry.
	ErrInvalidStatus = errors.New("invalid status category")
	// ErrConflict is reserved for optimistic-locking support. Concurrent
	// transitions on the same visit currently race last-write-wins; adding
	// an expected-version argument to Transition is the known follow-up
	// that would start raising this.
	ErrConflict = errors.New("visit was modified concurrently")
)

// Catalog is the status-catalog view the service validates against.
// *catalog.Service satisfies it.
type Catalog interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*catalog.StatusCategory, error)
	FirstActive(ctx context.Context) (*catalog.StatusCategory, error)
}

// TxRunner runs fn inside a single database transaction.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	repo    Repository
	catalog Catalog
	tx      TxRunner
}

func NewService(repo Repository, cat Catalog, tx TxRunner) *Service {
	if tx == nil {
		tx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	return &Service{repo: repo, catalog: cat, tx: tx}
}

// CreateVisit admits a patient. When no initial status is supplied the visit
// starts in the active category with the lowest category_order; a supplied
// status must be an active catalog entry.
func (s *Service) CreateVisit(ctx context.Context, v *PatientVisit) error {
	if v.VisitNumber == "" {
		return fmt.Errorf("visit_number is required")
	}
	if v.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if v.HospitalID == uuid.Nil {
		return fmt.Errorf("hospital_id is required")
	}
	if v.PrimaryDoctorID == uuid.Nil {
		return fmt.Errorf("primary_doctor_id is required")
	}
	if !v.VisitType.Valid() {
		return fmt.Errorf("invalid visit_type: %q", v.VisitType)
	}
	if v.PriorityLevel == "" {
		v.PriorityLevel = PriorityNormal
	}
	if !v.PriorityLevel.Valid() {
		return fmt.Errorf("invalid priority_level: %q", v.PriorityLevel)
	}
	if v.AdmissionDate.IsZero() {
		v.AdmissionDate = time.Now().UTC()
	}

	if v.CurrentStatusID == uuid.Nil {
		first, err := s.catalog.FirstActive(ctx)
		if err != nil {
			return fmt.Errorf("resolve initial status: %w", err)
		}
		v.CurrentStatusID = first.ID
	} else if err := s.validateStatus(ctx, v.CurrentStatusID); err != nil {
		return err
	}

	v.IsActive = true
	v.DischargeDate = nil
	return s.repo.Create(ctx, v)
}

func (s *Service) GetVisit(ctx context.Context, id uuid.UUID) (*PatientVisit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindActive(ctx context.Context, filter ActiveFilter) ([]*PatientVisit, error) {
	return s.repo.FindActive(ctx, filter)
}

// Transition moves a visit to a new status category. Any active category is
// a legal target, including the visit's current one: the catalog encodes
// allowed states, not allowed edges. The status update and its audit row are
// written in one transaction. actingDoctorID and reason are provenance
// metadata recorded in the history row; they are not validated against the
// visit's assigned doctor.
func (s *Service) Transition(ctx context.Context, visitID, newStatusID uuid.UUID, actingDoctorID *uuid.UUID, reason *string) (*TransitionResult, error) {
	v, err := s.repo.GetByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if err := s.validateStatus(ctx, newStatusID); err != nil {
		return nil, err
	}

	oldStatusID := v.CurrentStatusID
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.repo.SetStatus(ctx, visitID, newStatusID); err != nil {
			return err
		}
		return s.repo.AddStatusHistory(ctx, &StatusHistory{
			VisitID:           visitID,
			OldStatusID:       oldStatusID,
			NewStatusID:       newStatusID,
			ChangedByDoctorID: actingDoctorID,
			Reason:            reason,
		})
	})
	if err != nil {
		return nil, err
	}

	return &TransitionResult{
		VisitID:     visitID,
		OldStatusID: oldStatusID,
		NewStatusID: newStatusID,
	}, nil
}

// Discharge stamps the discharge date, permanently removing the visit from
// active views. Discharging an already-discharged visit is a no-op.
func (s *Service) Discharge(ctx context.Context, id uuid.UUID) (*PatientVisit, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.DischargeDate != nil {
		return v, nil
	}

	now := time.Now().UTC()
	if err := s.repo.Discharge(ctx, id, now); err != nil {
		return nil, err
	}
	v.DischargeDate = &now
	return v, nil
}

func (s *Service) StatusHistory(ctx context.Context, visitID uuid.UUID) ([]*StatusHistory, error) {
	if _, err := s.repo.GetByID(ctx, visitID); err != nil {
		return nil, err
	}
	return s.repo.ListStatusHistory(ctx, visitID)
}

func (s *Service) validateStatus(ctx context.Context, statusID uuid.UUID) error {
	cat, err := s.catalog.GetCategory(ctx, statusID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrInvalidStatus, statusID)
		}
		return err
	}
	if !cat.IsActive {
		return fmt.Errorf("%w: %s is inactive", ErrInvalidStatus, statusID)
	}
	return nil
}
