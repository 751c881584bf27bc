package board

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/curanet/curanet/internal/domain/directory"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorDirectory is the slice of the directory service the board needs.
// Satisfied by *directory.Service.
type DoctorDirectory interface {
	GetDoctor(ctx context.Context, id uuid.UUID) (*directory.Doctor, error)
}

type Service struct {
	repo Repository
	dir  DoctorDirectory
}

func NewService(repo Repository, dir DoctorDirectory) *Service {
	return &Service{repo: repo, dir: dir}
}

// Kanban groups every on-board visit into its status column. Columns come
// back ascending by category_order; a category with no visits is omitted.
func (s *Service) Kanban(ctx context.Context) ([]*Column, error) {
	summaries, err := s.repo.ActiveSummaries(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[uuid.UUID]*Column)
	for _, sum := range summaries {
		col, ok := byStatus[sum.StatusID]
		if !ok {
			col = &Column{
				StatusID:      sum.StatusID,
				CategoryName:  sum.StatusName,
				CategoryOrder: sum.StatusOrder,
				ColorCode:     sum.StatusColor,
			}
			byStatus[sum.StatusID] = col
		}
		col.Visits = append(col.Visits, sum)
	}

	columns := make([]*Column, 0, len(byStatus))
	for _, col := range byStatus {
		columns = append(columns, col)
	}
	sort.Slice(columns, func(i, j int) bool {
		return columns[i].CategoryOrder < columns[j].CategoryOrder
	})
	return columns, nil
}

// ActivePatients returns the flat join view of every on-board visit,
// ordered by visit id.
func (s *Service) ActivePatients(ctx context.Context) ([]*VisitSummary, error) {
	summaries, err := s.repo.ActiveSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []*VisitSummary{}
	}
	return summaries, nil
}

// DoctorWorklist returns a doctor's on-board visits, most urgent first:
// priority descending, then admission date ascending within a priority.
func (s *Service) DoctorWorklist(ctx context.Context, doctorID uuid.UUID) ([]*VisitSummary, error) {
	if _, err := s.dir.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	summaries, err := s.repo.DoctorSummaries(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		ri, rj := summaries[i].PriorityLevel.Rank(), summaries[j].PriorityLevel.Rank()
		if ri != rj {
			return ri > rj
		}
		return summaries[i].AdmissionDate.Before(summaries[j].AdmissionDate)
	})
	if summaries == nil {
		summaries = []*VisitSummary{}
	}
	return summaries, nil
}
