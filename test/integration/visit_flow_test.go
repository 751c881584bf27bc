package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/curanet/curanet/internal/domain/board"
	"github.com/curanet/curanet/internal/domain/catalog"
	"github.com/curanet/curanet/internal/domain/directory"
	"github.com/curanet/curanet/internal/domain/patient"
	"github.com/curanet/curanet/internal/domain/visit"
	"github.com/curanet/curanet/internal/domain/vitals"
	"github.com/curanet/curanet/internal/platform/db"
)

func newServices() (*catalog.Service, *patient.Service, *visit.Service, *board.Service, *vitals.Service) {
	pool := globalDB.Pool
	catalogSvc := catalog.NewService(catalog.NewRepo(pool))
	patientSvc := patient.NewService(patient.NewRepo(pool))
	visitSvc := visit.NewService(visit.NewRepo(pool), catalogSvc,
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return db.WithTx(ctx, pool, fn)
		})
	directorySvc := directory.NewService(directory.NewRepo(pool))
	boardSvc := board.NewService(board.NewRepo(pool), directorySvc)
	vitalsSvc := vitals.NewService(vitals.NewRepo(pool), visitSvc)
	return catalogSvc, patientSvc, visitSvc, boardSvc, vitalsSvc
}

func createTestPatient(t *testing.T, ctx context.Context, svc *patient.Service, first, last string) *patient.Patient {
	t.Helper()
	p := &patient.Patient{
		PatientCode: "P-" + uuid.New().String()[:8],
		FirstName:   first,
		LastName:    last,
		DateOfBirth: time.Date(1984, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := svc.CreatePatient(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func TestSeededCatalog(t *testing.T) {
	ctx := context.Background()
	catalogSvc, _, _, _, _ := newServices()

	cats, err := catalogSvc.ListActive(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatal("expected seeded status categories")
	}
	for i := 1; i < len(cats); i++ {
		if cats[i].CategoryOrder <= cats[i-1].CategoryOrder {
			t.Fatal("expected categories ascending by category_order")
		}
	}

	first, err := catalogSvc.FirstActive(ctx)
	if err != nil {
		t.Fatalf("first active: %v", err)
	}
	if first.ID != cats[0].ID {
		t.Error("expected FirstActive to match the lowest-order category")
	}
}

func TestVisitLifecycle(t *testing.T) {
	ctx := context.Background()
	catalogSvc, patientSvc, visitSvc, boardSvc, vitalsSvc := newServices()

	hospitalID := seedHospital(t, ctx, "General Hospital")
	doctorID := seedDoctor(t, ctx, hospitalID, "Maya", "Okafor")
	p := createTestPatient(t, ctx, patientSvc, "Jon", "Alvarez")

	cats, err := catalogSvc.ListActive(ctx)
	if err != nil || len(cats) < 2 {
		t.Fatalf("need at least two seeded categories: %v", err)
	}

	v := &visit.PatientVisit{
		VisitNumber:     uniqueVisitNumber("V-FLOW"),
		PatientID:       p.ID,
		HospitalID:      hospitalID,
		PrimaryDoctorID: doctorID,
		VisitType:       visit.VisitEmergency,
		PriorityLevel:   visit.PriorityHigh,
		ChiefComplaint:  ptrStr("chest pain"),
	}
	if err := visitSvc.CreateVisit(ctx, v); err != nil {
		t.Fatalf("create visit: %v", err)
	}
	if v.CurrentStatusID != cats[0].ID {
		t.Error("expected visit to start in the lowest-order category")
	}

	t.Run("Transition_With_History", func(t *testing.T) {
		result, err := visitSvc.Transition(ctx, v.ID, cats[1].ID, &doctorID, ptrStr("triage complete"))
		if err != nil {
			t.Fatalf("transition: %v", err)
		}
		if result.OldStatusID != cats[0].ID || result.NewStatusID != cats[1].ID {
			t.Error("unexpected before/after pair")
		}

		got, err := visitSvc.GetVisit(ctx, v.ID)
		if err != nil {
			t.Fatalf("get visit: %v", err)
		}
		if got.CurrentStatusID != cats[1].ID {
			t.Error("expected status persisted")
		}

		history, err := visitSvc.StatusHistory(ctx, v.ID)
		if err != nil {
			t.Fatalf("status history: %v", err)
		}
		if len(history) != 1 {
			t.Fatalf("expected 1 history row, got %d", len(history))
		}
		if history[0].ChangedByDoctorID == nil || *history[0].ChangedByDoctorID != doctorID {
			t.Error("expected acting doctor recorded")
		}
	})

	t.Run("Rejected_Transition_Leaves_History_Clean", func(t *testing.T) {
		if _, err := visitSvc.Transition(ctx, v.ID, uuid.New(), nil, nil); !errors.Is(err, visit.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		history, err := visitSvc.StatusHistory(ctx, v.ID)
		if err != nil {
			t.Fatalf("status history: %v", err)
		}
		if len(history) != 1 {
			t.Errorf("expected history unchanged, got %d rows", len(history))
		}
	})

	t.Run("Board_Views", func(t *testing.T) {
		columns, err := boardSvc.Kanban(ctx)
		if err != nil {
			t.Fatalf("kanban: %v", err)
		}
		var found bool
		for _, col := range columns {
			for _, s := range col.Visits {
				if s.VisitID == v.ID {
					found = true
					if col.StatusID != cats[1].ID {
						t.Error("visit in wrong column")
					}
					if s.PatientName != "Jon Alvarez" {
						t.Errorf("unexpected patient name %q", s.PatientName)
					}
					if s.HospitalName != "General Hospital" {
						t.Errorf("unexpected hospital name %q", s.HospitalName)
					}
				}
			}
		}
		if !found {
			t.Fatal("expected visit on the kanban board")
		}

		worklist, err := boardSvc.DoctorWorklist(ctx, doctorID)
		if err != nil {
			t.Fatalf("doctor worklist: %v", err)
		}
		if len(worklist) != 1 || worklist[0].VisitID != v.ID {
			t.Fatalf("expected the visit on the doctor's worklist, got %d rows", len(worklist))
		}
	})

	t.Run("Vitals", func(t *testing.T) {
		hr := 96
		temp := 38.2
		reading := &vitals.VitalSigns{
			VisitID:            v.ID,
			RecordedByDoctorID: doctorID,
			HeartRate:          &hr,
			Temperature:        &temp,
		}
		if err := vitalsSvc.Record(ctx, reading); err != nil {
			t.Fatalf("record vitals: %v", err)
		}

		readings, err := vitalsSvc.ListByVisit(ctx, v.ID)
		if err != nil {
			t.Fatalf("list vitals: %v", err)
		}
		if len(readings) != 1 || readings[0].HeartRate == nil || *readings[0].HeartRate != 96 {
			t.Fatal("expected the recorded reading back")
		}
	})

	t.Run("Discharge", func(t *testing.T) {
		discharged, err := visitSvc.Discharge(ctx, v.ID)
		if err != nil {
			t.Fatalf("discharge: %v", err)
		}
		if discharged.DischargeDate == nil {
			t.Fatal("expected discharge date set")
		}

		worklist, err := boardSvc.DoctorWorklist(ctx, doctorID)
		if err != nil {
			t.Fatalf("doctor worklist: %v", err)
		}
		for _, s := range worklist {
			if s.VisitID == v.ID {
				t.Error("expected discharged visit off the worklist")
			}
		}

		reading := &vitals.VitalSigns{VisitID: v.ID, RecordedByDoctorID: doctorID}
		if err := vitalsSvc.Record(ctx, reading); !errors.Is(err, vitals.ErrVisitClosed) {
			t.Errorf("expected ErrVisitClosed after discharge, got %v", err)
		}
	})
}

func TestPatientSearch(t *testing.T) {
	ctx := context.Background()
	_, patientSvc, _, _, _ := newServices()

	created := createTestPatient(t, ctx, patientSvc, "Searchable", "Quintero")

	results, err := patientSvc.SearchPatients(ctx, "quintero")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var found bool
	for _, p := range results {
		if p.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("expected case-insensitive last name match")
	}
}
