package board

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/curanet/curanet/internal/domain/directory"
	"github.com/curanet/curanet/internal/domain/visit"
)

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestHandler_Kanban(t *testing.T) {
	triage := status{uuid.New(), "Triage", 1}
	repo := &mockRepo{summaries: []*VisitSummary{
		summary(triage, uuid.New(), visit.PriorityNormal, time.Now()),
	}}
	h := NewHandler(NewService(repo, &mockDirectory{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Kanban(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var columns []*Column
	json.Unmarshal(rec.Body.Bytes(), &columns)
	if len(columns) != 1 || columns[0].CategoryName != "Triage" {
		t.Errorf("unexpected columns: %+v", columns)
	}
}

func TestHandler_ActivePatients_EmptyBoard(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}, &mockDirectory{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ActivePatients(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestHandler_DoctorWorklist(t *testing.T) {
	triage := status{uuid.New(), "Triage", 1}
	docID := uuid.New()
	repo := &mockRepo{summaries: []*VisitSummary{
		summary(triage, docID, visit.PriorityCritical, time.Now()),
	}}
	dir := &mockDirectory{doctors: map[uuid.UUID]*directory.Doctor{docID: {ID: docID}}}
	h := NewHandler(NewService(repo, dir))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(docID.String())

	if err := h.DoctorWorklist(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var worklist []*VisitSummary
	json.Unmarshal(rec.Body.Bytes(), &worklist)
	if len(worklist) != 1 {
		t.Errorf("expected 1 row, got %d", len(worklist))
	}
}

func TestHandler_DoctorWorklist_UnknownDoctor(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}, &mockDirectory{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.DoctorWorklist(c)
	if code := httpCode(t, err); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_DoctorWorklist_InvalidID(t *testing.T) {
	h := NewHandler(NewService(&mockRepo{}, &mockDirectory{}))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.DoctorWorklist(c)
	if code := httpCode(t, err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}
