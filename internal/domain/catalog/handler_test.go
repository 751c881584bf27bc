package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_ListStatusCategories(t *testing.T) {
	repo := newMockRepo()
	repo.add("In Treatment", 2, true)
	repo.add("Triage", 1, true)
	repo.add("Retired", 3, false)
	h := NewHandler(NewService(repo))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListStatusCategories(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var cats []*StatusCategory
	json.Unmarshal(rec.Body.Bytes(), &cats)
	if len(cats) != 2 {
		t.Fatalf("expected 2 active categories, got %d", len(cats))
	}
	if cats[0].CategoryName != "Triage" || cats[1].CategoryName != "In Treatment" {
		t.Errorf("expected ascending category_order, got %s, %s",
			cats[0].CategoryName, cats[1].CategoryName)
	}
}
