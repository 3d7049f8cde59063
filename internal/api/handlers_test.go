package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"survey-analyzer/internal/engine"
	"survey-analyzer/internal/models"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	engine.ResetLoadCache()

	path := filepath.Join(t.TempDir(), "survey.csv")
	content := `ResponseId,Country,Languages
R1,USA,Python;Go
R2,UK,Python
R3,USA,Go
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := engine.Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	catalog := engine.BuildCatalog(table, "ResponseId", ";")
	h := NewHandler(table, catalog, engine.NewSubsetStore(), 10)
	return NewServer(h)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetStructure(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/structure", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Questions []models.QuestionInfo `json:"questions"`
		Total     int                   `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Total != 2 || len(body.Questions) != 2 {
		t.Errorf("expected 2 questions, got %+v", body)
	}
}

func TestSearchRequiresKeyword(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/api/search", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/search?q=lang", ""); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestDistributionUnknownQuestion(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/distribution/Nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubsetFlow(t *testing.T) {
	e := newTestServer(t)

	// Subset-scoped query with nothing saved is a conflict, never a
	// silent full-table fallback.
	rec := do(e, http.MethodGet, "/api/distribution/Languages?subset=true", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 before save, got %d", rec.Code)
	}

	rec = do(e, http.MethodPost, "/api/subset", `{"question":"Country","answer":"USA","save":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var summary models.SubsetSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatal(err)
	}
	if summary.Rows != 2 || !summary.Saved {
		t.Errorf("unexpected summary: %+v", summary)
	}

	rec = do(e, http.MethodGet, "/api/distribution/Languages?subset=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after save, got %d", rec.Code)
	}
	var result models.DistributionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Scope != "subset" || result.Total != 2 {
		t.Errorf("unexpected distribution: %+v", result)
	}

	if rec := do(e, http.MethodDelete, "/api/subset", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/distribution/Languages?subset=true", ""); rec.Code != http.StatusConflict {
		t.Errorf("expected 409 after clear, got %d", rec.Code)
	}
}
