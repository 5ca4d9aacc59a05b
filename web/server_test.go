package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"goroster/ingest"
	"goroster/roster"
	"goroster/storage"
)

func newTestServer(t *testing.T) (*storage.SQLiteStore, http.Handler) {
	t.Helper()

	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "goroster.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store, NewServer(store, ingest.NewIngestor())
}

func seedEmployee(t *testing.T, store *storage.SQLiteStore, empID string) {
	t.Helper()

	_, _, err := store.UpsertEmployees([]roster.Employee{{
		EmpID:  empID,
		Name:   "Alice Example",
		Status: roster.StatusAllocated,
		DOJ:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.Local),
	}})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
}

func TestRosterPageListsEmployees(t *testing.T) {
	store, handler := newTestServer(t)
	seedEmployee(t, store, "E1001")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	body := res.Body.String()
	if !strings.Contains(body, "E1001") {
		t.Fatalf("expected employee in roster page, got:\n%s", body)
	}
	if !strings.Contains(body, roster.StatusAllocated) {
		t.Fatalf("expected status counts in roster page, got:\n%s", body)
	}
}

func TestUploadFormRenders(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "multipart/form-data") {
		t.Fatalf("expected upload form in response")
	}
}

func TestUploadIngestsCSVRoster(t *testing.T) {
	store, handler := newTestServer(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "roster.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.WriteString(part, "EMPID,Name,Status,DOJ\nE2001,Carol Example,Allocated,2024-01-10\n"); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", res.Code, res.Body.String())
	}

	stored, err := store.GetEmployee("E2001")
	if err != nil {
		t.Fatalf("expected uploaded employee to be stored: %v", err)
	}
	if stored.SourceFile != "roster.csv" {
		t.Fatalf("expected upload filename as source, got %q", stored.SourceFile)
	}
}

func TestUploadWithoutFileFails(t *testing.T) {
	_, handler := newTestServer(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("note", "no file"); err != nil {
		t.Fatalf("write form field: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", res.Code)
	}
}

func TestAPIEmployeesReturnsJSON(t *testing.T) {
	store, handler := newTestServer(t)
	seedEmployee(t, store, "E1001")

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.Code)
	}

	var view RosterView
	if err := json.Unmarshal(res.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Total != 1 || len(view.Employees) != 1 {
		t.Fatalf("unexpected view: %#v", view)
	}
	if view.Employees[0].EmpID != "E1001" {
		t.Fatalf("unexpected employee: %#v", view.Employees[0])
	}
}

func TestTempUploadPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "with extension", filename: "roster.xlsx", want: "roster-*.xlsx"},
		{name: "without extension", filename: "roster", want: "roster-*"},
		{name: "empty", filename: "", want: "upload-*"},
		{name: "hidden file", filename: ".csv", want: "upload-*.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tempUploadPattern(tt.filename); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
