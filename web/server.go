// Package web serves a localhost-only single-user UI; it intentionally has no
// auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"goroster/ingest"
	"goroster/internal/classify"
	"goroster/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	store *storage.SQLiteStore
	ing   *ingest.Ingestor
	mux   *http.ServeMux
}

type rosterPageView struct {
	Title  string
	Roster RosterView
}

type uploadPageView struct {
	Title string
}

type uploadResultView struct {
	Title        string
	File         string
	RowsRead     int
	RowsRejected int
	Inserted     int
	Updated      int
	Unchanged    int
	FallbackUsed bool
	Errors       []string
}

func NewServer(store *storage.SQLiteStore, ing *ingest.Ingestor) http.Handler {
	server := &Server{
		store: store,
		ing:   ing,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleRoster)
	mux.HandleFunc("GET /upload", server.handleUploadForm)
	mux.HandleFunc("POST /upload", server.handleUpload)
	mux.HandleFunc("GET /api/employees", server.handleAPIEmployees)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleRoster(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.ListEmployees()
	if err != nil {
		http.Error(w, fmt.Sprintf("list employees: %v", err), http.StatusInternalServerError)
		return
	}
	counts, err := s.store.CountByStatus()
	if err != nil {
		http.Error(w, fmt.Sprintf("count by status: %v", err), http.StatusInternalServerError)
		return
	}

	view := rosterPageView{
		Title:  "goroster - roster",
		Roster: BuildRosterView(employees, counts),
	}
	if err := renderTemplate(w, "roster.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	view := uploadPageView{Title: "goroster - upload"}
	if err := renderTemplate(w, "upload.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("parse multipart form: %v", err), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", tempUploadPattern(header.Filename))
	if err != nil {
		http.Error(w, fmt.Sprintf("create temp upload: %v", err), http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		http.Error(w, fmt.Sprintf("save upload: %v", err), http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		http.Error(w, fmt.Sprintf("close upload temp file: %v", err), http.StatusInternalServerError)
		return
	}

	result := s.ing.IngestFile(tmpPath)
	sourceName := filepath.Base(strings.TrimSpace(header.Filename))
	for i := range result.Employees {
		result.Employees[i].SourceFile = sourceName
	}

	existing, err := s.store.ListEmployees()
	if err != nil {
		http.Error(w, fmt.Sprintf("list employees: %v", err), http.StatusInternalServerError)
		return
	}
	_, _, unchanged := classify.ClassifyEmployees(result.Employees, existing)

	inserted, updated, err := s.store.UpsertEmployees(result.Employees)
	if err != nil {
		http.Error(w, fmt.Sprintf("persist employees: %v", err), http.StatusInternalServerError)
		return
	}

	view := uploadResultView{
		Title:        "goroster - upload result",
		File:         sourceName,
		RowsRead:     result.RowsRead,
		RowsRejected: result.RowsRejected,
		Inserted:     inserted,
		Updated:      updated,
		Unchanged:    unchanged,
		FallbackUsed: result.FallbackUsed,
		Errors:       result.Errors,
	}
	if err := renderTemplate(w, "result.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.ListEmployees()
	if err != nil {
		http.Error(w, fmt.Sprintf("list employees: %v", err), http.StatusInternalServerError)
		return
	}
	counts, err := s.store.CountByStatus()
	if err != nil {
		http.Error(w, fmt.Sprintf("count by status: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, BuildRosterView(employees, counts))
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func tempUploadPattern(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	if base == "" || base == "." {
		return "upload-*"
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "upload"
	}
	if ext == "" {
		return stem + "-*"
	}
	return stem + "-*" + ext
}
