package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"cognia/adapters/csv"
	"cognia/adapters/excel"
	"cognia/adapters/render"
	"cognia/domain/core"
	"cognia/domain/table"
	"cognia/ports"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateReport accepts a multipart upload (field "dataset", .csv or
// .xlsx) or a raw CSV body, profiles it, and returns the report as JSON or
// HTML depending on ?format.
func (a *App) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), a.config.Timeout)
	defer cancel()

	t, title, err := a.readUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.service.GenerateReport(ctx, t, a.config.Options, title)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsInputError(err) || core.IsConfigurationError(err) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		w.Write(render.HTML(result.Report))
	default:
		writeJSON(w, http.StatusCreated, result.Report.ToMap())
	}
}

// handleGetReport serves a previously stored report
func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stored, err := a.service.GetReport(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsNotFoundError(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(render.HTML(stored.Report))
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

// readUpload extracts a table from the request: a multipart "dataset" file
// when present, otherwise the raw body treated as CSV.
func (a *App) readUpload(r *http.Request) (*table.Table, string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, a.config.MaxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(a.config.MaxUploadBytes); err != nil {
			return nil, "", fmt.Errorf("failed to parse upload: %w", err)
		}
		file, header, err := r.FormFile("dataset")
		if err != nil {
			return nil, "", fmt.Errorf("missing dataset file: %w", err)
		}
		defer file.Close()

		t, err := readByExtension(file, header.Filename)
		if err != nil {
			return nil, "", err
		}
		return t, reportTitle(header.Filename), nil
	}

	t, err := csv.NewReader().Read(r.Body)
	if err != nil {
		return nil, "", err
	}
	return t, "", nil
}

func readByExtension(src io.Reader, filename string) (*table.Table, error) {
	var reader ports.TableReader
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		reader = excel.NewReader()
	case ".csv", "":
		reader = csv.NewReader()
	default:
		return nil, fmt.Errorf("unsupported dataset type: %s", filepath.Ext(filename))
	}
	return reader.Read(src)
}

func reportTitle(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" {
		return ""
	}
	return fmt.Sprintf("EDA Report – %s", base)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[UI] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
