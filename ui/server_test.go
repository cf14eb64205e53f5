package ui

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cognia/domain/profile"
)

func testApp() *App {
	opts := profile.DefaultOptions()
	opts.CategoricalCardinalityThreshold = 0.8
	return NewApp(Config{Options: opts}, nil, nil)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateReport_RawCSVBody(t *testing.T) {
	body := strings.NewReader("age,city\n25,paris\n30,rome\n29,paris\n31,berlin\n")
	req := httptest.NewRequest(http.MethodPost, "/reports", body)
	rec := httptest.NewRecorder()
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	sections, ok := payload["sections"].([]interface{})
	if !ok || len(sections) != 6 {
		t.Errorf("sections = %v, want 6 report sections", payload["sections"])
	}
	if payload["fingerprint"] == "" {
		t.Error("response must carry the profile fingerprint")
	}
}

func TestCreateReport_HTMLFormat(t *testing.T) {
	body := strings.NewReader("v\n1\n2\n3\n")
	req := httptest.NewRequest(http.MethodPost, "/reports?format=html", body)
	rec := httptest.NewRecorder()
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "<!DOCTYPE html>") {
		t.Error("expected a standalone HTML document")
	}
}

func TestCreateReport_MultipartUpload(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("dataset", "sales.csv")
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	part.Write([]byte("amount\n10\n20\n30\n"))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/reports", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if title, _ := payload["title"].(string); !strings.Contains(title, "sales") {
		t.Errorf("title = %q, want the upload filename", title)
	}
}

func TestCreateReport_EmptyBodyIsRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(""))
	rec := httptest.NewRecorder()
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetReport_WithoutRepository(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports/some-id", nil)
	rec := httptest.NewRecorder()
	testApp().Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
