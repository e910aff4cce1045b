package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"jobagent-backend/internal/bootstrap"
	"jobagent-backend/internal/llm"
	"jobagent-backend/internal/shared/config"
)

type fakeExtractor struct {
	jobJSON json.RawMessage
	err     error
}

func (f fakeExtractor) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (f fakeExtractor) ExtractJob(ctx context.Context, rawText, url string) (json.RawMessage, error) {
	return f.jobJSON, f.err
}

func newTestApp(t *testing.T, ex llm.Extractor) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost"},
		WorkspaceDir:    t.TempDir(),
		Env:             "dev",
	}
	app, err := bootstrap.BuildWith(cfg, bootstrap.Deps{Extractor: ex})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func postCapture(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/job", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJobCaptureRejectsEmptyText(t *testing.T) {
	app := newTestApp(t, fakeExtractor{})

	resp := postCapture(t, app.Router, map[string]string{"raw_text": "   ", "url": "https://example.com/job"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Message != "Job posting text cannot be empty" {
		t.Fatalf("unexpected message: %q", body.Error.Message)
	}
}

func TestJobCaptureRejectsEmptyURL(t *testing.T) {
	app := newTestApp(t, fakeExtractor{})

	resp := postCapture(t, app.Router, map[string]string{"raw_text": "We are hiring.", "url": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestJobCaptureExtractorFailure(t *testing.T) {
	app := newTestApp(t, fakeExtractor{err: errors.New("model unavailable")})

	resp := postCapture(t, app.Router, map[string]string{"raw_text": "We are hiring.", "url": "https://example.com/job"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
	if body.Error == "" {
		t.Fatal("expected error detail")
	}
}

func TestJobCaptureWritesJobFolder(t *testing.T) {
	extracted := json.RawMessage(`{
		"job_title": "Senior Engineer",
		"company": "Acme Corp",
		"job_description": "Build reliable systems.",
		"url": "https://hallucinated.example/other",
		"raw_text": "model-era text"
	}`)
	app := newTestApp(t, fakeExtractor{jobJSON: extracted})

	rawText := "Acme Corp is hiring a Senior Engineer to build reliable systems."
	url := "https://boards.example.com/acme/123"
	resp := postCapture(t, app.Router, map[string]string{"raw_text": rawText, "url": url})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		JobSlug string `json:"job_slug"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	if body.JobSlug != "Senior-Engineer-Acme-Corp" {
		t.Fatalf("unexpected slug: %q", body.JobSlug)
	}

	saved, err := os.ReadFile(filepath.Join(app.Workspace.Root(), "jobs", body.JobSlug, "job.json"))
	if err != nil {
		t.Fatalf("read job.json: %v", err)
	}
	var record struct {
		JobTitle string `json:"job_title"`
		Company  string `json:"company"`
		URL      string `json:"url"`
		RawText  string `json:"raw_text"`
	}
	if err := json.Unmarshal(saved, &record); err != nil {
		t.Fatalf("unmarshal job.json: %v", err)
	}
	if record.JobTitle != "Senior Engineer" || record.Company != "Acme Corp" {
		t.Fatalf("unexpected structured fields: %+v", record)
	}
	// Provenance fields always carry the caller's values, not the model's.
	if record.URL != url {
		t.Fatalf("expected url %q, got %q", url, record.URL)
	}
	if record.RawText != rawText {
		t.Fatalf("expected raw_text to match the submitted posting")
	}
}

func TestJobCaptureDuplicateSlugGetsSuffix(t *testing.T) {
	extracted := json.RawMessage(`{
		"job_title": "Senior Engineer",
		"company": "Acme Corp",
		"job_description": "Build reliable systems."
	}`)
	app := newTestApp(t, fakeExtractor{jobJSON: extracted})

	payload := map[string]string{"raw_text": "We are hiring.", "url": "https://example.com/job"}
	first := postCapture(t, app.Router, payload)
	second := postCapture(t, app.Router, payload)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected both captures to return 200, got %d and %d", first.Code, second.Code)
	}

	var firstBody, secondBody struct {
		JobSlug string `json:"job_slug"`
	}
	if err := json.NewDecoder(first.Body).Decode(&firstBody); err != nil {
		t.Fatalf("decode first response: %v", err)
	}
	if err := json.NewDecoder(second.Body).Decode(&secondBody); err != nil {
		t.Fatalf("decode second response: %v", err)
	}

	if firstBody.JobSlug != "Senior-Engineer-Acme-Corp" {
		t.Fatalf("unexpected first slug: %q", firstBody.JobSlug)
	}
	if secondBody.JobSlug != "Senior-Engineer-Acme-Corp-1" {
		t.Fatalf("unexpected second slug: %q", secondBody.JobSlug)
	}

	for _, slug := range []string{firstBody.JobSlug, secondBody.JobSlug} {
		if _, err := os.Stat(filepath.Join(app.Workspace.Root(), "jobs", slug, "job.json")); err != nil {
			t.Fatalf("expected job.json for %s: %v", slug, err)
		}
	}
}
