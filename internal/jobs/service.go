package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"jobagent-backend/internal/llm"
	"jobagent-backend/internal/schemas"
	"jobagent-backend/internal/workspace"
)

var validate = validator.New()

// Service runs the job capture pipeline: structured extraction, slug
// derivation from the extracted title and company, and persistence of
// job.json into the job's folder.
type Service struct {
	Workspace *workspace.Workspace
	Extractor llm.Extractor
}

// Capture extracts a structured job record from the posting text, creates
// the job folder, and writes job.json. RawText and URL always carry the
// caller-supplied values; the model is not trusted for provenance fields.
func (s *Service) Capture(ctx context.Context, rawText, url string) (string, error) {
	if err := s.Workspace.EnsureExists(); err != nil {
		return "", err
	}

	raw, err := s.Extractor.ExtractJob(ctx, rawText, url)
	if err != nil {
		return "", fmt.Errorf("capture job: extract: %w", err)
	}
	if err := schemas.ValidateJob(raw); err != nil {
		return "", fmt.Errorf("capture job: %w", err)
	}

	var data JobData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("capture job: decode: %w", err)
	}
	data.RawText = rawText
	data.URL = url

	if err := validate.Struct(data); err != nil {
		return "", fmt.Errorf("capture job: invalid record: %w", err)
	}

	// The folder name comes from what the model extracted, not from any
	// caller input.
	dir, slug, err := s.Workspace.CreateJobFolder(data.JobTitle, data.Company)
	if err != nil {
		return "", fmt.Errorf("capture job: %w", err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("capture job: encode: %w", err)
	}
	if err := os.WriteFile(s.Workspace.JobDataPath(slug), encoded, 0o644); err != nil {
		return "", fmt.Errorf("capture job: write %s: %w", dir, err)
	}
	return slug, nil
}

// Load reads and decodes a previously persisted job.json.
func Load(path string) (JobData, json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return JobData{}, nil, fmt.Errorf("load job: %w", err)
	}
	if err := schemas.ValidateJob(raw); err != nil {
		return JobData{}, nil, fmt.Errorf("load job: %w", err)
	}
	var data JobData
	if err := json.Unmarshal(raw, &data); err != nil {
		return JobData{}, nil, fmt.Errorf("load job: decode: %w", err)
	}
	return data, raw, nil
}
