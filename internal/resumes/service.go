package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"jobagent-backend/internal/extract"
	"jobagent-backend/internal/llm"
	"jobagent-backend/internal/schemas"
	"jobagent-backend/internal/workspace"
)

var validate = validator.New()

// Service runs the resume upload pipeline: PDF text extraction, structured
// extraction, and persistence of resume.json.
type Service struct {
	Workspace *workspace.Workspace
	Extractor llm.Extractor
}

// Process extracts text from the uploaded PDF, maps it to a structured
// record via the model, and writes resume.json. The extracted raw text is
// always taken from the PDF, never from model output.
func (s *Service) Process(ctx context.Context, pdfPath string) (string, error) {
	if err := s.Workspace.EnsureExists(); err != nil {
		return "", err
	}

	text, err := extract.Text(pdfPath)
	if err != nil {
		return "", fmt.Errorf("process resume: %w", err)
	}

	raw, err := s.Extractor.ExtractResume(ctx, text)
	if err != nil {
		return "", fmt.Errorf("process resume: extract: %w", err)
	}
	if err := schemas.ValidateResume(raw); err != nil {
		return "", fmt.Errorf("process resume: %w", err)
	}

	var data ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("process resume: decode: %w", err)
	}
	data.RawText = text

	if err := validate.Struct(data); err != nil {
		return "", fmt.Errorf("process resume: invalid record: %w", err)
	}

	resumePath := s.Workspace.ResumePath()
	if err := writeJSON(resumePath, data); err != nil {
		return "", fmt.Errorf("process resume: %w", err)
	}
	return resumePath, nil
}

// Load reads and decodes a previously persisted resume.json.
func Load(path string) (ResumeData, json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ResumeData{}, nil, fmt.Errorf("load resume: %w", err)
	}
	if err := schemas.ValidateResume(raw); err != nil {
		return ResumeData{}, nil, fmt.Errorf("load resume: %w", err)
	}
	var data ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ResumeData{}, nil, fmt.Errorf("load resume: decode: %w", err)
	}
	return data, raw, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
