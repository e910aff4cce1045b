// Package llm abstracts the language-model calls the pipeline depends on so
// tests can substitute deterministic fakes.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Extractor maps free text to JSON conforming to a fixed schema. The caller
// is responsible for validating and unmarshaling the returned document.
type Extractor interface {
	ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error)
	ExtractJob(ctx context.Context, rawText, url string) (json.RawMessage, error)
}

// Synthesizer produces LaTeX source text for a tailored document from the
// structured resume and job records.
type Synthesizer interface {
	CoverLetter(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error)
	TailoredResume(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error)
}

// ErrNotConfigured is returned by the placeholder clients.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderExtractor is a stub implementation used when no provider is wired.
type PlaceholderExtractor struct{}

// ExtractResume returns ErrNotConfigured.
func (PlaceholderExtractor) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	_ = ctx
	_ = resumeText
	return nil, ErrNotConfigured
}

// ExtractJob returns ErrNotConfigured.
func (PlaceholderExtractor) ExtractJob(ctx context.Context, rawText, url string) (json.RawMessage, error) {
	_ = ctx
	_ = rawText
	_ = url
	return nil, ErrNotConfigured
}

// PlaceholderSynthesizer is a stub implementation used when no provider is wired.
type PlaceholderSynthesizer struct{}

// CoverLetter returns ErrNotConfigured.
func (PlaceholderSynthesizer) CoverLetter(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	_ = ctx
	_ = resumeJSON
	_ = jobJSON
	return "", ErrNotConfigured
}

// TailoredResume returns ErrNotConfigured.
func (PlaceholderSynthesizer) TailoredResume(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	_ = ctx
	_ = resumeJSON
	_ = jobJSON
	return "", ErrNotConfigured
}
