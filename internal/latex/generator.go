// Package latex turns model output into compilable LaTeX source files and
// drives the pdflatex toolchain.
package latex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"jobagent-backend/internal/llm"
)

// Generated sources must be self-contained: pdflatex runs in a bare job
// folder with no cls/sty files next to it.
var standardClasses = map[string]struct{}{
	"article": {},
	"report":  {},
	"book":    {},
	"letter":  {},
	"beamer":  {},
	"memoir":  {},
}

var docClassRe = regexp.MustCompile(`\\documentclass(?:\[[^\]]*\])?\{([^}]+)\}`)

var (
	// ErrExternalReference rejects sources that pull in external files.
	ErrExternalReference = errors.New("latex source references external files (\\input or \\include)")
	// ErrNonStandardClass rejects document classes that need external .cls files.
	ErrNonStandardClass = errors.New("latex source uses a non-standard document class")
)

// Sanitize strips a single enclosing markdown code fence from model output
// and rejects sources that cannot compile standalone.
func Sanitize(raw string) (string, error) {
	source := stripFence(raw)

	if strings.Contains(source, `\input{`) || strings.Contains(source, `\include{`) {
		return "", ErrExternalReference
	}
	if match := docClassRe.FindStringSubmatch(source); match != nil {
		if _, ok := standardClasses[match[1]]; !ok {
			return "", fmt.Errorf("%w: %q", ErrNonStandardClass, match[1])
		}
	}
	return source, nil
}

func stripFence(raw string) string {
	source := strings.TrimSpace(raw)
	if strings.HasPrefix(source, "```") {
		source = strings.TrimPrefix(source, "```")
		// Drop an optional language tag such as "latex" or "tex".
		if idx := strings.IndexByte(source, '\n'); idx >= 0 && !strings.ContainsAny(source[:idx], `\{`) {
			source = source[idx+1:]
		}
		source = strings.TrimSpace(source)
	}
	source = strings.TrimSuffix(source, "```")
	return strings.TrimSpace(source)
}

// Generator synthesizes LaTeX documents and writes accepted sources to disk.
type Generator struct {
	Synth llm.Synthesizer
}

// CoverLetter synthesizes a cover letter and writes it to outPath.
func (g *Generator) CoverLetter(ctx context.Context, resumeJSON, jobJSON json.RawMessage, outPath string) (string, error) {
	raw, err := g.Synth.CoverLetter(ctx, resumeJSON, jobJSON)
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	source, err := Sanitize(raw)
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	if err := writeSource(outPath, source); err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	return source, nil
}

// TailoredResume synthesizes a tailored resume and writes it to outPath.
func (g *Generator) TailoredResume(ctx context.Context, resumeJSON, jobJSON json.RawMessage, outPath string) (string, error) {
	raw, err := g.Synth.TailoredResume(ctx, resumeJSON, jobJSON)
	if err != nil {
		return "", fmt.Errorf("generate resume: %w", err)
	}
	source, err := Sanitize(raw)
	if err != nil {
		return "", fmt.Errorf("generate resume: %w", err)
	}
	if err := writeSource(outPath, source); err != nil {
		return "", fmt.Errorf("generate resume: %w", err)
	}
	return source, nil
}

func writeSource(path, source string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return fmt.Errorf("write latex source: %w", err)
	}
	return nil
}
