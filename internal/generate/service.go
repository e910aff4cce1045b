package generate

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"jobagent-backend/internal/jobs"
	"jobagent-backend/internal/latex"
	"jobagent-backend/internal/resumes"
	"jobagent-backend/internal/shared/telemetry"
	"jobagent-backend/internal/workspace"
)

// Result describes a completed generation run.
type Result struct {
	Status         string
	CoverLetterPDF *string
	ResumePDF      *string
}

// Service sequences document generation for a captured job: load both
// records, synthesize cover letter and tailored resume LaTeX, then compile
// both to PDF when the toolchain is present.
type Service struct {
	Workspace *workspace.Workspace
	Generator *latex.Generator
	Compiler  *latex.Compiler
}

// Run generates documents for the given job slug. A missing compiler is not
// a failure: the LaTeX sources are still produced and the result reports
// latex_only with no PDFs.
func (s *Service) Run(ctx context.Context, jobSlug string) (Result, error) {
	jobDir := s.Workspace.JobDir(jobSlug)
	if fi, err := os.Stat(jobDir); err != nil || !fi.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobSlug)
	}
	if _, err := os.Stat(s.Workspace.ResumePath()); err != nil {
		return Result{}, ErrResumeNotFound
	}
	jobDataPath := s.Workspace.JobDataPath(jobSlug)
	if _, err := os.Stat(jobDataPath); err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrJobDataNotFound, jobSlug)
	}

	_, resumeJSON, err := resumes.Load(s.Workspace.ResumePath())
	if err != nil {
		return Result{}, err
	}
	_, jobJSON, err := jobs.Load(jobDataPath)
	if err != nil {
		return Result{}, err
	}

	coverTexPath := filepath.Join(jobDir, "cover_letter.tex")
	if _, err := s.Generator.CoverLetter(ctx, resumeJSON, jobJSON, coverTexPath); err != nil {
		return Result{}, err
	}

	resumeTexPath := filepath.Join(jobDir, "resume.tex")
	if _, err := s.Generator.TailoredResume(ctx, resumeJSON, jobJSON, resumeTexPath); err != nil {
		return Result{}, err
	}

	if !s.Compiler.Available() {
		telemetry.Warn("generate.compiler_missing", map[string]any{"job_slug": jobSlug})
		return Result{Status: StatusLatexOnly}, nil
	}

	if _, err := s.Compiler.Compile(ctx, coverTexPath); err != nil {
		return Result{}, fmt.Errorf("compile cover letter: %w", err)
	}
	if _, err := s.Compiler.Compile(ctx, resumeTexPath); err != nil {
		return Result{}, fmt.Errorf("compile resume: %w", err)
	}

	coverRel := path.Join("jobs", jobSlug, "cover_letter.pdf")
	resumeRel := path.Join("jobs", jobSlug, "resume.pdf")
	return Result{
		Status:         StatusSuccess,
		CoverLetterPDF: &coverRel,
		ResumePDF:      &resumeRel,
	}, nil
}
