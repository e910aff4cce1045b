package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"jobagent-backend/internal/shared/metrics"
	"jobagent-backend/internal/shared/telemetry"
)

const defaultPassTimeout = 60 * time.Second

// Auxiliary files pdflatex leaves behind after a successful run.
var auxExtensions = []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"}

var (
	// ErrCompilerMissing means pdflatex is not on PATH. Callers treat this
	// as a distinct non-retryable condition, not a compilation failure.
	ErrCompilerMissing = errors.New("pdflatex is not installed")
	// ErrCompileTimeout means a pdflatex pass exceeded its timeout.
	ErrCompileTimeout = errors.New("pdf compilation timed out")
)

// Compiler invokes pdflatex to turn .tex sources into PDFs.
type Compiler struct {
	Bin         string
	PassTimeout time.Duration
}

// NewCompiler constructs a Compiler with default binary name and timeout.
func NewCompiler() *Compiler {
	return &Compiler{Bin: "pdflatex", PassTimeout: defaultPassTimeout}
}

// Available reports whether the compiler binary is reachable on PATH.
func (c *Compiler) Available() bool {
	_, err := exec.LookPath(c.bin())
	return err == nil
}

// Compile runs pdflatex twice over the source (the second pass resolves
// cross-references) and returns the path of the produced PDF. The exit
// status is not trusted: pdflatex exits non-zero on recoverable warnings,
// so success is the output artifact existing on disk.
func (c *Compiler) Compile(ctx context.Context, texPath string) (string, error) {
	if !c.Available() {
		return "", ErrCompilerMissing
	}
	if _, err := os.Stat(texPath); err != nil {
		return "", fmt.Errorf("latex source not found: %s", texPath)
	}

	start := time.Now()
	workDir := filepath.Dir(texPath)
	for pass := 1; pass <= 2; pass++ {
		if err := c.runPass(ctx, workDir, filepath.Base(texPath)); err != nil {
			return "", err
		}
	}
	metrics.ObserveCompileDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	pdfPath := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("pdf compilation failed: pdflatex did not produce %s", filepath.Base(pdfPath))
	}

	c.cleanupAuxFiles(texPath)
	return pdfPath, nil
}

func (c *Compiler) runPass(ctx context.Context, workDir, texName string) error {
	passCtx, cancel := context.WithTimeout(ctx, c.passTimeout())
	defer cancel()

	cmd := exec.CommandContext(passCtx, c.bin(),
		"-interaction=nonstopmode",
		"-output-directory", workDir,
		texName,
	)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()

	if passCtx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w after %s", ErrCompileTimeout, c.passTimeout())
	}
	if err != nil {
		// Non-zero exit is common on recoverable warnings; log and let the
		// artifact check decide.
		telemetry.Warn("latex.pass_nonzero", map[string]any{
			"tex":    texName,
			"err":    err.Error(),
			"output": tail(string(output), 2000),
		})
	}
	return nil
}

func (c *Compiler) cleanupAuxFiles(texPath string) {
	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	for _, ext := range auxExtensions {
		auxFile := base + ext
		if err := os.Remove(auxFile); err != nil && !os.IsNotExist(err) {
			telemetry.Warn("latex.aux_cleanup_failed", map[string]any{
				"file": auxFile,
				"err":  err.Error(),
			})
		}
	}
}

func (c *Compiler) bin() string {
	if c.Bin != "" {
		return c.Bin
	}
	return "pdflatex"
}

func (c *Compiler) passTimeout() time.Duration {
	if c.PassTimeout > 0 {
		return c.PassTimeout
	}
	return defaultPassTimeout
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
