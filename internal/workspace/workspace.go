// Package workspace manages the on-disk layout that every pipeline stage
// reads from and writes to: resume.json at the root and one folder per
// captured job under jobs/.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const maxSlugLen = 100

// Word characters are Unicode letters and digits, so accented and CJK
// titles keep their letters in the folder name.
var (
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugSeps     = regexp.MustCompile(`[-\s]+`)
)

// Workspace resolves paths under a configured root directory.
type Workspace struct {
	root string
}

// New constructs a Workspace rooted at the given directory.
func New(root string) *Workspace {
	return &Workspace{root: root}
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// EnsureExists creates the workspace root and jobs directory if missing.
func (w *Workspace) EnsureExists() error {
	if err := os.MkdirAll(w.JobsDir(), 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	return nil
}

// ResumePath returns the path to resume.json.
func (w *Workspace) ResumePath() string {
	return filepath.Join(w.root, "resume.json")
}

// JobsDir returns the path to the jobs directory.
func (w *Workspace) JobsDir() string {
	return filepath.Join(w.root, "jobs")
}

// JobDir returns the folder for a given job slug.
func (w *Workspace) JobDir(slug string) string {
	return filepath.Join(w.JobsDir(), slug)
}

// JobDataPath returns the path to job.json for a given job slug.
func (w *Workspace) JobDataPath(slug string) string {
	return filepath.Join(w.JobDir(slug), "job.json")
}

// SanitizeSlug converts free text into a filesystem-safe slug: special
// characters are removed, whitespace and hyphen runs collapse to a single
// hyphen, edge hyphens are trimmed, and the result is capped at 100 characters.
func SanitizeSlug(text string) string {
	slug := nonSlugChars.ReplaceAllString(text, "")
	slug = slugSeps.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if runes := []rune(slug); len(runes) > maxSlugLen {
		slug = string(runes[:maxSlugLen])
	}
	return slug
}

// CreateJobFolder derives a slug from the job title and company and creates
// a fresh folder for it under jobs/. Duplicate slugs get an incrementing
// numeric suffix; the create is attempted atomically per candidate so two
// concurrent captures cannot claim the same folder.
func (w *Workspace) CreateJobFolder(jobTitle, company string) (dir string, slug string, err error) {
	if err := w.EnsureExists(); err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("%s-%s", SanitizeSlug(jobTitle), SanitizeSlug(company))
	slug = base
	for counter := 1; ; counter++ {
		dir = w.JobDir(slug)
		err = os.Mkdir(dir, 0o755)
		if err == nil {
			return dir, slug, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", fmt.Errorf("create job folder: %w", err)
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
