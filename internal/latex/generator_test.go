package latex

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = "\\documentclass{article}\n\\begin{document}\nHello\n\\end{document}"

func TestSanitizeStripsCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "bare", in: minimalDoc},
		{name: "plain fence", in: "```\n" + minimalDoc + "\n```"},
		{name: "latex fence", in: "```latex\n" + minimalDoc + "\n```"},
		{name: "tex fence", in: "```tex\n" + minimalDoc + "\n```"},
		{name: "surrounding whitespace", in: "\n\n```latex\n" + minimalDoc + "\n```\n\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, minimalDoc, got)
		})
	}
}

func TestSanitizeRejectsExternalReferences(t *testing.T) {
	withInput := "\\documentclass{article}\n\\input{header}\n\\begin{document}x\\end{document}"
	_, err := Sanitize(withInput)
	require.ErrorIs(t, err, ErrExternalReference)

	withInclude := "\\documentclass{article}\n\\include{chapter1}\n\\begin{document}x\\end{document}"
	_, err = Sanitize(withInclude)
	require.ErrorIs(t, err, ErrExternalReference)
}

func TestSanitizeDocumentClassAllowList(t *testing.T) {
	for _, class := range []string{"article", "report", "book", "letter", "beamer", "memoir"} {
		src := "\\documentclass{" + class + "}\n\\begin{document}x\\end{document}"
		if _, err := Sanitize(src); err != nil {
			t.Fatalf("class %s rejected: %v", class, err)
		}
	}

	custom := "\\documentclass[11pt]{moderncv}\n\\begin{document}x\\end{document}"
	_, err := Sanitize(custom)
	require.ErrorIs(t, err, ErrNonStandardClass)
}

type fakeSynth struct {
	coverOut  string
	resumeOut string
	err       error
}

func (f *fakeSynth) CoverLetter(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	return f.coverOut, f.err
}

func (f *fakeSynth) TailoredResume(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	return f.resumeOut, f.err
}

func TestGeneratorWritesSanitizedSource(t *testing.T) {
	gen := &Generator{Synth: &fakeSynth{coverOut: "```latex\n" + minimalDoc + "\n```"}}
	outPath := filepath.Join(t.TempDir(), "nested", "cover_letter.tex")

	source, err := gen.CoverLetter(context.Background(), json.RawMessage(`{}`), json.RawMessage(`{}`), outPath)
	require.NoError(t, err)
	assert.Equal(t, minimalDoc, source)

	onDisk, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, minimalDoc, string(onDisk))
}

func TestGeneratorRejectionWritesNothing(t *testing.T) {
	bad := "\\documentclass{moderncv}\n\\begin{document}x\\end{document}"
	gen := &Generator{Synth: &fakeSynth{resumeOut: bad}}
	outPath := filepath.Join(t.TempDir(), "resume.tex")

	_, err := gen.TailoredResume(context.Background(), json.RawMessage(`{}`), json.RawMessage(`{}`), outPath)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNonStandardClass))

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}
