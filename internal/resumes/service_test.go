package resumes

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestResumeRoundTrip(t *testing.T) {
	data := ResumeData{
		ContactInfo: ContactInfo{
			FullName: "John Doe",
			Email:    "john@example.com",
			LinkedIn: "linkedin.com/in/johndoe",
		},
		Summary: "Engineer with ten years of backend experience.",
		Education: []Education{
			{Institution: "State University", Degree: "BSc", FieldOfStudy: "Computer Science"},
		},
		Experience: []Experience{
			{
				Company:          "Acme Corp",
				Position:         "Senior Engineer",
				Current:          true,
				Responsibilities: []string{"Design services", "Mentor engineers"},
				Technologies:     []string{"Go", "PostgreSQL"},
			},
		},
		Skills: []Skill{
			{Category: "Programming Languages", Items: []string{"Go", "Python"}},
		},
		Languages: []Language{
			{Language: "English", Proficiency: "Native"},
		},
		AdditionalSections: map[string]any{
			"Interests": "Distance running",
			"Hobbies":   []any{"running", "chess"},
		},
		RawText:            "John Doe\nSenior Engineer at Acme Corp\n...",
	}

	path := filepath.Join(t.TempDir(), "resume.json")
	if err := writeJSON(path, data); err != nil {
		t.Fatalf("write resume.json: %v", err)
	}

	loaded, raw, err := Load(path)
	if err != nil {
		t.Fatalf("load resume.json: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("expected raw JSON alongside the decoded record")
	}
	if !reflect.DeepEqual(loaded, data) {
		t.Fatalf("round trip mismatch:\nwrote  %+v\nloaded %+v", data, loaded)
	}
}

func TestLoadRejectsSchemaInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	if err := writeJSON(path, map[string]string{"summary": "no contact info"}); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, _, err := Load(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}
