// Package schemas validates model output against the JSON Schemas the
// pipeline's records must conform to. The schemas are embedded so validation
// works regardless of working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed resume.schema.json
	resumeSchema string
	//go:embed job.schema.json
	jobSchema string
)

// ValidationError reports the fields that failed schema validation.
type ValidationError struct {
	Schema string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s schema validation failed: %s", e.Schema, strings.Join(e.Fields, "; "))
}

// ValidateResume checks raw JSON against the résumé schema.
func ValidateResume(raw []byte) error {
	return validate("resume", resumeSchema, raw)
}

// ValidateJob checks raw JSON against the job-posting schema.
func ValidateJob(raw []byte) error {
	return validate("job", jobSchema, raw)
}

func validate(name, schema string, raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		verr.Fields = append(verr.Fields, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return verr
}
