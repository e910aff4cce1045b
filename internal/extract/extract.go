package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// Text extracts the plain text of a PDF file in reading order across pages.
// Library used: github.com/ledongthuc/pdf. Any parse failure is reported as
// a single error; no partial text is returned.
func Text(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("parse pdf %s: %w", path, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("parse pdf %s: %w", path, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("parse pdf %s: %w", path, err)
	}
	return buf.String(), nil
}
