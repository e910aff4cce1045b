package openai

import (
	"strings"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil || !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Fatalf("expected api key error, got %v", err)
	}
	if _, err := NewClient("sk-test", ""); err == nil || !strings.Contains(err.Error(), "LLM_MODEL") {
		t.Fatalf("expected model error, got %v", err)
	}
	c, err := NewClient("sk-test", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %q", c.model)
	}
}
