// Package openai implements the llm interfaces using the OpenAI Chat
// Completions API over plain net/http.
package openai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"jobagent-backend/internal/llm"
	"jobagent-backend/internal/shared/telemetry"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// Extraction is deterministic; synthesis gets creative phrasing.
const (
	extractTemperature    float32 = 0
	synthesizeTemperature float32 = 0.7
)

// Client implements llm.Extractor and llm.Synthesizer.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float32        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// ExtractResume maps resume text to schema-shaped JSON at temperature zero.
func (c *Client) ExtractResume(ctx context.Context, resumeText string) (json.RawMessage, error) {
	messages := []chatMessage{
		{Role: "user", Content: llm.BuildResumeExtractionPrompt(resumeText)},
	}
	return c.completeJSON(ctx, messages)
}

// ExtractJob maps job posting text to schema-shaped JSON at temperature zero.
func (c *Client) ExtractJob(ctx context.Context, rawText, url string) (json.RawMessage, error) {
	messages := []chatMessage{
		{Role: "user", Content: llm.BuildJobExtractionPrompt(rawText, url)},
	}
	return c.completeJSON(ctx, messages)
}

// CoverLetter synthesizes cover letter LaTeX source.
func (c *Client) CoverLetter(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	return c.completeText(ctx, toChatMessages(llm.BuildCoverLetterMessages(resumeJSON, jobJSON)))
}

// TailoredResume synthesizes tailored resume LaTeX source.
func (c *Client) TailoredResume(ctx context.Context, resumeJSON, jobJSON json.RawMessage) (string, error) {
	return c.completeText(ctx, toChatMessages(llm.BuildTailoredResumeMessages(resumeJSON, jobJSON)))
}

func (c *Client) completeJSON(ctx context.Context, messages []chatMessage) (json.RawMessage, error) {
	temp := extractTemperature
	content, err := c.complete(ctx, chatRequest{
		Model:          c.model,
		Messages:       messages,
		Temperature:    &temp,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("invalid JSON from OpenAI")
	}
	return json.RawMessage(content), nil
}

func (c *Client) completeText(ctx context.Context, messages []chatMessage) (string, error) {
	temp := synthesizeTemperature
	return c.complete(ctx, chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: &temp,
	})
}

func (c *Client) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("openai http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		}
		return "", fmt.Errorf("openai response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	logUsage(c.model, hashPromptString(promptStringFromMessages(reqBody.Messages)), parsed.Usage)
	return content, nil
}

func promptStringFromMessages(messages []chatMessage) string {
	if len(messages) == 0 {
		return ""
	}
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

func hashPromptString(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}

func toChatMessages(messages []llm.Message) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

func logUsage(model, promptHash string, usage *struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}) {
	if usage == nil {
		return
	}
	telemetry.Info("llm.usage", map[string]any{
		"model":             model,
		"prompt_hash":       promptHash,
		"prompt_tokens":     usage.PromptTokens,
		"completion_tokens": usage.CompletionTokens,
		"total_tokens":      usage.TotalTokens,
	})
}

var (
	_ llm.Extractor   = (*Client)(nil)
	_ llm.Synthesizer = (*Client)(nil)
)
