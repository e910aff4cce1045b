// Command prompttest runs the extraction prompts against the configured
// model from the command line, without going through the HTTP server. Useful
// for iterating on prompt wording and inspecting raw model output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"jobagent-backend/internal/extract"
	"jobagent-backend/internal/llm/openai"
	"jobagent-backend/internal/schemas"
	"jobagent-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to a resume PDF")
	jobPath := flag.String("job", "", "Path to a text file with a job posting")
	jobURL := flag.String("job-url", "https://example.com/job", "URL recorded with the job posting")
	model := flag.String("model", cfg.LLMModel, "Model name")
	outPath := flag.String("out", "", "Path to write raw JSON output (optional)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" && strings.TrimSpace(*jobPath) == "" {
		exitErr("either -resume or -job is required")
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, *model)
	if err != nil {
		exitErr(err.Error())
	}
	ctx := context.Background()

	var raw json.RawMessage
	switch {
	case strings.TrimSpace(*resumePath) != "":
		text, err := extract.Text(*resumePath)
		if err != nil {
			exitErr(fmt.Sprintf("extract resume text: %v", err))
		}
		raw, err = client.ExtractResume(ctx, text)
		if err != nil {
			exitErr(fmt.Sprintf("extract resume: %v", err))
		}
		if err := schemas.ValidateResume(raw); err != nil {
			fmt.Fprintf(os.Stderr, "warning: output fails resume schema: %v\n", err)
		}
	default:
		text, err := os.ReadFile(*jobPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job posting: %v", err))
		}
		raw, err = client.ExtractJob(ctx, string(text), *jobURL)
		if err != nil {
			exitErr(fmt.Sprintf("extract job: %v", err))
		}
		if err := schemas.ValidateJob(raw); err != nil {
			fmt.Fprintf(os.Stderr, "warning: output fails job schema: %v\n", err)
		}
	}

	pretty, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format output: %v", err))
	}
	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
		fmt.Printf("wrote %s\n", *outPath)
		return
	}
	fmt.Println(string(pretty))
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
