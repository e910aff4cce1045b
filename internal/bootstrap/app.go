package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"jobagent-backend/internal/generate"
	"jobagent-backend/internal/jobs"
	"jobagent-backend/internal/latex"
	"jobagent-backend/internal/llm"
	"jobagent-backend/internal/llm/openai"
	"jobagent-backend/internal/resumes"
	"jobagent-backend/internal/shared/config"
	"jobagent-backend/internal/shared/server"
	"jobagent-backend/internal/workspace"
)

// App bundles the wired router and the pieces main needs to run it.
type App struct {
	Config    config.Config
	Router    *gin.Engine
	Workspace *workspace.Workspace
}

// Deps lets callers override the external collaborators. Zero-value fields
// fall back to the real implementations (tests inject fakes here).
type Deps struct {
	Extractor   llm.Extractor
	Synthesizer llm.Synthesizer
	Compiler    *latex.Compiler
}

// Build wires the application from config alone, using the OpenAI client
// when an API key is configured and placeholder implementations otherwise.
func Build(cfg config.Config) (*App, error) {
	return BuildWith(cfg, Deps{})
}

// BuildWith wires the application, substituting any collaborators set in deps.
func BuildWith(cfg config.Config, deps Deps) (*App, error) {
	ws := workspace.New(cfg.WorkspaceDir)
	if err := ws.EnsureExists(); err != nil {
		return nil, fmt.Errorf("prepare workspace: %w", err)
	}

	if deps.Extractor == nil || deps.Synthesizer == nil {
		if cfg.OpenAIAPIKey != "" {
			client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
			if err != nil {
				return nil, fmt.Errorf("openai client: %w", err)
			}
			if deps.Extractor == nil {
				deps.Extractor = client
			}
			if deps.Synthesizer == nil {
				deps.Synthesizer = client
			}
		} else {
			if deps.Extractor == nil {
				deps.Extractor = llm.PlaceholderExtractor{}
			}
			if deps.Synthesizer == nil {
				deps.Synthesizer = llm.PlaceholderSynthesizer{}
			}
		}
	}
	if deps.Compiler == nil {
		deps.Compiler = latex.NewCompiler()
	}

	resumeSvc := &resumes.Service{Workspace: ws, Extractor: deps.Extractor}
	jobSvc := &jobs.Service{Workspace: ws, Extractor: deps.Extractor}
	genSvc := &generate.Service{
		Workspace: ws,
		Generator: &latex.Generator{Synth: deps.Synthesizer},
		Compiler:  deps.Compiler,
	}

	router := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		ResumeHandler:   resumes.NewHandler(resumeSvc),
		JobHandler:      jobs.NewHandler(jobSvc),
		GenerateHandler: generate.NewHandler(genSvc),
	})

	return &App{Config: cfg, Router: router, Workspace: ws}, nil
}
