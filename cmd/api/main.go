package main

import (
	"log"

	"jobagent-backend/internal/bootstrap"
	"jobagent-backend/internal/shared/config"
	"jobagent-backend/internal/shared/server"
	"jobagent-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Host, cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":      addr,
		"workspace": app.Workspace.Root(),
		"env":       cfg.Env,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
