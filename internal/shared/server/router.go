package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobagent-backend/internal/generate"
	"jobagent-backend/internal/jobs"
	"jobagent-backend/internal/resumes"
	"jobagent-backend/internal/shared/config"
	"jobagent-backend/internal/shared/metrics"
	"jobagent-backend/internal/shared/server/middleware"
	"jobagent-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	ResumeHandler   *resumes.Handler
	JobHandler      *jobs.Handler
	GenerateHandler *generate.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"service": "JobApp Resume Parser",
			"status":  "running",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy", "service": "resume-parser"})
	})
	deps.ResumeHandler.RegisterRoutes(api)
	deps.JobHandler.RegisterRoutes(api)
	deps.GenerateHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address for the given host and port.
func Addr(host, port string) string {
	if port == "" {
		port = "8000"
	}
	return host + ":" + port
}
