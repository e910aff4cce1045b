package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobagent-backend/internal/shared/metrics"
	"jobagent-backend/internal/shared/server/middleware"
	"jobagent-backend/internal/shared/server/respond"
	"jobagent-backend/internal/shared/telemetry"
)

// Handler wires the document-generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobSlug) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_slug is required", nil)
		return
	}
	c.Set("jobSlug", req.JobSlug)

	result, err := h.Svc.Run(c.Request.Context(), req.JobSlug)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job folder not found: "+req.JobSlug, nil)
		case errors.Is(err, ErrResumeNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Resume not found. Please upload your resume first.", nil)
		case errors.Is(err, ErrJobDataNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job data not found for: "+req.JobSlug, nil)
		default:
			metrics.IncGenerationFailed()
			telemetry.Error("generate.failed", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"job_slug":   req.JobSlug,
				"err":        err.Error(),
			})
			respond.OK(c, Response{
				Success: false,
				Status:  StatusError,
				Error:   err.Error(),
			})
		}
		return
	}

	metrics.IncGeneration()
	resp := Response{
		Success:        true,
		Status:         result.Status,
		CoverLetterPDF: result.CoverLetterPDF,
		ResumePDF:      result.ResumePDF,
	}
	if result.Status == StatusLatexOnly {
		metrics.IncGenerationLatexOnly()
		resp.Error = "pdflatex not installed. LaTeX files generated but PDFs could not be compiled."
	}
	respond.OK(c, resp)
}
