package jobs

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobagent-backend/internal/shared/metrics"
	"jobagent-backend/internal/shared/server/middleware"
	"jobagent-backend/internal/shared/server/respond"
	"jobagent-backend/internal/shared/telemetry"
)

// Handler wires the job capture endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/job", h.capture)
}

func (h *Handler) capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.RawText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job posting text cannot be empty", nil)
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Job URL cannot be empty", nil)
		return
	}

	telemetry.Info("job.capture.received", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"url":        req.URL,
	})

	slug, err := h.Svc.Capture(c.Request.Context(), req.RawText, req.URL)
	if err != nil {
		metrics.IncJobCaptureFailed()
		telemetry.Error("job.capture.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"err":        err.Error(),
		})
		respond.OK(c, CaptureResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.Set("jobSlug", slug)
	metrics.IncJobCapture()
	respond.OK(c, CaptureResponse{
		Success: true,
		JobSlug: slug,
	})
}
