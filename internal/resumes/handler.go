package resumes

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jobagent-backend/internal/shared/metrics"
	"jobagent-backend/internal/shared/server/middleware"
	"jobagent-backend/internal/shared/server/respond"
	"jobagent-backend/internal/shared/telemetry"
)

// maxUploadSize caps the PDF itself; the request body gets extra room so a
// file at exactly the cap still fits with its multipart framing.
const (
	maxUploadSize = 10 << 20 // 10MB
	maxBodySize   = maxUploadSize + 1<<20
)

// Handler wires the resume upload endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			respond.Error(c, http.StatusBadRequest, "validation_error", "File size must be less than 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Only PDF files are supported", nil)
		return
	}
	if fileHeader.Size == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Uploaded file is empty", nil)
		return
	}
	if fileHeader.Size > maxUploadSize {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File size must be less than 10MB", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	// Spool the upload to a temp file; removed on every exit path.
	tmpPath := filepath.Join(os.TempDir(), "resume-"+uuid.NewString()+".pdf")
	if err := spoolUpload(tmpPath, file); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to buffer upload", nil)
		return
	}
	defer os.Remove(tmpPath)

	telemetry.Info("resume.upload.received", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"file_name":  fileHeader.Filename,
		"size_bytes": fileHeader.Size,
	})

	resumePath, err := h.Svc.Process(c.Request.Context(), tmpPath)
	if err != nil {
		metrics.IncResumeUploadFailed()
		telemetry.Error("resume.upload.failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"err":        err.Error(),
		})
		respond.OK(c, UploadResponse{
			Success: false,
			Message: "Failed to process resume",
			Error:   err.Error(),
		})
		return
	}

	metrics.IncResumeUpload()
	respond.OK(c, UploadResponse{
		Success:    true,
		Message:    "Resume uploaded and parsed successfully",
		ResumePath: resumePath,
	})
}

func spoolUpload(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}
