package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	resumeUploadsTotal   atomic.Uint64
	resumeUploadsFailed  atomic.Uint64
	jobCapturesTotal     atomic.Uint64
	jobCapturesFailed    atomic.Uint64
	generationsTotal     atomic.Uint64
	generationsFailed    atomic.Uint64
	generationsLatexOnly atomic.Uint64

	compileDuration = newHistogram([]float64{250, 500, 1000, 2000, 5000, 10000, 30000, 60000, 120000})
)

// IncResumeUpload increments the resume upload counter.
func IncResumeUpload() { resumeUploadsTotal.Add(1) }

// IncResumeUploadFailed increments the failed resume upload counter.
func IncResumeUploadFailed() { resumeUploadsFailed.Add(1) }

// IncJobCapture increments the job capture counter.
func IncJobCapture() { jobCapturesTotal.Add(1) }

// IncJobCaptureFailed increments the failed job capture counter.
func IncJobCaptureFailed() { jobCapturesFailed.Add(1) }

// IncGeneration increments the generation counter.
func IncGeneration() { generationsTotal.Add(1) }

// IncGenerationFailed increments the failed generation counter.
func IncGenerationFailed() { generationsFailed.Add(1) }

// IncGenerationLatexOnly increments the latex-only generation counter.
func IncGenerationLatexOnly() { generationsLatexOnly.Add(1) }

// ObserveCompileDurationMs records a pdflatex compile duration in milliseconds.
func ObserveCompileDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	compileDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_uploads_total", "Total resume uploads processed", resumeUploadsTotal.Load())
	writeCounter(&buf, "resume_uploads_failed_total", "Total resume uploads failed", resumeUploadsFailed.Load())
	writeCounter(&buf, "job_captures_total", "Total job postings captured", jobCapturesTotal.Load())
	writeCounter(&buf, "job_captures_failed_total", "Total job captures failed", jobCapturesFailed.Load())
	writeCounter(&buf, "generations_total", "Total document generations", generationsTotal.Load())
	writeCounter(&buf, "generations_failed_total", "Total document generations failed", generationsFailed.Load())
	writeCounter(&buf, "generations_latex_only_total", "Generations that returned LaTeX without PDFs", generationsLatexOnly.Load())
	writeHistogram(&buf, "latex_compile_duration_ms", "pdflatex compile duration in milliseconds", compileDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
