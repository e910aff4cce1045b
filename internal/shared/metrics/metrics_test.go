package metrics

import (
	"strings"
	"testing"
)

func TestRenderHistogramCumulation(t *testing.T) {
	ObserveCompileDurationMs(300)
	ObserveCompileDurationMs(700)

	out := Render()
	for _, want := range []string{
		`latex_compile_duration_ms_bucket{le="250"} 0`,
		`latex_compile_duration_ms_bucket{le="500"} 1`,
		`latex_compile_duration_ms_bucket{le="1000"} 2`,
		`latex_compile_duration_ms_bucket{le="+Inf"} 2`,
		`latex_compile_duration_ms_count 2`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in render output:\n%s", want, out)
		}
	}
}

func TestRenderCounters(t *testing.T) {
	before := jobCapturesTotal.Load()
	IncJobCapture()

	out := Render()
	if !strings.Contains(out, "# TYPE job_captures_total counter") {
		t.Fatalf("expected counter type line:\n%s", out)
	}
	if jobCapturesTotal.Load() != before+1 {
		t.Fatal("expected counter increment")
	}
}
