package jobs

// CaptureRequest is the payload for a job posting submission.
type CaptureRequest struct {
	RawText string `json:"raw_text"`
	URL     string `json:"url"`
}

// CaptureResponse is the API response for a job capture.
type CaptureResponse struct {
	Success bool   `json:"success"`
	JobSlug string `json:"job_slug,omitempty"`
	Error   string `json:"error,omitempty"`
}
