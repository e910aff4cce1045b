// Package jobs owns the structured job-posting record and its capture pipeline.
package jobs

// JobData is the structured record extracted from a job posting. The model
// is trusted only for the structured fields; RawText and URL are always
// overwritten with the caller-supplied values after extraction.
type JobData struct {
	JobTitle       string `json:"job_title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	ApplicationID  string `json:"application_id,omitempty"`
	JobDescription string `json:"job_description" validate:"required"`
	Location       string `json:"location,omitempty"`
	URL            string `json:"url" validate:"required"`
	RawText        string `json:"raw_text" validate:"required"`
}
