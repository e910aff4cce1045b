package generate

// Request is the payload for a document-generation call.
type Request struct {
	JobSlug string `json:"job_slug"`
}

// Response is the API response for document generation. The PDF fields are
// pointers so a latex_only result serializes them as explicit nulls.
type Response struct {
	Success        bool    `json:"success"`
	Status         string  `json:"status"`
	CoverLetterPDF *string `json:"cover_letter_pdf"`
	ResumePDF      *string `json:"resume_pdf"`
	Error          string  `json:"error,omitempty"`
}

// Generation statuses.
const (
	StatusSuccess   = "success"
	StatusLatexOnly = "latex_only"
	StatusError     = "error"
)
