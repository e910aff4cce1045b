package resumes

// UploadResponse is the API response for a resume upload.
type UploadResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResumePath string `json:"resume_path,omitempty"`
	Error      string `json:"error,omitempty"`
}
