package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/resume_extract.txt
	resumeExtractPrompt string
	//go:embed prompts/job_extract.txt
	jobExtractPrompt string
	//go:embed prompts/cover_letter_system.txt
	coverLetterSystemPrompt string
	//go:embed prompts/resume_system.txt
	resumeSystemPrompt string
)

// Message is a chat message passed to the model.
type Message struct {
	Role    string
	Content string
}

// BuildResumeExtractionPrompt fills the resume extraction template. The
// instruction set demands lossless extraction; that guarantee lives in the
// prompt, not in code.
func BuildResumeExtractionPrompt(resumeText string) string {
	return strings.ReplaceAll(resumeExtractPrompt, "{{RESUME_TEXT}}", resumeText)
}

// BuildJobExtractionPrompt fills the job posting extraction template.
func BuildJobExtractionPrompt(rawText, url string) string {
	replacer := strings.NewReplacer(
		"{{JOB_URL}}", url,
		"{{JOB_TEXT}}", rawText,
	)
	return replacer.Replace(jobExtractPrompt)
}

// BuildCoverLetterMessages creates the chat messages for cover letter synthesis.
func BuildCoverLetterMessages(resumeJSON, jobJSON []byte) []Message {
	return []Message{
		{Role: "system", Content: coverLetterSystemPrompt},
		{Role: "user", Content: buildSynthesisUserPrompt("Generate a professional cover letter in LaTeX format for the following job application.", resumeJSON, jobJSON)},
	}
}

// BuildTailoredResumeMessages creates the chat messages for tailored resume synthesis.
func BuildTailoredResumeMessages(resumeJSON, jobJSON []byte) []Message {
	return []Message{
		{Role: "system", Content: resumeSystemPrompt},
		{Role: "user", Content: buildSynthesisUserPrompt("Generate a tailored resume in LaTeX format optimized for the following job posting.", resumeJSON, jobJSON)},
	}
}

func buildSynthesisUserPrompt(task string, resumeJSON, jobJSON []byte) string {
	var b strings.Builder
	b.WriteString(task)
	b.WriteString("\n\nCANDIDATE'S RESUME:\n")
	b.Write(resumeJSON)
	b.WriteString("\n\nTARGET JOB POSTING:\n")
	b.Write(jobJSON)
	b.WriteString("\n\nConnect the candidate's experience to this specific role while maintaining factual accuracy. Return ONLY the LaTeX code.")
	return b.String()
}
