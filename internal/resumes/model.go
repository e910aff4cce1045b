// Package resumes owns the structured résumé record and its upload pipeline.
package resumes

// ContactInfo holds contact details from the résumé header.
type ContactInfo struct {
	FullName   string   `json:"full_name" validate:"required"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	LinkedIn   string   `json:"linkedin,omitempty"`
	GitHub     string   `json:"github,omitempty"`
	Website    string   `json:"website,omitempty"`
	OtherLinks []string `json:"other_links,omitempty"`
}

// Education is a single education entry. Dates are free-form strings because
// résumés write them every way imaginable.
type Education struct {
	Institution        string   `json:"institution"`
	Degree             string   `json:"degree"`
	FieldOfStudy       string   `json:"field_of_study,omitempty"`
	StartDate          string   `json:"start_date,omitempty"`
	EndDate            string   `json:"end_date,omitempty"`
	GPA                string   `json:"gpa,omitempty"`
	Honors             []string `json:"honors,omitempty"`
	RelevantCoursework []string `json:"relevant_coursework,omitempty"`
	Description        string   `json:"description,omitempty"`
}

// Experience is a work or volunteer experience entry.
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Current          bool     `json:"current,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	Description      string   `json:"description,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Role         string   `json:"role,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// Certification is a certification entry.
type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issue_date,omitempty"`
	ExpiryDate    string `json:"expiry_date,omitempty"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// Skill groups skill items under a category such as "Programming Languages".
type Skill struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Publication is a publication or research entry.
type Publication struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	Venue       string   `json:"venue,omitempty"`
	Date        string   `json:"date,omitempty"`
	URL         string   `json:"url,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Award is an award or achievement entry.
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Language is a language proficiency entry.
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// ResumeData is the complete structured résumé record. Once written to
// resume.json it is treated as immutable input for all generation steps.
type ResumeData struct {
	ContactInfo         ContactInfo     `json:"contact_info" validate:"required"`
	Summary             string          `json:"summary,omitempty"`
	Education           []Education     `json:"education,omitempty"`
	Experience          []Experience    `json:"experience,omitempty"`
	Projects            []Project       `json:"projects,omitempty"`
	Skills              []Skill         `json:"skills,omitempty"`
	Certifications      []Certification `json:"certifications,omitempty"`
	Publications        []Publication   `json:"publications,omitempty"`
	Awards              []Award         `json:"awards,omitempty"`
	Languages           []Language      `json:"languages,omitempty"`
	VolunteerExperience []Experience    `json:"volunteer_experience,omitempty"`
	AdditionalSections  map[string]any  `json:"additional_sections,omitempty"`
	RawText             string          `json:"raw_text"`
}
