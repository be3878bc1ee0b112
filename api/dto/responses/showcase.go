// ABOUTME: Response DTOs for project and case study endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// ProjectResponse represents a portfolio project
type ProjectResponse struct {
	ID           string   `json:"id" doc:"Project identifier"`
	Title        string   `json:"title" doc:"Project title"`
	Description  string   `json:"description,omitempty" doc:"Short description"`
	Technologies []string `json:"technologies" doc:"Technologies used"`
	Featured     bool     `json:"featured" doc:"Whether the project is featured"`
	Date         string   `json:"date,omitempty" doc:"Project date (YYYY-MM-DD)"`
	DemoURL      string   `json:"demoUrl,omitempty" doc:"Live demo URL"`
	RepoURL      string   `json:"repoUrl,omitempty" doc:"Source repository URL"`
	Image        string   `json:"image,omitempty" doc:"Preview image URL"`
}

// ListProjectsResponse represents the response for listing projects
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects" doc:"Filtered and sorted projects"`
	Total    int               `json:"total" doc:"Total number of projects returned"`
}

// CaseStudyResponse represents a case study
type CaseStudyResponse struct {
	ID           string   `json:"id" doc:"Case study identifier"`
	Title        string   `json:"title" doc:"Case study title"`
	Summary      string   `json:"summary,omitempty" doc:"Summary of the work"`
	Technologies []string `json:"technologies" doc:"Technologies used"`
	Outcome      string   `json:"outcome,omitempty" doc:"Measured outcome"`
	Link         string   `json:"link,omitempty" doc:"Link to the full write-up"`
	Image        string   `json:"image,omitempty" doc:"Preview image URL"`
}

// ListCaseStudiesResponse represents the response for listing case studies
type ListCaseStudiesResponse struct {
	CaseStudies []CaseStudyResponse `json:"caseStudies" doc:"Case studies"`
	Total       int                 `json:"total" doc:"Total number of case studies returned"`
}

// ContactResponse acknowledges a contact form submission
type ContactResponse struct {
	Status string `json:"status" doc:"Submission status"`
}
