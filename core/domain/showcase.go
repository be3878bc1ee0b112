// ABOUTME: Project and case study domain models for the showcase collections
// ABOUTME: Loaded from projects.json and case-studies.json

package domain

// Project represents a portfolio project entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	Date         string   `json:"date"`
	DemoURL      string   `json:"demoUrl"`
	RepoURL      string   `json:"repoUrl"`
	Image        string   `json:"image"`
}

// UsesTechnology reports whether the project lists the given technology.
func (p *Project) UsesTechnology(tech string) bool {
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// CaseStudy represents a long-form case study entry.
type CaseStudy struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Technologies []string `json:"technologies"`
	Outcome      string   `json:"outcome"`
	Link         string   `json:"link"`
	Image        string   `json:"image"`
}
