// ABOUTME: Mappers converting showcase domain models to response DTOs
// ABOUTME: Keeps the API surface decoupled from core types

package mappers

import (
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ToProjectResponses converts a slice of domain Projects
func ToProjectResponses(projects []domain.Project) []responses.ProjectResponse {
	out := make([]responses.ProjectResponse, len(projects))
	for i, p := range projects {
		techs := p.Technologies
		if techs == nil {
			techs = []string{}
		}
		out[i] = responses.ProjectResponse{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Technologies: techs,
			Featured:     p.Featured,
			Date:         p.Date,
			DemoURL:      p.DemoURL,
			RepoURL:      p.RepoURL,
			Image:        p.Image,
		}
	}
	return out
}

// ToCaseStudyResponses converts a slice of domain CaseStudies
func ToCaseStudyResponses(studies []domain.CaseStudy) []responses.CaseStudyResponse {
	out := make([]responses.CaseStudyResponse, len(studies))
	for i, s := range studies {
		techs := s.Technologies
		if techs == nil {
			techs = []string{}
		}
		out[i] = responses.CaseStudyResponse{
			ID:           s.ID,
			Title:        s.Title,
			Summary:      s.Summary,
			Technologies: techs,
			Outcome:      s.Outcome,
			Link:         s.Link,
			Image:        s.Image,
		}
	}
	return out
}
