// ABOUTME: Showcase service loads the project and case study collections
// ABOUTME: Provides technology filtering, search, and sorting for the portfolio grid

package showcase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

// Sort orders for the project grid.
const (
	SortRecent     = "recent"
	SortFeatured   = "featured"
	SortTechnology = "technology"
)

// Options configures the showcase service.
type Options struct {
	// BaseURL is the content server root
	BaseURL string

	// ProjectsFile and CaseStudiesFile are JSON collection files under BaseURL
	ProjectsFile    string
	CaseStudiesFile string
}

// Service handles the project and case study collections
type Service struct {
	deps interfaces.Dependencies
	opts Options
}

// NewService creates a new showcase service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.ProjectsFile == "" {
		opts.ProjectsFile = "projects.json"
	}
	if opts.CaseStudiesFile == "" {
		opts.CaseStudiesFile = "case-studies.json"
	}
	return &Service{deps: deps, opts: opts}
}

// projectsFile is the wire shape of projects.json
type projectsFile struct {
	Projects []domain.Project `json:"projects"`
}

// caseStudiesFile is the wire shape of case-studies.json
type caseStudiesFile struct {
	CaseStudies []domain.CaseStudy `json:"caseStudies"`
}

// Projects returns the project collection filtered and sorted. All
// technologies in the filter must be present on a project for it to
// match. A missing collection file yields an empty list, not an error.
func (s *Service) Projects(ctx context.Context, technologies []string, query, sortBy string) ([]domain.Project, error) {
	var file projectsFile
	if err := s.loadCollection(ctx, s.opts.ProjectsFile, &file); err != nil {
		return []domain.Project{}, nil
	}

	filtered := make([]domain.Project, 0, len(file.Projects))
	for _, p := range file.Projects {
		if matchesTechnologies(&p, technologies) && matchesQuery(&p, query) {
			filtered = append(filtered, p)
		}
	}

	sortProjects(filtered, sortBy)
	return filtered, nil
}

// CaseStudies returns the case study collection. A missing collection
// file yields an empty list, not an error.
func (s *Service) CaseStudies(ctx context.Context) ([]domain.CaseStudy, error) {
	var file caseStudiesFile
	if err := s.loadCollection(ctx, s.opts.CaseStudiesFile, &file); err != nil {
		return []domain.CaseStudy{}, nil
	}
	if file.CaseStudies == nil {
		return []domain.CaseStudy{}, nil
	}
	return file.CaseStudies, nil
}

// Technologies returns all unique technologies across projects, sorted.
func (s *Service) Technologies(ctx context.Context) ([]string, error) {
	projects, err := s.Projects(ctx, nil, "", "")
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	techs := make([]string, 0)
	for _, p := range projects {
		for _, t := range p.Technologies {
			if !seen[t] {
				seen[t] = true
				techs = append(techs, t)
			}
		}
	}
	sort.Strings(techs)
	return techs, nil
}

// loadCollection fetches and decodes a JSON collection file, logging a
// warning on any failure so the caller can degrade to an empty list.
func (s *Service) loadCollection(ctx context.Context, filename string, out interface{}) error {
	url := fmt.Sprintf("%s/%s", s.opts.BaseURL, filename)

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err == nil {
		defer resp.Body().Close()
		if resp.StatusCode() == 200 {
			if decodeErr := json.NewDecoder(resp.Body()).Decode(out); decodeErr == nil {
				return nil
			}
			err = fmt.Errorf("collection is not valid JSON")
		} else {
			err = fmt.Errorf("collection returned status %d", resp.StatusCode())
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to load collection, serving empty list", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
	return err
}

func matchesTechnologies(p *domain.Project, technologies []string) bool {
	for _, tech := range technologies {
		if !p.UsesTechnology(tech) {
			return false
		}
	}
	return true
}

func matchesQuery(p *domain.Project, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, t := range p.Technologies {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// sortProjects orders in place. Featured puts featured projects first
// and sorts by date within each group; technology sorts by primary
// technology name; the default is date descending.
func sortProjects(projects []domain.Project, sortBy string) {
	switch sortBy {
	case SortFeatured:
		sort.SliceStable(projects, func(i, j int) bool {
			if projects[i].Featured != projects[j].Featured {
				return projects[i].Featured
			}
			return projects[i].Date > projects[j].Date
		})
	case SortTechnology:
		sort.SliceStable(projects, func(i, j int) bool {
			return primaryTechnology(&projects[i]) < primaryTechnology(&projects[j])
		})
	default:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Date > projects[j].Date
		})
	}
}

func primaryTechnology(p *domain.Project) string {
	if len(p.Technologies) > 0 {
		return p.Technologies[0]
	}
	return ""
}
