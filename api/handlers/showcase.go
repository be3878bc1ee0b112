// ABOUTME: Project and case study handlers for the Huma API
// ABOUTME: Provides filtered, searchable project listings

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lolimmlost/appahouse-portfolio/api/dto/mappers"
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ShowcaseService interface defines the methods needed from the showcase service
type ShowcaseService interface {
	Projects(ctx context.Context, technologies []string, query, sortBy string) ([]domain.Project, error)
	CaseStudies(ctx context.Context) ([]domain.CaseStudy, error)
}

// ShowcaseHandler handles project and case study HTTP requests
type ShowcaseHandler struct {
	showcase ShowcaseService
}

// NewShowcaseHandler creates a new showcase handler
func NewShowcaseHandler(showcase ShowcaseService) *ShowcaseHandler {
	return &ShowcaseHandler{showcase: showcase}
}

// RegisterRoutes registers all showcase routes
func (h *ShowcaseHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listProjects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List projects",
		Description: "Returns portfolio projects, optionally filtered by technologies (all must match) and search query",
		Tags:        []string{"Showcase"},
	}, h.ListProjects)

	huma.Register(api, huma.Operation{
		OperationID: "listCaseStudies",
		Method:      http.MethodGet,
		Path:        "/case-studies",
		Summary:     "List case studies",
		Tags:        []string{"Showcase"},
	}, h.ListCaseStudies)
}

// ListProjectsInput defines the input for the ListProjects operation
type ListProjectsInput struct {
	Technologies []string `query:"tech" doc:"Technologies a project must use (repeatable, all must match)"`
	Query        string   `query:"q" doc:"Search query over title, description, and technologies"`
	Sort         string   `query:"sort" enum:"recent,featured,technology" doc:"Sort order"`
}

// ListProjectsOutput defines the output for the ListProjects operation
type ListProjectsOutput struct {
	Body responses.ListProjectsResponse
}

// ListProjects handles the GET /projects endpoint
func (h *ShowcaseHandler) ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := h.showcase.Projects(ctx, input.Technologies, input.Query, input.Sort)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListProjectsOutput{
		Body: responses.ListProjectsResponse{
			Projects: mappers.ToProjectResponses(projects),
			Total:    len(projects),
		},
	}, nil
}

// ListCaseStudiesOutput defines the output for the ListCaseStudies operation
type ListCaseStudiesOutput struct {
	Body responses.ListCaseStudiesResponse
}

// ListCaseStudies handles the GET /case-studies endpoint
func (h *ShowcaseHandler) ListCaseStudies(ctx context.Context, _ *struct{}) (*ListCaseStudiesOutput, error) {
	studies, err := h.showcase.CaseStudies(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListCaseStudiesOutput{
		Body: responses.ListCaseStudiesResponse{
			CaseStudies: mappers.ToCaseStudyResponses(studies),
			Total:       len(studies),
		},
	}, nil
}
