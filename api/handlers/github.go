// ABOUTME: GitHub activity handler for the Huma API
// ABOUTME: Serves the composite widget view with cache refresh support

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lolimmlost/appahouse-portfolio/api/dto/mappers"
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// GitHubService interface defines the methods needed from the GitHub service
type GitHubService interface {
	Activity(ctx context.Context, forceRefresh bool) (*domain.Activity, error)
}

// GitHubHandler handles GitHub activity HTTP requests
type GitHubHandler struct {
	github GitHubService
}

// NewGitHubHandler creates a new GitHub handler
func NewGitHubHandler(github GitHubService) *GitHubHandler {
	return &GitHubHandler{github: github}
}

// RegisterRoutes registers the GitHub activity route
func (h *GitHubHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getGitHubActivity",
		Method:      http.MethodGet,
		Path:        "/github/activity",
		Summary:     "Get GitHub activity",
		Description: "Returns the composite GitHub widget view: profile, top repositories, languages, contribution grid, and recent events",
		Tags:        []string{"GitHub"},
	}, h.GetActivity)
}

// GetActivityInput defines the input for the GetActivity operation
type GetActivityInput struct {
	Refresh bool `query:"refresh" doc:"Bypass the cache and fetch live data"`
}

// GetActivityOutput defines the output for the GetActivity operation
type GetActivityOutput struct {
	Body responses.ActivityResponse
}

// GetActivity handles the GET /github/activity endpoint
func (h *GitHubHandler) GetActivity(ctx context.Context, input *GetActivityInput) (*GetActivityOutput, error) {
	activity, err := h.github.Activity(ctx, input.Refresh)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetActivityOutput{
		Body: mappers.ToActivityResponse(activity),
	}, nil
}
