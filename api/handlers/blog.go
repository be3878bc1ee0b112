// ABOUTME: Blog handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for post listing, rendering, tags, and RSS

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/lolimmlost/appahouse-portfolio/api/dto/mappers"
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

const relatedPostLimit = 3

// ContentService interface defines the methods needed from the content service
type ContentService interface {
	Load(ctx context.Context) ([]domain.Post, error)
	Render(ctx context.Context, id string) (*domain.RenderedPost, error)
	Search(ctx context.Context, query string) ([]domain.Post, error)
	FilterByTag(ctx context.Context, tag string) ([]domain.Post, error)
	Tags(ctx context.Context) ([]string, error)
	Related(ctx context.Context, id string, limit int) ([]domain.Post, error)
	FeedRSS(ctx context.Context) (string, error)
}

// BlogHandler handles blog-related HTTP requests
type BlogHandler struct {
	content ContentService
	logger  interfaces.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(content ContentService, logger interfaces.Logger) *BlogHandler {
	return &BlogHandler{content: content, logger: logger}
}

// RegisterRoutes registers all blog-related routes
func (h *BlogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPosts",
		Method:      http.MethodGet,
		Path:        "/blog",
		Summary:     "List blog posts",
		Description: "Returns published posts sorted by date descending, optionally filtered by tag or search query",
		Tags:        []string{"Blog"},
	}, h.ListPosts)

	huma.Register(api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/blog/tags",
		Summary:     "List post tags",
		Description: "Returns all unique tags across published posts",
		Tags:        []string{"Blog"},
	}, h.ListTags)

	huma.Register(api, huma.Operation{
		OperationID: "renderPost",
		Method:      http.MethodGet,
		Path:        "/blog/{id}",
		Summary:     "Get a rendered blog post",
		Description: "Returns a post with its HTML, table of contents, and related posts",
		Tags:        []string{"Blog"},
	}, h.GetPost)
}

// RegisterFeedRoute registers the RSS feed as a plain chi route, since
// the response is XML rather than a Huma JSON model.
func (h *BlogHandler) RegisterFeedRoute(router chi.Router) {
	router.Get("/blog/feed", func(w http.ResponseWriter, r *http.Request) {
		rss, err := h.content.FeedRSS(r.Context())
		if err != nil {
			if h.logger != nil {
				h.logger.Error("Failed to build RSS feed", map[string]interface{}{
					"error": err.Error(),
				})
			}
			http.Error(w, "feed unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write([]byte(rss))
	})
}

// ListPostsInput defines the input for the ListPosts operation
type ListPostsInput struct {
	Tag   string `query:"tag" doc:"Filter posts by tag"`
	Query string `query:"q" doc:"Full-text search query"`
}

// ListPostsOutput defines the output for the ListPosts operation
type ListPostsOutput struct {
	Body responses.ListPostsResponse
}

// ListPosts handles the GET /blog endpoint
func (h *BlogHandler) ListPosts(ctx context.Context, input *ListPostsInput) (*ListPostsOutput, error) {
	var posts []domain.Post
	var err error

	switch {
	case input.Tag != "":
		posts, err = h.content.FilterByTag(ctx, input.Tag)
	case input.Query != "":
		posts, err = h.content.Search(ctx, input.Query)
	default:
		posts, err = h.content.Load(ctx)
	}
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListPostsOutput{
		Body: responses.ListPostsResponse{
			Posts: mappers.ToPostResponses(posts),
			Total: len(posts),
		},
	}, nil
}

// GetPostInput defines the input for the GetPost operation
type GetPostInput struct {
	ID string `path:"id" doc:"Post identifier"`
}

// GetPostOutput defines the output for the GetPost operation
type GetPostOutput struct {
	Body responses.RenderedPostResponse
}

// GetPost handles the GET /blog/{id} endpoint
func (h *BlogHandler) GetPost(ctx context.Context, input *GetPostInput) (*GetPostOutput, error) {
	rendered, err := h.content.Render(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	related, err := h.content.Related(ctx, input.ID, relatedPostLimit)
	if err != nil {
		// Related posts are an enrichment; the post itself still renders.
		if h.logger != nil {
			h.logger.Warn("Failed to load related posts", map[string]interface{}{
				"post":  input.ID,
				"error": err.Error(),
			})
		}
		related = nil
	}

	return &GetPostOutput{
		Body: mappers.ToRenderedPostResponse(rendered, related),
	}, nil
}

// ListTagsOutput defines the output for the ListTags operation
type ListTagsOutput struct {
	Body responses.TagsResponse
}

// ListTags handles the GET /blog/tags endpoint
func (h *BlogHandler) ListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := h.content.Tags(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListTagsOutput{
		Body: responses.TagsResponse{Tags: tags},
	}, nil
}
