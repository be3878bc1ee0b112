// ABOUTME: Mappers converting content domain models to response DTOs
// ABOUTME: Keeps the API surface decoupled from core types

package mappers

import (
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ToPostResponse converts a domain Post to a PostResponse
func ToPostResponse(post *domain.Post) responses.PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return responses.PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Date:          post.Date,
		Excerpt:       post.Excerpt,
		Tags:          tags,
		ReadTime:      post.ReadTime,
		Category:      post.Category,
		Author:        post.Author,
		FeaturedImage: post.FeaturedImage,
	}
}

// ToPostResponses converts a slice of domain Posts
func ToPostResponses(posts []domain.Post) []responses.PostResponse {
	out := make([]responses.PostResponse, len(posts))
	for i := range posts {
		out[i] = ToPostResponse(&posts[i])
	}
	return out
}

// ToRenderedPostResponse converts a rendered post and its related posts
func ToRenderedPostResponse(rendered *domain.RenderedPost, related []domain.Post) responses.RenderedPostResponse {
	toc := make([]responses.TOCEntryResponse, len(rendered.TOC))
	for i, entry := range rendered.TOC {
		toc[i] = responses.TOCEntryResponse{
			ID:    entry.ID,
			Level: entry.Level,
			Text:  entry.Text,
		}
	}

	return responses.RenderedPostResponse{
		PostResponse: ToPostResponse(&rendered.Post),
		HTML:         rendered.HTML,
		TOC:          toc,
		Related:      ToPostResponses(related),
	}
}
