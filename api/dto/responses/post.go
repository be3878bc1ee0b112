// ABOUTME: Response DTOs for blog content API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// PostResponse represents a blog post in API responses
type PostResponse struct {
	ID            string   `json:"id" doc:"Post identifier derived from the filename"`
	Title         string   `json:"title" doc:"Post title"`
	Date          string   `json:"date" doc:"Publication date (YYYY-MM-DD)"`
	Excerpt       string   `json:"excerpt,omitempty" doc:"Short summary for listings"`
	Tags          []string `json:"tags" doc:"Post tags"`
	ReadTime      string   `json:"readTime" doc:"Estimated reading time, e.g. '4 min read'"`
	Category      string   `json:"category,omitempty" doc:"Post category"`
	Author        string   `json:"author,omitempty" doc:"Post author"`
	FeaturedImage string   `json:"featuredImage,omitempty" doc:"Featured image URL"`
}

// TOCEntryResponse represents one table of contents entry
type TOCEntryResponse struct {
	ID    string `json:"id" doc:"Anchor id of the heading"`
	Level int    `json:"level" doc:"Heading level (2-4)"`
	Text  string `json:"text" doc:"Heading text"`
}

// RenderedPostResponse represents a post with its rendered HTML
type RenderedPostResponse struct {
	PostResponse
	HTML    string             `json:"html" doc:"Rendered HTML fragment"`
	TOC     []TOCEntryResponse `json:"toc" doc:"Table of contents"`
	Related []PostResponse     `json:"related" doc:"Related posts by shared tags"`
}

// ListPostsResponse represents the response for listing posts
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts" doc:"Posts sorted by date descending"`
	Total int            `json:"total" doc:"Total number of posts returned"`
}

// TagsResponse represents the response for listing tags
type TagsResponse struct {
	Tags []string `json:"tags" doc:"Unique tags sorted alphabetically"`
}
