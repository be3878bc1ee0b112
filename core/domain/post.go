// ABOUTME: Post domain model represents a parsed blog post with its metadata
// ABOUTME: Provides defaulting rules applied when frontmatter omits fields

package domain

// Post represents a blog post parsed from a Markdown source file
type Post struct {
	// ID is derived from the source filename (name without extension)
	// and is the sole lookup/routing key for the post.
	ID string `json:"id"`

	// Title is the post headline
	Title string `json:"title"`

	// Date is the publication date in ISO YYYY-MM-DD form
	Date string `json:"date"`

	// Excerpt is a short summary shown in list views
	Excerpt string `json:"excerpt"`

	// Tags are the post's topic tags
	Tags []string `json:"tags"`

	// ReadTime is a human-readable estimate, e.g. "4 min read"
	ReadTime string `json:"readTime"`

	// Additional metadata fields
	Category      string `json:"category"`
	Author        string `json:"author"`
	FeaturedImage string `json:"featuredImage"`

	// Published controls list visibility; defaults to true
	Published bool `json:"published"`

	// Body is the raw Markdown content after the frontmatter block
	Body string `json:"body"`
}

// DefaultTitle is used when frontmatter declares no title.
const DefaultTitle = "Untitled Post"

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharedTagCount returns how many tags the post shares with other.
func (p *Post) SharedTagCount(other *Post) int {
	count := 0
	for _, t := range p.Tags {
		if other.HasTag(t) {
			count++
		}
	}
	return count
}

// TOCEntry is a table-of-contents entry extracted from a rendered post.
type TOCEntry struct {
	// ID is the anchor id assigned to the heading
	ID string `json:"id"`

	// Level is the heading level (2-4)
	Level int `json:"level"`

	// Text is the heading text content
	Text string `json:"text"`
}

// RenderedPost pairs a post with its rendered HTML fragment and TOC.
type RenderedPost struct {
	Post Post       `json:"post"`
	HTML string     `json:"html"`
	TOC  []TOCEntry `json:"toc"`
}
