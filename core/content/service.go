// ABOUTME: Content service loads blog posts from Markdown files with frontmatter
// ABOUTME: Provides listing, lookup, search, tags, and related-post logic

package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
	"github.com/lolimmlost/appahouse-portfolio/core/frontmatter"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
	"github.com/lolimmlost/appahouse-portfolio/core/markdown"
)

// Options configures the content service.
type Options struct {
	// BaseURL is the content server root, e.g. "https://site.example/content"
	BaseURL string

	// PostsDir is the directory under BaseURL holding post files
	PostsDir string

	// ManifestName is the manifest filename inside PostsDir
	ManifestName string

	// FallbackFiles is used when the manifest cannot be fetched
	FallbackFiles []string

	// DefaultAuthor is applied when frontmatter declares no author
	DefaultAuthor string

	// Site metadata for the RSS feed
	SiteTitle       string
	SiteDescription string
	SiteURL         string
}

// Service handles blog post loading and queries
type Service struct {
	deps interfaces.Dependencies
	opts Options

	// now is overridable in tests for deterministic date defaulting
	now func() time.Time
}

// NewService creates a new content service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.PostsDir == "" {
		opts.PostsDir = "blog"
	}
	if opts.ManifestName == "" {
		opts.ManifestName = "index.json"
	}
	return &Service{
		deps: deps,
		opts: opts,
		now:  time.Now,
	}
}

// Load fetches the manifest and all post files, returning published posts
// sorted by date descending. A collection is rebuilt on every call; posts
// are never mutated after construction.
func (s *Service) Load(ctx context.Context) ([]domain.Post, error) {
	files := s.loadManifest(ctx)
	if len(files) == 0 {
		return []domain.Post{}, nil
	}

	// Fetch all files concurrently but keep manifest order, so the later
	// sort resolves date ties by source order regardless of completion order.
	posts := make([]domain.Post, len(files))
	semaphore := make(chan struct{}, 10)
	var wg sync.WaitGroup

	for i, filename := range files {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			raw, err := s.fetchPostFile(ctx, name)
			if err != nil {
				if s.deps.Logger != nil {
					s.deps.Logger.Error("Failed to fetch post file", map[string]interface{}{
						"file":  name,
						"error": err.Error(),
					})
				}
				raw = placeholderBody(name)
			}
			posts[idx] = s.buildPost(name, raw)
		}(i, filename)
	}
	wg.Wait()

	published := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date > published[j].Date
	})

	return published, nil
}

// Get returns a single post by ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}

	return nil, &coreerrors.NotFoundError{Resource: "post", ID: id}
}

// Render returns a post with its rendered HTML fragment and table of
// contents, plus related posts by shared tags.
func (s *Service) Render(ctx context.Context, id string) (*domain.RenderedPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	html := markdown.Render(post.Body)
	// ExtractTOC hands back the unmodified fragment on failure, so the
	// post is served without a TOC rather than lost.
	html, toc, err := ExtractTOC(html)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Failed to extract table of contents", map[string]interface{}{
				"post":  id,
				"error": err.Error(),
			})
		}
		toc = nil
	}

	return &domain.RenderedPost{Post: *post, HTML: html, TOC: toc}, nil
}

// Search returns posts matching the query in title, excerpt, tags, or body.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return posts, nil
	}

	matched := make([]domain.Post, 0)
	for _, p := range posts {
		if postMatches(&p, query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// FilterByTag returns posts carrying the given tag.
func (s *Service) FilterByTag(ctx context.Context, tag string) ([]domain.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Post, 0)
	for _, p := range posts {
		if p.HasTag(tag) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Tags returns all unique tags across published posts, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	tags := make([]string, 0)
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// Related returns up to limit posts sharing tags with the given post,
// ranked by shared-tag count then date descending.
func (s *Service) Related(ctx context.Context, id string, limit int) ([]domain.Post, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	var current *domain.Post
	for i := range posts {
		if posts[i].ID == id {
			current = &posts[i]
			break
		}
	}
	if current == nil {
		return []domain.Post{}, nil
	}

	related := make([]domain.Post, 0)
	for _, p := range posts {
		if p.ID != id && current.SharedTagCount(&p) > 0 {
			related = append(related, p)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		a := current.SharedTagCount(&related[i])
		b := current.SharedTagCount(&related[j])
		if a != b {
			return a > b
		}
		return related[i].Date > related[j].Date
	})

	if limit > 0 && len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

// loadManifest fetches the post file list, falling back to the configured
// built-in list. Manifest unavailability is recovered here and never
// surfaced to the caller.
func (s *Service) loadManifest(ctx context.Context) []string {
	url := fmt.Sprintf("%s/%s/%s", s.opts.BaseURL, s.opts.PostsDir, s.opts.ManifestName)

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err == nil {
		defer resp.Body().Close()
		if resp.StatusCode() == 200 {
			var files []string
			if decodeErr := json.NewDecoder(resp.Body()).Decode(&files); decodeErr == nil {
				return files
			}
			err = fmt.Errorf("manifest is not a JSON string array")
		} else {
			err = fmt.Errorf("manifest returned status %d", resp.StatusCode())
		}
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Warn("Using fallback post list", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
	return s.opts.FallbackFiles
}

// fetchPostFile fetches a single raw Markdown file.
func (s *Service) fetchPostFile(ctx context.Context, filename string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s", s.opts.BaseURL, s.opts.PostsDir, filename)

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("fetching %s returned status %d", filename, resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// buildPost constructs an immutable Post from raw file content, applying
// the frontmatter defaulting rules.
func (s *Service) buildPost(filename, raw string) domain.Post {
	id := strings.TrimSuffix(filename, ".md")
	fields, body := frontmatter.Parse(raw)

	readTime := fields.Get("readTime", "")
	if readTime == "" {
		readTime = markdown.ReadTime(body)
	}

	tags := fields.GetList("tags")
	if tags == nil {
		tags = []string{}
	}

	return domain.Post{
		ID:            id,
		Title:         fields.Get("title", domain.DefaultTitle),
		Date:          fields.Get("date", s.now().Format("2006-01-02")),
		Excerpt:       fields.Get("excerpt", ""),
		Tags:          tags,
		ReadTime:      readTime,
		Category:      fields.Get("category", ""),
		Author:        fields.Get("author", s.opts.DefaultAuthor),
		FeaturedImage: fields.Get("featuredImage", ""),
		Published:     fields.GetBool("published", true),
		Body:          body,
	}
}

// placeholderBody is substituted when a post file cannot be fetched, so
// one bad file never breaks the listing.
func placeholderBody(filename string) string {
	return fmt.Sprintf("# Error loading post\n\nCould not load the blog post %q. Please try again later.", filename)
}

func postMatches(p *domain.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.Body), query)
}
