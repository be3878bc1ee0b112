// ABOUTME: RSS feed generation for published blog posts
// ABOUTME: Builds a gorilla/feeds feed from the loaded collection

package content

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"
)

// FeedRSS renders the published post collection as an RSS document.
func (s *Service) FeedRSS(ctx context.Context) (string, error) {
	posts, err := s.Load(ctx)
	if err != nil {
		return "", err
	}

	feed := &feeds.Feed{
		Title:       s.opts.SiteTitle,
		Link:        &feeds.Link{Href: s.opts.SiteURL},
		Description: s.opts.SiteDescription,
		Author:      &feeds.Author{Name: s.opts.DefaultAuthor},
		Created:     s.now(),
	}

	for _, post := range posts {
		published, err := time.Parse("2006-01-02", post.Date)
		if err != nil {
			published = s.now()
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          post.ID,
			Title:       post.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", s.opts.SiteURL, post.ID)},
			Description: post.Excerpt,
			Author:      &feeds.Author{Name: post.Author},
			Created:     published,
		})
	}

	return feed.ToRss()
}
