// ABOUTME: GitHub activity service assembles the composite widget view
// ABOUTME: Fetches profile, repos, and events through the resilient cache

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

const (
	contributionWeeks = 12
	daysInWeek        = 7
	topRepoLimit      = 5
	topLanguageLimit  = 6
	recentEventLimit  = 10
)

// Options configures the GitHub activity service.
type Options struct {
	// Username is the GitHub account the widget shows
	Username string

	// APIBase is the API root, e.g. "https://api.github.com"
	APIBase string

	// KeyPrefix namespaces cache keys; defaults to "github-<username>"
	KeyPrefix string

	// TTL is the cache freshness window
	TTL time.Duration
}

// Service fetches and assembles the GitHub activity view.
type Service struct {
	deps    interfaces.Dependencies
	fetcher *CachedFetcher
	opts    Options

	now func() time.Time
}

// NewService creates a new GitHub activity service instance
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	if opts.APIBase == "" {
		opts.APIBase = "https://api.github.com"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "github-" + opts.Username
	}
	if opts.TTL == 0 {
		opts.TTL = 30 * time.Minute
	}
	return &Service{
		deps:    deps,
		fetcher: NewCachedFetcher(deps, opts.TTL),
		opts:    opts,
		now:     time.Now,
	}
}

func (s *Service) userKey() string   { return s.opts.KeyPrefix + "-user" }
func (s *Service) reposKey() string  { return s.opts.KeyPrefix + "-repos" }
func (s *Service) eventsKey() string { return s.opts.KeyPrefix + "-events" }

func (s *Service) userURL() string {
	return fmt.Sprintf("%s/users/%s", s.opts.APIBase, s.opts.Username)
}

func (s *Service) reposURL() string {
	return fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", s.opts.APIBase, s.opts.Username)
}

func (s *Service) eventsURL() string {
	return fmt.Sprintf("%s/users/%s/events/public", s.opts.APIBase, s.opts.Username)
}

// Activity returns the composite widget view. The three resources are
// fetched concurrently; a fresh cache hit for one never blocks the
// others. On any failure the whole composite falls back to stale cache
// entries, and only when a required resource has no stale entry either
// does the error propagate.
func (s *Service) Activity(ctx context.Context, forceRefresh bool) (*domain.Activity, error) {
	type resource struct {
		key string
		url string
	}
	resources := []resource{
		{s.userKey(), s.userURL()},
		{s.reposKey(), s.reposURL()},
		{s.eventsKey(), s.eventsURL()},
	}

	payloads := make([]json.RawMessage, len(resources))
	errs := make([]error, len(resources))

	var wg sync.WaitGroup
	for i, r := range resources {
		wg.Add(1)
		go func(idx int, res resource) {
			defer wg.Done()
			payloads[idx], errs[idx] = s.fetcher.FetchWithCache(ctx, res.key, res.url, forceRefresh)
		}(i, r)
	}
	wg.Wait()

	stale := false
	for i, err := range errs {
		if err == nil {
			continue
		}

		if s.deps.Logger != nil {
			s.deps.Logger.Error("GitHub fetch failed, trying stale cache", map[string]interface{}{
				"key":   resources[i].key,
				"error": err.Error(),
			})
		}

		// Stale read for the failed resource. Resources that succeeded
		// keep their live data; partial staleness is tolerated.
		if data := s.fetcher.GetStale(ctx, resources[i].key); data != nil {
			payloads[i] = data
			stale = true
			continue
		}
		return nil, err
	}

	return s.assemble(payloads[0], payloads[1], payloads[2], stale)
}

// assemble decodes the three payloads and builds the view model.
func (s *Service) assemble(userRaw, reposRaw, eventsRaw json.RawMessage, stale bool) (*domain.Activity, error) {
	var user domain.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		return nil, err
	}

	var repos []domain.Repo
	if err := json.Unmarshal(reposRaw, &repos); err != nil {
		return nil, err
	}

	var events []domain.Event
	if err := json.Unmarshal(eventsRaw, &events); err != nil {
		return nil, err
	}

	now := s.now()
	lastUpdated := now
	if len(events) > 0 {
		lastUpdated = events[0].CreatedAt
	}

	return &domain.Activity{
		User:          user,
		TopRepos:      topRepos(events, repos),
		Languages:     languageStats(repos),
		Contributions: contributionGrid(events, now),
		RecentEvents:  recentEvents(events, now),
		LastUpdated:   lastUpdated,
		Stale:         stale,
	}, nil
}

// topRepos ranks repositories by commit count across recent push events.
func topRepos(events []domain.Event, repos []domain.Repo) []domain.RepoActivity {
	counts := map[string]int{}
	var order []string

	for _, e := range events {
		if e.Type != "PushEvent" {
			continue
		}
		name := shortRepoName(e.Repo.Name)
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name] += len(e.Payload.Commits)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topRepoLimit {
		order = order[:topRepoLimit]
	}

	details := map[string]domain.Repo{}
	for _, r := range repos {
		details[r.Name] = r
	}

	ranked := make([]domain.RepoActivity, 0, len(order))
	for _, name := range order {
		activity := domain.RepoActivity{Name: name, Commits: counts[name]}
		if d, ok := details[name]; ok {
			activity.Description = d.Description
			activity.Language = d.Language
			activity.Stars = d.StargazersCount
		}
		ranked = append(ranked, activity)
	}
	return ranked
}

// languageStats counts repositories per language and keeps the top six.
func languageStats(repos []domain.Repo) []domain.LanguageStat {
	counts := map[string]int{}
	var order []string

	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, seen := counts[r.Language]; !seen {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topLanguageLimit {
		order = order[:topLanguageLimit]
	}

	total := 0
	for _, lang := range order {
		total += counts[lang]
	}

	stats := make([]domain.LanguageStat, 0, len(order))
	for _, lang := range order {
		percent := 0
		if total > 0 {
			percent = int(float64(counts[lang])/float64(total)*100 + 0.5)
		}
		stats = append(stats, domain.LanguageStat{
			Language: lang,
			Repos:    counts[lang],
			Percent:  percent,
			Color:    LanguageColor(lang),
		})
	}
	return stats
}

// contributionGrid buckets contributing events into a 12-week by 7-day
// grid, most recent week last.
func contributionGrid(events []domain.Event, now time.Time) [][]int {
	grid := make([][]int, contributionWeeks)
	for i := range grid {
		grid[i] = make([]int, daysInWeek)
	}

	for _, e := range events {
		if !e.IsContribution() {
			continue
		}
		daysAgo := int(now.Sub(e.CreatedAt).Hours() / 24)
		if daysAgo < 0 || daysAgo >= contributionWeeks*daysInWeek {
			continue
		}
		week := daysAgo / daysInWeek
		day := daysInWeek - 1 - (daysAgo % daysInWeek)
		grid[week][day]++
	}
	return grid
}

// recentEvents summarizes the ten most recent events.
func recentEvents(events []domain.Event, now time.Time) []domain.EventSummary {
	limit := recentEventLimit
	if len(events) < limit {
		limit = len(events)
	}

	summaries := make([]domain.EventSummary, 0, limit)
	for _, e := range events[:limit] {
		summary := domain.EventSummary{
			Type:         e.Type,
			Repo:         shortRepoName(e.Repo.Name),
			RelativeTime: RelativeTime(e.CreatedAt, now),
		}

		switch e.Type {
		case "PushEvent":
			n := len(e.Payload.Commits)
			plural := "s"
			if n == 1 {
				plural = ""
			}
			summary.Title = fmt.Sprintf("Pushed %d commit%s", n, plural)
			summary.URL = "https://github.com/" + e.Repo.Name
		case "IssuesEvent":
			if e.Payload.Issue != nil {
				summary.Title = fmt.Sprintf("%s issue #%d %s",
					actionWord(e.Payload.Action), e.Payload.Issue.Number, e.Payload.Issue.Title)
				summary.URL = e.Payload.Issue.HTMLURL
			}
		case "PullRequestEvent":
			if e.Payload.PullRequest != nil {
				summary.Title = fmt.Sprintf("%s pull request #%d %s",
					actionWord(e.Payload.Action), e.Payload.PullRequest.Number, e.Payload.PullRequest.Title)
				summary.URL = e.Payload.PullRequest.HTMLURL
			}
		case "CreateEvent":
			if e.Payload.RefType != "repository" {
				continue
			}
			summary.Title = "Created repository"
			summary.URL = "https://github.com/" + e.Repo.Name
		default:
			continue
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

func actionWord(action string) string {
	switch action {
	case "opened":
		return "Opened"
	case "closed":
		return "Closed"
	default:
		return "Updated"
	}
}

// shortRepoName strips the owner from an "owner/repo" name.
func shortRepoName(full string) string {
	if _, name, found := strings.Cut(full, "/"); found {
		return name
	}
	return full
}

// RelativeTime formats the gap between t and now the way the widget
// shows it: "just now", minutes, hours, days, then an absolute date.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff.Minutes())
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return plural(minutes, "minute") + " ago"
	case hours < 24:
		return plural(hours, "hour") + " ago"
	case days < 30:
		return plural(days, "day") + " ago"
	default:
		return t.Format("Jan 2, 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
