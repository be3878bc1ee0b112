// ABOUTME: GitHub domain models for the activity widget data
// ABOUTME: Mirrors the subset of the GitHub REST API shapes the widget consumes

package domain

import "time"

// User represents a GitHub user profile.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// Repo represents a GitHub repository.
type Repo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	HTMLURL         string `json:"html_url"`
}

// Event represents a public GitHub event.
type Event struct {
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
}

// EventRepo identifies the repository an event belongs to.
type EventRepo struct {
	// Name is the full "owner/repo" form.
	Name string `json:"name"`
}

// EventPayload carries the event-type-specific fields the widget uses.
type EventPayload struct {
	Action      string    `json:"action"`
	RefType     string    `json:"ref_type"`
	Commits     []Commit  `json:"commits"`
	Issue       *IssueRef `json:"issue"`
	PullRequest *IssueRef `json:"pull_request"`
}

// Commit is a single commit inside a PushEvent payload.
type Commit struct {
	Message string `json:"message"`
}

// IssueRef references an issue or pull request.
type IssueRef struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// IsContribution reports whether the event counts toward the
// contribution graph.
func (e *Event) IsContribution() bool {
	switch e.Type {
	case "PushEvent", "IssuesEvent", "PullRequestEvent", "CreateEvent":
		return true
	}
	return false
}

// RepoActivity is a repository ranked by recent commit count.
type RepoActivity struct {
	Name        string `json:"name"`
	Commits     int    `json:"commits"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
}

// LanguageStat is a language with its repository count.
type LanguageStat struct {
	Language string `json:"language"`
	Repos    int    `json:"repos"`
	Percent  int    `json:"percent"`
	Color    string `json:"color"`
}

// EventSummary is a rendered one-line description of a recent event.
type EventSummary struct {
	Type         string `json:"type"`
	Repo         string `json:"repo"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	RelativeTime string `json:"relativeTime"`
}

// Activity is the composite GitHub widget view: profile, repo ranking,
// language stats, contribution grid, and recent events.
type Activity struct {
	User          User           `json:"user"`
	TopRepos      []RepoActivity `json:"topRepos"`
	Languages     []LanguageStat `json:"languages"`
	Contributions [][]int        `json:"contributions"`
	RecentEvents  []EventSummary `json:"recentEvents"`
	LastUpdated   time.Time      `json:"lastUpdated"`

	// Stale marks a view assembled from cache entries past their TTL,
	// served because a live fetch failed.
	Stale bool `json:"stale"`
}
