// ABOUTME: Response DTOs for the GitHub activity endpoint
// ABOUTME: Mirrors the composite widget view model

package responses

import "time"

// GitHubUserResponse represents the profile section of the widget
type GitHubUserResponse struct {
	Login       string `json:"login" doc:"GitHub username"`
	Name        string `json:"name,omitempty" doc:"Display name"`
	AvatarURL   string `json:"avatarUrl,omitempty" doc:"Avatar image URL"`
	Bio         string `json:"bio,omitempty" doc:"Profile bio"`
	PublicRepos int    `json:"publicRepos" doc:"Public repository count"`
	Followers   int    `json:"followers" doc:"Follower count"`
	Following   int    `json:"following" doc:"Following count"`
}

// RepoActivityResponse represents a repository ranked by recent commits
type RepoActivityResponse struct {
	Name        string `json:"name" doc:"Repository name"`
	Commits     int    `json:"commits" doc:"Commits in recent push events"`
	Description string `json:"description,omitempty" doc:"Repository description"`
	Language    string `json:"language,omitempty" doc:"Primary language"`
	Stars       int    `json:"stars" doc:"Stargazer count"`
}

// LanguageStatResponse represents one language bar in the widget
type LanguageStatResponse struct {
	Language string `json:"language" doc:"Language name"`
	Repos    int    `json:"repos" doc:"Repositories using the language"`
	Percent  int    `json:"percent" doc:"Share among the top languages"`
	Color    string `json:"color" doc:"Display color hex"`
}

// EventSummaryResponse represents one line in the recent activity list
type EventSummaryResponse struct {
	Type         string `json:"type" doc:"GitHub event type"`
	Repo         string `json:"repo" doc:"Repository name without owner"`
	Title        string `json:"title" doc:"Human-readable summary"`
	URL          string `json:"url,omitempty" doc:"Link target for the entry"`
	RelativeTime string `json:"relativeTime" doc:"Relative timestamp, e.g. '2 hours ago'"`
}

// ActivityResponse represents the composite GitHub widget payload
type ActivityResponse struct {
	User          GitHubUserResponse     `json:"user" doc:"Profile summary"`
	TopRepos      []RepoActivityResponse `json:"topRepos" doc:"Most active repositories"`
	Languages     []LanguageStatResponse `json:"languages" doc:"Top language distribution"`
	Contributions [][]int                `json:"contributions" doc:"12x7 contribution grid, oldest week first"`
	RecentEvents  []EventSummaryResponse `json:"recentEvents" doc:"Most recent public events"`
	LastUpdated   time.Time              `json:"lastUpdated" doc:"Timestamp of the newest event"`
	Stale         bool                   `json:"stale" doc:"True when served from expired cache after a fetch failure"`
}
