// ABOUTME: Mappers converting the GitHub activity view to response DTOs
// ABOUTME: Keeps the API surface decoupled from core types

package mappers

import (
	"github.com/lolimmlost/appahouse-portfolio/api/dto/responses"
	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ToActivityResponse converts the domain Activity view
func ToActivityResponse(activity *domain.Activity) responses.ActivityResponse {
	topRepos := make([]responses.RepoActivityResponse, len(activity.TopRepos))
	for i, r := range activity.TopRepos {
		topRepos[i] = responses.RepoActivityResponse{
			Name:        r.Name,
			Commits:     r.Commits,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
		}
	}

	languages := make([]responses.LanguageStatResponse, len(activity.Languages))
	for i, l := range activity.Languages {
		languages[i] = responses.LanguageStatResponse{
			Language: l.Language,
			Repos:    l.Repos,
			Percent:  l.Percent,
			Color:    l.Color,
		}
	}

	events := make([]responses.EventSummaryResponse, len(activity.RecentEvents))
	for i, e := range activity.RecentEvents {
		events[i] = responses.EventSummaryResponse{
			Type:         e.Type,
			Repo:         e.Repo,
			Title:        e.Title,
			URL:          e.URL,
			RelativeTime: e.RelativeTime,
		}
	}

	return responses.ActivityResponse{
		User: responses.GitHubUserResponse{
			Login:       activity.User.Login,
			Name:        activity.User.Name,
			AvatarURL:   activity.User.AvatarURL,
			Bio:         activity.User.Bio,
			PublicRepos: activity.User.PublicRepos,
			Followers:   activity.User.Followers,
			Following:   activity.User.Following,
		},
		TopRepos:      topRepos,
		Languages:     languages,
		Contributions: activity.Contributions,
		RecentEvents:  events,
		LastUpdated:   activity.LastUpdated,
		Stale:         activity.Stale,
	}
}
