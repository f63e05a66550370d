package portfolio

import (
	"fmt"
	"slices"
	"strings"

	"githubportfolio/models"
)

const (
	// MaxProjects caps the number of featured projects
	MaxProjects = 12
	// DefaultThumbnailBase serves Open Graph images for GitHub repositories
	DefaultThumbnailBase = "https://opengraph.githubassets.com"
	// UnknownLanguage labels projects without a primary language
	UnknownLanguage = "Unknown"
)

// Thumbnail builds the Open Graph image URL of a repository. The image is
// never fetched or checked.
func Thumbnail(base, handle, repoName string) string {
	if base == "" {
		base = DefaultThumbnailBase
	}
	return fmt.Sprintf("%s/1/%s/%s", strings.TrimRight(base, "/"), handle, repoName)
}

// TransformProjects selects the repositories worth featuring (described or
// tagged), ranks them by stars then most recent push, keeps the first
// MaxProjects and maps them to projects. repos is not modified.
func TransformProjects(repos []models.Repository, handle, thumbnailBase string) []models.Project {
	featured := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Description != "" || len(repo.Topics) > 0 {
			featured = append(featured, repo)
		}
	}

	slices.SortStableFunc(featured, func(a, b models.Repository) int {
		if a.Stars != b.Stars {
			return b.Stars - a.Stars
		}
		return b.PushedAt.Compare(a.PushedAt)
	})

	if len(featured) > MaxProjects {
		featured = featured[:MaxProjects]
	}

	projects := make([]models.Project, 0, len(featured))
	for _, repo := range featured {
		projects = append(projects, toProject(repo, handle, thumbnailBase))
	}
	return projects
}

func toProject(repo models.Repository, handle, thumbnailBase string) models.Project {
	description := repo.Description
	if description == "" {
		kind := repo.Language
		if kind == "" {
			kind = "code"
		}
		description = fmt.Sprintf("A %s project", kind)
	}

	language := repo.Language
	if language == "" {
		language = UnknownLanguage
	}

	topics := make([]string, len(repo.Topics))
	copy(topics, repo.Topics)

	return models.Project{
		ID:          repo.ID,
		Name:        FormatName(repo.Name),
		Description: description,
		URL:         repo.HTMLURL,
		Homepage:    repo.Homepage,
		Language:    language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		Topics:      topics,
		UpdatedAt:   repo.UpdatedAt,
		Thumbnail:   Thumbnail(thumbnailBase, handle, repo.Name),
	}
}
