// Package view turns a Portfolio into the sections rendered by a page.
package view

import (
	"regexp"
	"strings"

	"githubportfolio/models"
)

// AllFilter selects every category or language
const AllFilter = "all"

const (
	memberSinceLayout = "January 2006"
	projectDateLayout = "Jan 2006"
	aboutFallbackSize = 3
)

// README headings that introduce the about section, in priority order
var aboutHeadings = []*regexp.Regexp{
	regexp.MustCompile(`(?i)## About Me\n`),
	regexp.MustCompile(`(?i)## About\n`),
	regexp.MustCompile(`(?i)### About Me\n`),
	regexp.MustCompile(`(?i)### About\n`),
}

// About extracts the about text from a profile README: the body of an
// "About Me" or "About" section up to the next heading, or else the first
// few non-heading lines. It returns "" when nothing usable is found.
func About(readme string) string {
	for _, heading := range aboutHeadings {
		loc := heading.FindStringIndex(readme)
		if loc == nil {
			continue
		}
		body := readme[loc[1]:]
		if end := strings.Index(body, "##"); end >= 0 {
			body = body[:end]
		}
		if text := strings.TrimSpace(body); text != "" {
			return text
		}
	}

	var lines []string
	for _, line := range strings.Split(readme, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == aboutFallbackSize {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}

// MemberSince formats the account creation month, e.g. "March 2019"
func MemberSince(user *models.User) string {
	if user == nil || user.CreatedAt.IsZero() {
		return ""
	}
	return user.CreatedAt.Format(memberSinceLayout)
}

// ProjectDate formats the last update of a project, e.g. "Mar 2024"
func ProjectDate(project models.Project) string {
	if project.UpdatedAt.IsZero() {
		return ""
	}
	return project.UpdatedAt.Format(projectDateLayout)
}

// SkillGroup is the skills of one category
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []models.Skill `json:"skills"`
}

// GroupSkills groups skills by category. Categories appear in the order
// they are first seen and skills keep their relative order.
func GroupSkills(skills []models.Skill) []SkillGroup {
	groups := []SkillGroup{}
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}

// SkillCategories lists AllFilter followed by every distinct category
func SkillCategories(skills []models.Skill) []string {
	categories := []string{AllFilter}
	for _, group := range GroupSkills(skills) {
		categories = append(categories, group.Category)
	}
	return categories
}

// ProjectLanguages lists AllFilter followed by every distinct non-empty language
func ProjectLanguages(projects []models.Project) []string {
	languages := []string{AllFilter}
	seen := make(map[string]struct{})
	for _, project := range projects {
		if project.Language == "" {
			continue
		}
		if _, ok := seen[project.Language]; ok {
			continue
		}
		seen[project.Language] = struct{}{}
		languages = append(languages, project.Language)
	}
	return languages
}

// FilterProjects keeps the projects written in language (AllFilter or ""
// keeps every language) whose name, description or topics contain query,
// ignoring case.
func FilterProjects(projects []models.Project, language, query string) []models.Project {
	query = strings.ToLower(query)
	filtered := []models.Project{}
	for _, project := range projects {
		if language != "" && language != AllFilter && project.Language != language {
			continue
		}
		if query != "" && !matchesQuery(project, query) {
			continue
		}
		filtered = append(filtered, project)
	}
	return filtered
}

func matchesQuery(project models.Project, query string) bool {
	if strings.Contains(strings.ToLower(project.Name), query) ||
		strings.Contains(strings.ToLower(project.Description), query) {
		return true
	}
	for _, topic := range project.Topics {
		if strings.Contains(strings.ToLower(topic), query) {
			return true
		}
	}
	return false
}
