package portfolio

import (
	"slices"
	"strings"

	"githubportfolio/models"
)

const (
	// TopicLevel is the level given to every topic-derived skill
	TopicLevel = 70

	languageLevelStep = 20
	maxLevel          = 100
)

type topicClass struct {
	category string
	keywords []string
}

// topicClasses is checked in order; the first category with a keyword
// contained in the topic wins.
var topicClasses = []topicClass{
	{
		category: models.CategoryFrameworks,
		keywords: []string{"react", "nextjs", "vue", "angular", "django", "flask", "express", "nodejs", "tailwindcss", "bootstrap"},
	},
	{
		category: models.CategoryTools,
		keywords: []string{"docker", "kubernetes", "aws", "azure", "gcp", "git", "ci-cd", "github-actions"},
	},
	{
		category: models.CategoryDatabases,
		keywords: []string{"mongodb", "postgresql", "mysql", "redis", "firebase", "supabase"},
	},
}

// ClassifyTopic returns the skill category of a repository topic
func ClassifyTopic(topic string) string {
	lower := strings.ToLower(topic)
	for _, class := range topicClasses {
		for _, keyword := range class.keywords {
			if strings.Contains(lower, keyword) {
				return class.category
			}
		}
	}
	return models.CategoryOther
}

// LanguageLevel scales the number of repositories using a language to a level
func LanguageLevel(count int) int {
	return min(maxLevel, count*languageLevelStep)
}

type languageCount struct {
	name  string
	count int
}

// ExtractSkills derives skills from repositories: one per primary language,
// most used first, followed by one per distinct topic in first-seen order.
func ExtractSkills(repos []models.Repository) []models.Skill {
	var languages []languageCount
	languageIndex := make(map[string]int)
	var topics []string
	seenTopics := make(map[string]struct{})

	for _, repo := range repos {
		if repo.Language != "" {
			if i, ok := languageIndex[repo.Language]; ok {
				languages[i].count++
			} else {
				languageIndex[repo.Language] = len(languages)
				languages = append(languages, languageCount{name: repo.Language, count: 1})
			}
		}

		for _, topic := range repo.Topics {
			if _, ok := seenTopics[topic]; ok {
				continue
			}
			seenTopics[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}

	// ties keep first-seen order
	slices.SortStableFunc(languages, func(a, b languageCount) int {
		return b.count - a.count
	})

	skills := make([]models.Skill, 0, len(languages)+len(topics))
	for _, lang := range languages {
		skills = append(skills, models.Skill{
			Name:     lang.name,
			Category: models.CategoryLanguages,
			Level:    LanguageLevel(lang.count),
		})
	}

	for _, topic := range topics {
		skills = append(skills, models.Skill{
			Name:     FormatName(topic),
			Category: ClassifyTopic(topic),
			Level:    TopicLevel,
		})
	}

	return skills
}
