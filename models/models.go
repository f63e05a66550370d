// Package models defines the core data structures used throughout the application.
package models

import "time"

// Skill categories
const (
	CategoryLanguages  = "Programming Languages"
	CategoryFrameworks = "Frameworks & Libraries"
	CategoryTools      = "Tools & DevOps"
	CategoryDatabases  = "Databases"
	CategoryOther      = "Other"
)

// Repository represents a GitHub repository as returned by the REST API
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
}

// User represents a GitHub user profile
type User struct {
	ID            int64     `json:"id"`
	Login         string    `json:"login"`
	AvatarURL     string    `json:"avatar_url"`
	HTMLURL       string    `json:"html_url"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	Blog          string    `json:"blog"`
	Location      string    `json:"location"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio"`
	TwitterHandle string    `json:"twitter_username"`
	PublicRepos   int       `json:"public_repos"`
	Followers     int       `json:"followers"`
	Following     int       `json:"following"`
	CreatedAt     time.Time `json:"created_at"`
}

// Skill is a named, categorized skill. A zero Level means no level is known.
type Skill struct {
	Name     string `json:"name" mapstructure:"name" db:"name"`
	Category string `json:"category" mapstructure:"category" db:"category"`
	Level    int    `json:"level,omitempty" mapstructure:"level" db:"level"`
}

// Project is a display-ready project derived from a repository
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Homepage    string    `json:"homepage,omitempty"`
	Language    string    `json:"language"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

// Portfolio is the aggregate handed to the presentation layer. It is built
// fresh for every request and never mutated afterwards.
type Portfolio struct {
	User     *User     `json:"user"`
	Projects []Project `json:"projects"`
	Skills   []Skill   `json:"skills"`
	Readme   *string   `json:"readme"`
}
