package view

import (
	"strings"

	"githubportfolio/models"
)

// Placeholders shown when the profile could not be fetched
const (
	DefaultName  = "Developer"
	DefaultTitle = "Full Stack Developer | Open Source Enthusiast | Building Amazing Web Experiences"
	DefaultAbout = "Welcome to my portfolio! I'm a passionate developer who loves creating innovative solutions and contributing to the open-source community."
)

// Page is everything a portfolio page renders, section by section
type Page struct {
	Hero     Hero            `json:"hero"`
	About    AboutSection    `json:"about"`
	Skills   SkillsSection   `json:"skills"`
	Projects ProjectsSection `json:"projects"`
	Contact  Contact         `json:"contact"`
}

// Hero is the page header
type Hero struct {
	Name      string `json:"name"`
	Headline  string `json:"headline"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AboutSection describes the developer
type AboutSection struct {
	Text        string `json:"text"`
	MemberSince string `json:"memberSince,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// SkillsSection lists skills grouped by category
type SkillsSection struct {
	Categories []string     `json:"categories"`
	Groups     []SkillGroup `json:"groups"`
}

// ProjectCard is a project with its display date
type ProjectCard struct {
	models.Project
	Date string `json:"date"`
}

// ProjectsSection lists the featured projects
type ProjectsSection struct {
	Languages []string      `json:"languages"`
	Items     []ProjectCard `json:"items"`
}

// Contact holds the ways to reach the developer
type Contact struct {
	Email      string `json:"email,omitempty"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
	Login      string `json:"login,omitempty"`
	Twitter    string `json:"twitter,omitempty"`
	Website    string `json:"website,omitempty"`
}

// PageOptions narrows the projects shown on a page
type PageOptions struct {
	Language string
	Query    string
}

// NewPage lays out a portfolio. A missing profile or README falls back to
// placeholder text; the page is always renderable.
func NewPage(p models.Portfolio, opts PageOptions) Page {
	page := Page{
		Hero: Hero{Name: DefaultName, Headline: DefaultTitle},
		About: AboutSection{
			Text: DefaultAbout,
		},
		Skills: SkillsSection{
			Categories: SkillCategories(p.Skills),
			Groups:     GroupSkills(p.Skills),
		},
		Projects: ProjectsSection{
			Languages: ProjectLanguages(p.Projects),
			Items:     []ProjectCard{},
		},
	}

	for _, project := range FilterProjects(p.Projects, opts.Language, opts.Query) {
		page.Projects.Items = append(page.Projects.Items, ProjectCard{Project: project, Date: ProjectDate(project)})
	}

	var about string
	if p.Readme != nil {
		about = About(*p.Readme)
	}

	if user := p.User; user != nil {
		page.Hero.Name = firstNonEmpty(user.Name, user.Login, DefaultName)
		page.Hero.Headline = firstNonEmpty(user.Bio, DefaultTitle)
		page.Hero.AvatarURL = user.AvatarURL

		page.About.Text = firstNonEmpty(about, user.Bio, DefaultAbout)
		page.About.MemberSince = MemberSince(user)
		page.About.Company = user.Company
		page.About.Location = user.Location
		page.About.PublicRepos = user.PublicRepos
		page.About.Followers = user.Followers
		page.About.Following = user.Following

		page.Contact = Contact{
			Email:      user.Email,
			Location:   user.Location,
			ProfileURL: user.HTMLURL,
			Login:      user.Login,
			Twitter:    twitterURL(user.TwitterHandle),
			Website:    websiteURL(user.Blog),
		}
	} else if about != "" {
		page.About.Text = about
	}

	return page
}

func twitterURL(handle string) string {
	if handle == "" {
		return ""
	}
	return "https://twitter.com/" + handle
}

// websiteURL adds a scheme to bare blog hosts
func websiteURL(blog string) string {
	if blog == "" || strings.HasPrefix(blog, "http") {
		return blog
	}
	return "https://" + blog
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
