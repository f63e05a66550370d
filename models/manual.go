package models

// ManualConfig is the hand-authored part of the portfolio. It is served as its
// own record and is never merged into a Portfolio.
type ManualConfig struct {
	Name           string          `json:"name" mapstructure:"name"`
	Title          string          `json:"title" mapstructure:"title"`
	Email          string          `json:"email" mapstructure:"email"`
	Location       string          `json:"location" mapstructure:"location"`
	Social         SocialLinks     `json:"social" mapstructure:"social"`
	Experience     []Experience    `json:"experience" mapstructure:"experience"`
	Skills         []Skill         `json:"skills" mapstructure:"skills"`
	Projects       []ManualProject `json:"projects" mapstructure:"projects"`
	Certifications []Certification `json:"certifications" mapstructure:"certifications"`
}

// SocialLinks holds profile links other than GitHub
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty" mapstructure:"linkedin" db:"linkedin"`
	Twitter  string `json:"twitter,omitempty" mapstructure:"twitter" db:"twitter"`
	Website  string `json:"website,omitempty" mapstructure:"website" db:"website"`
}

// Experience is a single work history entry
type Experience struct {
	Company      string   `json:"company" mapstructure:"company"`
	Role         string   `json:"role" mapstructure:"role"`
	StartDate    string   `json:"startDate" mapstructure:"startDate"`
	EndDate      string   `json:"endDate" mapstructure:"endDate"`
	Description  string   `json:"description" mapstructure:"description"`
	Technologies []string `json:"technologies" mapstructure:"technologies"`
	Logo         string   `json:"logo,omitempty" mapstructure:"logo"`
}

// ManualProject is a project that does not come from GitHub (e.g. closed source)
type ManualProject struct {
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description" mapstructure:"description"`
	URL         string   `json:"url" mapstructure:"url"`
	Thumbnail   string   `json:"thumbnail,omitempty" mapstructure:"thumbnail"`
	Language    string   `json:"language" mapstructure:"language"`
	Stars       int      `json:"stars" mapstructure:"stars"`
	Forks       int      `json:"forks" mapstructure:"forks"`
	Topics      []string `json:"topics" mapstructure:"topics"`
	UpdatedAt   string   `json:"updatedAt" mapstructure:"updatedAt"`
}

// Certification is a professional certificate
type Certification struct {
	Name   string `json:"name" mapstructure:"name" db:"name"`
	Issuer string `json:"issuer" mapstructure:"issuer" db:"issuer"`
	Date   string `json:"date" mapstructure:"date" db:"date"`
	URL    string `json:"url,omitempty" mapstructure:"url" db:"url"`
	Image  string `json:"image,omitempty" mapstructure:"image" db:"image"`
}
