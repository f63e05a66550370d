package db

// Row types for the manual record tables. List columns are stored as
// comma-separated text.

type profileRow struct {
	Name     string `db:"name"`
	Title    string `db:"title"`
	Email    string `db:"email"`
	Location string `db:"location"`
	LinkedIn string `db:"linkedin"`
	Twitter  string `db:"twitter"`
	Website  string `db:"website"`
}

type experienceRow struct {
	Company      string `db:"company"`
	Role         string `db:"role"`
	StartDate    string `db:"start_date"`
	EndDate      string `db:"end_date"`
	Description  string `db:"description"`
	Technologies string `db:"technologies"`
	Logo         string `db:"logo"`
}

type projectRow struct {
	Name        string `db:"name"`
	Description string `db:"description"`
	URL         string `db:"url"`
	Thumbnail   string `db:"thumbnail"`
	Language    string `db:"language"`
	Stars       int    `db:"stars"`
	Forks       int    `db:"forks"`
	Topics      string `db:"topics"`
	UpdatedAt   string `db:"updated_at"`
}
