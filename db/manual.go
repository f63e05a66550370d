package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"githubportfolio/logger"
	"githubportfolio/manual"
	"githubportfolio/models"
)

var _ manual.Source = (*DB)(nil)

const (
	profileQuery = `
		SELECT name, title, email, location,
			COALESCE(linkedin, '') AS linkedin,
			COALESCE(twitter, '') AS twitter,
			COALESCE(website, '') AS website
		FROM manual_profile
		ORDER BY id
		LIMIT 1
	`

	experienceQuery = `
		SELECT company, role, start_date,
			COALESCE(end_date, 'Present') AS end_date,
			COALESCE(description, '') AS description,
			COALESCE(technologies, '') AS technologies,
			COALESCE(logo, '') AS logo
		FROM manual_experience
		ORDER BY position
	`

	skillsQuery = `
		SELECT name, category, COALESCE(level, 0) AS level
		FROM manual_skills
		ORDER BY position
	`

	projectsQuery = `
		SELECT name,
			COALESCE(description, '') AS description,
			COALESCE(url, '') AS url,
			COALESCE(thumbnail, '') AS thumbnail,
			COALESCE(language, '') AS language,
			stars, forks,
			COALESCE(topics, '') AS topics,
			COALESCE(updated_at, '') AS updated_at
		FROM manual_projects
		ORDER BY position
	`

	certificationsQuery = `
		SELECT name, issuer,
			COALESCE(date, '') AS date,
			COALESCE(url, '') AS url,
			COALESCE(image, '') AS image
		FROM manual_certifications
		ORDER BY position
	`
)

// Load reads the whole manual record and validates it
func (db *DB) Load(ctx context.Context) (*models.ManualConfig, error) {
	cfg := &models.ManualConfig{}

	if err := db.loadProfile(ctx, cfg); err != nil {
		return nil, err
	}

	var experience []experienceRow
	if err := db.selectAll(ctx, &experience, experienceQuery); err != nil {
		return nil, err
	}
	for _, row := range experience {
		cfg.Experience = append(cfg.Experience, models.Experience{
			Company:      row.Company,
			Role:         row.Role,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			Description:  row.Description,
			Technologies: splitList(row.Technologies),
			Logo:         row.Logo,
		})
	}

	if err := db.selectAll(ctx, &cfg.Skills, skillsQuery); err != nil {
		return nil, err
	}

	var projects []projectRow
	if err := db.selectAll(ctx, &projects, projectsQuery); err != nil {
		return nil, err
	}
	for _, row := range projects {
		cfg.Projects = append(cfg.Projects, models.ManualProject{
			Name:        row.Name,
			Description: row.Description,
			URL:         row.URL,
			Thumbnail:   row.Thumbnail,
			Language:    row.Language,
			Stars:       row.Stars,
			Forks:       row.Forks,
			Topics:      splitList(row.Topics),
			UpdatedAt:   row.UpdatedAt,
		})
	}

	if err := db.selectAll(ctx, &cfg.Certifications, certificationsQuery); err != nil {
		return nil, err
	}

	if err := manual.Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug("Manual record loaded from database",
		zap.Int("experience", len(cfg.Experience)),
		zap.Int("skills", len(cfg.Skills)),
		zap.Int("projects", len(cfg.Projects)),
		zap.Int("certifications", len(cfg.Certifications)))
	return cfg, nil
}

// loadProfile fills the profile fields. A missing profile row leaves them empty.
func (db *DB) loadProfile(ctx context.Context, cfg *models.ManualConfig) error {
	stmt, err := db.getStmt(ctx, profileQuery)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	var row profileRow
	if err := stmt.GetContext(ctx, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn("No manual profile row found")
			return nil
		}
		return fmt.Errorf("%w: manual_profile: %v", ErrQueryFailed, err)
	}

	cfg.Name = row.Name
	cfg.Title = row.Title
	cfg.Email = row.Email
	cfg.Location = row.Location
	cfg.Social = models.SocialLinks{
		LinkedIn: row.LinkedIn,
		Twitter:  row.Twitter,
		Website:  row.Website,
	}
	return nil
}

func (db *DB) selectAll(ctx context.Context, dest any, query string) error {
	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if err := stmt.SelectContext(ctx, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
