package manual

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"githubportfolio/models"
)

const validYAML = `
name: Kayode Max
title: Full Stack Developer
email: kayode@example.com
location: Lagos, Nigeria
social:
  linkedin: https://linkedin.com/in/kayode-max
  website: https://kayodemax.com
experience:
  - company: Tech Solutions Inc.
    role: Senior Frontend Developer
    startDate: "2023-01"
    endDate: Present
    description: Leading the frontend team.
    technologies: [React, Next.js, TypeScript]
skills:
  - name: System Design
    category: Architecture
    level: 85
  - name: Mentoring
    category: Soft Skills
projects:
  - name: E-commerce Dashboard
    description: A dashboard for online stores.
    url: https://dashboard-demo.com
    language: TypeScript
    topics: [React, Dashboard]
    updatedAt: "2024-03-15"
certifications:
  - name: AWS Certified Solutions Architect
    issuer: Amazon Web Services
    date: "2023"
    url: https://aws.amazon.com/certification/
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileSourceLoad(t *testing.T) {
	path := writeFile(t, "manual.yaml", validYAML)

	cfg, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Kayode Max", cfg.Name)
	assert.Equal(t, "Lagos, Nigeria", cfg.Location)
	assert.Equal(t, "https://linkedin.com/in/kayode-max", cfg.Social.LinkedIn)
	assert.Empty(t, cfg.Social.Twitter)

	require.Len(t, cfg.Experience, 1)
	assert.Equal(t, "2023-01", cfg.Experience[0].StartDate)
	assert.Equal(t, "Present", cfg.Experience[0].EndDate)
	assert.Equal(t, []string{"React", "Next.js", "TypeScript"}, cfg.Experience[0].Technologies)

	require.Len(t, cfg.Skills, 2)
	assert.Equal(t, models.Skill{Name: "System Design", Category: "Architecture", Level: 85}, cfg.Skills[0])
	assert.Zero(t, cfg.Skills[1].Level)

	require.Len(t, cfg.Projects, 1)
	assert.Equal(t, "2024-03-15", cfg.Projects[0].UpdatedAt)
	assert.Equal(t, []string{"React", "Dashboard"}, cfg.Projects[0].Topics)

	require.Len(t, cfg.Certifications, 1)
	assert.Equal(t, "Amazon Web Services", cfg.Certifications[0].Issuer)
}

func TestFileSourceLoadJSON(t *testing.T) {
	path := writeFile(t, "manual.json", `{"name":"Octo","skills":[{"name":"Go","category":"Languages","level":90}]}`)

	cfg, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Octo", cfg.Name)
	require.Len(t, cfg.Skills, 1)
	assert.Equal(t, 90, cfg.Skills[0].Level)
}

func TestFileSourceLoadErrors(t *testing.T) {
	testCases := []struct {
		name        string
		path        func(t *testing.T) string
		expectedErr error
	}{
		{
			name:        "missing file",
			path:        func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			expectedErr: ErrLoad,
		},
		{
			name:        "malformed yaml",
			path:        func(t *testing.T) string { return writeFile(t, "bad.yaml", "skills: [name: x\n") },
			expectedErr: ErrLoad,
		},
		{
			name: "level out of range",
			path: func(t *testing.T) string {
				return writeFile(t, "level.yaml", "skills:\n  - name: Go\n    category: Languages\n    level: 140\n")
			},
			expectedErr: ErrInvalid,
		},
		{
			name: "certification without issuer",
			path: func(t *testing.T) string {
				return writeFile(t, "cert.yaml", "certifications:\n  - name: CKA\n")
			},
			expectedErr: ErrInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewFileSource(tc.path(t)).Load(context.Background())
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestFileSourceLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource(writeFile(t, "manual.yaml", validYAML)).Load(ctx)
	assert.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&models.ManualConfig{}))
	assert.NoError(t, Validate(&models.ManualConfig{
		Skills: []models.Skill{{Name: "Go", Category: "Languages", Level: 100}},
	}))

	err := Validate(&models.ManualConfig{
		Experience: []models.Experience{{Company: "Acme"}},
	})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "role")
}
