// Package manual loads the hand-authored portfolio record: profile
// overrides, experience, extra skills and projects, certifications.
package manual

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"githubportfolio/logger"
	"githubportfolio/models"
)

//go:embed schema.json
var schemaJSON string

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Source provides the manual record
type Source interface {
	Load(ctx context.Context) (*models.ManualConfig, error)
}

// FileSource reads the manual record from a YAML, JSON or TOML file
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path on every Load
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads, decodes and validates the file
func (s *FileSource) Load(ctx context.Context) (*models.ManualConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, s.path, err)
	}

	var cfg models.ManualConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, s.path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug("Manual record loaded",
		zap.String("path", s.path),
		zap.Int("experience", len(cfg.Experience)),
		zap.Int("skills", len(cfg.Skills)),
		zap.Int("projects", len(cfg.Projects)),
		zap.Int("certifications", len(cfg.Certifications)))
	return &cfg, nil
}

// Validate checks a manual record against the embedded JSON schema
func Validate(cfg *models.ManualConfig) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
