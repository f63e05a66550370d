package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults
const (
	DefaultUsername      = "kayode96-max"
	DefaultAPIBase       = "https://api.github.com"
	DefaultThumbnailBase = "https://opengraph.githubassets.com"
	DefaultRevalidate    = 3600
	DefaultHTTPTimeout   = 30
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultEnvFile       = ".env"
)

// Config holds all configuration for the application
type Config struct {
	Username        string
	APIBase         string
	ThumbnailBase   string
	Revalidate      time.Duration
	HTTPTimeout     time.Duration
	Port            string
	AcceptedOrigins []string
	LogLevel        string
	ManualFile      string
	Database        DatabaseConfig
}

// DatabaseConfig holds the Postgres settings for the manual record source.
// An empty Host disables the database source.
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Enabled reports whether a database was configured
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s port=%s host=%s sslmode=disable",
		d.User, d.Password, d.Name, d.Port, d.Host,
	)
}

// NewConfig creates a new Config instance
func NewConfig() *Config {
	return &Config{}
}

// Load loads configuration from environment variables and an optional env file
func (c *Config) Load(envFile string) error {
	v := viper.New()
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
	}

	return c.fromViper(v)
}

func (c *Config) fromViper(v *viper.Viper) error {
	v.SetDefault("GITHUB_USERNAME", DefaultUsername)
	v.SetDefault("GITHUB_API_BASE", DefaultAPIBase)
	v.SetDefault("THUMBNAIL_BASE", DefaultThumbnailBase)
	v.SetDefault("REVALIDATE_SECONDS", DefaultRevalidate)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", DefaultHTTPTimeout)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ACCEPTED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("DB_MAX_OPEN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	c.Username = strings.TrimSpace(v.GetString("GITHUB_USERNAME"))
	if c.Username == "" {
		return fmt.Errorf("%w: GITHUB_USERNAME cannot be empty", ErrInvalidConfig)
	}

	c.APIBase = strings.TrimRight(v.GetString("GITHUB_API_BASE"), "/")
	c.ThumbnailBase = strings.TrimRight(v.GetString("THUMBNAIL_BASE"), "/")

	revalidate := v.GetInt("REVALIDATE_SECONDS")
	if revalidate <= 0 {
		return fmt.Errorf("%w: REVALIDATE_SECONDS must be positive, got %d", ErrInvalidConfig, revalidate)
	}
	c.Revalidate = time.Duration(revalidate) * time.Second

	timeout := v.GetInt("HTTP_TIMEOUT_SECONDS")
	if timeout <= 0 {
		return fmt.Errorf("%w: HTTP_TIMEOUT_SECONDS must be positive, got %d", ErrInvalidConfig, timeout)
	}
	c.HTTPTimeout = time.Duration(timeout) * time.Second

	c.Port = v.GetString("PORT")
	c.AcceptedOrigins = splitList(v.GetString("ACCEPTED_ORIGINS"))
	c.LogLevel = v.GetString("LOG_LEVEL")
	c.ManualFile = v.GetString("MANUAL_CONFIG_FILE")

	c.Database = DatabaseConfig{
		Host:            v.GetString("POSTGRES_HOST"),
		Port:            v.GetString("POSTGRES_PORT"),
		User:            v.GetString("POSTGRES_USER"),
		Password:        v.GetString("POSTGRES_PASSWORD"),
		Name:            v.GetString("POSTGRES_DB"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
