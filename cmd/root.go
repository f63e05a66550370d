package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"githubportfolio/config"
	"githubportfolio/logger"
)

var (
	envFile  string
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "githubportfolio",
	Short: "Build a developer portfolio from a GitHub profile",
	Long: `githubportfolio fetches a GitHub profile, its repositories and profile README,
derives skills and featured projects from them and serves the result as JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.NewConfig()
		if err := cfg.Load(envFile); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := logger.Initialize(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.AddCommand(serveCmd, fetchCmd)
}
