// Package main is the entry point for the prjobs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prjobs",
		Short: "Provider relationships background jobs",
		Long:  `prjobs runs the provider relationships background jobs: inbound event handlers that maintain the employer/provider relationship graph, and the timer jobs that expire stale requests, dispatch notifications, and purge old ones.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from a .env file and environment variables.
func loadConfig(envFile string) (config.Config, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
