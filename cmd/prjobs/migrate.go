package main

import (
	"context"
	"fmt"

	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/persistence"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/log"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runMigrate(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	logger := log.New(log.ParseFormat(cfg.LogFormat), cfg.LogLevel)

	db, err := database.NewDatabase(context.Background(), cfg.DBURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := persistence.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}
