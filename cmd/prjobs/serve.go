package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prjobs "github.com/SkillsFundingAgency/das-pr-jobs"
	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/ops"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the timer jobs and the operations server",
		Long: `Run the timer jobs and the operations server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  DB_URL                       Database URL (default: sqlite:///prjobs.db)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  OPS_HOST                     Operations server host (default: 0.0.0.0)
  OPS_PORT                     Operations server port (default: 8080)

  EXPIRY_AFTER_DAYS            Pending request age before expiry (default: 14)
  NOTIFICATION_BATCH_SIZE      Max notifications sent per run (default: 500)
  NOTIFICATION_RETENTION_DAYS  Notification age before purge (default: 365)
  TEMPLATE_CATALOG_PATH        Template catalog YAML (default: built-in)

  EXPIRY_*, DISPATCH_*, RETENTION_*   Timer job configuration
    ENABLED                    Run the job (default: true)
    INTERVAL_SECONDS           Firing interval (default: 3600)
    RUN_ON_START               Fire once on cold start (default: false)

  COMMITMENTS_*, RECRUIT_*, ACCOUNTS_*, EMAIL_*   External endpoints
    BASE_URL                   Endpoint base URL
    API_KEY                    Subscription key
    TIMEOUT_SECONDS            Request timeout (default: 30)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Operations server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Operations server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.OpsHost = host
	}
	if port != 0 {
		cfg.OpsPort = port
	}

	client, err := prjobs.New(prjobs.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("create jobs client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			client.Logger().Error("failed to close jobs client", slog.Any("error", err))
		}
	}()

	logger := client.Logger()
	logger.Info("starting prjobs",
		slog.String("version", version),
		slog.String("addr", cfg.OpsAddr()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.Start(ctx)

	jobs := map[string]ops.RunFunc{}
	for name, run := range client.Jobs() {
		jobs[name] = run
	}
	server := ops.NewServer(cfg.OpsAddr(), client.DB(), client.Events, jobs, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(server.Start)
	group.Go(func() error {
		select {
		case <-sigChan:
			logger.Info("shutdown signal received")
		case <-ctx.Done():
		}
		cancel()
		return server.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
