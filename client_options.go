package prjobs

import (
	"log/slog"

	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	cfg           config.Config
	logger        *slog.Logger
	catalog       *notification.Catalog
	cohortReader  service.CohortReader
	vacancyReader service.VacancyReader
	accountReader service.AccountReader
	emailSender   service.EmailSender
}

// newClientConfig creates a clientConfig with defaults read from the
// environment, so an option-free New works out of the box.
func newClientConfig() (*clientConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &clientConfig{cfg: cfg}, nil
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig replaces the environment-derived configuration.
func WithConfig(cfg config.Config) Option {
	return func(c *clientConfig) { c.cfg = cfg }
}

// WithDatabaseURL sets the database connection URL.
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) { c.cfg.DBURL = url }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithCatalog sets the notification template catalog, bypassing the
// catalog file configuration.
func WithCatalog(catalog notification.Catalog) Option {
	return func(c *clientConfig) { c.catalog = &catalog }
}

// WithCohortReader sets a custom commitments reader.
func WithCohortReader(r service.CohortReader) Option {
	return func(c *clientConfig) { c.cohortReader = r }
}

// WithVacancyReader sets a custom recruit reader.
func WithVacancyReader(r service.VacancyReader) Option {
	return func(c *clientConfig) { c.vacancyReader = r }
}

// WithAccountReader sets a custom employer accounts reader.
func WithAccountReader(r service.AccountReader) Option {
	return func(c *clientConfig) { c.accountReader = r }
}

// WithEmailSender sets a custom outbound email channel.
func WithEmailSender(s service.EmailSender) Option {
	return func(c *clientConfig) { c.emailSender = s }
}
