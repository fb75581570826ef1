// Package config provides application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Default configuration values.
const (
	DefaultExpiryAfterDays           = 14
	DefaultNotificationBatchSize     = 500
	DefaultNotificationRetentionDays = 365
)

// Config holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g. EXPIRY_INTERVAL_SECONDS).
type Config struct {
	// DBURL is the database connection URL.
	// Env: DB_URL (default: sqlite:///prjobs.db)
	DBURL string `envconfig:"DB_URL" default:"sqlite:///prjobs.db"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// OpsHost is the operations server host to bind to.
	// Env: OPS_HOST (default: 0.0.0.0)
	OpsHost string `envconfig:"OPS_HOST" default:"0.0.0.0"`

	// OpsPort is the operations server port.
	// Env: OPS_PORT (default: 8080)
	OpsPort int `envconfig:"OPS_PORT" default:"8080"`

	// ExpiryAfterDays is the age in whole days past which a pending
	// request expires.
	// Env: EXPIRY_AFTER_DAYS (default: 14)
	ExpiryAfterDays int `envconfig:"EXPIRY_AFTER_DAYS" default:"14"`

	// NotificationBatchSize is the maximum notifications sent per
	// dispatcher run.
	// Env: NOTIFICATION_BATCH_SIZE (default: 500)
	NotificationBatchSize int `envconfig:"NOTIFICATION_BATCH_SIZE" default:"500"`

	// NotificationRetentionDays is the age in whole days past which a
	// notification is purged, sent or not.
	// Env: NOTIFICATION_RETENTION_DAYS (default: 365)
	NotificationRetentionDays int `envconfig:"NOTIFICATION_RETENTION_DAYS" default:"365"`

	// TemplateCatalogPath is the path to the notification template
	// catalog YAML file. Empty means the built-in catalog.
	// Env: TEMPLATE_CATALOG_PATH
	TemplateCatalogPath string `envconfig:"TEMPLATE_CATALOG_PATH"`

	// Expiry configures the request expiry timer job.
	Expiry JobEnv `envconfig:"EXPIRY"`

	// Dispatch configures the notification dispatch timer job.
	Dispatch JobEnv `envconfig:"DISPATCH"`

	// Retention configures the notification retention timer job.
	Retention JobEnv `envconfig:"RETENTION"`

	// Commitments configures the cohort details read API.
	Commitments EndpointEnv `envconfig:"COMMITMENTS"`

	// Recruit configures the live vacancy read API.
	Recruit EndpointEnv `envconfig:"RECRUIT"`

	// Accounts configures the employer accounts read API.
	Accounts EndpointEnv `envconfig:"ACCOUNTS"`

	// Email configures the outbound email channel.
	Email EndpointEnv `envconfig:"EMAIL"`
}

// JobEnv holds environment configuration for one timer job.
type JobEnv struct {
	// Enabled controls whether the job runs.
	// Env: *_ENABLED (default: true)
	Enabled bool `envconfig:"ENABLED" default:"true"`

	// IntervalSeconds is the firing interval in seconds.
	// Env: *_INTERVAL_SECONDS (default: 3600)
	IntervalSeconds float64 `envconfig:"INTERVAL_SECONDS" default:"3600"`

	// RunOnStart fires the job immediately on cold start.
	// Env: *_RUN_ON_START (default: false)
	RunOnStart bool `envconfig:"RUN_ON_START" default:"false"`
}

// Interval returns the firing interval as a Duration.
func (j JobEnv) Interval() time.Duration {
	return time.Duration(j.IntervalSeconds * float64(time.Second))
}

// EndpointEnv holds environment configuration for an external HTTP API.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: *_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// APIKey is the key presented to the endpoint.
	// Env: *_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// TimeoutSeconds is the request timeout in seconds.
	// Env: *_TIMEOUT_SECONDS (default: 30)
	TimeoutSeconds float64 `envconfig:"TIMEOUT_SECONDS" default:"30"`
}

// Timeout returns the request timeout as a Duration.
func (e EndpointEnv) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds * float64(time.Second))
}

// IsConfigured returns true if the endpoint has a base URL.
func (e EndpointEnv) IsConfigured() bool {
	return e.BaseURL != ""
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// LoadWithPrefix reads configuration with a custom env var prefix.
// For example, prefix "PRJOBS" would require PRJOBS_DB_URL instead of DB_URL.
func LoadWithPrefix(prefix string) (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// OpsAddr returns the host:port the operations server binds to.
func (c Config) OpsAddr() string {
	return fmt.Sprintf("%s:%d", c.OpsHost, c.OpsPort)
}
