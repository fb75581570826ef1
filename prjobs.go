// Package prjobs wires the provider-relationships background jobs: inbound
// event handlers that mirror employer accounts and legal entities and link
// providers to them, plus the timer jobs that expire stale requests, dispatch
// notifications, and purge old ones.
//
// Basic usage:
//
//	client, err := prjobs.New(
//	    prjobs.WithDatabaseURL("sqlite:///prjobs.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.Start(ctx)          // timer jobs
//	client.Events.Dispatch(ctx, event.OperationAccountCreated, payload)
package prjobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/SkillsFundingAgency/das-pr-jobs/application/handler"
	"github.com/SkillsFundingAgency/das-pr-jobs/application/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/event"
	"github.com/SkillsFundingAgency/das-pr-jobs/domain/notification"
	domainservice "github.com/SkillsFundingAgency/das-pr-jobs/domain/service"
	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/apiclient"
	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/email"
	"github.com/SkillsFundingAgency/das-pr-jobs/infrastructure/persistence"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/config"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/database"
	"github.com/SkillsFundingAgency/das-pr-jobs/internal/log"
)

// Manual trigger names exposed by the operations server.
const (
	JobExpiry    = "expiry"
	JobDispatch  = "dispatch"
	JobRetention = "retention"
)

// Client is the main entry point for the jobs library.
type Client struct {
	// Public service fields (direct access)
	Linker     *service.RelationshipLinker
	Expiry     *service.RequestExpiry
	Dispatcher *service.NotificationDispatcher
	Sweeper    *service.RetentionSweeper
	Events     *service.EventDispatcher

	cfg      config.Config
	db       database.Database
	stores   domainservice.Stores
	uow      persistence.UnitOfWork
	registry *service.Registry
	timers   []*service.TimerJob
	logger   *slog.Logger
	closed   atomic.Bool
}

// New creates a Client with the given options. Timer jobs do not run until
// Start is called.
func New(opts ...Option) (*Client, error) {
	cc, err := newClientConfig()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(cc)
	}

	cfg := cc.cfg
	logger := cc.logger
	if logger == nil {
		logger = log.New(log.ParseFormat(cfg.LogFormat), cfg.LogLevel)
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	catalog := cc.catalog
	if catalog == nil {
		loaded, err := loadCatalog(cfg)
		if err != nil {
			errClose := db.Close()
			return nil, errors.Join(err, errClose)
		}
		catalog = &loaded
	}

	stores := persistence.NewStores(db)
	uow := persistence.NewUnitOfWork(db)

	sender := cc.emailSender
	if sender == nil {
		sender = email.NewClient(cfg.Email)
	}

	linker := service.NewRelationshipLinker(uow, logger)
	expiry := service.NewRequestExpiry(uow, cfg.ExpiryAfterDays, logger)
	dispatcher := service.NewNotificationDispatcher(uow, sender, *catalog, cfg.NotificationBatchSize, logger)
	sweeper := service.NewRetentionSweeper(uow, cfg.NotificationRetentionDays, logger)

	c := &Client{
		Linker:     linker,
		Expiry:     expiry,
		Dispatcher: dispatcher,
		Sweeper:    sweeper,
		cfg:        cfg,
		db:         db,
		stores:     stores,
		uow:        uow,
		logger:     logger,
	}

	c.registry = c.buildRegistry(cc)
	c.Events = service.NewEventDispatcher(c.registry, logger)
	c.timers = []*service.TimerJob{
		service.NewTimerJob(JobExpiry, cfg.Expiry, runDiscardingCount(expiry.Run), logger),
		service.NewTimerJob(JobDispatch, cfg.Dispatch, runDiscardingCount(dispatcher.Run), logger),
		service.NewTimerJob(JobRetention, cfg.Retention, runDiscardingCount(sweeper.Run), logger),
	}

	return c, nil
}

// buildRegistry registers every event handler that has its upstream reader
// available. Lifecycle handlers need no reader and always register.
func (c *Client) buildRegistry(cc *clientConfig) *service.Registry {
	registry := service.NewRegistry()

	accounts := cc.accountReader
	if accounts == nil && c.cfg.Accounts.IsConfigured() {
		accounts = apiclient.NewAccountsClient(c.cfg.Accounts)
	}

	registry.Register(event.OperationAccountCreated,
		handler.NewAccountCreated(accounts, c.uow, c.logger))
	registry.Register(event.OperationAccountNameChanged,
		handler.NewAccountNameChanged(c.uow, c.logger))
	registry.Register(event.OperationLegalEntityAdded,
		handler.NewLegalEntityAdded(c.uow, c.logger))
	registry.Register(event.OperationLegalEntityUpdated,
		handler.NewLegalEntityUpdated(c.uow, c.logger))
	registry.Register(event.OperationLegalEntityRemoved,
		handler.NewLegalEntityRemoved(c.uow, c.logger))

	cohorts := cc.cohortReader
	if cohorts == nil && c.cfg.Commitments.IsConfigured() {
		cohorts = apiclient.NewCommitmentsClient(c.cfg.Commitments)
	}
	if cohorts != nil {
		registry.Register(event.OperationCohortAssigned,
			handler.NewCohortAssigned(cohorts, c.stores, c.Linker, c.uow, c.logger))
	} else {
		c.logger.Warn("commitments endpoint not configured; cohort events will not be handled")
	}

	vacancies := cc.vacancyReader
	if vacancies == nil && c.cfg.Recruit.IsConfigured() {
		vacancies = apiclient.NewRecruitClient(c.cfg.Recruit)
	}
	if vacancies != nil {
		registry.Register(event.OperationVacancyApproved,
			handler.NewVacancyApproved(vacancies, c.stores, c.Linker, c.uow, c.logger))
	} else {
		c.logger.Warn("recruit endpoint not configured; vacancy events will not be handled")
	}

	return registry
}

// Start launches the enabled timer jobs.
func (c *Client) Start(ctx context.Context) {
	for _, timer := range c.timers {
		timer.Start(ctx)
	}
}

// Stop stops the timer jobs, waiting for in-flight runs to finish.
func (c *Client) Stop() {
	for _, timer := range c.timers {
		timer.Stop()
	}
}

// Close stops the timer jobs and releases the database. Safe to call more
// than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.Stop()
	return c.db.Close()
}

// Config returns the effective configuration.
func (c *Client) Config() config.Config { return c.cfg }

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger { return c.logger }

// DB returns the underlying database handle.
func (c *Client) DB() database.Database { return c.db }

// Registry returns the event handler registry.
func (c *Client) Registry() *service.Registry { return c.registry }

// Jobs returns the manual job triggers keyed by trigger name, each reporting
// how many records one pass affected.
func (c *Client) Jobs() map[string]func(ctx context.Context) (int, error) {
	return map[string]func(ctx context.Context) (int, error){
		JobExpiry:    c.Expiry.Run,
		JobDispatch:  c.Dispatcher.Run,
		JobRetention: c.Sweeper.Run,
	}
}

func loadCatalog(cfg config.Config) (notification.Catalog, error) {
	if cfg.TemplateCatalogPath == "" {
		return notification.DefaultCatalog(), nil
	}
	catalog, err := notification.LoadCatalog(cfg.TemplateCatalogPath)
	if err != nil {
		return notification.Catalog{}, fmt.Errorf("load template catalog: %w", err)
	}
	return catalog, nil
}

// runDiscardingCount adapts a counting job run to the timer's signature.
func runDiscardingCount(run func(ctx context.Context) (int, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := run(ctx)
		return err
	}
}
