package container

import (
	"context"
	"fmt"
	"log"

	"normtest/adapters/memory"
	"normtest/adapters/postgres"
	"normtest/adapters/stats/statistic"
	"normtest/app"
	"normtest/internal"
	"normtest/internal/config"
	"normtest/internal/errors"
	"normtest/internal/i18n"
	"normtest/internal/migration"
	"normtest/internal/report"
	"normtest/ports"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB     *sqlx.DB
	Logger *internal.Logger

	// Adapters
	Statistics ports.StatisticPort
	Messages   *i18n.Catalog
	Results    ports.ResultRepository

	// Presentation and orchestration
	Renderer *report.Renderer
	Service  *app.NormalityService
}

// New creates a container backed by the in-memory result ledger
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
	c := &Container{
		Config:     cfg,
		Logger:     logger,
		Statistics: statistic.NewAdapterWithLogger(logger),
		Messages:   i18n.NewCatalog(),
		Results:    memory.NewResultRepository(),
	}
	c.Renderer = report.NewRenderer(c.Messages)
	c.buildService()
	return c, nil
}

// Open creates a container and, when DATABASE_URL is configured, connects
// to PostgreSQL and switches the ledger to it
func Open(ctx context.Context, cfg *config.Config) (*Container, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if !cfg.UsesDatabase() {
		log.Printf("[Container] DATABASE_URL not set, keeping results in memory")
		return c, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.WithCode(errors.CodeDatabaseError, errors.Wrap(err, "failed to connect to database"))
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	if err := c.InitWithDatabase(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// InitWithDatabase migrates the schema and swaps in the PostgreSQL ledger
func (c *Container) InitWithDatabase(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "database connection test failed")
	}
	if err := migration.NewRunner().Run(ctx, db); err != nil {
		return errors.Wrap(err, "database migration failed")
	}

	c.DB = db
	c.Results = postgres.NewResultRepository(db)
	c.buildService()

	log.Printf("[Container] Initialized with PostgreSQL result ledger")
	return nil
}

func (c *Container) buildService() {
	c.Service = app.NewNormalityService(c.Statistics, c.Results, c.Renderer, app.ServiceSettings{
		Defaults:      c.Config.Defaults,
		Concurrency:   c.Config.Battery.Concurrency,
		MaxSampleSize: c.Config.Battery.MaxSampleSize,
		Logger:        c.Logger,
	})
}

// Close releases the database connection, if any
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
