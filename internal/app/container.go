package app

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/database/migration"
	dbpostgres "portfolio-api/internal/database/postgres"
	"portfolio-api/internal/database/seeder"
	"portfolio-api/migrations"

	"github.com/rs/zerolog"
)

// Container owns the process-wide dependencies: config, logger, and the
// store handle. Everything downstream receives these by injection.
type Container struct {
	Config config.Config
	Logger zerolog.Logger
	DB     database.DB
}

func NewContainer(cfg config.Config, logger zerolog.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	runner := migration.Runner{FS: migrations.FS}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if cfg.Database.Seed {
		if err := seeder.Defaults().Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
		logger.Info().Msg("seed data applied")
	}

	return &Container{Config: cfg, Logger: logger, DB: db}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
