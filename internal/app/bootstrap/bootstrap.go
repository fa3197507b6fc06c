package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	ballotbox "arena/contexts/elections/ballot-box"
	ballotpostgres "arena/contexts/elections/ballot-box/adapters/postgres"
	lookupservice "arena/contexts/league/lookup-service"
	lookupmemory "arena/contexts/league/lookup-service/adapters/memory"
	lookuppostgres "arena/contexts/league/lookup-service/adapters/postgres"
	"arena/internal/platform/config"
	"arena/internal/platform/db"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type App struct {
	Elections ballotbox.Module
	League    lookupservice.Module
	Logger    *slog.Logger
	postgres  *db.Postgres
}

func NewLogger(cfg config.Config) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(handler).With("service", cfg.ServiceName)
}

// Build wires postgres adapters when a DSN is configured and in-memory
// adapters otherwise.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = NewLogger(cfg)
	}
	if cfg.PostgresDSN == "" {
		return buildInMemory(cfg, logger), nil
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	app, err := buildPostgres(ctx, cfg, pg, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}
	return app, nil
}

func buildInMemory(cfg config.Config, logger *slog.Logger) *App {
	seed := lookupmemory.Seed{}
	if cfg.SeedDemo {
		seed = lookupmemory.DemoSeed()
	}
	logger.Info("app built",
		"event", "bootstrap_built",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"storage", "memory",
	)
	return &App{
		Elections: ballotbox.NewInMemoryModule(logger),
		League:    lookupservice.NewInMemoryModule(seed, logger),
		Logger:    logger,
	}
}

func buildPostgres(ctx context.Context, cfg config.Config, pg *db.Postgres, logger *slog.Logger) (*App, error) {
	if cfg.AutoMigrate {
		models := append(ballotpostgres.Models(), lookuppostgres.Models()...)
		if err := pg.Migrate(ctx, models...); err != nil {
			return nil, err
		}
	}

	ballotRepo := ballotpostgres.NewRepository(pg.DB, logger)
	lookupRepo := lookuppostgres.NewRepository(pg.DB, logger)
	if cfg.SeedDemo {
		if err := seedLeague(ctx, lookupRepo, lookupmemory.DemoSeed()); err != nil {
			return nil, err
		}
	}

	logger.Info("app built",
		"event", "bootstrap_built",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"storage", "postgres",
		"auto_migrate", cfg.AutoMigrate,
	)
	return &App{
		Elections: ballotbox.NewModule(ballotbox.Dependencies{
			Boxes:  ballotRepo,
			IDGen:  ballotpostgres.UUIDGenerator{},
			Logger: logger,
		}),
		League: lookupservice.NewModule(lookupservice.Dependencies{
			Leagues:     lookupRepo,
			TeamStore:   lookupRepo,
			PlayerStore: lookupRepo,
			Logger:      logger,
		}),
		Logger:   logger,
		postgres: pg,
	}, nil
}

func seedLeague(ctx context.Context, repo *lookuppostgres.Repository, seed lookupmemory.Seed) error {
	for _, league := range seed.Leagues {
		if err := repo.SaveLeague(ctx, league); err != nil {
			return fmt.Errorf("seed league %d: %w", league.ID, err)
		}
	}
	for _, team := range seed.Teams {
		if err := repo.SaveTeam(ctx, team); err != nil {
			return fmt.Errorf("seed team %d: %w", team.ID, err)
		}
	}
	for _, player := range seed.Players {
		if err := repo.SavePlayer(ctx, player); err != nil {
			return fmt.Errorf("seed player %d: %w", player.ID, err)
		}
	}
	return nil
}

func (a *App) Close() error {
	if a != nil && a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}
