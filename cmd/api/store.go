package main

import (
	"context"
	"fmt"

	mem "animal-shelter-dashboard/internal/adapters/storage/memory"
	mg "animal-shelter-dashboard/internal/adapters/storage/mongo"
	pg "animal-shelter-dashboard/internal/adapters/storage/postgres"
	"animal-shelter-dashboard/internal/domain/outcomes"
	"animal-shelter-dashboard/internal/platform/config"
	"animal-shelter-dashboard/internal/platform/logger"
)

// openRepo conecta el store configurado. Un error acá aborta el arranque.
func openRepo(ctx context.Context, cfg config.Config, log logger.Logger) (outcomes.Repository, func(), error) {
	fields := map[string]any{
		"store":      string(cfg.Store),
		"database":   cfg.DatabaseName,
		"collection": cfg.CollectionName,
	}

	switch cfg.Store {
	case config.StorePostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to postgres: %w", err)
		}
		if err := pg.EnsureCollection(ctx, db, cfg.DatabaseName, cfg.CollectionName); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("store connected", fields)
		return pg.NewOutcomesRepo(db, cfg.DatabaseName, cfg.CollectionName), func() { _ = db.Close() }, nil

	case config.StoreMongo:
		client, err := mg.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to mongo: %w", err)
		}
		log.Info("store connected", fields)
		return mg.NewOutcomesRepo(client, cfg.DatabaseName, cfg.CollectionName), func() {
			_ = client.Disconnect(context.Background())
		}, nil

	default:
		log.Warn("using in-memory store (dev mode)", fields)
		return mem.NewOutcomesRepo(), func() {}, nil
	}
}

func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}
