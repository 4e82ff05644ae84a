package cmd

import (
	"context"
	"fmt"

	"item-translator/core/config"
	"item-translator/core/database"
	"item-translator/core/mappings"
	"item-translator/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// openDatabase connects and verifies the mapping schema exists.
func openDatabase(cfg *config.Config, migrated bool) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if migrated {
		if err := mappings.CheckSchema(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// mappingLoader builds the loader for source, connecting only what it needs.
func mappingLoader(cfg *config.Config, source string) (mappings.Loader, error) {
	mc := cfg.Mappings
	mc.Source = source

	var (
		client storage.Client
		db     *gorm.DB
		err    error
	)
	switch source {
	case mappings.SourceStorage:
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
	case mappings.SourceDatabase:
		db, err = openDatabase(cfg, true)
		if err != nil {
			return nil, err
		}
	}
	return mappings.NewLoader(mc, client, cfg.Storage.Bucket, db)
}

// openProvider loads the configured mapping tables.
func openProvider(ctx context.Context, cfg *config.Config, l *zap.Logger) (*mappings.Provider, error) {
	loader, err := mappingLoader(cfg, cfg.Mappings.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare mappings source: %w", err)
	}
	p, err := mappings.NewProvider(ctx, loader, l)
	if err != nil {
		return nil, err
	}
	t := p.Tables()
	l.Info("Mappings loaded",
		zap.String("source", cfg.Mappings.Source),
		zap.String("pair", t.Pair()),
		zap.Int("item_remaps", t.ItemRemapCount()),
	)
	return p, nil
}
