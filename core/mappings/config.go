package mappings

import (
	"context"
	"fmt"
	"time"

	"item-translator/core/database"
	"item-translator/core/storage"

	"gorm.io/gorm"
)

// Source kinds accepted in Config.Source.
const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config selects where the mapping tables are loaded from.
type Config struct {
	// Source is one of file, storage or database.
	Source string `mapstructure:"source" default:"file"`
	// Path is the mapping document on disk for the file source.
	Path string `mapstructure:"path" default:"mappings.yaml"`
	// Object is the mapping document name in the storage bucket.
	Object string `mapstructure:"object" default:"mappings/1.20.5-1.20.3.yaml"`
	// Pair selects the mapping set for the database source.
	Pair string `mapstructure:"pair" default:"1.20.5->1.20.3"`
	// RefreshSeconds is the reload interval; 0 disables reloading.
	RefreshSeconds int `mapstructure:"refresh_seconds" default:"0"`
}

// RefreshInterval returns the reload interval.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// Validate rejects unknown sources and negative refresh intervals.
func (c Config) Validate() error {
	switch c.Source {
	case SourceFile, SourceStorage, SourceDatabase:
	default:
		return fmt.Errorf("unknown mappings source %q", c.Source)
	}
	if c.RefreshSeconds < 0 {
		return fmt.Errorf("mappings refresh_seconds must not be negative")
	}
	return nil
}

// NewLoader builds the loader for the configured source. client and db may
// be nil when the source does not need them.
func NewLoader(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Loader, error) {
	switch cfg.Source {
	case SourceFile, "":
		return FileLoader{Path: cfg.Path}, nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("mappings source %q requires a storage client", cfg.Source)
		}
		return StorageLoader{Client: client, Bucket: bucket, Object: cfg.Object}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("mappings source %q requires a database connection", cfg.Source)
		}
		return DatabaseLoader{DB: db, Pair: cfg.Pair}, nil
	default:
		return nil, fmt.Errorf("unknown mappings source %q", cfg.Source)
	}
}

// SchemaColumns lists the columns each mapping table must carry.
var SchemaColumns = map[string][]string{
	MappingSet{}.TableName(): {"id", "pair", "shift_anchor", "shift_width"},
	MappingRow{}.TableName(): {"id", "pair", "domain", "numeric_id", "key", "value"},
}

// SchemaTables returns the mapping table names in creation order.
func SchemaTables() []string {
	return []string{MappingSet{}.TableName(), MappingRow{}.TableName()}
}

// CheckSchema reports an error naming any column the mapping tables lack.
func CheckSchema(db *gorm.DB) error {
	for _, table := range SchemaTables() {
		missing, err := database.MissingColumns(db, table, SchemaColumns[table]...)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %v", table, missing)
		}
	}
	return nil
}

// Import migrates the mapping schema and replaces the stored set for the
// tables' pair in one transaction.
func Import(ctx context.Context, db *gorm.DB, t *Tables) (int, error) {
	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&MappingSet{}, &MappingRow{}); err != nil {
		return 0, fmt.Errorf("failed to migrate mapping tables: %w", err)
	}

	set, rows := Rows(t)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pair = ?", set.Pair).Delete(&MappingRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pair = ?", set.Pair).Delete(&MappingSet{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&set).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import mapping set %q: %w", set.Pair, err)
	}
	return len(rows), nil
}
