// Package database opens GORM connections and inspects table schemas.
//
// Connect supports the mysql and sqlite drivers. The inspector reads
// column definitions (SHOW COLUMNS or PRAGMA table_info) so callers can
// verify a schema before reading from it:
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "mapping_rows", "pair", "domain")
package database
