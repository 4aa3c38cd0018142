// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local development and tests) connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect with error translation enabled, so
// duplicate keys surface as gorm.ErrDuplicatedKey, applies pool settings and
// verifies the connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table. The integrity feature
// compares them with the gorm models of the bookstore.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "books")
package database
