package db

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteConnection opens the SQLite database at path. ":memory:" gives a
// private in-memory database.
func NewSQLiteConnection(path string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// single writer; also keeps an in-memory database on one connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	slog.Info("Database connection established", "dialect", "sqlite", "path", path)

	return &Database{db: db, dialect: "sqlite"}, nil
}
