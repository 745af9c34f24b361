package backend

import (
	"fmt"
	"time"

	"github.com/expense-tracker/backend/config"
)

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// postgres
	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// sqlite
	SQLitePath string

	// redis
	RedisURL      string
	RedisPassword string
	RedisDB       int
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.Storage.Backend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.Storage.Backend)
	}

	return Config{
		Type:            backendType,
		DatabaseURL:     appConfig.Database.URL,
		MaxOpenConns:    appConfig.Database.MaxOpenConns,
		MaxIdleConns:    appConfig.Database.MaxIdleConns,
		ConnMaxLifetime: appConfig.Database.ConnMaxLifetime,
		SQLitePath:      appConfig.Database.SQLitePath,
		RedisURL:        appConfig.Redis.URL,
		RedisPassword:   appConfig.Redis.Password,
		RedisDB:         appConfig.Redis.DB,
	}, nil
}

// Validate validates the backend configuration.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case PostgresBackend:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database URL is required for postgres backend")
		}
	case SQLiteBackend:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case RedisBackend:
		if c.RedisURL == "" {
			return fmt.Errorf("redis URL is required for redis backend")
		}
	case MemoryBackend:
	}

	return nil
}

// GetBackendTypes returns all valid backend types.
func GetBackendTypes() []BackendType {
	return []BackendType{PostgresBackend, SQLiteBackend, RedisBackend, MemoryBackend}
}
