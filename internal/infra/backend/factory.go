package backend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/memory"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/internal/integration/persistence/redisstore"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case PostgresBackend:
		database, err := db.NewPostgresConnection(&config.DatabaseConfig{
			URL:             cfg.DatabaseURL,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres backend: %w", err)
		}
		return f.sqlBackend(database)
	case SQLiteBackend:
		database, err := db.NewSQLiteConnection(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite backend: %w", err)
		}
		return f.sqlBackend(database)
	case RedisBackend:
		return f.createRedisBackend(ctx, cfg)
	case MemoryBackend:
		return f.createMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

func (f *DefaultFactory) sqlBackend(database *db.Database) (*BackendResult, error) {
	if err := database.AutoMigrate(model.All()...); err != nil {
		_ = database.Close()
		return nil, err
	}

	gormDB := database.DB()
	f.logger.Info("Initialized SQL backend", "dialect", database.Dialect())

	return &BackendResult{
		Backend: &Backend{
			Ledgers:    persistence.NewLedgerRepository(gormDB),
			Users:      persistence.NewUserRepository(gormDB),
			Categories: persistence.NewCustomCategoryRepository(gormDB),
			HealthCheck: func(context.Context) bool {
				return database.HealthCheck()
			},
		},
		Cleanup: database.Close,
	}, nil
}

func (f *DefaultFactory) createRedisBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	f.logger.Info("Initialized redis backend", "addr", opts.Addr, "db", opts.DB)

	return &BackendResult{
		Backend: &Backend{
			Ledgers:    redisstore.NewLedgerStore(client),
			Users:      redisstore.NewUserRepository(client),
			Categories: redisstore.NewCustomCategoryStore(client),
			HealthCheck: func(ctx context.Context) bool {
				return client.Ping(ctx).Err() == nil
			},
		},
		Cleanup: client.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend() *BackendResult {
	f.logger.Info("Initialized memory backend")

	return &BackendResult{
		Backend: &Backend{
			Ledgers:     memory.NewLedgerStore(),
			Users:       memory.NewUserRepository(),
			Categories:  memory.NewCustomCategoryStore(),
			HealthCheck: func(context.Context) bool { return true },
		},
	}
}
