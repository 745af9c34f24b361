package backend

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{Type: MemoryBackend}},
		{name: "sqlite", cfg: Config{Type: SQLiteBackend, SQLitePath: "x.db"}},
		{name: "sqlite without path", cfg: Config{Type: SQLiteBackend}, wantErr: true},
		{name: "postgres without url", cfg: Config{Type: PostgresBackend}, wantErr: true},
		{name: "redis without url", cfg: Config{Type: RedisBackend}, wantErr: true},
		{name: "unknown", cfg: Config{Type: "sheets"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromAppConfig(t *testing.T) {
	app := config.Load()
	app.Storage.Backend = "redis"
	cfg, err := FromAppConfig(app)
	if err != nil {
		t.Fatalf("FromAppConfig() error = %v", err)
	}
	if cfg.Type != RedisBackend || cfg.RedisURL != app.Redis.URL {
		t.Errorf("cfg = %+v", cfg)
	}

	app.Storage.Backend = "mongo"
	if _, err := FromAppConfig(app); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestCreateBackend(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "memory", cfg: Config{Type: MemoryBackend}},
		{name: "sqlite", cfg: Config{Type: SQLiteBackend, SQLitePath: ":memory:"}},
		{name: "redis", cfg: Config{Type: RedisBackend, RedisURL: "redis://" + mr.Addr() + "/0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			result, err := NewFactory(nil).CreateBackend(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("CreateBackend() error = %v", err)
			}
			if result.Cleanup != nil {
				defer result.Cleanup()
			}
			b := result.Backend
			if !b.HealthCheck(ctx) {
				t.Error("HealthCheck() = false")
			}

			userID := uuid.New()
			txn := entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(100), "NITA", "GIFT", "CASH", "", time.Now().UTC(), nil)
			state, err := ledger.Add(ledger.Empty(), txn)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if err := b.Ledgers.Save(ctx, userID, state); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			loaded, err := b.Ledgers.Load(ctx, userID)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if loaded.Len() != 1 || !loaded.Balance.Equal(decimal.NewFromInt(100)) {
				t.Errorf("loaded = %+v", loaded)
			}

			if err := b.Users.Create(ctx, entity.NewUser("ama", "hash")); err != nil {
				t.Fatalf("Users.Create() error = %v", err)
			}
			if exists, _ := b.Users.ExistsByUsername(ctx, "ama"); !exists {
				t.Error("created user not found")
			}
		})
	}
}
