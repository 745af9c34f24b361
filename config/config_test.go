package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.JWT.AccessTokenExpiry != 24*time.Hour {
		t.Errorf("JWT.AccessTokenExpiry = %v", cfg.JWT.AccessTokenExpiry)
	}
	if cfg.Admin.Username != "" {
		t.Errorf("Admin should be disabled by default")
	}
	if cfg.Export.DefaultFormat != "pdf" {
		t.Errorf("Export.DefaultFormat = %q", cfg.Export.DefaultFormat)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("ADMIN_USERNAME", "hanamel")
	t.Setenv("ADMIN_ACCESS_NAMES", " NITA, ,ERICA ")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	if cfg.Storage.Backend != "redis" {
		t.Errorf("Storage.Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Admin.Username != "hanamel" {
		t.Errorf("Admin.Username = %q", cfg.Admin.Username)
	}
	if got := cfg.Admin.AccessNames; len(got) != 2 || got[0] != "NITA" || got[1] != "ERICA" {
		t.Errorf("Admin.AccessNames = %v", got)
	}
	if cfg.Security.BcryptCost != 12 {
		t.Errorf("invalid BCRYPT_COST should fall back to default, got %d", cfg.Security.BcryptCost)
	}
}
