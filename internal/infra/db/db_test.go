package db

import "testing"

func TestNewSQLiteConnection(t *testing.T) {
	database, err := NewSQLiteConnection(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteConnection() error = %v", err)
	}
	defer database.Close()

	if database.Dialect() != "sqlite" {
		t.Errorf("Dialect() = %q", database.Dialect())
	}
	if !database.HealthCheck() {
		t.Error("HealthCheck() = false")
	}

	type sampleRow struct {
		ID   uint
		Name string
	}
	if err := database.AutoMigrate(&sampleRow{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	if err := database.DB().Create(&sampleRow{Name: "x"}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var count int64
	database.DB().Model(&sampleRow{}).Count(&count)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
