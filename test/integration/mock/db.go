package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/infra/backend"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database with the ledger schema migrated.
type Db struct {
	DbConn *gorm.DB
}

// NewDb returns the shared database, opening it on first use.
func NewDb() *Db {
	if db == nil {
		once.Do(
			func() {
				db = open()
			},
		)
	}

	return db
}

func open() *Db {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbConn.AutoMigrate(model.All()...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every row written by a previous scenario.
func (d *Db) ClearDB() error {
	for _, m := range model.All() {
		if err := d.DbConn.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// Backend wires the gorm stores on top of the shared database.
func (d *Db) Backend() *backend.Backend {
	return &backend.Backend{
		Ledgers:    persistence.NewLedgerRepository(d.DbConn),
		Users:      persistence.NewUserRepository(d.DbConn),
		Categories: persistence.NewCustomCategoryRepository(d.DbConn),
		HealthCheck: func(ctx context.Context) bool {
			sqlDB, err := d.DbConn.DB()
			return err == nil && sqlDB.PingContext(ctx) == nil
		},
	}
}
