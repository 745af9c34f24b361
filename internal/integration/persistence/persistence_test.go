package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(newTestDB(t))
	userID := uuid.New()
	other := uuid.New()

	empty, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load() empty error = %v", err)
	}
	if empty.Len() != 0 || !empty.Balance.IsZero() {
		t.Errorf("empty ledger = %+v", empty)
	}

	date := time.Date(2024, 3, 1, 10, 30, 15, 123456000, time.UTC)
	state := ledger.Empty()
	for _, txn := range []entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.RequireFromString("100.50"), "NITA", "GIFT", "CASH", "", date, nil),
		entity.NewTransaction(entity.TransactionTypeIncome, entity.MaxAmount, "GEORGINA", "LOAN", "BANK TRANSFER", "house", date.Add(time.Minute), nil),
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.RequireFromString("13.25"), "FRIEND", entity.FoodCategory, "MOBILE MONEY", "market", date.Add(time.Hour), []entity.FoodItem{
			{Name: "rice", Price: decimal.RequireFromString("5.10"), Quantity: 2},
			{Name: "oil", Price: decimal.RequireFromString("3.05"), Quantity: 1},
		}),
	} {
		if state, err = ledger.Add(state, txn); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := repo.Save(ctx, userID, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := repo.Save(ctx, other, ledger.Empty()); err != nil {
		t.Fatalf("Save() other user error = %v", err)
	}

	loaded, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}
	for i := range state.Transactions {
		assertSameTransaction(t, loaded.Transactions[i], state.Transactions[i])
	}
	if !loaded.Balance.Equal(state.Balance) || !loaded.TotalIncome.Equal(state.TotalIncome) || !loaded.TotalExpenses.Equal(state.TotalExpenses) {
		t.Errorf("aggregates = %s/%s/%s, want %s/%s/%s",
			loaded.Balance, loaded.TotalIncome, loaded.TotalExpenses,
			state.Balance, state.TotalIncome, state.TotalExpenses)
	}
	if err := loaded.Verify(); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	shrunk, err := ledger.Delete(state, state.Transactions[0].ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Save(ctx, userID, shrunk); err != nil {
		t.Fatalf("Save() shrunk error = %v", err)
	}
	loaded, _ = repo.Load(ctx, userID)
	if want := decimal.RequireFromString("100.50").Add(entity.MaxAmount); loaded.Len() != 2 || !loaded.Balance.Equal(want) {
		t.Errorf("after shrink: %d transactions, balance %s", loaded.Len(), loaded.Balance)
	}

	if err := repo.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	loaded, _ = repo.Load(ctx, userID)
	if loaded.Len() != 0 {
		t.Errorf("ledger should be empty after Delete")
	}
}

func assertSameTransaction(t *testing.T, got, want entity.Transaction) {
	t.Helper()
	if got.ID != want.ID || got.Type != want.Type || got.Person != want.Person || got.Category != want.Category ||
		got.PaymentMethod != want.PaymentMethod || got.Description != want.Description {
		t.Errorf("transaction = %+v, want %+v", got, want)
	}
	if !got.Amount.Equal(want.Amount) {
		t.Errorf("%s: Amount = %s, want %s", want.ID, got.Amount, want.Amount)
	}
	if !got.Date.Equal(want.Date) {
		t.Errorf("%s: Date = %s, want %s", want.ID, got.Date, want.Date)
	}
	if len(got.FoodItems) != len(want.FoodItems) {
		t.Fatalf("%s: FoodItems = %+v, want %+v", want.ID, got.FoodItems, want.FoodItems)
	}
	for i := range want.FoodItems {
		g, w := got.FoodItems[i], want.FoodItems[i]
		if g.Name != w.Name || !g.Price.Equal(w.Price) || g.Quantity != w.Quantity {
			t.Errorf("%s: food item %d = %+v, want %+v", want.ID, i, g, w)
		}
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	ama := entity.NewUser("ama", "hash")
	if err := repo.Create(ctx, ama); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Create(ctx, entity.NewUser("ama", "hash")); !errors.Is(err, domainerror.ErrUsernameTaken) {
		t.Errorf("duplicate Create() error = %v", err)
	}
	kojo := entity.NewUser("kojo", "hash")
	kojo.CreatedAt = ama.CreatedAt.Add(time.Second)
	if err := repo.Create(ctx, kojo); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByUsername(ctx, "ama")
	if err != nil || found.ID != ama.ID {
		t.Fatalf("FindByUsername() = %+v, %v", found, err)
	}
	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("FindByID() unknown error = %v", err)
	}

	found.IsBlocked = true
	found.Username = "ama2"
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	got, _ := repo.FindByID(ctx, ama.ID)
	if !got.IsBlocked || got.Username != "ama2" {
		t.Errorf("after Update() = %+v", got)
	}
	got.Username = "kojo"
	if err := repo.Update(ctx, got); !errors.Is(err, domainerror.ErrUsernameTaken) {
		t.Errorf("Update() to taken username error = %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil || len(users) != 2 || users[0].ID != ama.ID {
		t.Errorf("List() = %v, %v", users, err)
	}

	exists, _ := repo.ExistsByUsername(ctx, "kojo")
	if !exists {
		t.Errorf("ExistsByUsername(kojo) = false")
	}

	if err := repo.Delete(ctx, kojo.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, kojo.ID); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestCustomCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomCategoryRepository(newTestDB(t))
	userID := uuid.New()

	got, err := repo.Get(ctx, userID)
	if err != nil || len(got.Income) != 0 || got.Income == nil {
		t.Fatalf("Get() empty = %+v, %v", got, err)
	}

	custom := entity.NewCustomCategories()
	custom.Add(entity.CategoryKindIncome, "salary")
	if err := repo.Save(ctx, userID, custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	custom.Add(entity.CategoryKindExpense, "rent")
	if err := repo.Save(ctx, userID, custom); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, _ = repo.Get(ctx, userID)
	if len(got.Income) != 1 || got.Income[0] != "SALARY" || len(got.Expenses) != 1 {
		t.Errorf("Get() = %+v", got)
	}

	if err := repo.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	got, _ = repo.Get(ctx, userID)
	if len(got.Income) != 0 {
		t.Errorf("Get() after Delete = %+v", got)
	}
}
