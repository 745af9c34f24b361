package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

type stubReader struct {
	state ledger.State
}

func (s stubReader) Snapshot(context.Context, uuid.UUID) (ledger.State, error) {
	return s.state, nil
}

func TestGetDashboardUseCase(t *testing.T) {
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 12, 0, 0, 0, time.UTC) }
	txn := func(typ entity.TransactionType, amount int64, category string, date time.Time) entity.Transaction {
		return entity.NewTransaction(typ, decimal.NewFromInt(amount), "FRIEND", category, "CASH", "", date, nil)
	}

	state := ledger.Recompute([]entity.Transaction{
		txn(entity.TransactionTypeIncome, 500, "GIFT", day(1, 3)),
		txn(entity.TransactionTypeExpense, 60, "TRANSPORT", day(1, 5)),
		txn(entity.TransactionTypeExpense, 40, "BILLS", day(2, 1)),
		txn(entity.TransactionTypeExpense, 40, "TRANSPORT", day(2, 9)),
		txn(entity.TransactionTypeExpense, 60, "PREPAID", day(3, 1)),
		txn(entity.TransactionTypeExpense, 0, "OTHER", day(3, 2)),
	})

	out, err := NewGetDashboardUseCase(stubReader{state: state}).Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !out.Balance.Equal(decimal.NewFromInt(300)) || out.TransactionCount != 6 {
		t.Errorf("balance = %s, count = %d", out.Balance, out.TransactionCount)
	}

	wantCategories := []struct {
		name    string
		amount  int64
		percent float64
		count   int
	}{
		{"TRANSPORT", 100, 50, 2},
		{"PREPAID", 60, 30, 1},
		{"BILLS", 40, 20, 1},
		{"OTHER", 0, 0, 1},
	}
	if len(out.ExpensesByCategory) != len(wantCategories) {
		t.Fatalf("categories = %+v", out.ExpensesByCategory)
	}
	for i, want := range wantCategories {
		got := out.ExpensesByCategory[i]
		if got.Category != want.name || !got.Amount.Equal(decimal.NewFromInt(want.amount)) || got.Percentage != want.percent || got.TransactionCount != want.count {
			t.Errorf("category[%d] = %+v, want %+v", i, got, want)
		}
	}

	wantMonths := map[string]int64{"2024-01": 60, "2024-02": 80, "2024-03": 60}
	if len(out.MonthlyExpenses) != 3 || out.MonthlyExpenses[0].Month != "2024-01" {
		t.Fatalf("months = %+v", out.MonthlyExpenses)
	}
	for _, m := range out.MonthlyExpenses {
		if !m.Amount.Equal(decimal.NewFromInt(wantMonths[m.Month])) {
			t.Errorf("month %s = %s", m.Month, m.Amount)
		}
	}

	if len(out.RecentTransactions) != RecentTransactionsLimit {
		t.Fatalf("recent = %d", len(out.RecentTransactions))
	}
	if !out.RecentTransactions[0].Date.Equal(day(3, 2)) {
		t.Errorf("most recent = %v", out.RecentTransactions[0].Date)
	}
}

func TestGetDashboardUseCase_Empty(t *testing.T) {
	out, err := NewGetDashboardUseCase(stubReader{state: ledger.Empty()}).Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.ExpensesByCategory) != 0 || len(out.MonthlyExpenses) != 0 || len(out.RecentTransactions) != 0 {
		t.Errorf("expected empty projections, got %+v", out)
	}
}
