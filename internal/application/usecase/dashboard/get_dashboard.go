// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// RecentTransactionsLimit is the number of transactions in the recent list.
const RecentTransactionsLimit = 5

// GetDashboardInput represents the input for getting the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// CategoryBreakdownItem represents the expenses of a single category.
type CategoryBreakdownItem struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthlyExpense represents the expenses of a calendar month.
type MonthlyExpense struct {
	Month  string          `json:"month"` // YYYY-MM
	Amount decimal.Decimal `json:"amount"`
}

// GetDashboardOutput represents the output of getting the dashboard.
type GetDashboardOutput struct {
	Balance            decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	TransactionCount   int
	ExpensesByCategory []CategoryBreakdownItem
	MonthlyExpenses    []MonthlyExpense
	RecentTransactions []entity.Transaction
}

// GetDashboardUseCase projects a ledger into dashboard figures.
type GetDashboardUseCase struct {
	ledgers LedgerReader
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(ledgers LedgerReader) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ledgers: ledgers,
	}
}

// Execute builds the dashboard for the user.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	state, err := uc.ledgers.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &GetDashboardOutput{
		Balance:            state.Balance,
		TotalIncome:        state.TotalIncome,
		TotalExpenses:      state.TotalExpenses,
		TransactionCount:   state.Len(),
		ExpensesByCategory: expensesByCategory(state.Transactions, state.TotalExpenses),
		MonthlyExpenses:    monthlyExpenses(state.Transactions),
		RecentTransactions: recent(state.Transactions, RecentTransactionsLimit),
	}, nil
}

// expensesByCategory sorts by amount descending, then by name.
func expensesByCategory(transactions []entity.Transaction, total decimal.Decimal) []CategoryBreakdownItem {
	index := make(map[string]int)
	items := make([]CategoryBreakdownItem, 0)

	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(items)
			index[t.Category] = i
			items = append(items, CategoryBreakdownItem{Category: t.Category, Amount: decimal.Zero})
		}
		items[i].Amount = items[i].Amount.Add(t.Amount)
		items[i].TransactionCount++
	}

	for i := range items {
		if total.IsPositive() {
			items[i].Percentage = items[i].Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Amount.Equal(items[j].Amount) {
			return items[i].Amount.GreaterThan(items[j].Amount)
		}
		return items[i].Category < items[j].Category
	})

	return items
}

// monthlyExpenses sorts by month ascending.
func monthlyExpenses(transactions []entity.Transaction) []MonthlyExpense {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		month := t.Date.UTC().Format("2006-01")
		totals[month] = totals[month].Add(t.Amount)
	}

	months := make([]MonthlyExpense, 0, len(totals))
	for month, amount := range totals {
		months = append(months, MonthlyExpense{Month: month, Amount: amount})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

func recent(transactions []entity.Transaction, limit int) []entity.Transaction {
	sorted := make([]entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
