package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the dashboard projection.
type DashboardResponse struct {
	Balance            decimal.Decimal                   `json:"balance"`
	TotalIncome        decimal.Decimal                   `json:"total_income"`
	TotalExpenses      decimal.Decimal                   `json:"total_expenses"`
	TransactionCount   int                               `json:"transaction_count"`
	ExpensesByCategory []dashboard.CategoryBreakdownItem `json:"expenses_by_category"`
	MonthlyExpenses    []dashboard.MonthlyExpense        `json:"monthly_expenses"`
	RecentTransactions []TransactionResponse             `json:"recent_transactions"`
}

// ToDashboardResponse converts the dashboard use case output.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		Balance:            output.Balance,
		TotalIncome:        output.TotalIncome,
		TotalExpenses:      output.TotalExpenses,
		TransactionCount:   output.TransactionCount,
		ExpensesByCategory: output.ExpensesByCategory,
		MonthlyExpenses:    output.MonthlyExpenses,
		RecentTransactions: ToTransactionResponses(output.RecentTransactions),
	}
	if resp.ExpensesByCategory == nil {
		resp.ExpensesByCategory = []dashboard.CategoryBreakdownItem{}
	}
	if resp.MonthlyExpenses == nil {
		resp.MonthlyExpenses = []dashboard.MonthlyExpense{}
	}
	return resp
}
