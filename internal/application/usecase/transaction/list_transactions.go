// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Type   *entity.TransactionType
	Search string // Case-insensitive match on description, category and person
}

// TotalsOutput represents aggregated totals of the listed transactions.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	service *Service
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(service *Service) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		service: service,
	}
}

// Execute filters the caller's ledger and sorts it newest first by date.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	state, err := uc.service.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))
	output := &ListTransactionsOutput{
		Transactions: make([]entity.Transaction, 0, state.Len()),
		Totals: TotalsOutput{
			IncomeTotal:  decimal.Zero,
			ExpenseTotal: decimal.Zero,
		},
	}

	for _, txn := range state.Transactions {
		if input.Type != nil && txn.Type != *input.Type {
			continue
		}
		if search != "" && !matches(txn, search) {
			continue
		}

		output.Transactions = append(output.Transactions, txn)
		if txn.Type == entity.TransactionTypeIncome {
			output.Totals.IncomeTotal = output.Totals.IncomeTotal.Add(txn.Amount)
		} else {
			output.Totals.ExpenseTotal = output.Totals.ExpenseTotal.Add(txn.Amount)
		}
	}
	output.Totals.NetTotal = output.Totals.IncomeTotal.Sub(output.Totals.ExpenseTotal)

	sort.SliceStable(output.Transactions, func(i, j int) bool {
		return output.Transactions[i].Date.After(output.Transactions[j].Date)
	})

	return output, nil
}

func matches(txn entity.Transaction, search string) bool {
	return strings.Contains(strings.ToLower(txn.Description), search) ||
		strings.Contains(strings.ToLower(txn.Category), search) ||
		strings.Contains(strings.ToLower(txn.Person), search)
}
