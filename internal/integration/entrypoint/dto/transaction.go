package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// DateLayout is the calendar date format accepted and returned by the API.
const DateLayout = "2006-01-02"

// FoodItemRequest is one line of a food-itemized transaction.
type FoodItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// TransactionRequest represents the request body for creating or updating a transaction.
// Amount may be omitted for FOOD STUFFS, in which case it is derived from the items.
type TransactionRequest struct {
	Type          string            `json:"type" binding:"required,oneof=expense income"`
	Amount        *decimal.Decimal  `json:"amount"`
	Person        string            `json:"person" binding:"required"`
	Category      string            `json:"category" binding:"required"`
	PaymentMethod string            `json:"payment_method"`
	Description   string            `json:"description" binding:"max=255"`
	Date          string            `json:"date"` // YYYY-MM-DD or RFC3339, empty means now
	FoodItems     []FoodItemRequest `json:"food_items" binding:"dive"`
}

// CheckAmounts reports the first amount or price that cannot be stored exactly.
func (r TransactionRequest) CheckAmounts() (string, bool) {
	if r.Amount != nil && !entity.ValidAmount(*r.Amount) {
		return "amount", false
	}
	for _, item := range r.FoodItems {
		if !entity.ValidAmount(item.Price) {
			return "food item " + item.Name + " price", false
		}
	}
	return "", true
}

// ToDraft converts the request into a transaction draft.
func (r TransactionRequest) ToDraft(date time.Time) transaction.TransactionDraft {
	var items []entity.FoodItem
	for _, item := range r.FoodItems {
		items = append(items, entity.FoodItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	return transaction.TransactionDraft{
		Type:          entity.TransactionType(r.Type),
		Amount:        r.Amount,
		Person:        r.Person,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Description:   r.Description,
		Date:          date,
		FoodItems:     items,
	}
}

// ParseDate accepts a calendar date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FoodItemResponse is one line of a food-itemized transaction.
type FoodItemResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Amount        decimal.Decimal    `json:"amount"`
	Person        string             `json:"person"`
	Category      string             `json:"category"`
	PaymentMethod string             `json:"payment_method"`
	Description   string             `json:"description"`
	Date          time.Time          `json:"date"`
	FoodItems     []FoodItemResponse `json:"food_items,omitempty"`
}

// LedgerResponse represents the full ledger with its aggregates.
type LedgerResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	Balance       decimal.Decimal       `json:"balance"`
	TotalIncome   decimal.Decimal       `json:"total_income"`
	TotalExpenses decimal.Decimal       `json:"total_expenses"`
}

// TransactionMutationResponse is returned by create and update.
type TransactionMutationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Ledger      LedgerSummary       `json:"ledger"`
}

// LedgerSummary carries the aggregates after a change.
type LedgerSummary struct {
	Balance          decimal.Decimal `json:"balance"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TransactionCount int             `json:"transaction_count"`
}

// TotalsResponse represents the totals of a filtered list.
type TotalsResponse struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetTotal     decimal.Decimal `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:            t.ID.String(),
		Type:          string(t.Type),
		Amount:        t.Amount,
		Person:        t.Person,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		Date:          t.Date,
	}
	for _, item := range t.FoodItems {
		resp.FoodItems = append(resp.FoodItems, FoodItemResponse{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total(),
		})
	}
	return resp
}

// ToTransactionResponses converts a list of transactions.
func ToTransactionResponses(transactions []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return out
}

// ToLedgerResponse converts a ledger state to a LedgerResponse DTO.
func ToLedgerResponse(s ledger.State) LedgerResponse {
	return LedgerResponse{
		Transactions:  ToTransactionResponses(s.Transactions),
		Balance:       s.Balance,
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
	}
}

// ToLedgerSummary extracts the aggregates of a ledger state.
func ToLedgerSummary(s ledger.State) LedgerSummary {
	return LedgerSummary{
		Balance:          s.Balance,
		TotalIncome:      s.TotalIncome,
		TotalExpenses:    s.TotalExpenses,
		TransactionCount: s.Len(),
	}
}

// ToTransactionListResponse converts the list use case output.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Totals: TotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal,
			ExpenseTotal: output.Totals.ExpenseTotal,
			NetTotal:     output.Totals.NetTotal,
		},
	}
}
