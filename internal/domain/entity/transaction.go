// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is income or expense.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

const (
	// FoodCategory is the itemized category whose amount is derived from its food items.
	FoodCategory = "FOOD STUFFS"

	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255

	// AmountScale is the number of decimal places an amount or price may carry.
	AmountScale = 2
)

// MaxAmount is the largest amount a decimal(15,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// ValidAmount reports whether d has at most AmountScale decimal places and
// does not exceed MaxAmount in magnitude.
func ValidAmount(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(MaxAmount) && d.Equal(d.Truncate(AmountScale))
}

// Timestamp normalizes t to UTC at microsecond precision, the finest every
// backend stores.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// FoodItem is a single line of a food-itemized transaction.
type FoodItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Total returns price * quantity.
func (f FoodItem) Total() decimal.Decimal {
	return f.Price.Mul(decimal.NewFromInt(int64(f.Quantity)))
}

// FoodItemsTotal sums price * quantity over items.
func FoodItemsTotal(items []FoodItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

// Transaction is a single income or expense record. Once stored it is never
// modified in place; an edit replaces the whole record.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Person        string          `json:"person"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
	FoodItems     []FoodItem      `json:"foodItems,omitempty"`
}

// NewTransaction creates a Transaction with a fresh id. A zero date defaults to now.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	person string,
	category string,
	paymentMethod string,
	description string,
	date time.Time,
	foodItems []FoodItem,
) Transaction {
	if date.IsZero() {
		date = time.Now()
	}

	return Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Amount:        amount,
		Person:        person,
		Category:      category,
		PaymentMethod: paymentMethod,
		Description:   description,
		Date:          Timestamp(date),
		FoodItems:     foodItems,
	}
}

// IsFoodItemized reports whether the amount of t is derived from its food items.
func (t Transaction) IsFoodItemized() bool {
	return t.Category == FoodCategory
}

// Clone returns a copy of t that shares no slices with it.
func (t Transaction) Clone() Transaction {
	if t.FoodItems != nil {
		items := make([]FoodItem, len(t.FoodItems))
		copy(items, t.FoodItems)
		t.FoodItems = items
	}
	return t
}

// Validate checks the structural rules every stored transaction satisfies.
// Catalog membership (known categories, payment methods, counterparties) is
// checked by the application layer, which knows the user's catalog.
func (t Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return invalid(domainerror.ErrCodeMissingTransactionFields, "id is required", domainerror.ErrMissingTransactionField)
	}

	if !t.Type.IsValid() {
		return invalid(domainerror.ErrCodeInvalidTransactionType, "transaction type must be 'expense' or 'income'", domainerror.ErrInvalidTransactionType)
	}

	if strings.TrimSpace(t.Person) == "" {
		return invalid(domainerror.ErrCodeMissingTransactionFields, "person is required", domainerror.ErrMissingTransactionField)
	}

	if strings.TrimSpace(t.Category) == "" {
		return invalid(domainerror.ErrCodeMissingTransactionFields, "category is required", domainerror.ErrMissingTransactionField)
	}

	if strings.TrimSpace(t.PaymentMethod) == "" {
		return invalid(domainerror.ErrCodeMissingTransactionFields, "payment method is required", domainerror.ErrMissingTransactionField)
	}

	if t.Date.IsZero() {
		return invalid(domainerror.ErrCodeMissingTransactionFields, "date is required", domainerror.ErrMissingTransactionField)
	}

	if len(t.Description) > MaxDescriptionLength {
		return invalid(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if t.Amount.IsNegative() {
		return invalid(domainerror.ErrCodeNegativeAmount, "amount must not be negative", domainerror.ErrNegativeAmount)
	}

	if !ValidAmount(t.Amount) {
		return invalid(
			domainerror.ErrCodeInvalidTransactionAmount,
			fmt.Sprintf("amount must have at most %d decimal places and not exceed %s", AmountScale, MaxAmount.StringFixed(AmountScale)),
			domainerror.ErrAmountOutOfRange,
		)
	}

	if !t.IsFoodItemized() {
		if len(t.FoodItems) > 0 {
			return invalid(domainerror.ErrCodeFoodItemsNotAllowed, "food items are only allowed for "+FoodCategory, domainerror.ErrFoodItemsNotAllowed)
		}
		return nil
	}

	for i, item := range t.FoodItems {
		if strings.TrimSpace(item.Name) == "" || item.Price.IsNegative() || item.Quantity < 1 {
			return invalid(
				domainerror.ErrCodeInvalidFoodItem,
				fmt.Sprintf("food item %d needs a name, a non-negative price and a quantity of at least 1", i+1),
				domainerror.ErrInvalidFoodItem,
			)
		}
		if !ValidAmount(item.Price) {
			return invalid(
				domainerror.ErrCodeInvalidTransactionAmount,
				fmt.Sprintf("food item %d price must have at most %d decimal places", i+1, AmountScale),
				domainerror.ErrAmountOutOfRange,
			)
		}
	}

	if expected := FoodItemsTotal(t.FoodItems); !t.Amount.Equal(expected) {
		return invalid(
			domainerror.ErrCodeFoodAmountMismatch,
			fmt.Sprintf("amount %s does not match food items total %s", t.Amount.StringFixed(2), expected.StringFixed(2)),
			domainerror.ErrFoodAmountMismatch,
		)
	}

	return nil
}

func invalid(code domainerror.TransactionErrorCode, message string, err error) error {
	return domainerror.NewTransactionError(code, message, err)
}
