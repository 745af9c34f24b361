// Package entity defines the core business entities for the domain layer.
package entity

import (
	"slices"
	"strings"
)

// Built-in catalog entries.
var (
	// MoneyReceivers are the counterparties money is received from.
	MoneyReceivers = []string{"NITA", "MR ACHUMBORO", "MRS ACHUMBORO", "GERTRUDE", "GEORGINA", "FRIEND", "ERICA", "OTHER"}

	// MoneyRecipients are the counterparties money is sent to.
	MoneyRecipients = []string{"FRIEND", "ERICA", "OTHER"}

	// SpecialPeople are the counterparties covered by the food report.
	SpecialPeople = []string{"NITA", "MRS ACHUMBORO", "GEORGINA", "GERTRUDE", "MR ACHUMBORO"}

	ExpenseCategories = []string{FoodCategory, "PREPAID", "DATA SUBSCRIPTION", "TRANSPORT", "BILLS", "OTHER"}
	IncomeCategories  = []string{"GIFT", "LOAN", "PAYMENT", "SUPPORT", "OTHER"}
	PaymentMethods    = []string{"CASH", "MOBILE MONEY", "BANK TRANSFER", "OTHER"}
)

// DefaultPaymentMethod is used when a request leaves the payment method empty.
const DefaultPaymentMethod = "CASH"

// CategoryKind selects one of the four custom category lists.
type CategoryKind string

const (
	CategoryKindReceiver  CategoryKind = "receiver"
	CategoryKindRecipient CategoryKind = "recipient"
	CategoryKindExpense   CategoryKind = "expense"
	CategoryKindIncome    CategoryKind = "income"
)

// IsValid reports whether k is a known kind.
func (k CategoryKind) IsValid() bool {
	switch k {
	case CategoryKindReceiver, CategoryKindRecipient, CategoryKindExpense, CategoryKindIncome:
		return true
	default:
		return false
	}
}

// CustomCategories holds a user's additions to the built-in catalog.
type CustomCategories struct {
	Receivers  []string `json:"receivers"`
	Recipients []string `json:"recipients"`
	Expenses   []string `json:"expenses"`
	Income     []string `json:"income"`
}

// NewCustomCategories returns an empty set with non-nil lists.
func NewCustomCategories() CustomCategories {
	return CustomCategories{
		Receivers:  []string{},
		Recipients: []string{},
		Expenses:   []string{},
		Income:     []string{},
	}
}

// NormalizeCategoryName trims and upper-cases a catalog entry.
func NormalizeCategoryName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// List returns the custom entries of kind k.
func (c CustomCategories) List(k CategoryKind) []string {
	switch k {
	case CategoryKindReceiver:
		return c.Receivers
	case CategoryKindRecipient:
		return c.Recipients
	case CategoryKindExpense:
		return c.Expenses
	case CategoryKindIncome:
		return c.Income
	default:
		return nil
	}
}

func (c *CustomCategories) set(k CategoryKind, values []string) {
	switch k {
	case CategoryKindReceiver:
		c.Receivers = values
	case CategoryKindRecipient:
		c.Recipients = values
	case CategoryKindExpense:
		c.Expenses = values
	case CategoryKindIncome:
		c.Income = values
	}
}

// Add appends name to kind k unless it is already built-in or present.
// It reports whether the set changed.
func (c *CustomCategories) Add(k CategoryKind, name string) bool {
	name = NormalizeCategoryName(name)
	if name == "" || slices.Contains(builtIn(k), name) || slices.Contains(c.List(k), name) {
		return false
	}
	values := append(slices.Clone(c.List(k)), name)
	c.set(k, values)
	return true
}

// Remove deletes name from kind k and reports whether it was present.
func (c *CustomCategories) Remove(k CategoryKind, name string) bool {
	name = NormalizeCategoryName(name)
	current := c.List(k)
	idx := slices.Index(current, name)
	if idx < 0 {
		return false
	}
	c.set(k, slices.Delete(slices.Clone(current), idx, idx+1))
	return true
}

func builtIn(k CategoryKind) []string {
	switch k {
	case CategoryKindReceiver:
		return MoneyReceivers
	case CategoryKindRecipient:
		return MoneyRecipients
	case CategoryKindExpense:
		return ExpenseCategories
	case CategoryKindIncome:
		return IncomeCategories
	default:
		return nil
	}
}

// Catalog is the merged view of built-in and custom entries for one user.
type Catalog struct {
	Receivers         []string
	Recipients        []string
	ExpenseCategories []string
	IncomeCategories  []string
	PaymentMethods    []string
}

// NewCatalog merges the built-in entries with custom.
func NewCatalog(custom CustomCategories) Catalog {
	return Catalog{
		Receivers:         merge(MoneyReceivers, custom.Receivers),
		Recipients:        merge(MoneyRecipients, custom.Recipients),
		ExpenseCategories: merge(ExpenseCategories, custom.Expenses),
		IncomeCategories:  merge(IncomeCategories, custom.Income),
		PaymentMethods:    slices.Clone(PaymentMethods),
	}
}

// ForAdmin adds the food category to the income categories so food money
// received from the administrator's counterparties can be itemized.
func (c Catalog) ForAdmin() Catalog {
	if !slices.Contains(c.IncomeCategories, FoodCategory) {
		c.IncomeCategories = append(slices.Clone(c.IncomeCategories), FoodCategory)
	}
	return c
}

// Categories returns the categories allowed for transaction type t.
func (c Catalog) Categories(t TransactionType) []string {
	if t == TransactionTypeIncome {
		return c.IncomeCategories
	}
	return c.ExpenseCategories
}

// Counterparties returns the names allowed for transaction type t.
func (c Catalog) Counterparties(t TransactionType) []string {
	if t == TransactionTypeIncome {
		return c.Receivers
	}
	return c.Recipients
}

// HasCategory reports whether category is allowed for t.
func (c Catalog) HasCategory(t TransactionType, category string) bool {
	return slices.Contains(c.Categories(t), category)
}

// HasPaymentMethod reports whether method is known.
func (c Catalog) HasPaymentMethod(method string) bool {
	return slices.Contains(c.PaymentMethods, method)
}

func merge(base, extra []string) []string {
	out := slices.Clone(base)
	for _, v := range extra {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
