// Package export builds printable reports from a ledger and renders them as
// PDF, Markdown or HTML.
package export

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// PersonGroup is the set of transactions with one counterparty.
type PersonGroup struct {
	Person       string
	Transactions []entity.Transaction
	Total        decimal.Decimal
}

// CategoryGroup totals the transactions of one category and type.
type CategoryGroup struct {
	Category string
	Type     entity.TransactionType
	Count    int
	Total    decimal.Decimal
}

// TransactionReport is the full report of a ledger.
type TransactionReport struct {
	GeneratedAt   time.Time
	TotalReceived decimal.Decimal
	TotalSent     decimal.Decimal
	NetBalance    decimal.Decimal

	Received      []PersonGroup // grouped by known receiver
	OtherIncome   PersonGroup   // income from anyone else
	Sent          []PersonGroup // grouped by known recipient
	OtherExpenses PersonGroup   // expenses to anyone else

	IncomeByCategory  []CategoryGroup
	ExpenseByCategory []CategoryGroup

	FoodPurchases []entity.Transaction // itemized food expenses
}

// PeopleReport groups the money exchanged with a fixed list of counterparties.
// Received and Sent hold one group per person; their totals add up to
// TotalReceived and TotalSent.
type PeopleReport struct {
	Title         string
	GeneratedAt   time.Time
	Received      []PersonGroup
	Sent          []PersonGroup
	TotalReceived decimal.Decimal
	TotalSent     decimal.Decimal
	NetBalance    decimal.Decimal
	IncludesSent  bool
}

// BuildTransactionReport groups transactions the way the printed report shows
// them. Every transaction lands in exactly one person group, so the group
// totals of each side add up to that side's total.
func BuildTransactionReport(transactions []entity.Transaction, catalog entity.Catalog, generatedAt time.Time) TransactionReport {
	sorted := chronological(transactions)

	var income, expenses []entity.Transaction
	for _, t := range sorted {
		if t.Type == entity.TransactionTypeIncome {
			income = append(income, t)
		} else {
			expenses = append(expenses, t)
		}
	}

	report := TransactionReport{
		GeneratedAt:   generatedAt,
		TotalReceived: sum(income),
		TotalSent:     sum(expenses),
	}
	report.NetBalance = report.TotalReceived.Sub(report.TotalSent)

	report.Received, report.OtherIncome = groupByPerson(income, catalog.Receivers)
	report.Sent, report.OtherExpenses = groupByPerson(expenses, catalog.Recipients)

	report.IncomeByCategory = groupByCategory(income, entity.TransactionTypeIncome)
	report.ExpenseByCategory = groupByCategory(expenses, entity.TransactionTypeExpense)

	for _, t := range expenses {
		if t.IsFoodItemized() && len(t.FoodItems) > 0 {
			report.FoodPurchases = append(report.FoodPurchases, t)
		}
	}

	return report
}

// BuildFoodReport collects food money received from people.
func BuildFoodReport(transactions []entity.Transaction, people []string, generatedAt time.Time) PeopleReport {
	return buildPeopleReport("Food Stuffs Report", transactions, people, generatedAt, false, func(t entity.Transaction) bool {
		return t.Type == entity.TransactionTypeIncome && t.IsFoodItemized()
	})
}

// BuildSpecialPeopleReport collects every transaction with people, received
// and sent.
func BuildSpecialPeopleReport(transactions []entity.Transaction, people []string, generatedAt time.Time) PeopleReport {
	return buildPeopleReport("Special People Report", transactions, people, generatedAt, true, func(entity.Transaction) bool {
		return true
	})
}

func buildPeopleReport(title string, transactions []entity.Transaction, people []string, generatedAt time.Time, includesSent bool, keep func(entity.Transaction) bool) PeopleReport {
	var income, expenses []entity.Transaction
	for _, t := range chronological(transactions) {
		if !slices.Contains(people, t.Person) || !keep(t) {
			continue
		}
		if t.Type == entity.TransactionTypeIncome {
			income = append(income, t)
		} else {
			expenses = append(expenses, t)
		}
	}

	report := PeopleReport{
		Title:         title,
		GeneratedAt:   generatedAt,
		TotalReceived: sum(income),
		TotalSent:     sum(expenses),
		IncludesSent:  includesSent,
	}
	report.NetBalance = report.TotalReceived.Sub(report.TotalSent)
	report.Received, _ = groupByPerson(income, people)
	report.Sent, _ = groupByPerson(expenses, people)
	return report
}

// groupByPerson returns one group per name in people that has transactions,
// in the order of people, plus a group for everyone else.
func groupByPerson(transactions []entity.Transaction, people []string) ([]PersonGroup, PersonGroup) {
	byPerson := make(map[string][]entity.Transaction)
	other := PersonGroup{Person: "OTHER", Total: decimal.Zero}

	for _, t := range transactions {
		if slices.Contains(people, t.Person) {
			byPerson[t.Person] = append(byPerson[t.Person], t)
			continue
		}
		other.Transactions = append(other.Transactions, t)
		other.Total = other.Total.Add(t.Amount)
	}

	groups := make([]PersonGroup, 0, len(byPerson))
	for _, person := range people {
		txns, ok := byPerson[person]
		if !ok {
			continue
		}
		groups = append(groups, PersonGroup{Person: person, Transactions: txns, Total: sum(txns)})
		delete(byPerson, person)
	}
	return groups, other
}

func groupByCategory(transactions []entity.Transaction, typ entity.TransactionType) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup
	for _, t := range transactions {
		i, ok := index[t.Category]
		if !ok {
			i = len(groups)
			index[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category, Type: typ, Total: decimal.Zero})
		}
		groups[i].Count++
		groups[i].Total = groups[i].Total.Add(t.Amount)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}

func chronological(transactions []entity.Transaction) []entity.Transaction {
	sorted := make([]entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func sum(transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}
