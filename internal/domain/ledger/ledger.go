// Package ledger applies add, update and delete to an ordered list of
// transactions and keeps the balance and totals consistent with it.
//
// Every function here is pure: the input State is never modified and on error
// the caller keeps its previous State.
package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// State is the ledger of a single user. The aggregates are derived from
// Transactions and are never set independently.
type State struct {
	Transactions  []entity.Transaction `json:"transactions"`
	Balance       decimal.Decimal      `json:"balance"`
	TotalIncome   decimal.Decimal      `json:"totalIncome"`
	TotalExpenses decimal.Decimal      `json:"totalExpenses"`
}

// Empty returns a ledger with no transactions and zero aggregates.
func Empty() State {
	return State{
		Transactions:  []entity.Transaction{},
		Balance:       decimal.Zero,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
}

// Recompute builds a State from transactions, deriving all aggregates from scratch.
func Recompute(transactions []entity.Transaction) State {
	s := Empty()
	s.Transactions = cloneAll(transactions)
	for _, t := range s.Transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	return s
}

// Len returns the number of transactions.
func (s State) Len() int {
	return len(s.Transactions)
}

// Find returns the transaction with id and its position.
func (s State) Find(id uuid.UUID) (entity.Transaction, int, bool) {
	for i, t := range s.Transactions {
		if t.ID == id {
			return t.Clone(), i, true
		}
	}
	return entity.Transaction{}, -1, false
}

// Verify checks that the aggregates match the transactions and that ids are unique.
func (s State) Verify() error {
	expected := Recompute(s.Transactions)
	if !s.TotalIncome.Equal(expected.TotalIncome) {
		return fmt.Errorf("total income %s does not match transactions (%s)", s.TotalIncome, expected.TotalIncome)
	}
	if !s.TotalExpenses.Equal(expected.TotalExpenses) {
		return fmt.Errorf("total expenses %s does not match transactions (%s)", s.TotalExpenses, expected.TotalExpenses)
	}
	if !s.Balance.Equal(s.TotalIncome.Sub(s.TotalExpenses)) {
		return fmt.Errorf("balance %s is not income minus expenses", s.Balance)
	}

	seen := make(map[uuid.UUID]struct{}, len(s.Transactions))
	for _, t := range s.Transactions {
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("transaction id %s appears more than once", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Add validates txn and places it at the front of the ledger.
func Add(s State, txn entity.Transaction) (State, error) {
	if err := txn.Validate(); err != nil {
		return s, err
	}
	if _, _, ok := s.Find(txn.ID); ok {
		return s, domainerror.NewTransactionError(
			domainerror.ErrCodeDuplicateID,
			fmt.Sprintf("transaction %s already exists", txn.ID),
			domainerror.ErrDuplicateTransactionID,
		)
	}

	next := State{
		Transactions:  make([]entity.Transaction, 0, len(s.Transactions)+1),
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
	}
	next.Transactions = append(next.Transactions, txn.Clone())
	next.Transactions = append(next.Transactions, cloneAll(s.Transactions)...)

	if txn.Type == entity.TransactionTypeIncome {
		next.TotalIncome = next.TotalIncome.Add(txn.Amount)
	} else {
		next.TotalExpenses = next.TotalExpenses.Add(txn.Amount)
	}
	next.Balance = next.TotalIncome.Sub(next.TotalExpenses)

	return next, nil
}

// Update replaces the transaction with the same id, keeping its position, and
// recomputes every aggregate.
func Update(s State, txn entity.Transaction) (State, error) {
	if err := txn.Validate(); err != nil {
		return s, err
	}
	_, idx, ok := s.Find(txn.ID)
	if !ok {
		return s, notFound(txn.ID)
	}

	transactions := cloneAll(s.Transactions)
	transactions[idx] = txn.Clone()

	return Recompute(transactions), nil
}

// Delete removes the transaction with id and subtracts its contribution.
func Delete(s State, id uuid.UUID) (State, error) {
	removed, idx, ok := s.Find(id)
	if !ok {
		return s, notFound(id)
	}

	next := State{
		Transactions:  make([]entity.Transaction, 0, len(s.Transactions)-1),
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
	}
	next.Transactions = append(next.Transactions, cloneAll(s.Transactions[:idx])...)
	next.Transactions = append(next.Transactions, cloneAll(s.Transactions[idx+1:])...)

	if removed.Type == entity.TransactionTypeIncome {
		next.TotalIncome = next.TotalIncome.Sub(removed.Amount)
	} else {
		next.TotalExpenses = next.TotalExpenses.Sub(removed.Amount)
	}
	next.Balance = next.TotalIncome.Sub(next.TotalExpenses)

	return next, nil
}

func notFound(id uuid.UUID) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		fmt.Sprintf("transaction %s not found", id),
		domainerror.ErrTransactionNotFound,
	)
}

func cloneAll(transactions []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(transactions))
	for i, t := range transactions {
		out[i] = t.Clone()
	}
	return out
}
