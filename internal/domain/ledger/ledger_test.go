package ledger

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

var testDate = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTxn(t entity.TransactionType, amount int64, person, category string) entity.Transaction {
	return entity.NewTransaction(t, decimal.NewFromInt(amount), person, category, "CASH", "", testDate, nil)
}

func assertAggregates(t *testing.T, s State, balance, income, expenses string) {
	t.Helper()
	if !s.Balance.Equal(decimal.RequireFromString(balance)) {
		t.Errorf("balance = %s, want %s", s.Balance, balance)
	}
	if !s.TotalIncome.Equal(decimal.RequireFromString(income)) {
		t.Errorf("totalIncome = %s, want %s", s.TotalIncome, income)
	}
	if !s.TotalExpenses.Equal(decimal.RequireFromString(expenses)) {
		t.Errorf("totalExpenses = %s, want %s", s.TotalExpenses, expenses)
	}
	if err := s.Verify(); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestLedger_Scenarios(t *testing.T) {
	gift := newTxn(entity.TransactionTypeIncome, 100, "NITA", "GIFT")
	transport := newTxn(entity.TransactionTypeExpense, 40, "FRIEND", "TRANSPORT")

	// A
	a, err := Add(Empty(), gift)
	if err != nil {
		t.Fatalf("add gift: %v", err)
	}
	assertAggregates(t, a, "100", "100", "0")

	// B
	b, err := Add(a, transport)
	if err != nil {
		t.Fatalf("add transport: %v", err)
	}
	assertAggregates(t, b, "60", "100", "40")
	if b.Transactions[0].ID != transport.ID {
		t.Errorf("newest transaction should be first")
	}

	// C
	edited := gift
	edited.Type = entity.TransactionTypeExpense
	c, err := Update(b, edited)
	if err != nil {
		t.Fatalf("update gift: %v", err)
	}
	assertAggregates(t, c, "-140", "0", "140")
	if c.Transactions[1].ID != gift.ID {
		t.Errorf("update should keep position")
	}

	// D
	d, err := Delete(c, transport.ID)
	if err != nil {
		t.Fatalf("delete transport: %v", err)
	}
	assertAggregates(t, d, "-100", "0", "100")
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}

	// inputs untouched
	assertAggregates(t, a, "100", "100", "0")
	assertAggregates(t, b, "60", "100", "40")
	if b.Transactions[1].Type != entity.TransactionTypeIncome {
		t.Errorf("update mutated its input state")
	}
}

func TestLedger_FoodItems(t *testing.T) {
	items := []entity.FoodItem{
		{Name: "rice", Price: decimal.NewFromInt(5), Quantity: 2},
		{Name: "oil", Price: decimal.NewFromInt(3), Quantity: 1},
	}

	t.Run("amount equal to items total is accepted", func(t *testing.T) {
		txn := entity.NewTransaction(entity.TransactionTypeExpense, decimal.RequireFromString("13.00"), "FRIEND", entity.FoodCategory, "CASH", "", testDate, items)
		s, err := Add(Empty(), txn)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		assertAggregates(t, s, "-13", "0", "13")
	})

	t.Run("mismatched amount is rejected", func(t *testing.T) {
		txn := entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(20), "FRIEND", entity.FoodCategory, "CASH", "", testDate, items)
		s, err := Add(Empty(), txn)
		if !errors.Is(err, domainerror.ErrFoodAmountMismatch) {
			t.Fatalf("Add() error = %v, want ErrFoodAmountMismatch", err)
		}
		if !domainerror.IsValidationError(err) {
			t.Errorf("expected a validation error")
		}
		if s.Len() != 0 {
			t.Errorf("state changed on error")
		}
	})

	t.Run("items on another category are rejected", func(t *testing.T) {
		txn := entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(13), "FRIEND", "TRANSPORT", "CASH", "", testDate, items)
		if _, err := Add(Empty(), txn); !errors.Is(err, domainerror.ErrFoodItemsNotAllowed) {
			t.Fatalf("Add() error = %v, want ErrFoodItemsNotAllowed", err)
		}
	})
}

func TestLedger_Errors(t *testing.T) {
	base, err := Add(Empty(), newTxn(entity.TransactionTypeIncome, 50, "NITA", "GIFT"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		apply   func(State) (State, error)
		wantErr error
		code    domainerror.TransactionErrorCode
	}{
		{
			name:    "delete unknown id",
			apply:   func(s State) (State, error) { return Delete(s, uuid.New()) },
			wantErr: domainerror.ErrTransactionNotFound,
			code:    domainerror.ErrCodeTransactionNotFound,
		},
		{
			name: "update unknown id",
			apply: func(s State) (State, error) {
				return Update(s, newTxn(entity.TransactionTypeExpense, 5, "FRIEND", "BILLS"))
			},
			wantErr: domainerror.ErrTransactionNotFound,
			code:    domainerror.ErrCodeTransactionNotFound,
		},
		{
			name:    "duplicate id",
			apply:   func(s State) (State, error) { return Add(s, s.Transactions[0]) },
			wantErr: domainerror.ErrDuplicateTransactionID,
			code:    domainerror.ErrCodeDuplicateID,
		},
		{
			name: "negative amount",
			apply: func(s State) (State, error) {
				return Add(s, newTxn(entity.TransactionTypeExpense, -1, "FRIEND", "BILLS"))
			},
			wantErr: domainerror.ErrNegativeAmount,
			code:    domainerror.ErrCodeNegativeAmount,
		},
		{
			name: "missing person",
			apply: func(s State) (State, error) {
				return Add(s, newTxn(entity.TransactionTypeExpense, 1, " ", "BILLS"))
			},
			wantErr: domainerror.ErrMissingTransactionField,
			code:    domainerror.ErrCodeMissingTransactionFields,
		},
		{
			name: "invalid type",
			apply: func(s State) (State, error) {
				return Add(s, newTxn("transfer", 1, "FRIEND", "BILLS"))
			},
			wantErr: domainerror.ErrInvalidTransactionType,
			code:    domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name: "amount with three decimals",
			apply: func(s State) (State, error) {
				txn := newTxn(entity.TransactionTypeExpense, 0, "FRIEND", "BILLS")
				txn.Amount = decimal.RequireFromString("10.125")
				return Add(s, txn)
			},
			wantErr: domainerror.ErrAmountOutOfRange,
			code:    domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "amount above storable maximum",
			apply: func(s State) (State, error) {
				txn := newTxn(entity.TransactionTypeIncome, 0, "NITA", "GIFT")
				txn.Amount = decimal.RequireFromString("123456789012345678.25")
				return Add(s, txn)
			},
			wantErr: domainerror.ErrAmountOutOfRange,
			code:    domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name: "food price with three decimals",
			apply: func(s State) (State, error) {
				items := []entity.FoodItem{{Name: "salt", Price: decimal.RequireFromString("0.125"), Quantity: 1}}
				txn := newTxn(entity.TransactionTypeExpense, 0, "FRIEND", entity.FoodCategory)
				txn.FoodItems = items
				txn.Amount = entity.FoodItemsTotal(items)
				return Add(s, txn)
			},
			wantErr: domainerror.ErrAmountOutOfRange,
			code:    domainerror.ErrCodeInvalidTransactionAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(base)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var txErr *domainerror.TransactionError
			if !errors.As(err, &txErr) || txErr.Code != tt.code {
				t.Errorf("error code = %v, want %s", err, tt.code)
			}
			if got.Len() != base.Len() || !got.Balance.Equal(base.Balance) {
				t.Errorf("state changed on error")
			}
		})
	}
}

func TestLedger_RandomSequenceKeepsAggregates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	people := []string{"NITA", "FRIEND", "ERICA"}
	s := Empty()

	for i := 0; i < 500; i++ {
		before := s.Len()
		switch op := rng.Intn(3); {
		case op == 0 || s.Len() == 0:
			typ := entity.TransactionTypeIncome
			if rng.Intn(2) == 0 {
				typ = entity.TransactionTypeExpense
			}
			amount := decimal.New(rng.Int63n(100000), -2)
			txn := entity.NewTransaction(typ, amount, people[rng.Intn(len(people))], "OTHER", "CASH", "", testDate, nil)
			next, err := Add(s, txn)
			if err != nil {
				t.Fatalf("step %d add: %v", i, err)
			}
			if next.Len() != before+1 {
				t.Fatalf("step %d: add changed length by %d", i, next.Len()-before)
			}
			s = next
		case op == 1:
			target := s.Transactions[rng.Intn(s.Len())]
			if target.Type == entity.TransactionTypeIncome {
				target.Type = entity.TransactionTypeExpense
			} else {
				target.Type = entity.TransactionTypeIncome
			}
			target.Amount = decimal.New(rng.Int63n(100000), -2)
			next, err := Update(s, target)
			if err != nil {
				t.Fatalf("step %d update: %v", i, err)
			}
			if next.Len() != before {
				t.Fatalf("step %d: update changed length", i)
			}
			s = next
		default:
			target := s.Transactions[rng.Intn(s.Len())]
			next, err := Delete(s, target.ID)
			if err != nil {
				t.Fatalf("step %d delete: %v", i, err)
			}
			if next.Len() != before-1 {
				t.Fatalf("step %d: delete changed length by %d", i, next.Len()-before)
			}
			s = next
		}

		if err := s.Verify(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestRecompute_MatchesIncrementalDelete(t *testing.T) {
	s := Empty()
	var ids []uuid.UUID
	for i, amount := range []int64{10, 25, 7, 40} {
		typ := entity.TransactionTypeExpense
		if i%2 == 0 {
			typ = entity.TransactionTypeIncome
		}
		txn := newTxn(typ, amount, "ERICA", "OTHER")
		ids = append(ids, txn.ID)
		var err error
		if s, err = Add(s, txn); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	for _, id := range ids {
		var err error
		if s, err = Delete(s, id); err != nil {
			t.Fatalf("delete: %v", err)
		}
		want := Recompute(s.Transactions)
		if !s.Balance.Equal(want.Balance) || !s.TotalIncome.Equal(want.TotalIncome) || !s.TotalExpenses.Equal(want.TotalExpenses) {
			t.Fatalf("incremental %+v differs from recomputed %+v", s, want)
		}
	}
	assertAggregates(t, s, "0", "0", "0")
}

func TestVerify_DetectsCorruption(t *testing.T) {
	s, _ := Add(Empty(), newTxn(entity.TransactionTypeIncome, 10, "NITA", "GIFT"))

	t.Run("stale aggregate", func(t *testing.T) {
		bad := s
		bad.TotalIncome = decimal.NewFromInt(11)
		if err := bad.Verify(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		bad := Recompute(append([]entity.Transaction{s.Transactions[0]}, s.Transactions...))
		if err := bad.Verify(); err == nil {
			t.Error("expected error")
		}
	})
}
