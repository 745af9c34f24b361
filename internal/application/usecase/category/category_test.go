package category

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/memory"
)

func TestCreateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		kind      entity.CategoryKind
		input     string
		wantName  string
		wantAdded bool
		wantErr   error
	}{
		{name: "normalizes name", kind: entity.CategoryKindExpense, input: "  school fees ", wantName: "SCHOOL FEES", wantAdded: true},
		{name: "built-in is ignored", kind: entity.CategoryKindExpense, input: "transport", wantName: "TRANSPORT", wantAdded: false},
		{name: "receiver", kind: entity.CategoryKindReceiver, input: "Uncle Kofi", wantName: "UNCLE KOFI", wantAdded: true},
		{name: "blank name", kind: entity.CategoryKindIncome, input: "   ", wantErr: domainerror.ErrCategoryNameRequired},
		{name: "unknown kind", kind: "color", input: "x", wantErr: domainerror.ErrInvalidCategoryKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateCategoryUseCase(memory.NewCustomCategoryStore())
			out, err := uc.Execute(ctx, CreateCategoryInput{UserID: uuid.New(), Kind: tt.kind, Name: tt.input})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out.Name != tt.wantName || out.Added != tt.wantAdded {
				t.Errorf("got (%q, %v), want (%q, %v)", out.Name, out.Added, tt.wantName, tt.wantAdded)
			}
		})
	}
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomCategoryStore()
	userID := uuid.New()

	create := NewCreateCategoryUseCase(store)
	list := NewListCategoriesUseCase(store)
	remove := NewDeleteCategoryUseCase(store)

	if _, err := create.Execute(ctx, CreateCategoryInput{UserID: userID, Kind: entity.CategoryKindIncome, Name: "salary"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(ctx, CreateCategoryInput{UserID: userID, Kind: entity.CategoryKindIncome, Name: "SALARY"}); err != nil {
		t.Fatalf("create duplicate: %v", err)
	}

	out, err := list.Execute(ctx, ListCategoriesInput{UserID: userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !slices.Equal(out.Custom.Income, []string{"SALARY"}) {
		t.Errorf("custom income = %v", out.Custom.Income)
	}
	if !out.Catalog.HasCategory(entity.TransactionTypeIncome, "SALARY") || !out.Catalog.HasCategory(entity.TransactionTypeIncome, "GIFT") {
		t.Errorf("catalog should merge built-in and custom income categories")
	}

	other, err := list.Execute(ctx, ListCategoriesInput{UserID: uuid.New(), IsAdmin: true})
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if other.Catalog.HasCategory(entity.TransactionTypeIncome, "SALARY") {
		t.Errorf("custom categories leaked to another user")
	}
	if !other.Catalog.HasCategory(entity.TransactionTypeIncome, entity.FoodCategory) {
		t.Errorf("admin catalog should allow food income")
	}

	if err := remove.Execute(ctx, DeleteCategoryInput{UserID: userID, Kind: entity.CategoryKindIncome, Name: "salary"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	err = remove.Execute(ctx, DeleteCategoryInput{UserID: userID, Kind: entity.CategoryKindIncome, Name: "GIFT"})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("removing a built-in: error = %v", err)
	}
}
