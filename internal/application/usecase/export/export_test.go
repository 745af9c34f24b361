package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/events"
	exporter "github.com/expense-tracker/backend/internal/integration/export"
	"github.com/expense-tracker/backend/internal/integration/persistence/memory"
)

func newUseCase(t *testing.T, actor transaction.Actor, drafts ...transaction.TransactionDraft) *ExportReportUseCase {
	t.Helper()
	service := transaction.NewService(memory.NewLedgerStore(), memory.NewCustomCategoryStore(), events.NoopPublisher{})
	create := transaction.NewCreateTransactionUseCase(service)
	for _, d := range drafts {
		if _, err := create.Execute(context.Background(), transaction.CreateTransactionInput{Actor: actor, Draft: d}); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	uc := NewExportReportUseCase(service, exporter.NewExporter("md"))
	uc.now = func() time.Time { return time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC) }
	return uc
}

func TestExportReportUseCase_Transactions(t *testing.T) {
	user := transaction.Actor{UserID: uuid.New()}
	amount := decimal.NewFromInt(100)
	uc := newUseCase(t, user, transaction.TransactionDraft{
		Type: entity.TransactionTypeIncome, Amount: &amount, Person: "NITA", Category: "GIFT",
	})

	tests := []struct {
		name        string
		format      string
		wantType    string
		wantFile    string
		wantContent string
	}{
		{name: "default format", format: "", wantType: "text/markdown; charset=utf-8", wantFile: "transactions_2024-03-20.md", wantContent: "GHS 100.00"},
		{name: "html", format: "html", wantType: "text/html; charset=utf-8", wantFile: "transactions_2024-03-20.html", wantContent: "<table>"},
		{name: "pdf", format: "pdf", wantType: "application/pdf", wantFile: "transactions_2024-03-20.pdf", wantContent: "%PDF-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := uc.Execute(context.Background(), ExportReportInput{
				UserID: user.UserID,
				Kind:   adapter.ReportTransactions,
				Format: tt.format,
			})
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if file.ContentType != tt.wantType {
				t.Errorf("ContentType = %q, want %q", file.ContentType, tt.wantType)
			}
			if file.FileName != tt.wantFile {
				t.Errorf("FileName = %q, want %q", file.FileName, tt.wantFile)
			}
			if !strings.Contains(string(file.Content), tt.wantContent) {
				t.Errorf("content does not contain %q", tt.wantContent)
			}
		})
	}
}

func TestExportReportUseCase_Errors(t *testing.T) {
	user := uuid.New()
	uc := newUseCase(t, transaction.Actor{UserID: user})

	if _, err := uc.Execute(context.Background(), ExportReportInput{UserID: user, Kind: adapter.ReportFood}); !errors.Is(err, domainerror.ErrAdminRequired) {
		t.Errorf("food report as user: error = %v", err)
	}
	if _, err := uc.Execute(context.Background(), ExportReportInput{UserID: user, Kind: adapter.ReportTransactions, Format: "docx"}); !errors.Is(err, domainerror.ErrUnsupportedExportFormat) {
		t.Errorf("unknown format: error = %v", err)
	}
}

func TestExportReportUseCase_FoodReport(t *testing.T) {
	admin := transaction.Actor{UserID: entity.AdminUserID, IsAdmin: true}
	uc := newUseCase(t, admin, transaction.TransactionDraft{
		Type:     entity.TransactionTypeIncome,
		Person:   "NITA",
		Category: entity.FoodCategory,
		FoodItems: []entity.FoodItem{
			{Name: "rice", Price: decimal.NewFromInt(5), Quantity: 2},
			{Name: "oil", Price: decimal.NewFromInt(3), Quantity: 1},
		},
	})

	file, err := uc.Execute(context.Background(), ExportReportInput{
		UserID:  admin.UserID,
		IsAdmin: true,
		Kind:    adapter.ReportFood,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	content := string(file.Content)
	for _, want := range []string{"# Food Stuffs Report", "Money from NITA", "rice", "Total Received: GHS 13.00"} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
