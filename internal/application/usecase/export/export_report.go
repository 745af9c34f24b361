// Package export contains report export use cases.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ExportReportInput represents the input for exporting a report.
type ExportReportInput struct {
	UserID          uuid.UUID
	IsAdmin         bool
	AccessibleNames []string
	Kind            adapter.ReportKind
	Format          string
}

// ExportReportUseCase renders the caller's ledger as a downloadable report.
type ExportReportUseCase struct {
	service  *transaction.Service
	exporter adapter.ReportExporter
	now      func() time.Time
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(service *transaction.Service, exporter adapter.ReportExporter) *ExportReportUseCase {
	return &ExportReportUseCase{
		service:  service,
		exporter: exporter,
		now:      time.Now,
	}
}

// Execute builds the report. The food and special people reports are
// restricted to the administrator.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*adapter.ExportedFile, error) {
	if input.Kind != adapter.ReportTransactions && !input.IsAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAdminRequired,
			"only the administrator can export this report",
			domainerror.ErrAdminRequired,
		)
	}

	state, err := uc.service.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	catalog, err := uc.service.Catalog(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if input.IsAdmin {
		catalog = catalog.ForAdmin()
	}

	people := input.AccessibleNames
	if len(people) == 0 {
		people = entity.SpecialPeople
	}

	file, err := uc.exporter.Export(ctx, adapter.ReportRequest{
		Kind:         input.Kind,
		Format:       input.Format,
		Transactions: state.Transactions,
		Catalog:      catalog,
		People:       people,
		GeneratedAt:  uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export %s report: %w", input.Kind, err)
	}
	return file, nil
}
