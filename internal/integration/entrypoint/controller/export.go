package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/export"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExportController serves report downloads.
type ExportController struct {
	exportUseCase   *export.ExportReportUseCase
	accessibleNames []string
}

// NewExportController creates a new export controller instance.
// accessibleNames are the counterparties the administrator's people reports cover.
func NewExportController(exportUseCase *export.ExportReportUseCase, accessibleNames []string) *ExportController {
	return &ExportController{
		exportUseCase:   exportUseCase,
		accessibleNames: accessibleNames,
	}
}

// Transactions handles GET /exports/transactions requests.
func (c *ExportController) Transactions(ctx *gin.Context) {
	c.export(ctx, adapter.ReportTransactions)
}

// FoodStuffs handles GET /exports/food requests.
func (c *ExportController) FoodStuffs(ctx *gin.Context) {
	c.export(ctx, adapter.ReportFood)
}

// SpecialPeople handles GET /exports/special requests.
func (c *ExportController) SpecialPeople(ctx *gin.Context) {
	c.export(ctx, adapter.ReportSpecialPeople)
}

func (c *ExportController) export(ctx *gin.Context, kind adapter.ReportKind) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	file, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportReportInput{
		UserID:          userID,
		IsAdmin:         middleware.IsAdminFromContext(ctx),
		AccessibleNames: c.accessibleNames,
		Kind:            kind,
		Format:          ctx.Query("format"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	ctx.Data(http.StatusOK, file.ContentType, file.Content)
}
