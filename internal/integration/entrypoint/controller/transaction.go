package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles ledger and transaction endpoints.
type TransactionController struct {
	ledgerUseCase *transaction.GetLedgerUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	ledgerUseCase *transaction.GetLedgerUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		ledgerUseCase: ledgerUseCase,
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Ledger handles GET /ledger requests.
func (c *TransactionController) Ledger(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	state, err := c.ledgerUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(state))
}

// List handles GET /transactions requests.
// Supported query parameters are type (expense or income) and search.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		if !txnType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be 'expense' or 'income'",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = &txnType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	draft, ok := bindDraft(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Actor: actor(ctx, userID),
		Draft: draft,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Ledger:      dto.ToLedgerSummary(output.Ledger),
	})
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	draft, ok := bindDraft(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		Actor:         actor(ctx, userID),
		TransactionID: transactionID,
		Draft:         draft,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Transaction: dto.ToTransactionResponse(output.Transaction),
		Ledger:      dto.ToLedgerSummary(output.Ledger),
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerSummary(output.Ledger))
}

func actor(ctx *gin.Context, userID uuid.UUID) transaction.Actor {
	return transaction.Actor{
		UserID:  userID,
		IsAdmin: middleware.IsAdminFromContext(ctx),
	}
}

func bindDraft(ctx *gin.Context) (transaction.TransactionDraft, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeMissingTransactionFields),
			Details: err.Error(),
		})
		return transaction.TransactionDraft{}, false
	}

	if field, ok := req.CheckAmounts(); !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("%s must have at most %d decimal places and not exceed %s", field, entity.AmountScale, entity.MaxAmount.StringFixed(entity.AmountScale)),
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return transaction.TransactionDraft{}, false
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be YYYY-MM-DD or RFC3339",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return transaction.TransactionDraft{}, false
	}

	return req.ToDraft(date), true
}

func parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return uuid.Nil, false
	}
	return id, true
}
