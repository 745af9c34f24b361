package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/admin"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// AdminController handles user management endpoints for the administrator.
type AdminController struct {
	listUseCase   *admin.ListUsersUseCase
	createUseCase *admin.CreateUserUseCase
	updateUseCase *admin.UpdateUserUseCase
	deleteUseCase *admin.DeleteUserUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listUseCase *admin.ListUsersUseCase,
	createUseCase *admin.CreateUserUseCase,
	updateUseCase *admin.UpdateUserUseCase,
	deleteUseCase *admin.DeleteUserUseCase,
) *AdminController {
	return &AdminController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// ListUsers handles GET /admin/users requests.
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// CreateUser handles POST /admin/users requests.
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	user, err := c.createUseCase.Execute(ctx.Request.Context(), admin.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser handles PATCH /admin/users/:id requests.
func (c *AdminController) UpdateUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	user, err := c.updateUseCase.Execute(ctx.Request.Context(), admin.UpdateUserInput{
		UserID:    userID,
		Username:  req.Username,
		Password:  req.Password,
		IsBlocked: req.IsBlocked,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser handles DELETE /admin/users/:id requests.
// The user's ledger and custom categories are removed with the account.
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), userID); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return uuid.Nil, false
	}
	return id, true
}
