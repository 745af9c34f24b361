package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
