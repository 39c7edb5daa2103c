package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/aggregator"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/period"
	"moneymanager/internal/services"
)

// DashboardHandler serves the overview screen.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardRequest holds the query parameters of the dashboard.
type DashboardRequest struct {
	Range     string `form:"range" binding:"omitempty,time_range"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Division  string `form:"division" binding:"omitempty,division"`
	Category  string `form:"category" binding:"max=100"`
	pagination.PageRequest
}

// GetDashboard returns totals, breakdown and the filtered transaction list
// @Summary     Get dashboard
// @Description Fetch accounts and transactions for a time window and aggregate them. Totals ignore the division and category filters.
// @Tags        dashboard
// @Security    ApiKeyAuth
// @Produce     json
// @Param       range      query string false "all, week, month, year or custom"
// @Param       start_date query string false "Custom range start (YYYY-MM-DD)"
// @Param       end_date   query string false "Custom range end (YYYY-MM-DD)"
// @Param       division   query string false "Personal or Office"
// @Param       category   query string false "Exact category"
// @Param       page       query int    false "Page number"
// @Param       page_size  query int    false "Page size (max 100)"
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Transaction service error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var req DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	req.Defaults()

	dashboard, err := h.dashboardService.Load(c.Request.Context(), services.DashboardQuery{
		Range:     period.Preset(req.Range),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Filter: aggregator.Filter{
			Division: models.Division(req.Division),
			Category: req.Category,
		},
		Page: req.PageRequest,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
