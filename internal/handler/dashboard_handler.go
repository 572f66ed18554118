package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves figures derived from the current document
type DashboardHandler struct {
	store       *service.BudgetStore
	dashboard   *service.DashboardService
	suggestions *service.SuggestionService
	now         func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(store *service.BudgetStore, dashboard *service.DashboardService, suggestions *service.SuggestionService) *DashboardHandler {
	return &DashboardHandler{
		store:       store,
		dashboard:   dashboard,
		suggestions: suggestions,
		now:         time.Now,
	}
}

// GetSummary godoc
// @Summary Get the dashboard summary
// @Description Totals, budget and savings status, top category and card utilization
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardSummary
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Summary(h.store.Snapshot()))
}

// GetSuggestions godoc
// @Summary Get budgeting suggestions
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Suggestion
// @Router /dashboard/suggestions [get]
func (h *DashboardHandler) GetSuggestions(c echo.Context) error {
	suggestions := h.suggestions.Suggestions(h.store.Snapshot(), h.now())
	if suggestions == nil {
		return c.JSON(http.StatusOK, []struct{}{})
	}
	return c.JSON(http.StatusOK, suggestions)
}
