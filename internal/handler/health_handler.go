package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// HealthResponse reports liveness and whether the document has loaded
type HealthResponse struct {
	Status  string `json:"status"`
	Loading bool   `json:"loading"`
}

// HealthHandler serves GET /health
type HealthHandler struct {
	store *service.BudgetStore
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store *service.BudgetStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// GetHealth godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c echo.Context) error {
	if h.store.IsLoading() {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "loading", Loading: true})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
