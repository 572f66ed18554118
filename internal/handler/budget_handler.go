package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles whole-document requests
type BudgetHandler struct {
	store *service.BudgetStore
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(store *service.BudgetStore) *BudgetHandler {
	return &BudgetHandler{store: store}
}

// AmountRequest is the body of the total overrides
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"2600.00"`
}

// GetBudget godoc
// @Summary Get the budget document
// @Description Returns the full budget document snapshot
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BudgetDocument
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// ResetBudget godoc
// @Summary Reset to the sample data
// @Description Replaces the whole document with the built-in sample dataset
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.BudgetDocument
// @Router /budget/reset [post]
func (h *BudgetHandler) ResetBudget(c echo.Context) error {
	h.store.ResetData(c.Request().Context())
	log.Info().Msg("Budget data reset to defaults")
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// UpdateTotalBudget godoc
// @Summary Set the total budget
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AmountRequest true "New total budget"
// @Success 200 {object} domain.BudgetDocument
// @Failure 400 {object} ProblemDetails
// @Router /budget/total-budget [put]
func (h *BudgetHandler) UpdateTotalBudget(c echo.Context) error {
	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Amount.IsNegative() {
		return validationProblem(c, domain.ErrNegativeAmount, "amount")
	}

	h.store.UpdateTotalBudget(c.Request().Context(), req.Amount)
	return c.JSON(http.StatusOK, h.store.Snapshot())
}

// UpdateIncome godoc
// @Summary Override the total income
// @Description Sets total income directly; it is not recomputed from the income records
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AmountRequest true "New total income"
// @Success 200 {object} domain.BudgetDocument
// @Failure 400 {object} ProblemDetails
// @Router /budget/income [put]
func (h *BudgetHandler) UpdateIncome(c echo.Context) error {
	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Amount.IsNegative() {
		return validationProblem(c, domain.ErrNegativeAmount, "amount")
	}

	h.store.UpdateIncome(c.Request().Context(), req.Amount)
	return c.JSON(http.StatusOK, h.store.Snapshot())
}
