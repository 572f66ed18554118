package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles expense and income record requests
type TransactionHandler struct {
	store *service.BudgetStore
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(store *service.BudgetStore) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// CreateTransaction godoc
// @Summary Record an expense
// @Description Adds the amount to total expenses and to the category with the same name, if any
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.NewTransaction true "Transaction"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req domain.NewTransaction
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return validationProblem(c, err, "amount")
	}

	tx := h.store.AddTransaction(c.Request().Context(), req)
	log.Info().Int32("transaction_id", tx.ID).Str("category", tx.Category).Str("amount", tx.Amount.String()).Msg("Transaction created")
	return c.JSON(http.StatusCreated, tx)
}

// DeleteTransaction godoc
// @Summary Delete an expense
// @Tags transactions
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.store.DeleteTransaction(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Int32("transaction_id", id).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Int32("transaction_id", id).Msg("Transaction deleted")
	return c.NoContent(http.StatusNoContent)
}

// CreateIncome godoc
// @Summary Record income
// @Description Adds to total income and, for the current month, to the monthly summary
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.NewIncome true "Income"
// @Success 201 {object} domain.Income
// @Failure 400 {object} ProblemDetails
// @Router /incomes [post]
func (h *TransactionHandler) CreateIncome(c echo.Context) error {
	var req domain.NewIncome
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return validationProblem(c, err, "amount")
	}

	income := h.store.AddIncome(c.Request().Context(), req)
	log.Info().Int32("income_id", income.ID).Str("category", income.Category).Str("amount", income.Amount.String()).Msg("Income created")
	return c.JSON(http.StatusCreated, income)
}

// DeleteIncome godoc
// @Summary Delete income
// @Tags incomes
// @Security BearerAuth
// @Param id path int true "Income ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /incomes/{id} [delete]
func (h *TransactionHandler) DeleteIncome(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	if err := h.store.DeleteIncome(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrIncomeNotFound) {
			return NewNotFoundError(c, "Income not found")
		}
		log.Error().Err(err).Int32("income_id", id).Msg("Failed to delete income")
		return NewInternalError(c, "Failed to delete income")
	}

	return c.NoContent(http.StatusNoContent)
}
