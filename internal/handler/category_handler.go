package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CategoryHandler handles expense and income category requests
type CategoryHandler struct {
	store *service.BudgetStore
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(store *service.BudgetStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// CreateCategory godoc
// @Summary Add an expense category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.NewCategory true "Category"
// @Success 201 {object} domain.ExpenseCategory
// @Failure 400 {object} ProblemDetails
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req domain.NewCategory
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return validationProblem(c, err, "actual")
	}

	category := h.store.AddCategory(c.Request().Context(), req)
	log.Info().Int32("category_id", category.ID).Str("name", category.Name).Msg("Expense category created")
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Replace an expense category
// @Description Renaming a category does not move its existing transactions
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body domain.NewCategory true "Category"
// @Success 200 {object} domain.ExpenseCategory
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req domain.NewCategory
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	category := domain.ExpenseCategory{ID: id, Name: req.Name, Budget: req.Budget, Actual: req.Actual, Color: req.Color}
	if err := category.Validate(); err != nil {
		return validationProblem(c, err, "actual")
	}

	if err := h.store.UpdateCategory(c.Request().Context(), category); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Int32("category_id", id).Msg("Failed to update category")
		return NewInternalError(c, "Failed to update category")
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete an expense category
// @Description Transactions in the category are kept
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	if err := h.store.DeleteCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Int32("category_id", id).Msg("Failed to delete category")
		return NewInternalError(c, "Failed to delete category")
	}

	log.Info().Int32("category_id", id).Msg("Expense category deleted")
	return c.NoContent(http.StatusNoContent)
}

// CreateIncomeCategory godoc
// @Summary Add an income category
// @Tags income-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.NewIncomeCategory true "Income category"
// @Success 201 {object} domain.IncomeCategory
// @Failure 400 {object} ProblemDetails
// @Router /income-categories [post]
func (h *CategoryHandler) CreateIncomeCategory(c echo.Context) error {
	var req domain.NewIncomeCategory
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return validationProblem(c, err, "")
	}

	category := h.store.AddIncomeCategory(c.Request().Context(), req)
	log.Info().Int32("income_category_id", category.ID).Str("name", category.Name).Msg("Income category created")
	return c.JSON(http.StatusCreated, category)
}

// DeleteIncomeCategory godoc
// @Summary Delete an income category
// @Description Incomes recorded under the category are kept
// @Tags income-categories
// @Security BearerAuth
// @Param id path int true "Income category ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /income-categories/{id} [delete]
func (h *CategoryHandler) DeleteIncomeCategory(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income category ID", nil)
	}

	if err := h.store.DeleteIncomeCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrIncomeCategoryNotFound) {
			return NewNotFoundError(c, "Income category not found")
		}
		log.Error().Err(err).Int32("income_category_id", id).Msg("Failed to delete income category")
		return NewInternalError(c, "Failed to delete income category")
	}

	return c.NoContent(http.StatusNoContent)
}
