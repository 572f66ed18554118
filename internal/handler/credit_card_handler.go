package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CreditCardHandler handles credit card requests
type CreditCardHandler struct {
	store *service.BudgetStore
}

// NewCreditCardHandler creates a new CreditCardHandler
func NewCreditCardHandler(store *service.BudgetStore) *CreditCardHandler {
	return &CreditCardHandler{store: store}
}

// CreateCreditCard godoc
// @Summary Add a credit card
// @Description The starting balance may not exceed the limit
// @Tags credit-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.NewCreditCard true "Credit card"
// @Success 201 {object} domain.CreditCard
// @Failure 400 {object} ProblemDetails
// @Router /credit-cards [post]
func (h *CreditCardHandler) CreateCreditCard(c echo.Context) error {
	var req domain.NewCreditCard
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := req.Validate(); err != nil {
		return validationProblem(c, err, "balance")
	}

	card := h.store.AddCreditCard(c.Request().Context(), req)
	log.Info().Int32("card_id", card.ID).Str("name", card.Name).Msg("Credit card created")
	return c.JSON(http.StatusCreated, card)
}

// UpdateCreditCard godoc
// @Summary Replace a credit card
// @Description Unlike creation, the balance may exceed the limit
// @Tags credit-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param request body domain.NewCreditCard true "Credit card"
// @Success 200 {object} domain.CreditCard
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /credit-cards/{id} [put]
func (h *CreditCardHandler) UpdateCreditCard(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid credit card ID", nil)
	}

	var req domain.NewCreditCard
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	card := domain.CreditCard{ID: id, Name: req.Name, Limit: req.Limit, Balance: req.Balance, Color: req.Color}
	if err := card.Validate(); err != nil {
		return validationProblem(c, err, "balance")
	}

	if err := h.store.UpdateCreditCard(c.Request().Context(), card); err != nil {
		if errors.Is(err, domain.ErrCreditCardNotFound) {
			return NewNotFoundError(c, "Credit card not found")
		}
		log.Error().Err(err).Int32("card_id", id).Msg("Failed to update credit card")
		return NewInternalError(c, "Failed to update credit card")
	}

	return c.JSON(http.StatusOK, card)
}

// DeleteCreditCard godoc
// @Summary Delete a credit card
// @Tags credit-cards
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /credit-cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid credit card ID", nil)
	}

	if err := h.store.DeleteCreditCard(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCreditCardNotFound) {
			return NewNotFoundError(c, "Credit card not found")
		}
		log.Error().Err(err).Int32("card_id", id).Msg("Failed to delete credit card")
		return NewInternalError(c, "Failed to delete credit card")
	}

	log.Info().Int32("card_id", id).Msg("Credit card deleted")
	return c.NoContent(http.StatusNoContent)
}
