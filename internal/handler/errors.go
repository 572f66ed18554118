package handler

import (
	"errors"
	"strconv"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/labstack/echo/v4"
)

// fieldErrors maps input validation errors to the request field they concern
var fieldErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrNameRequired, "name", "Name is required"},
	{domain.ErrNameTooLong, "name", "Name must be 100 characters or less"},
	{domain.ErrColorRequired, "color", "Color is required"},
	{domain.ErrDateRequired, "date", "Date is required"},
	{domain.ErrInvalidDate, "date", "Date must be YYYY-MM-DD"},
	{domain.ErrDescriptionRequired, "description", "Description is required"},
	{domain.ErrDescriptionTooLong, "description", "Description must be 200 characters or less"},
	{domain.ErrCategoryRequired, "category", "Category is required"},
	{domain.ErrInvalidAmount, "amount", "Amount must be greater than zero"},
	{domain.ErrInvalidBudget, "budget", "Budget must be greater than zero"},
	{domain.ErrInvalidLimit, "limit", "Limit must be greater than zero"},
	{domain.ErrBalanceExceedsLimit, "balance", "Balance cannot exceed the credit limit"},
}

// validationProblem writes a 400 for a failed Validate call.
// negativeField names the field ErrNegativeAmount refers to for this input.
func validationProblem(c echo.Context, err error, negativeField string) error {
	if errors.Is(err, domain.ErrNegativeAmount) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: negativeField, Message: "Value cannot be negative"},
		})
	}
	for _, fe := range fieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: fe.field, Message: fe.message},
			})
		}
	}
	return NewValidationError(c, err.Error(), nil)
}

// parseID reads the :id path parameter
func parseID(c echo.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}
