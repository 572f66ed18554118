package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is an expense record. Category refers to ExpenseCategory.Name by value.
// Transactions are immutable once created; they can only be deleted.
type Transaction struct {
	ID          int32           `json:"id"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// NewTransaction is the input for recording an expense
type NewTransaction struct {
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Validate checks the transaction form rules
func (t NewTransaction) Validate() error {
	if t.Date.IsZero() {
		return ErrDateRequired
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return validateDescription(t.Description)
}

func validateDescription(desc string) error {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ErrDescriptionRequired
	}
	if len(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
