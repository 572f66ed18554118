package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FallbackIncomeCategory is the category name recorded when an income's category id is unknown
const FallbackIncomeCategory = "Other"

type IncomeCategory struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Income is an income record. Category holds the income category name, not its id.
type Income struct {
	ID          int32           `json:"id"`
	Date        Date            `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type NewIncomeCategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Validate requires both name and color
func (c NewIncomeCategory) Validate() error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if strings.TrimSpace(c.Color) == "" {
		return ErrColorRequired
	}
	return nil
}

// NewIncome is the input for recording income.
// CategoryID is resolved against the document's income categories when the income is added.
type NewIncome struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  int32           `json:"category"`
	Date        Date            `json:"date"`
}

// Validate checks the income form rules
func (i NewIncome) Validate() error {
	if err := validateDescription(i.Description); err != nil {
		return err
	}
	if !i.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if i.CategoryID <= 0 {
		return ErrCategoryRequired
	}
	if i.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}
