package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is a planned spending bucket.
// Actual is a cached running total of the transactions whose Category equals Name.
type ExpenseCategory struct {
	ID     int32           `json:"id"`
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Actual decimal.Decimal `json:"actual"`
	Color  string          `json:"color"`
}

// NewCategory is the input for adding an expense category
type NewCategory struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Actual decimal.Decimal `json:"actual"`
	Color  string          `json:"color"`
}

// Validate checks the category form rules
func (c NewCategory) Validate() error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if !c.Budget.IsPositive() {
		return ErrInvalidBudget
	}
	if c.Actual.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Validate checks a full category replacement
func (c ExpenseCategory) Validate() error {
	return NewCategory{Name: c.Name, Budget: c.Budget, Actual: c.Actual, Color: c.Color}.Validate()
}

// Remaining is the unspent part of the category budget (negative when over budget)
func (c ExpenseCategory) Remaining() decimal.Decimal {
	return c.Budget.Sub(c.Actual)
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
