package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreditCard struct {
	ID      int32           `json:"id"`
	Name    string          `json:"name"`
	Limit   decimal.Decimal `json:"limit"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color"`
}

type NewCreditCard struct {
	Name    string          `json:"name"`
	Limit   decimal.Decimal `json:"limit"`
	Balance decimal.Decimal `json:"balance"`
	Color   string          `json:"color"`
}

// Validate checks the add-card form rules, which cap the balance at the limit
func (c NewCreditCard) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if !c.Limit.IsPositive() {
		return ErrInvalidLimit
	}
	if c.Balance.IsNegative() {
		return ErrNegativeAmount
	}
	if c.Balance.GreaterThan(c.Limit) {
		return ErrBalanceExceedsLimit
	}
	return nil
}

// Validate checks the edit-card form rules. The balance may exceed the limit on edit.
func (c CreditCard) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if !c.Limit.IsPositive() {
		return ErrInvalidLimit
	}
	if c.Balance.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Available returns the unused credit (negative when over the limit)
func (c CreditCard) Available() decimal.Decimal {
	return c.Limit.Sub(c.Balance)
}

// Utilization returns balance/limit, or zero for a non-positive limit
func (c CreditCard) Utilization() decimal.Decimal {
	if !c.Limit.IsPositive() {
		return decimal.Zero
	}
	return c.Balance.Div(c.Limit)
}
