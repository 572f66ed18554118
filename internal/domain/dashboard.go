package domain

import "github.com/shopspring/decimal"

// StatusColor is the traffic-light level attached to a dashboard figure
type StatusColor string

const (
	StatusGreen  StatusColor = "green"
	StatusYellow StatusColor = "yellow"
	StatusRed    StatusColor = "red"
)

// DashboardSummary contains the headline figures derived from a document snapshot
type DashboardSummary struct {
	TotalBudget       decimal.Decimal   `json:"totalBudget"`
	TotalExpenses     decimal.Decimal   `json:"totalExpenses"`
	Remaining         decimal.Decimal   `json:"remaining"`
	BudgetUsedPercent decimal.Decimal   `json:"budgetUsedPercent"`
	BudgetStatus      StatusColor       `json:"budgetStatus"`
	TotalIncome       decimal.Decimal   `json:"totalIncome"`
	NetSavings        decimal.Decimal   `json:"netSavings"`
	SavingsRate       decimal.Decimal   `json:"savingsRate"`
	SavingsStatus     StatusColor       `json:"savingsStatus"`
	TopCategory       *ExpenseCategory  `json:"topCategory"`
	CreditCards       []CardUtilization `json:"creditCards"`
	TotalCreditLimit  decimal.Decimal   `json:"totalCreditLimit"`
	TotalCreditUsed   decimal.Decimal   `json:"totalCreditUsed"`
}

// CardUtilization is a card with its derived availability and utilization percentage
type CardUtilization struct {
	ID                 int32           `json:"id"`
	Name               string          `json:"name"`
	Limit              decimal.Decimal `json:"limit"`
	Balance            decimal.Decimal `json:"balance"`
	Available          decimal.Decimal `json:"available"`
	UtilizationPercent decimal.Decimal `json:"utilizationPercent"`
}

// SuggestionLevel classifies a budget suggestion
type SuggestionLevel string

const (
	SuggestionDanger  SuggestionLevel = "danger"
	SuggestionWarning SuggestionLevel = "warning"
	SuggestionInfo    SuggestionLevel = "info"
	SuggestionSuccess SuggestionLevel = "success"
)

// Suggestion is one rule-based budget tip
type Suggestion struct {
	Level   SuggestionLevel `json:"level"`
	Title   string          `json:"title"`
	Message string          `json:"message"`
}
