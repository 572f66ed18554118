package service

import (
	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	budgetRedAbove    = decimal.NewFromInt(90)
	budgetYellowAbove = decimal.NewFromInt(75)
	savingsGreenFrom  = decimal.NewFromInt(20)
	savingsYellowFrom = decimal.NewFromInt(10)
)

// DashboardService derives the dashboard figures from a document snapshot
type DashboardService struct{}

// NewDashboardService creates a new DashboardService
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// Summary computes the dashboard summary. It never modifies doc.
func (s *DashboardService) Summary(doc domain.BudgetDocument) domain.DashboardSummary {
	income := doc.EffectiveIncome()
	usedPercent := percentOf(doc.TotalExpenses, doc.TotalBudget)
	netSavings := income.Sub(doc.TotalExpenses)
	savingsRate := percentOf(netSavings, income)

	summary := domain.DashboardSummary{
		TotalBudget:       doc.TotalBudget,
		TotalExpenses:     doc.TotalExpenses,
		Remaining:         doc.Remaining(),
		BudgetUsedPercent: usedPercent.Round(1),
		BudgetStatus:      budgetStatus(usedPercent),
		TotalIncome:       income,
		NetSavings:        netSavings,
		SavingsRate:       savingsRate.Round(1),
		SavingsStatus:     savingsStatus(savingsRate),
		TopCategory:       topCategory(doc.Categories),
		CreditCards:       make([]domain.CardUtilization, 0, len(doc.CreditCards)),
		TotalCreditLimit:  decimal.Zero,
		TotalCreditUsed:   decimal.Zero,
	}

	for _, card := range doc.CreditCards {
		summary.CreditCards = append(summary.CreditCards, domain.CardUtilization{
			ID:                 card.ID,
			Name:               card.Name,
			Limit:              card.Limit,
			Balance:            card.Balance,
			Available:          card.Available(),
			UtilizationPercent: card.Utilization().Mul(hundred).Round(1),
		})
		summary.TotalCreditLimit = summary.TotalCreditLimit.Add(card.Limit)
		summary.TotalCreditUsed = summary.TotalCreditUsed.Add(card.Balance)
	}

	return summary
}

// percentOf returns part/whole*100, or zero when whole is not positive
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

func budgetStatus(usedPercent decimal.Decimal) domain.StatusColor {
	switch {
	case usedPercent.GreaterThan(budgetRedAbove):
		return domain.StatusRed
	case usedPercent.GreaterThan(budgetYellowAbove):
		return domain.StatusYellow
	default:
		return domain.StatusGreen
	}
}

func savingsStatus(rate decimal.Decimal) domain.StatusColor {
	switch {
	case rate.GreaterThanOrEqual(savingsGreenFrom):
		return domain.StatusGreen
	case rate.GreaterThanOrEqual(savingsYellowFrom):
		return domain.StatusYellow
	default:
		return domain.StatusRed
	}
}

// topCategory returns the category with the highest actual spend, first one on ties
func topCategory(categories []domain.ExpenseCategory) *domain.ExpenseCategory {
	if len(categories) == 0 {
		return nil
	}
	top := categories[0]
	for _, c := range categories[1:] {
		if c.Actual.GreaterThan(top.Actual) {
			top = c
		}
	}
	return &top
}
