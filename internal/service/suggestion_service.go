package service

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/util"
	"github.com/shopspring/decimal"
)

var (
	lowRemainingRatio      = decimal.RequireFromString("0.1")
	categoryOverRatio      = decimal.RequireFromString("0.1")
	underusedRatio         = decimal.RequireFromString("0.5")
	utilizationWarning     = decimal.RequireFromString("0.3")
	utilizationDanger      = decimal.RequireFromString("0.7")
	unallocatedIncomeRatio = decimal.RequireFromString("0.7")
)

// SuggestionService produces rule-based budget tips from a document snapshot
type SuggestionService struct{}

// NewSuggestionService creates a new SuggestionService
func NewSuggestionService() *SuggestionService {
	return &SuggestionService{}
}

// Suggestions evaluates every rule against doc. now decides whether the month is
// in its final week. Rules that would divide by zero are skipped.
func (s *SuggestionService) Suggestions(doc domain.BudgetDocument, now time.Time) []domain.Suggestion {
	suggestions := make([]domain.Suggestion, 0)
	income := doc.EffectiveIncome()
	remaining := doc.Remaining()

	if remaining.IsNegative() {
		suggestions = append(suggestions, domain.Suggestion{
			Level:   domain.SuggestionDanger,
			Title:   "You are over budget",
			Message: fmt.Sprintf("You've exceeded your budget by $%s. Consider reviewing your expenses and adjusting your budget.", remaining.Abs().StringFixed(2)),
		})
	} else if remaining.LessThan(doc.TotalBudget.Mul(lowRemainingRatio)) {
		suggestions = append(suggestions, domain.Suggestion{
			Level: domain.SuggestionWarning,
			Title: "Budget nearly depleted",
			Message: fmt.Sprintf("You have only $%s remaining (%s%% of budget). Consider limiting non-essential spending.",
				remaining.StringFixed(2), percentOf(remaining, doc.TotalBudget).StringFixed(1)),
		})
	}

	if income.IsPositive() {
		savingsRate := percentOf(income.Sub(doc.TotalExpenses), income)
		if savingsRate.LessThan(savingsYellowFrom) {
			suggestions = append(suggestions, domain.Suggestion{
				Level:   domain.SuggestionWarning,
				Title:   "Low savings rate",
				Message: fmt.Sprintf("Your current savings rate is %s%%. Financial experts typically recommend saving at least 20%% of your income.", savingsRate.StringFixed(1)),
			})
		} else if savingsRate.GreaterThanOrEqual(savingsGreenFrom) {
			suggestions = append(suggestions, domain.Suggestion{
				Level:   domain.SuggestionSuccess,
				Title:   "Healthy savings rate",
				Message: fmt.Sprintf("Great job! You're saving %s%% of your income, which meets or exceeds the recommended 20%% savings rate.", savingsRate.StringFixed(1)),
			})
		}
	}

	lastWeek := util.IsLastWeekOfMonth(now)
	for _, c := range doc.Categories {
		if !c.Budget.IsPositive() {
			continue
		}
		over := c.Actual.Sub(c.Budget)
		if over.IsPositive() && over.GreaterThan(c.Budget.Mul(categoryOverRatio)) {
			suggestions = append(suggestions, domain.Suggestion{
				Level: domain.SuggestionDanger,
				Title: fmt.Sprintf("%s budget exceeded", c.Name),
				Message: fmt.Sprintf("You've exceeded your %s budget by $%s (%s%% over). Look for ways to reduce spending in this category.",
					c.Name, over.StringFixed(2), percentOf(over, c.Budget).StringFixed(1)),
			})
		}
		if lastWeek && c.Actual.LessThan(c.Budget.Mul(underusedRatio)) {
			suggestions = append(suggestions, domain.Suggestion{
				Level: domain.SuggestionInfo,
				Title: fmt.Sprintf("%s budget underutilized", c.Name),
				Message: fmt.Sprintf("You've used only %s%% of your %s budget. Consider reallocating these funds or saving the excess.",
					percentOf(c.Actual, c.Budget).StringFixed(1), c.Name),
			})
		}
	}

	for _, card := range doc.CreditCards {
		utilization := card.Utilization()
		if !utilization.GreaterThan(utilizationWarning) {
			continue
		}
		level := domain.SuggestionWarning
		if utilization.GreaterThan(utilizationDanger) {
			level = domain.SuggestionDanger
		}
		suggestions = append(suggestions, domain.Suggestion{
			Level: level,
			Title: fmt.Sprintf("High utilization on %s", card.Name),
			Message: fmt.Sprintf("Your credit utilization on %s is %s%%. For optimal credit health, aim to keep utilization below 30%%.",
				card.Name, utilization.Mul(hundred).StringFixed(1)),
		})
	}

	if income.IsPositive() {
		ratio := doc.TotalBudget.Div(income)
		if ratio.LessThan(unallocatedIncomeRatio) {
			suggestions = append(suggestions, domain.Suggestion{
				Level: domain.SuggestionInfo,
				Title: "Income not fully budgeted",
				Message: fmt.Sprintf("Only %s%% of your income is allocated in your budget. Consider budgeting the remaining %s%% for savings or investments.",
					ratio.Mul(hundred).StringFixed(1), decimal.NewFromInt(1).Sub(ratio).Mul(hundred).StringFixed(1)),
			})
		}
	}

	return suggestions
}
