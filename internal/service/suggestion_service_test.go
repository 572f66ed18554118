package service

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(suggestions []domain.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Title
	}
	return out
}

func TestSuggestionService_DefaultDocument(t *testing.T) {
	svc := NewSuggestionService()
	got := svc.Suggestions(domain.DefaultDocument(), storeNow)

	require.Len(t, got, 3)
	assert.Equal(t, domain.SuggestionWarning, got[0].Level)
	assert.Equal(t, "Budget nearly depleted", got[0].Title)
	assert.Contains(t, got[0].Message, "$195.00")
	assert.Contains(t, got[0].Message, "7.5%")

	assert.Equal(t, domain.SuggestionSuccess, got[1].Level)
	assert.Contains(t, got[1].Message, "42.7%")

	assert.Equal(t, domain.SuggestionInfo, got[2].Level)
	assert.Equal(t, "Income not fully budgeted", got[2].Title)
	assert.Contains(t, got[2].Message, "61.9%")
}

func TestSuggestionService_OverBudgetAndLowSavings(t *testing.T) {
	doc := domain.BudgetDocument{
		TotalBudget:   dec(1000),
		TotalExpenses: dec(1200),
		TotalIncome:   dec(1250),
		Categories: []domain.ExpenseCategory{
			{ID: 1, Name: "Food", Budget: dec(500), Actual: dec(560)},
			{ID: 2, Name: "Fun", Budget: dec(100), Actual: dec(105)},
		},
	}

	got := NewSuggestionService().Suggestions(doc, storeNow)

	assert.Equal(t, []string{"You are over budget", "Low savings rate", "Food budget exceeded"}, titles(got))
	assert.Equal(t, domain.SuggestionDanger, got[0].Level)
	assert.Contains(t, got[0].Message, "$200.00")
	assert.Contains(t, got[1].Message, "4.0%")
	assert.Contains(t, got[2].Message, "$60.00 (12.0% over)")
}

func TestSuggestionService_UnderutilizedOnlyInLastWeek(t *testing.T) {
	doc := domain.BudgetDocument{
		TotalBudget:   dec(1000),
		TotalExpenses: dec(500),
		TotalIncome:   dec(1300),
		Categories: []domain.ExpenseCategory{
			{ID: 1, Name: "Travel", Budget: dec(400), Actual: dec(100)},
		},
	}
	svc := NewSuggestionService()

	midMonth := svc.Suggestions(doc, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC))
	assert.NotContains(t, titles(midMonth), "Travel budget underutilized")

	lastWeek := svc.Suggestions(doc, time.Date(2026, time.October, 28, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, titles(lastWeek), "Travel budget underutilized")
}

func TestSuggestionService_CardUtilization(t *testing.T) {
	doc := domain.BudgetDocument{
		TotalBudget: dec(1000),
		TotalIncome: dec(1200),
		CreditCards: []domain.CreditCard{
			{ID: 1, Name: "Exactly30", Limit: dec(1000), Balance: dec(300)},
			{ID: 2, Name: "Medium", Limit: dec(1000), Balance: dec(500)},
			{ID: 3, Name: "High", Limit: dec(1000), Balance: dec(800)},
			{ID: 4, Name: "NoLimit", Limit: dec(0), Balance: dec(50)},
		},
	}

	got := NewSuggestionService().Suggestions(doc, storeNow)

	var cards []domain.Suggestion
	for _, s := range got {
		if s.Title == "High utilization on Medium" || s.Title == "High utilization on High" || s.Title == "High utilization on Exactly30" {
			cards = append(cards, s)
		}
	}
	require.Len(t, cards, 2)
	assert.Equal(t, domain.SuggestionWarning, cards[0].Level)
	assert.Equal(t, domain.SuggestionDanger, cards[1].Level)
	assert.Contains(t, cards[1].Message, "80.0%")
}

func TestSuggestionService_ZeroIncomeSkipsIncomeRules(t *testing.T) {
	doc := domain.BudgetDocument{TotalBudget: dec(100), TotalExpenses: dec(10)}

	got := NewSuggestionService().Suggestions(doc, storeNow)
	assert.Empty(t, got)
}
