package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func july(day int) Date {
	return NewDate(2025, time.July, day)
}

// DefaultDocument returns a fresh copy of the built-in sample dataset.
// It is used on first start, when stored data is unreadable, and by reset.
func DefaultDocument() BudgetDocument {
	return BudgetDocument{
		Categories: []ExpenseCategory{
			{ID: 1, Name: "Housing", Budget: dec(1000), Actual: dec(950), Color: "#3498db"},
			{ID: 2, Name: "Food", Budget: dec(500), Actual: dec(470), Color: "#2ecc71"},
			{ID: 3, Name: "Transportation", Budget: dec(300), Actual: dec(250), Color: "#e74c3c"},
			{ID: 4, Name: "Entertainment", Budget: dec(200), Actual: dec(180), Color: "#f39c12"},
			{ID: 5, Name: "Utilities", Budget: dec(250), Actual: dec(245), Color: "#9b59b6"},
			{ID: 6, Name: "Healthcare", Budget: dec(150), Actual: dec(100), Color: "#1abc9c"},
			{ID: 7, Name: "Personal", Budget: dec(200), Actual: dec(210), Color: "#e67e22"},
		},
		IncomeCategories: DefaultIncomeCategories(),
		Transactions: []Transaction{
			{ID: 1, Date: july(1), Category: "Housing", Amount: dec(950), Description: "Monthly rent"},
			{ID: 2, Date: july(2), Category: "Food", Amount: dec(85), Description: "Grocery shopping"},
			{ID: 3, Date: july(3), Category: "Transportation", Amount: dec(45), Description: "Gas"},
			{ID: 4, Date: july(5), Category: "Food", Amount: dec(65), Description: "Restaurant"},
			{ID: 5, Date: july(7), Category: "Utilities", Amount: dec(120), Description: "Electricity bill"},
			{ID: 6, Date: july(8), Category: "Entertainment", Amount: dec(50), Description: "Movie night"},
			{ID: 7, Date: july(10), Category: "Healthcare", Amount: dec(100), Description: "Doctor visit"},
			{ID: 8, Date: july(12), Category: "Food", Amount: dec(95), Description: "Grocery shopping"},
			{ID: 9, Date: july(15), Category: "Transportation", Amount: dec(50), Description: "Gas"},
			{ID: 10, Date: july(18), Category: "Food", Amount: dec(75), Description: "Restaurant"},
			{ID: 11, Date: july(20), Category: "Utilities", Amount: dec(125), Description: "Water bill"},
			{ID: 12, Date: july(22), Category: "Entertainment", Amount: dec(40), Description: "Streaming subscription"},
			{ID: 13, Date: july(25), Category: "Personal", Amount: dec(110), Description: "Clothing"},
			{ID: 14, Date: july(28), Category: "Food", Amount: dec(150), Description: "Grocery shopping"},
			{ID: 15, Date: july(30), Category: "Personal", Amount: dec(100), Description: "Haircut"},
		},
		Incomes: DefaultIncomes(),
		CreditCards: []CreditCard{
			{ID: 1, Name: "Chase Freedom", Limit: dec(5000), Balance: dec(1500), Color: "#3498db"},
			{ID: 2, Name: "American Express", Limit: dec(10000), Balance: dec(2500), Color: "#2ecc71"},
		},
		MonthlySummary: []MonthlySummaryEntry{
			{Month: "Jan", Income: dec(4000), Expenses: dec(3000)},
			{Month: "Feb", Income: dec(4200), Expenses: dec(3100)},
			{Month: "Mar", Income: dec(3800), Expenses: dec(2800)},
			{Month: "Apr", Income: dec(4100), Expenses: dec(3300)},
			{Month: "May", Income: dec(4300), Expenses: dec(3200)},
			{Month: "Jun", Income: dec(4150), Expenses: dec(3150)},
			{Month: "Jul", Income: dec(4200), Expenses: dec(3400)},
		},
		TotalBudget:   dec(2600),
		TotalExpenses: dec(2405),
		TotalIncome:   dec(4200),
		Income:        dec(4200),
	}
}

// DefaultIncomeCategories returns the built-in income categories
func DefaultIncomeCategories() []IncomeCategory {
	return []IncomeCategory{
		{ID: 1, Name: "Salary", Color: "#27ae60"},
		{ID: 2, Name: "Freelance", Color: "#2980b9"},
		{ID: 3, Name: "Investments", Color: "#8e44ad"},
		{ID: 4, Name: "Gifts", Color: "#d35400"},
		{ID: 5, Name: "Other", Color: "#16a085"},
	}
}

// DefaultIncomes returns the built-in income records
func DefaultIncomes() []Income {
	return []Income{
		{ID: 1, Date: july(1), Category: "Salary", Amount: dec(3500), Description: "Monthly salary"},
		{ID: 2, Date: july(10), Category: "Freelance", Amount: dec(500), Description: "Website project"},
		{ID: 3, Date: july(15), Category: "Investments", Amount: dec(150), Description: "Dividend payment"},
		{ID: 4, Date: july(20), Category: "Other", Amount: dec(50), Description: "Refund"},
	}
}
