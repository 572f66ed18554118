// Package budget holds the pure state transitions of the budget document.
//
// Every function takes a document value and returns the next document without
// modifying its input. Inputs are trusted: validation happens at the caller.
package budget

import (
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionResult describes the effect of adding or removing a transaction
type TransactionResult struct {
	Transaction domain.Transaction
	// CategoryMatched is false when no category carries the transaction's category name,
	// in which case only TotalExpenses changed.
	CategoryMatched bool
}

// IncomeResult describes the effect of adding or removing an income
type IncomeResult struct {
	Income domain.Income
	Period Period
}

func nextID[T any](items []T, id func(T) int32) int32 {
	var highest int32
	for _, item := range items {
		if v := id(item); v > highest {
			highest = v
		}
	}
	return highest + 1
}

func indexOf[T any](items []T, id func(T) int32, want int32) int {
	for i, item := range items {
		if id(item) == want {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func categoryID(c domain.ExpenseCategory) int32 { return c.ID }
func incomeCategoryID(c domain.IncomeCategory) int32 { return c.ID }
func transactionID(t domain.Transaction) int32 { return t.ID }
func incomeID(i domain.Income) int32 { return i.ID }
func creditCardID(c domain.CreditCard) int32 { return c.ID }

// AddCategory appends a category with the next free id
func AddCategory(doc domain.BudgetDocument, in domain.NewCategory) (domain.BudgetDocument, domain.ExpenseCategory) {
	next := doc.Clone()
	category := domain.ExpenseCategory{
		ID:     nextID(doc.Categories, categoryID),
		Name:   in.Name,
		Budget: in.Budget,
		Actual: in.Actual,
		Color:  in.Color,
	}
	next.Categories = append(next.Categories, category)
	return next, category
}

// UpdateCategory replaces the category with the same id in place.
// Transactions are untouched, so a rename detaches them from the category.
func UpdateCategory(doc domain.BudgetDocument, category domain.ExpenseCategory) (domain.BudgetDocument, error) {
	i := indexOf(doc.Categories, categoryID, category.ID)
	if i < 0 {
		return doc, domain.ErrCategoryNotFound
	}
	next := doc.Clone()
	next.Categories[i] = category
	return next, nil
}

// DeleteCategory removes a category. Transactions referencing its name are kept.
func DeleteCategory(doc domain.BudgetDocument, id int32) (domain.BudgetDocument, domain.ExpenseCategory, error) {
	i := indexOf(doc.Categories, categoryID, id)
	if i < 0 {
		return doc, domain.ExpenseCategory{}, domain.ErrCategoryNotFound
	}
	removed := doc.Categories[i]
	next := doc.Clone()
	next.Categories = removeAt(next.Categories, i)
	return next, removed, nil
}

// AddIncomeCategory appends an income category with the next free id
func AddIncomeCategory(doc domain.BudgetDocument, in domain.NewIncomeCategory) (domain.BudgetDocument, domain.IncomeCategory) {
	next := doc.Clone()
	category := domain.IncomeCategory{
		ID:    nextID(doc.IncomeCategories, incomeCategoryID),
		Name:  in.Name,
		Color: in.Color,
	}
	next.IncomeCategories = append(next.IncomeCategories, category)
	return next, category
}

// DeleteIncomeCategory removes an income category. Incomes referencing its name are kept.
func DeleteIncomeCategory(doc domain.BudgetDocument, id int32) (domain.BudgetDocument, domain.IncomeCategory, error) {
	i := indexOf(doc.IncomeCategories, incomeCategoryID, id)
	if i < 0 {
		return doc, domain.IncomeCategory{}, domain.ErrIncomeCategoryNotFound
	}
	removed := doc.IncomeCategories[i]
	next := doc.Clone()
	next.IncomeCategories = removeAt(next.IncomeCategories, i)
	return next, removed, nil
}

// AddTransaction records an expense, adding its amount to TotalExpenses and to the
// actual spend of the category with the same name, if there is one.
func AddTransaction(doc domain.BudgetDocument, in domain.NewTransaction) (domain.BudgetDocument, TransactionResult) {
	next := doc.Clone()
	tx := domain.Transaction{
		ID:          nextID(doc.Transactions, transactionID),
		Date:        in.Date,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
	}
	next.Transactions = append(next.Transactions, tx)
	matched := applyExpense(&next, tx.Category, tx.Amount)
	return next, TransactionResult{Transaction: tx, CategoryMatched: matched}
}

// DeleteTransaction removes an expense and reverses its effect on the totals
func DeleteTransaction(doc domain.BudgetDocument, id int32) (domain.BudgetDocument, TransactionResult, error) {
	i := indexOf(doc.Transactions, transactionID, id)
	if i < 0 {
		return doc, TransactionResult{}, domain.ErrTransactionNotFound
	}
	tx := doc.Transactions[i]
	next := doc.Clone()
	next.Transactions = removeAt(next.Transactions, i)
	matched := applyExpense(&next, tx.Category, tx.Amount.Neg())
	return next, TransactionResult{Transaction: tx, CategoryMatched: matched}, nil
}

// applyExpense adds delta to TotalExpenses and to every category named name
func applyExpense(doc *domain.BudgetDocument, name string, delta decimal.Decimal) bool {
	doc.TotalExpenses = doc.TotalExpenses.Add(delta)
	matched := false
	for i := range doc.Categories {
		if doc.Categories[i].Name == name {
			doc.Categories[i].Actual = doc.Categories[i].Actual.Add(delta)
			matched = true
		}
	}
	return matched
}

// AddIncome records income. The category id is resolved to its name, falling back
// to "Other". A zero date means today. Income dated in the current month is also
// added to the current monthly summary entry.
func AddIncome(doc domain.BudgetDocument, in domain.NewIncome, now time.Time) (domain.BudgetDocument, IncomeResult) {
	categoryName := domain.FallbackIncomeCategory
	if i := indexOf(doc.IncomeCategories, incomeCategoryID, in.CategoryID); i >= 0 {
		categoryName = doc.IncomeCategories[i].Name
	}

	date := in.Date
	if date.IsZero() {
		date = domain.DateOf(now)
	}

	next := doc.Clone()
	income := domain.Income{
		ID:          nextID(doc.Incomes, incomeID),
		Date:        date,
		Category:    categoryName,
		Amount:      in.Amount,
		Description: in.Description,
	}
	next.Incomes = append(next.Incomes, income)
	period := applyIncome(&next, income, in.Amount, now)
	return next, IncomeResult{Income: income, Period: period}
}

// DeleteIncome removes income and reverses its effect on the totals and the
// current monthly summary entry
func DeleteIncome(doc domain.BudgetDocument, id int32, now time.Time) (domain.BudgetDocument, IncomeResult, error) {
	i := indexOf(doc.Incomes, incomeID, id)
	if i < 0 {
		return doc, IncomeResult{}, domain.ErrIncomeNotFound
	}
	income := doc.Incomes[i]
	next := doc.Clone()
	next.Incomes = removeAt(next.Incomes, i)
	period := applyIncome(&next, income, income.Amount.Neg(), now)
	return next, IncomeResult{Income: income, Period: period}, nil
}

func applyIncome(doc *domain.BudgetDocument, income domain.Income, delta decimal.Decimal, now time.Time) Period {
	// The legacy alias is brought back in line with TotalIncome on every change
	total := doc.EffectiveIncome().Add(delta)
	doc.TotalIncome = total
	doc.Income = total

	period := ResolveCurrentPeriod(doc.MonthlySummary, income.Date, now)
	if period.Applies {
		entry := &doc.MonthlySummary[period.Index]
		entry.Income = entry.Income.Add(delta)
	}
	return period
}

// AddCreditCard appends a card with the next free id
func AddCreditCard(doc domain.BudgetDocument, in domain.NewCreditCard) (domain.BudgetDocument, domain.CreditCard) {
	next := doc.Clone()
	card := domain.CreditCard{
		ID:      nextID(doc.CreditCards, creditCardID),
		Name:    in.Name,
		Limit:   in.Limit,
		Balance: in.Balance,
		Color:   in.Color,
	}
	next.CreditCards = append(next.CreditCards, card)
	return next, card
}

// UpdateCreditCard replaces the card with the same id
func UpdateCreditCard(doc domain.BudgetDocument, card domain.CreditCard) (domain.BudgetDocument, error) {
	i := indexOf(doc.CreditCards, creditCardID, card.ID)
	if i < 0 {
		return doc, domain.ErrCreditCardNotFound
	}
	next := doc.Clone()
	next.CreditCards[i] = card
	return next, nil
}

// DeleteCreditCard removes a card by id
func DeleteCreditCard(doc domain.BudgetDocument, id int32) (domain.BudgetDocument, domain.CreditCard, error) {
	i := indexOf(doc.CreditCards, creditCardID, id)
	if i < 0 {
		return doc, domain.CreditCard{}, domain.ErrCreditCardNotFound
	}
	removed := doc.CreditCards[i]
	next := doc.Clone()
	next.CreditCards = removeAt(next.CreditCards, i)
	return next, removed, nil
}

// UpdateTotalBudget sets the total budget directly
func UpdateTotalBudget(doc domain.BudgetDocument, amount decimal.Decimal) domain.BudgetDocument {
	next := doc.Clone()
	next.TotalBudget = amount
	return next
}

// OverrideIncome sets TotalIncome and Income directly. The result no longer has to
// equal the sum of the incomes list; later income changes apply on top of the override.
func OverrideIncome(doc domain.BudgetDocument, amount decimal.Decimal) domain.BudgetDocument {
	next := doc.Clone()
	next.TotalIncome = amount
	next.Income = amount
	return next
}

// Reset returns the default document
func Reset() domain.BudgetDocument {
	return domain.DefaultDocument()
}
