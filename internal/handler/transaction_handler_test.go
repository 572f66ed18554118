package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	store, _, publisher := newLoadedStore(t)
	h := NewTransactionHandler(store)

	body := `{"date":"2026-10-19","category":"Food","amount":"25.50","description":"Lunch"}`
	c, rec := newRequest(http.MethodPost, "/api/v1/transactions", body, "")
	require.NoError(t, h.CreateTransaction(c))
	requireStatus(t, rec, http.StatusCreated)

	var tx domain.Transaction
	decodeBody(t, rec, &tx)
	assert.Equal(t, int32(16), tx.ID)
	assert.Equal(t, "2026-10-19", tx.Date.String())

	doc := store.Snapshot()
	assert.Equal(t, "2430.5", doc.TotalExpenses.String())
	assert.Equal(t, "495.5", doc.Categories[1].Actual.String())
	assert.Equal(t, []string{"transaction.created"}, publisher.Types())
}

func TestTransactionHandler_CreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing date", `{"category":"Food","amount":5,"description":"x"}`, "date"},
		{"missing category", `{"date":"2026-10-19","amount":5,"description":"x"}`, "category"},
		{"zero amount", `{"date":"2026-10-19","category":"Food","amount":0,"description":"x"}`, "amount"},
		{"missing description", `{"date":"2026-10-19","category":"Food","amount":5}`, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, _ := newLoadedStore(t)
			h := NewTransactionHandler(store)

			c, rec := newRequest(http.MethodPost, "/api/v1/transactions", tt.body, "")
			require.NoError(t, h.CreateTransaction(c))
			requireStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, tt.field, decodeProblem(t, rec).Errors[0].Field)
		})
	}
}

func TestTransactionHandler_CreateTransaction_BadDate(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewTransactionHandler(store)

	c, rec := newRequest(http.MethodPost, "/api/v1/transactions", `{"date":"19/10/2026","category":"Food","amount":5,"description":"x"}`, "")
	require.NoError(t, h.CreateTransaction(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewTransactionHandler(store)

	c, rec := newRequest(http.MethodDelete, "/api/v1/transactions/1", "", "1")
	require.NoError(t, h.DeleteTransaction(c))
	requireStatus(t, rec, http.StatusNoContent)

	doc := store.Snapshot()
	assert.Len(t, doc.Transactions, 14)
	assert.Equal(t, "1455", doc.TotalExpenses.String())

	c, rec = newRequest(http.MethodDelete, "/api/v1/transactions/1", "", "1")
	require.NoError(t, h.DeleteTransaction(c))
	requireStatus(t, rec, http.StatusNotFound)
}

func TestTransactionHandler_CreateIncome(t *testing.T) {
	store, _, publisher := newLoadedStore(t)
	h := NewTransactionHandler(store)

	body := `{"description":"Side project","amount":500,"category":2,"date":"2026-10-19"}`
	c, rec := newRequest(http.MethodPost, "/api/v1/incomes", body, "")
	require.NoError(t, h.CreateIncome(c))
	requireStatus(t, rec, http.StatusCreated)

	var income domain.Income
	decodeBody(t, rec, &income)
	assert.Equal(t, "Freelance", income.Category)

	doc := store.Snapshot()
	assert.Equal(t, "4700", doc.TotalIncome.String())
	assert.Equal(t, []string{"income.created"}, publisher.Types())
}

func TestTransactionHandler_CreateIncome_Validation(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewTransactionHandler(store)

	c, rec := newRequest(http.MethodPost, "/api/v1/incomes", `{"description":"x","amount":10,"date":"2026-10-19"}`, "")
	require.NoError(t, h.CreateIncome(c))
	requireStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "category", decodeProblem(t, rec).Errors[0].Field)
}

func TestTransactionHandler_DeleteIncome(t *testing.T) {
	store, _, _ := newLoadedStore(t)
	h := NewTransactionHandler(store)

	c, rec := newRequest(http.MethodDelete, "/api/v1/incomes/1", "", "1")
	require.NoError(t, h.DeleteIncome(c))
	requireStatus(t, rec, http.StatusNoContent)

	c, rec = newRequest(http.MethodDelete, "/api/v1/incomes/42", "", "42")
	require.NoError(t, h.DeleteIncome(c))
	requireStatus(t, rec, http.StatusNotFound)
}
