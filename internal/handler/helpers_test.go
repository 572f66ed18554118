package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/service"
	"github.com/dafibh/fortuna/budget-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// newLoadedStore returns a store holding the default document
func newLoadedStore(t *testing.T) (*service.BudgetStore, *testutil.MockDocumentRepository, *testutil.MockEventPublisher) {
	t.Helper()
	repo := testutil.NewMockDocumentRepository()
	publisher := testutil.NewMockEventPublisher()
	store := service.NewBudgetStore(repo)
	store.SetEventPublisher(publisher)
	store.SetClock(testutil.FixedClock(testNow))
	store.Load(context.Background())
	return store, repo, publisher
}

// newRequest builds an echo context for a handler call. id, when non-empty, is bound to :id.
func newRequest(method, path, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) ProblemDetails {
	t.Helper()
	var problem ProblemDetails
	decodeBody(t, rec, &problem)
	return problem
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
