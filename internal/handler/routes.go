package handler

import (
	"github.com/dafibh/fortuna/budget-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler the server exposes
type Handlers struct {
	Health      *HealthHandler
	Budget      *BudgetHandler
	Category    *CategoryHandler
	Transaction *TransactionHandler
	CreditCard  *CreditCardHandler
	Dashboard   *DashboardHandler
	Export      *ExportHandler
	WebSocket   *WebSocketHandler
}

// RegisterRoutes sets up all routes. authMiddleware may be nil when auth is disabled;
// rateLimiter may be nil to disable rate limiting.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", h.Health.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// WebSocket authenticates with a query token since browsers cannot set headers
	e.GET("/ws", h.WebSocket.HandleWS)

	// API version 1
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	if rateLimiter != nil {
		api.Use(middleware.RateLimitMiddleware(rateLimiter))
	}

	budget := api.Group("/budget")
	budget.GET("", h.Budget.GetBudget)
	budget.POST("/reset", h.Budget.ResetBudget)
	budget.PUT("/total-budget", h.Budget.UpdateTotalBudget)
	budget.PUT("/income", h.Budget.UpdateIncome)

	categories := api.Group("/categories")
	categories.POST("", h.Category.CreateCategory)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	incomeCategories := api.Group("/income-categories")
	incomeCategories.POST("", h.Category.CreateIncomeCategory)
	incomeCategories.DELETE("/:id", h.Category.DeleteIncomeCategory)

	transactions := api.Group("/transactions")
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	incomes := api.Group("/incomes")
	incomes.POST("", h.Transaction.CreateIncome)
	incomes.DELETE("/:id", h.Transaction.DeleteIncome)

	creditCards := api.Group("/credit-cards")
	creditCards.POST("", h.CreditCard.CreateCreditCard)
	creditCards.PUT("/:id", h.CreditCard.UpdateCreditCard)
	creditCards.DELETE("/:id", h.CreditCard.DeleteCreditCard)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", h.Dashboard.GetSummary)
	dashboard.GET("/suggestions", h.Dashboard.GetSuggestions)

	export := api.Group("/export")
	export.GET("/pdf", h.Export.ExportPDF)
	export.GET("/xlsx", h.Export.ExportXLSX)
}
