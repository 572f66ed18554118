package domain

import "errors"

// Domain errors
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrIncomeCategoryNotFound = errors.New("income category not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrIncomeNotFound         = errors.New("income not found")
	ErrCreditCardNotFound     = errors.New("credit card not found")
	ErrDocumentNotFound       = errors.New("budget document not found")
	ErrCorruptDocument        = errors.New("budget document is corrupt")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrColorRequired          = errors.New("color is required")
	ErrDateRequired           = errors.New("date is required")
	ErrDescriptionRequired    = errors.New("description is required")
	ErrDescriptionTooLong     = errors.New("description exceeds maximum length")
	ErrCategoryRequired       = errors.New("category is required")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInvalidBudget          = errors.New("budget must be greater than zero")
	ErrInvalidLimit           = errors.New("limit must be greater than zero")
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrBalanceExceedsLimit    = errors.New("balance cannot exceed limit")
	ErrInvalidDate            = errors.New("invalid date")
	ErrUnsupportedFormat      = errors.New("unsupported export format")
)

// Validation constants
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 200
)
