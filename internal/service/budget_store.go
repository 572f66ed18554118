package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dafibh/fortuna/budget-backend/internal/budget"
	"github.com/dafibh/fortuna/budget-backend/internal/domain"
	"github.com/dafibh/fortuna/budget-backend/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LoadSource tells where the document came from at startup
type LoadSource string

const (
	LoadSourceStored  LoadSource = "stored"
	LoadSourceDefault LoadSource = "default"
)

// LoadResult describes the outcome of BudgetStore.Load
type LoadResult struct {
	Source    LoadSource
	Migration budget.Migration
}

// ChangePayload is the payload of every store event: the changed entity, if any,
// plus the full document snapshot after the change
type ChangePayload struct {
	Entity   interface{}           `json:"entity,omitempty"`
	Document domain.BudgetDocument `json:"document"`
}

// BudgetStore owns the budget document. Every mutation computes the next document
// with a pure transition, swaps it in, persists it and publishes an event.
// Mutations are serialized; snapshots handed out are deep copies.
type BudgetStore struct {
	repo           domain.DocumentRepository
	eventPublisher websocket.EventPublisher
	now            func() time.Time

	mu      sync.RWMutex
	doc     domain.BudgetDocument
	loading bool
}

// NewBudgetStore creates a store that is loading until Load completes
func NewBudgetStore(repo domain.DocumentRepository) *BudgetStore {
	return &BudgetStore{
		repo:    repo,
		now:     time.Now,
		doc:     domain.BudgetDocument{}.Clone(),
		loading: true,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetStore) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// SetClock overrides the time source used to decide the current period
func (s *BudgetStore) SetClock(now func() time.Time) {
	s.now = now
}

// publishEvent publishes an event if a publisher is configured
func (s *BudgetStore) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// Load reads the stored document, falling back to the defaults when nothing usable
// is stored. Missing fields of older document shapes are backfilled. Nothing is
// written during load.
func (s *BudgetStore) Load(ctx context.Context) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	doc, result := s.read(ctx)
	s.doc = doc
	s.loading = false

	log.Info().
		Str("source", string(result.Source)).
		Int("categories", len(doc.Categories)).
		Int("transactions", len(doc.Transactions)).
		Int("incomes", len(doc.Incomes)).
		Msg("Budget document loaded")

	return result
}

func (s *BudgetStore) read(ctx context.Context) (domain.BudgetDocument, LoadResult) {
	fallback := LoadResult{Source: LoadSourceDefault}

	raw, err := s.repo.Get(ctx, domain.DocumentKey)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			log.Error().Err(err).Str("key", domain.DocumentKey).Msg("Failed to read budget document, using defaults")
		}
		return domain.DefaultDocument(), fallback
	}

	doc, migration, err := budget.Decode(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			log.Warn().Err(err).Str("key", domain.DocumentKey).Msg("Stored budget document is unreadable, using defaults")
		}
		return domain.DefaultDocument(), fallback
	}

	if migration.Applied() {
		log.Info().
			Bool("income_categories", migration.IncomeCategories).
			Bool("incomes", migration.Incomes).
			Bool("total_income", migration.TotalIncome).
			Bool("from_legacy_income", migration.FromLegacyIncome).
			Msg("Backfilled fields missing from stored budget document")
	}

	return doc, LoadResult{Source: LoadSourceStored, Migration: migration}
}

// Snapshot returns a deep copy of the current document
func (s *BudgetStore) Snapshot() domain.BudgetDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// IsLoading reports whether the initial load is still in progress
func (s *BudgetStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// commit swaps in next, persists it and publishes the change. Caller holds s.mu.
func (s *BudgetStore) commit(ctx context.Context, next domain.BudgetDocument, event func(interface{}) websocket.Event, entity interface{}) {
	s.doc = next
	if !s.loading {
		s.persist(ctx, next)
	}
	s.publishEvent(event(ChangePayload{Entity: entity, Document: next.Clone()}))
}

// persist writes the document. Failures are logged and never undo the in-memory change.
func (s *BudgetStore) persist(ctx context.Context, doc domain.BudgetDocument) {
	data, err := budget.Encode(doc)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode budget document")
		return
	}
	if err := s.repo.Put(ctx, domain.DocumentKey, data); err != nil {
		log.Error().Err(err).Str("key", domain.DocumentKey).Msg("Failed to persist budget document")
	}
}

func eventFor(eventType websocket.EventType, entity websocket.EntityType) func(interface{}) websocket.Event {
	return func(p interface{}) websocket.Event {
		return websocket.NewEvent(eventType, entity, p)
	}
}

// AddCategory adds an expense category
func (s *BudgetStore) AddCategory(ctx context.Context, in domain.NewCategory) domain.ExpenseCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, category := budget.AddCategory(s.doc, in)
	s.commit(ctx, next, eventFor(websocket.EventTypeCreated, websocket.EntityTypeCategory), category)
	return category
}

// UpdateCategory replaces a category by id. Renaming does not carry its transactions along.
func (s *BudgetStore) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := budget.UpdateCategory(s.doc, category)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeUpdated, websocket.EntityTypeCategory), category)
	return nil
}

// DeleteCategory removes a category. Its transactions are kept.
func (s *BudgetStore) DeleteCategory(ctx context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, err := budget.DeleteCategory(s.doc, id)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeDeleted, websocket.EntityTypeCategory), removed)
	return nil
}

// AddIncomeCategory adds an income category
func (s *BudgetStore) AddIncomeCategory(ctx context.Context, in domain.NewIncomeCategory) domain.IncomeCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, category := budget.AddIncomeCategory(s.doc, in)
	s.commit(ctx, next, eventFor(websocket.EventTypeCreated, websocket.EntityTypeIncomeCategory), category)
	return category
}

// DeleteIncomeCategory removes an income category. Its incomes are kept.
func (s *BudgetStore) DeleteIncomeCategory(ctx context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, err := budget.DeleteIncomeCategory(s.doc, id)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeDeleted, websocket.EntityTypeIncomeCategory), removed)
	return nil
}

// AddTransaction records an expense
func (s *BudgetStore) AddTransaction(ctx context.Context, in domain.NewTransaction) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, result := budget.AddTransaction(s.doc, in)
	if !result.CategoryMatched {
		log.Warn().
			Int32("transaction_id", result.Transaction.ID).
			Str("category", result.Transaction.Category).
			Msg("Transaction category matches no expense category")
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeCreated, websocket.EntityTypeTransaction), result.Transaction)
	return result.Transaction
}

// DeleteTransaction removes an expense
func (s *BudgetStore) DeleteTransaction(ctx context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, result, err := budget.DeleteTransaction(s.doc, id)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeDeleted, websocket.EntityTypeTransaction), result.Transaction)
	return nil
}

// AddIncome records income
func (s *BudgetStore) AddIncome(ctx context.Context, in domain.NewIncome) domain.Income {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	next, result := budget.AddIncome(s.doc, in, now)
	s.logPeriod(next, result, now)
	s.commit(ctx, next, eventFor(websocket.EventTypeCreated, websocket.EntityTypeIncome), result.Income)
	return result.Income
}

// DeleteIncome removes income
func (s *BudgetStore) DeleteIncome(ctx context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	next, result, err := budget.DeleteIncome(s.doc, id, now)
	if err != nil {
		return err
	}
	s.logPeriod(next, result, now)
	s.commit(ctx, next, eventFor(websocket.EventTypeDeleted, websocket.EntityTypeIncome), result.Income)
	return nil
}

// logPeriod surfaces a monthly summary update applied to a last entry that is
// not labelled with the current month
func (s *BudgetStore) logPeriod(doc domain.BudgetDocument, result budget.IncomeResult, now time.Time) {
	if !result.Period.Applies || result.Period.Exact {
		return
	}
	log.Warn().
		Int32("income_id", result.Income.ID).
		Str("current_month", now.Format("Jan 2006")).
		Str("summary_entry", doc.MonthlySummary[result.Period.Index].Month).
		Msg("Last monthly summary entry is not the current month, adjusted it anyway")
}

// AddCreditCard adds a card
func (s *BudgetStore) AddCreditCard(ctx context.Context, in domain.NewCreditCard) domain.CreditCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, card := budget.AddCreditCard(s.doc, in)
	s.commit(ctx, next, eventFor(websocket.EventTypeCreated, websocket.EntityTypeCreditCard), card)
	return card
}

// UpdateCreditCard replaces a card by id
func (s *BudgetStore) UpdateCreditCard(ctx context.Context, card domain.CreditCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := budget.UpdateCreditCard(s.doc, card)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeUpdated, websocket.EntityTypeCreditCard), card)
	return nil
}

// DeleteCreditCard removes a card
func (s *BudgetStore) DeleteCreditCard(ctx context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, err := budget.DeleteCreditCard(s.doc, id)
	if err != nil {
		return err
	}
	s.commit(ctx, next, eventFor(websocket.EventTypeDeleted, websocket.EntityTypeCreditCard), removed)
	return nil
}

// UpdateTotalBudget sets the total budget
func (s *BudgetStore) UpdateTotalBudget(ctx context.Context, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, budget.UpdateTotalBudget(s.doc, amount), websocket.BudgetUpdated, nil)
}

// UpdateIncome overrides total income directly. It is not derived from the incomes list.
func (s *BudgetStore) UpdateIncome(ctx context.Context, amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Info().Str("amount", amount.String()).Msg("Total income overridden")
	s.commit(ctx, budget.OverrideIncome(s.doc, amount), websocket.BudgetUpdated, nil)
}

// ResetData replaces the document with the defaults
func (s *BudgetStore) ResetData(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, budget.Reset(), websocket.BudgetReset, nil)
}
