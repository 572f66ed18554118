package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType is the kind of change an event reports
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeReset    EventType = "reset"
	EventTypeSnapshot EventType = "snapshot"
)

// EntityType is the part of the budget document an event is about
type EntityType string

const (
	EntityTypeBudget         EntityType = "budget"
	EntityTypeCategory       EntityType = "category"
	EntityTypeIncomeCategory EntityType = "income_category"
	EntityTypeTransaction    EntityType = "transaction"
	EntityTypeIncome         EntityType = "income"
	EntityTypeCreditCard     EntityType = "credit_card"
)

// Event represents a message sent to connected views
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // e.g. "transaction.created"
	Entity    EntityType  `json:"entity"`    // e.g. "transaction"
	Payload   interface{} `json:"payload"`   // changed entity plus the document snapshot
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// BudgetSnapshot creates the budget.snapshot event sent to a view when it connects
func BudgetSnapshot(payload interface{}) Event {
	return NewEvent(EventTypeSnapshot, EntityTypeBudget, payload)
}

// BudgetReset creates a budget.reset event
func BudgetReset(payload interface{}) Event {
	return NewEvent(EventTypeReset, EntityTypeBudget, payload)
}

// BudgetUpdated creates a budget.updated event for direct total overrides
func BudgetUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeBudget, payload)
}
