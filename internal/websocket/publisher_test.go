package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingPublisher struct {
	events []Event
}

func (r *recordingPublisher) Publish(event Event) {
	r.events = append(r.events, event)
}

func TestHub_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*Hub)(nil)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(NewEvent(EventTypeCreated, EntityTypeCategory, map[string]interface{}{"id": float64(8)}))

	assert.Len(t, client.GetMessages(), 1)
}

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	assert.NotPanics(t, func() {
		publisher.Publish(BudgetReset(nil))
	})
}

func TestMultiPublisher_FansOutInOrder(t *testing.T) {
	first := &recordingPublisher{}
	second := &recordingPublisher{}
	multi := MultiPublisher{first, nil, second}

	evt := BudgetUpdated(nil)
	multi.Publish(evt)

	assert.Equal(t, []Event{evt}, first.events)
	assert.Equal(t, []Event{evt}, second.events)
}
