package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventLeadCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	event := Event{ID: "evt-1", Type: EventLeadCreated, LeadID: 3}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)
	assert.Equal(t, int64(3), received[0].LeadID)
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventOrderCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventCallCompleted}))
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventCallCompleted, func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})
	secondCalled := false
	dispatcher.Subscribe(EventCallCompleted, func(ctx context.Context, event Event) error {
		secondCalled = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventCallCompleted}))
	assert.True(t, secondCalled)
}
