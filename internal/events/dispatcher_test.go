package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventEntityCreated, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})
	d.Subscribe(EventEntityDeleted, func(_ context.Context, e Event) error {
		t.Fatal("wrong event type delivered")
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "1", Type: EventEntityCreated, Resource: "cursos"})
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Equal(t, "cursos", received[0].Resource)
}

func TestDispatcherHandlerErrorsDoNotPropagate(t *testing.T) {
	d := NewInMemoryDispatcher()

	d.Subscribe(EventGrantChanged, func(context.Context, Event) error {
		return errors.New("handler failed")
	})

	err := d.Publish(context.Background(), Event{Type: EventGrantChanged})
	require.NoError(t, err)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginSuccess}))
}
