package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersAndStampsMetadata(t *testing.T) {
	d := NewInMemoryDispatcher()

	var received []Event
	d.Subscribe(EventWorkshopCreated, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})
	d.Subscribe(EventWorkshopCreated, func(ctx context.Context, e Event) error {
		return errors.New("handler failure must not stop dispatch")
	})
	d.Subscribe(EventWorkshopCreated, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventWorkshopCreated, WorkshopID: 1})
	require.NoError(t, err)
	require.Len(t, received, 2)
	require.NotEmpty(t, received[0].ID)
	require.False(t, received[0].Timestamp.IsZero())
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventFeedbackSubmitted}))
}

func TestPreview(t *testing.T) {
	require.Equal(t, "short", Preview("short", 120))
	require.Equal(t, "abc", Preview("abcdef", 3))
}
