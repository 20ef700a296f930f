package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/pkg/broadcast"
)

func receive[T any](t *testing.T, sub broadcast.Subscriber[T]) (broadcast.Message[T], bool) {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive():
		return msg, ok
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for message")
		return broadcast.Message[T]{}, false
	}
}

func TestMemoryBroadcaster(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every subscriber", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[string](4)
		defer b.Close()

		ctx := context.Background()
		s1, s2 := b.Subscribe(ctx), b.Subscribe(ctx)
		assert.Equal(t, 2, b.Len())

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"}))
		msg, ok := receive(t, s1)
		require.True(t, ok)
		assert.Equal(t, "hello", msg.Data)
		msg, ok = receive(t, s2)
		require.True(t, ok)
		assert.Equal(t, "hello", msg.Data)
	})

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](8)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		for i := range 5 {
			require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: i}))
		}
		for i := range 5 {
			msg, ok := receive(t, sub)
			require.True(t, ok)
			assert.Equal(t, i, msg.Data)
		}
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		_, ok := receive(t, sub)
		assert.False(t, ok)
		assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
	})

	t.Run("slow subscriber is dropped", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 2}))
		assert.Equal(t, 0, b.Len())

		msg, ok := receive(t, sub)
		require.True(t, ok)
		assert.Equal(t, 1, msg.Data)
		_, ok = receive(t, sub)
		assert.False(t, ok)
	})

	t.Run("close ends subscriptions", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](1)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sub := b.Subscribe(ctx)

		require.NoError(t, b.Close())
		require.NoError(t, b.Close())
		_, ok := receive(t, sub)
		assert.False(t, ok)

		late := b.Subscribe(context.Background())
		_, ok = receive(t, late)
		assert.False(t, ok)
		assert.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}))
	})

	t.Run("subscriber close is idempotent", func(t *testing.T) {
		t.Parallel()
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
		require.NoError(t, b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1}))
		assert.Equal(t, 0, b.Len())
	})
}
