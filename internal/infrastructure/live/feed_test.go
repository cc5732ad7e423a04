package live

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollection struct {
	mu    sync.Mutex
	items []string
	calls atomic.Int32
}

func (c *fakeCollection) set(items ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

func (c *fakeCollection) list(context.Context) ([]string, error) {
	c.calls.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.items...), nil
}

func receive(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case got, ok := <-ch:
		require.True(t, ok, "channel closed")
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot received")
		return nil
	}
}

func TestFeed_SubscribeAndNudge(t *testing.T) {
	col := &fakeCollection{}
	col.set("a")
	hub := NewHub()
	feed := NewFeed[string]("peca", col.list, time.Hour)
	hub.Register(feed.Collection(), feed)

	ch, cancel := feed.Subscribe()
	defer cancel()
	assert.Equal(t, []string{"a"}, receive(t, ch))

	col.set("a", "b")
	hub.Notify("peca")
	assert.Equal(t, []string{"a", "b"}, receive(t, ch))

	// Other collections do not wake this feed.
	col.set("c")
	hub.Notify("cliente")
	select {
	case got := <-ch:
		t.Fatalf("unexpected snapshot %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFeed_UnchangedContentsAreNotResent(t *testing.T) {
	col := &fakeCollection{}
	col.set("a")
	feed := NewFeed[string]("cliente", col.list, 5*time.Millisecond)

	ch, cancel := feed.Subscribe()
	defer cancel()
	receive(t, ch)

	require.Eventually(t, func() bool { return col.calls.Load() >= 3 }, time.Second, time.Millisecond)
	select {
	case got := <-ch:
		t.Fatalf("unexpected snapshot %v", got)
	default:
	}
}

func TestFeed_LateSubscriberGetsCurrentSnapshot(t *testing.T) {
	col := &fakeCollection{}
	col.set("a")
	feed := NewFeed[string]("orcamento", col.list, time.Hour)

	first, cancelFirst := feed.Subscribe()
	defer cancelFirst()
	receive(t, first)

	second, cancelSecond := feed.Subscribe()
	defer cancelSecond()
	assert.Equal(t, []string{"a"}, receive(t, second))
}

func TestFeed_CancelStopsPolling(t *testing.T) {
	col := &fakeCollection{}
	feed := NewFeed[string]("peca", col.list, time.Millisecond)

	ch, cancel := feed.Subscribe()
	receive(t, ch)
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	time.Sleep(20 * time.Millisecond)
	calls := col.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, col.calls.Load())
}
