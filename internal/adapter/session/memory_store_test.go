package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(time.Minute)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, _ = s.Get(ctx, "forever")
	assert.True(t, ok)
}

func TestMemoryStore_ValuesAreCopied(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	v := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", v, 0))
	v[0] = 'z'

	got, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ := s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStore_SetSweepsAbandonedEntries(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("draft:%d", i), []byte("v"), time.Minute))
	}
	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	assert.Len(t, s.entries, 1001)

	now = now.Add(24 * time.Hour)
	require.NoError(t, s.Set(ctx, "fresh", []byte("y"), time.Minute))

	assert.Len(t, s.entries, 2)
	_, ok, _ := s.Get(ctx, "forever")
	assert.True(t, ok)
	_, ok, _ = s.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryStore_SweepIsRateLimited(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", []byte("v"), time.Second))
	now = now.Add(2 * time.Second)
	require.NoError(t, s.Set(ctx, "b", []byte("v"), time.Hour))
	assert.Len(t, s.entries, 2, "expired entry kept until the next sweep window")

	now = now.Add(sweepInterval)
	require.NoError(t, s.Set(ctx, "c", []byte("v"), time.Hour))
	assert.Len(t, s.entries, 2)
	_, ok := s.entries["a"]
	assert.False(t, ok)
}
