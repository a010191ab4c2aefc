package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v, err := s.Get(ctx, KeyAccess)
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, s.SetMany(ctx, map[string]string{KeyAccess: "a", KeyRefresh: "r"}))
	access, refresh, err := Tokens(ctx, s)
	require.NoError(t, err)
	require.Equal(t, "a", access)
	require.Equal(t, "r", refresh)

	require.NoError(t, s.Delete(ctx, KeyAccess))
	v, _ = s.Get(ctx, KeyAccess)
	require.Empty(t, v)

	require.NoError(t, s.Clear(ctx))
	v, _ = s.Get(ctx, KeyRefresh)
	require.Empty(t, v)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, KeyAccess, "x")
			_, _ = s.Get(ctx, KeyAccess)
		}()
	}
	wg.Wait()

	v, err := s.Get(ctx, KeyAccess)
	require.NoError(t, err)
	require.Equal(t, "x", v)
}
