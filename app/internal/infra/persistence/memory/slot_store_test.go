package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotStore_GetSetDelete(t *testing.T) {
	s := NewSlotStore()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "cart", "[]"))
	v, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Delete(ctx, "cart"))
	_, found, _ = s.Get(ctx, "cart")
	assert.False(t, found)
	require.NoError(t, s.Delete(ctx, "cart"))
}

func TestSlotStore_ConcurrentWriters(t *testing.T) {
	s := NewSlotStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Set(ctx, fmt.Sprintf("session:%d:cart", i), "[]")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
