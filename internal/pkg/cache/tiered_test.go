package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTieredLoadsOnce(t *testing.T) {
	c := NewTiered[string](nil, time.Minute)
	var calls int32

	load := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return "png", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := c.GetOrLoad(context.Background(), "k", load)
			assert.NoError(t, err)
			assert.Equal(t, "png", v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, tier, err := c.GetOrLoad(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, TierLocal, tier)
}

func TestTieredDoesNotCacheErrors(t *testing.T) {
	c := NewTiered[int](nil, time.Minute)
	boom := errors.New("boom")

	_, _, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, tier, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, TierLoad, tier)
}

func TestTieredPurge(t *testing.T) {
	c := NewTiered[int](nil, time.Minute)
	for _, k := range []string{"a", "b"} {
		_, _, err := c.GetOrLoad(context.Background(), k, func(context.Context) (int, error) { return 1, nil })
		require.NoError(t, err)
	}
	n, err := c.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 0, c.Len())
}
