package async

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKeepsOrderAndLimit(t *testing.T) {
	var inflight, peak int32
	src := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out, err := Map(context.Background(), src, 3, func(_ context.Context, v int) (int, error) {
		n := atomic.AddInt32(&inflight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		return v * 10, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80}, out)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestMapReturnsError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Map(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestFlatMap(t *testing.T) {
	out, err := FlatMap(context.Background(), []int{1, 2}, 0, func(_ context.Context, v int) ([]int, error) {
		return []int{v, v}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2}, out)
}
