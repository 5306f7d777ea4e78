package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Tier names which layer served a Tiered lookup.
type Tier string

const (
	TierLocal  Tier = "local"
	TierRemote Tier = "redis"
	TierLoad   Tier = "load"
)

// Tiered reads through an in-process cache, then an optional Redis set, and
// finally calls the loader. Concurrent loads of one key share a single call.
type Tiered[T any] struct {
	local  *Local[T]
	remote *Set
	ttl    time.Duration
	group  singleflight.Group
}

// NewTiered builds a tiered cache. remote may be nil.
func NewTiered[T any](remote *Set, ttl time.Duration) *Tiered[T] {
	return &Tiered[T]{
		local:  NewLocal[T](ttl),
		remote: remote,
		ttl:    ttl,
	}
}

type loaded[T any] struct {
	value T
	tier  Tier
}

func (c *Tiered[T]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (T, error)) (T, Tier, error) {
	if v, ok := c.local.Get(key); ok {
		return v, TierLocal, nil
	}

	res, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.local.Get(key); ok {
			return loaded[T]{v, TierLocal}, nil
		}

		if c.remote != nil {
			var v T
			err := c.remote.Get(ctx, key, &v)
			if err == nil {
				c.local.Set(key, v, c.ttl)
				return loaded[T]{v, TierRemote}, nil
			}
			if !errors.Is(err, ErrNotFound) {
				log.Warn().Err(err).Str("key", key).Msg("remote cache unavailable, loading directly")
			}
		}

		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.local.Set(key, v, c.ttl)
		if c.remote != nil {
			// the local copy still serves if this fails
			_ = c.remote.Set(ctx, key, v, c.ttl)
		}
		return loaded[T]{v, TierLoad}, nil
	})
	if err != nil {
		var zero T
		return zero, "", err
	}
	l := res.(loaded[T])
	return l.value, l.tier, nil
}

// Purge empties every tier and returns the number of entries dropped.
func (c *Tiered[T]) Purge(ctx context.Context) (int64, error) {
	n := int64(c.local.Len())
	c.local.Flush()
	if c.remote == nil {
		return n, nil
	}
	rn, err := c.remote.Clear(ctx)
	return n + rn, err
}

func (c *Tiered[T]) Len() int {
	return c.local.Len()
}
