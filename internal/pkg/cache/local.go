package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Local is an in-process cache of T values.
type Local[T any] struct {
	c *cache.Cache
}

func NewLocal[T any](defaultExpiration time.Duration) *Local[T] {
	return &Local[T]{
		c: cache.New(defaultExpiration, time.Minute*10),
	}
}

func (c *Local[T]) Get(key string) (T, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

func (c *Local[T]) Set(key string, value T, expire time.Duration) {
	c.c.Set(key, value, expire)
}

func (c *Local[T]) Delete(key string) {
	c.c.Delete(key)
}

func (c *Local[T]) Flush() {
	c.c.Flush()
}

func (c *Local[T]) Len() int {
	return c.c.ItemCount()
}
