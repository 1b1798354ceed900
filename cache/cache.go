package cache

import (
	"errors"
	"time"
)

var ErrMiss = errors.New("cache_miss")

type Cache struct {
	Cache ICache
}

type ICache interface {
	Set(key string, entry []byte) error

	Get(key string) ([]byte, error)

	Close() error
}

// NewLocalCache returns an in-memory cache whose entries expire after allKeysExpTime.
func NewLocalCache(allKeysExpTime time.Duration) (*Cache, error) {
	cache, err := NewBigCache(allKeysExpTime)
	if err != nil {
		return nil, err
	}
	return &Cache{Cache: cache}, nil
}

// Load returns the cached entry for key, or calls fetch and caches its result.
// A fetch error is returned as is and nothing is stored.
func (c *Cache) Load(key string, fetch func() ([]byte, error)) ([]byte, error) {
	if data, err := c.Cache.Get(key); err == nil {
		return data, nil
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	_ = c.Cache.Set(key, data)
	return data, nil
}

func (c *Cache) Close() error {
	return c.Cache.Close()
}
