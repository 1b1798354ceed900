package cache

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

type BigCache struct {
	Cache *bigcache.BigCache
}

func NewBigCache(allKeysExpTime time.Duration) (*BigCache, error) {
	config := bigcache.DefaultConfig(allKeysExpTime)
	// a handful of model responses, no need for the default 1024 shards
	config.Shards = 16
	config.CleanWindow = allKeysExpTime

	cache, err := bigcache.New(context.Background(), config)

	if err != nil {
		return nil, err
	}
	return &BigCache{Cache: cache}, nil
}

func (s *BigCache) Set(key string, entry []byte) (err error) {
	return s.Cache.Set(key, entry)
}

func (s *BigCache) Get(key string) ([]byte, error) {
	data, err := s.Cache.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, ErrMiss
	}
	return data, err
}

func (s *BigCache) Close() error {
	return s.Cache.Close()
}
