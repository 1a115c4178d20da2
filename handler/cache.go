package handler

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NewListCache holds list responses for the read endpoints. The write
// handlers drop the affected keys, so reads never serve a stale list after
// a committed mutation.
func NewListCache() *cache.Cache {
	return cache.New(5*time.Minute, 10*time.Minute)
}

func cachedList(c *cache.Cache, key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := c.Get(key); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	c.Set(key, data, cache.DefaultExpiration)
	return data, nil
}
