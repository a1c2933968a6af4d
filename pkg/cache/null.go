package cache

import (
	"context"
	"time"
)

// NullCache stores nothing, so every run converts and renders from the
// source save. The CLI selects it for --no-cache, for `cache = false` in
// the config file and when no cache directory can be determined.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error                         { return nil }

var _ Cache = NullCache{}
