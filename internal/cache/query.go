// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// query.go provides a Valkey-backed read-through cache for listing and
// count queries. Values are JSON-encoded and stored under a sliding
// expiration window: every hit resets the TTL. Writes never invalidate
// cached lists — staleness is bounded only by the configured TTL, which is
// the maximum time a reader can observe a pre-write result.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// queryKeyPrefix namespaces query cache entries in Valkey.
const queryKeyPrefix = "query:"

// QueryCache caches query results and counts keyed by a canonical
// serialization of the query parameters. A nil QueryCache, a nil client, or
// a zero TTL all behave as a disabled cache, so stores can call it
// unconditionally.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache creates a query cache with the given sliding window.
// A TTL of zero disables caching globally.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

// Enabled reports whether the cache will store or serve anything.
func (qc *QueryCache) Enabled() bool {
	return qc != nil && qc.client != nil && qc.ttl > 0
}

// TTL returns the sliding expiration window, which is also the maximum
// staleness bound for cached results.
func (qc *QueryCache) TTL() time.Duration {
	if qc == nil {
		return 0
	}
	return qc.ttl
}

// Get loads a cached value into dest and reports whether it was present.
// A hit resets the entry's expiration, sliding the window. Any cache error
// degrades to a miss with a warning log.
func (qc *QueryCache) Get(ctx context.Context, key string, dest any) bool {
	if !qc.Enabled() {
		return false
	}
	val, err := qc.client.Get(ctx, queryKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		slog.Warn("query cache get error", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		slog.Warn("query cache decode error", "key", key, "error", err)
		return false
	}
	if err := qc.client.Expire(ctx, queryKeyPrefix+key, qc.ttl).Err(); err != nil {
		slog.Warn("query cache touch error", "key", key, "error", err)
	}
	return true
}

// Set stores a value under the sliding TTL. Failures are logged and
// swallowed; the caller already holds the fresh result.
func (qc *QueryCache) Set(ctx context.Context, key string, v any) {
	if !qc.Enabled() {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("query cache encode error", "key", key, "error", err)
		return
	}
	if err := qc.client.Set(ctx, queryKeyPrefix+key, data, qc.ttl).Err(); err != nil {
		slog.Warn("query cache set error", "key", key, "error", err)
	}
}
