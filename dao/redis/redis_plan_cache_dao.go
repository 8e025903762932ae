package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"ep-server/db"
	"ep-server/models"
)

// FILTER_RESULT_KEY_FORMAT is used to cache filter results per criteria key.
const FILTER_RESULT_KEY_FORMAT = "filter_result_v1:%s"

// RedisPlanCacheDAO caches computed filter responses in Redis. The catalog is
// immutable for the lifetime of a run, so a cached response only goes stale
// through its TTL.
type RedisPlanCacheDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisPlanCacheDAO initializes a RedisPlanCacheDAO with the Redis client.
func NewRedisPlanCacheDAO(client db.RedisClient, ttl time.Duration) *RedisPlanCacheDAO {
	return &RedisPlanCacheDAO{client: client, ttl: ttl}
}

// SetFilterResult caches the response computed for the given criteria key.
func (dao *RedisPlanCacheDAO) SetFilterResult(cacheKey string, resp *models.VenueFilterResponse) error {
	key := fmt.Sprintf(FILTER_RESULT_KEY_FORMAT, cacheKey)
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal filter result for %q: %w", cacheKey, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set filter result in redis: %w", err)
	}
	return nil
}

// GetFilterResult retrieves the cached response for the given criteria key.
// A cache miss (or an unreachable cache) returns nil; the caller recomputes.
func (dao *RedisPlanCacheDAO) GetFilterResult(cacheKey string) *models.VenueFilterResponse {
	key := fmt.Sprintf(FILTER_RESULT_KEY_FORMAT, cacheKey)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil
	}
	var resp models.VenueFilterResponse
	if err := json.Unmarshal([]byte(str), &resp); err != nil {
		log.Printf("[RedisPlanCacheDAO] Discarding unreadable cache entry %s: %v", key, err)
		return nil
	}
	return &resp
}

// DeleteFilterResult evicts the cached response for the given criteria key.
func (dao *RedisPlanCacheDAO) DeleteFilterResult(cacheKey string) error {
	key := fmt.Sprintf(FILTER_RESULT_KEY_FORMAT, cacheKey)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete filter result key %s: %w", key, err)
	}
	return nil
}

// ListCachedFilterKeys returns the criteria keys for all cached responses.
func (dao *RedisPlanCacheDAO) ListCachedFilterKeys() ([]string, error) {
	pattern := fmt.Sprintf(FILTER_RESULT_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list filter result keys: %w", err)
	}

	prefix := fmt.Sprintf(FILTER_RESULT_KEY_FORMAT, "")
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, strings.TrimPrefix(k, prefix))
	}
	return out, nil
}
