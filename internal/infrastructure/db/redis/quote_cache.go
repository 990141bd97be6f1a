package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
	"github.com/optiifreight/quoting-engine/internal/core/ports"
)

const defaultQuoteTTL = 5 * time.Minute

// QuoteCache caches ranked offer lists in Redis, keyed by a hash of the
// shipment spec. Carrier rate changes surface after the TTL at the latest.
// Key format: quote:<fnv64a of canonical spec>
type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQuoteCache creates a QuoteCache wrapping the given Redis client.
// A non-positive TTL falls back to defaultQuoteTTL.
func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	if ttl <= 0 {
		ttl = defaultQuoteTTL
	}
	return &QuoteCache{client: client, ttl: ttl}
}

// Get returns the cached result for the spec, or nil on a miss.
func (c *QuoteCache) Get(ctx context.Context, spec domain.ShipmentSpec) (*ports.RankedOffersResult, error) {
	raw, err := c.client.Get(ctx, c.key(spec)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("quote cache get: %w", err)
	}

	var result ports.RankedOffersResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("quote cache decode: %w", err)
	}
	return &result, nil
}

// Set stores the result under the spec's key, expiring after the TTL.
func (c *QuoteCache) Set(ctx context.Context, spec domain.ShipmentSpec, result *ports.RankedOffersResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("quote cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(spec), raw, c.ttl).Err()
}

func (c *QuoteCache) key(spec domain.ShipmentSpec) string {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s|%s|%g|%g|%g|%g",
		spec.OriginCode, spec.DestCode,
		spec.WeightLb, spec.LengthFt, spec.WidthFt, spec.HeightFt)
	return fmt.Sprintf("quote:%x", h.Sum64())
}
