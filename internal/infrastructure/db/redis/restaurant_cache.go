package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/menuhub/menu-server/internal/core/domain"
)

const (
	defaultCacheTTL = 5 * time.Minute
	// fenceTTL outlives the slowest store read a cache fill can be based on.
	fenceTTL = 15 * time.Second
)

// errFenced aborts a fill that raced with an invalidation.
var errFenced = errors.New("restaurant cache: fill fenced by invalidation")

// RestaurantCache stores public restaurant profiles as JSON.
//
// Key format:
//
//	restaurant:id:<id>               profile
//	restaurant:username:<username>   profile
//	restaurant:fence:<id>            set by Invalidate for fenceTTL
//
// While a fence exists, Set is a no-op, so a fill that read the store before
// a mutation cannot put the old profile back after the mutation invalidated it.
type RestaurantCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRestaurantCache wraps client. A non-positive ttl falls back to five minutes.
func NewRestaurantCache(client *redis.Client, ttl time.Duration) *RestaurantCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RestaurantCache{client: client, ttl: ttl}
}

// Get looks key up as an id first and then as a username. Keys shaped like
// an id are never looked up as usernames.
func (c *RestaurantCache) Get(ctx context.Context, key string) (*domain.Restaurant, error) {
	keys := []string{idKey(key)}
	if !domain.ReservedUsername(key) {
		keys = append(keys, usernameKey(key))
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("restaurant cache get: %w", err)
	}
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var r domain.Restaurant
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("restaurant cache decode: %w", err)
		}
		return &r, nil
	}
	return nil, nil
}

// Set writes the profile under its id and username keys. The password hash
// is never serialized, so cached values are not usable for authentication.
func (c *RestaurantCache) Set(ctx context.Context, r *domain.Restaurant) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("restaurant cache encode: %w", err)
	}

	fence := fenceKey(r.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, fence).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errFenced
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			for _, k := range profileKeys(r) {
				p.Set(ctx, k, raw, c.ttl)
			}
			return nil
		})
		return err
	}, fence)

	switch {
	case err == nil, errors.Is(err, errFenced), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("restaurant cache set: %w", err)
	}
}

// Invalidate drops the profile and fences it against in-flight fills.
func (c *RestaurantCache) Invalidate(ctx context.Context, r *domain.Restaurant) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, fenceKey(r.ID), 1, fenceTTL)
		p.Del(ctx, profileKeys(r)...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("restaurant cache invalidate: %w", err)
	}
	return nil
}

// Ping reports whether the cache server is reachable.
func (c *RestaurantCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func profileKeys(r *domain.Restaurant) []string {
	keys := []string{idKey(r.ID)}
	if r.Username != "" {
		keys = append(keys, usernameKey(r.Username))
	}
	return keys
}

func idKey(id string) string             { return "restaurant:id:" + id }
func usernameKey(username string) string { return "restaurant:username:" + username }
func fenceKey(id string) string          { return "restaurant:fence:" + id }
