package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/restaurantelilica/cardapio-backend/pkg/redis"
)

// RedisStore persists cart lines as JSON under a namespaced session key
// with a sliding TTL, so carts survive process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps the shared Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (r *RedisStore) Load(ctx context.Context, sessionID string) ([]Line, bool, error) {
	raw, err := r.client.Get(ctx, r.client.CartSessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load cart session: %w", err)
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		// A corrupt snapshot is unrecoverable; start the session fresh.
		return nil, false, fmt.Errorf("decode cart session: %w", err)
	}
	return lines, true, nil
}

func (r *RedisStore) Save(ctx context.Context, sessionID string, lines []Line) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart session: %w", err)
	}
	if err := r.client.Set(ctx, r.client.CartSessionKey(sessionID), string(payload), r.ttl); err != nil {
		return fmt.Errorf("save cart session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.client.CartSessionKey(sessionID)); err != nil {
		return fmt.Errorf("delete cart session: %w", err)
	}
	return nil
}
