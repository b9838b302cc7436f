package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "chat:context:"

// RedisStore keeps session contexts in Redis so anonymous histories survive
// process restarts. Keys carry a sliding one-hour TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    1 * time.Hour,
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Context, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewContext(), nil
	}
	if err != nil {
		return nil, err
	}

	var exchanges []Exchange
	if err := json.Unmarshal(raw, &exchanges); err != nil {
		return nil, err
	}
	return Restore(exchanges), nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID, user, assistant string) error {
	c, err := s.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	c.Append(user, assistant)

	raw, err := json.Marshal(c.Exchanges())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+sessionID, raw, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, redisKeyPrefix+sessionID).Err()
}
