package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the session under a single key, for machines where the
// home directory is not persistent.
type RedisStore struct {
	client *redis.Client
	key    string
}

// ParseURL validates a Redis connection URL.
func ParseURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return opts, nil
}

func NewRedisStore(ctx context.Context, url, key string) (*RedisStore, error) {
	opts, err := ParseURL(url)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &RedisStore{
		client: client,
		key:    key,
	}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Load(ctx context.Context) (*State, error) {
	contents, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get(%s) > %w", s.key, err)
	}

	var state State
	if err := json.Unmarshal(contents, &state); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state State) error {
	contents, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json.Marshal() > %w", err)
	}
	var ttl time.Duration
	if claims, err := ParseClaims(state.Token); err == nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
		if ttl <= 0 {
			return fmt.Errorf("token expired at %s", claims.ExpiresAt.Time)
		}
	}
	if err := s.client.Set(ctx, s.key, contents, ttl).Err(); err != nil {
		return fmt.Errorf("client.Set(%s) > %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("client.Del(%s) > %w", s.key, err)
	}
	return nil
}
