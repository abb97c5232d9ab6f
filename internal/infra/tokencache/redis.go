// Package tokencache keeps revoked JWT IDs in Redis so a logout invalidates
// tokens that are otherwise valid until expiry.
package tokencache

import (
	"context"
	"time"

	"driveshare/internal/pkg/config"
	"driveshare/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "revoked:"

type RedisTokenStore struct {
	client *redis.Client
}

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+jti, "1", ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to revoke token")
	}
	return nil
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.Get(ctx, keyPrefix+jti).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "failed to check token revocation")
	}
	return true, nil
}
