package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskhive/backend/domain"
	"github.com/taskhive/backend/repository"
)

type identityCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewIdentityCache creates a Redis-backed cache of public identity
// projections. Only the public fields are ever stored.
func NewIdentityCache(client *redislib.Client, ttl time.Duration) repository.IdentityCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &identityCache{
		client: client,
		prefix: "identity:",
		ttl:    ttl,
	}
}

func (c *identityCache) Get(ctx context.Context, id string) (*domain.PublicIdentity, error) {
	result, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, err
	}

	var identity domain.PublicIdentity
	if err := json.Unmarshal([]byte(result), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *identityCache) Set(ctx context.Context, identity domain.PublicIdentity) error {
	if identity.ID == "" {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(identity.ID), payload, c.ttl).Err()
}

func (c *identityCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *identityCache) key(id string) string {
	return fmt.Sprintf("%s%s", c.prefix, id)
}
