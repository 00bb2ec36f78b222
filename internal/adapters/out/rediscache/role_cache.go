// Package rediscache keeps user roles in Redis for the authorization gate.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickdrop/internal/core/domain/model/kernel"
	"quickdrop/internal/core/domain/model/user"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quickdrop:role:"

type RoleCache struct {
	client *redis.Client
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, url string) (*RoleCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRoleCache(client), nil
}

func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

// Get reports a miss as ok=false. A stored value that no longer parses as a
// role is treated as a miss too.
func (c *RoleCache) Get(ctx context.Context, email kernel.Email) (user.Role, bool, error) {
	raw, err := c.client.Get(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	role, err := user.ParseRole(raw)
	if err != nil {
		return "", false, nil //nolint:nilerr // unreadable entry counts as a miss
	}
	return role, true, nil
}

func (c *RoleCache) Set(ctx context.Context, email kernel.Email, role user.Role, ttl time.Duration) error {
	return c.client.Set(ctx, key(email), role.String(), ttl).Err()
}

func (c *RoleCache) Invalidate(ctx context.Context, email kernel.Email) error {
	return c.client.Del(ctx, key(email)).Err()
}

func (c *RoleCache) Close() error {
	return c.client.Close()
}

func key(email kernel.Email) string {
	return keyPrefix + email.String()
}
