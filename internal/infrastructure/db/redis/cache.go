package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

const listKey = "employees:all"

// EmployeeCache is a read-through cache for employee records backed by Redis.
// Key format: employees:<id> for single records, employees:all for the list.
type EmployeeCache struct {
	client *redis.Client
}

// NewEmployeeCache creates an EmployeeCache wrapping the given Redis client.
func NewEmployeeCache(client *redis.Client) *EmployeeCache {
	return &EmployeeCache{client: client}
}

// GetByID returns the cached record, or nil, nil on a miss.
func (c *EmployeeCache) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var e domain.Employee
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &e, nil
}

func (c *EmployeeCache) Set(ctx context.Context, e *domain.Employee) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(e.ID), raw, cacheTTL).Err()
}

// GetList returns the cached list, or nil, nil on a miss.
func (c *EmployeeCache) GetList(ctx context.Context) ([]*domain.Employee, error) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var employees []*domain.Employee
	if err := json.Unmarshal(raw, &employees); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return employees, nil
}

func (c *EmployeeCache) SetList(ctx context.Context, employees []*domain.Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, listKey, raw, cacheTTL).Err()
}

// Invalidate drops both the per-record key and the list key so a mutation is
// never served stale.
func (c *EmployeeCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id), listKey).Err()
}

func (c *EmployeeCache) key(id string) string {
	return "employees:" + id
}
