// Package cache provides the Redis-backed month snapshot cache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
)

// SnapshotTTL bounds how long a month snapshot may live without a write to
// its budget.
const SnapshotTTL = 24 * time.Hour

// budgetMonthCache stores month snapshots under versioned keys. Every key
// embeds the budget's current version counter; Invalidate bumps the counter
// so all existing snapshots for the budget become unreachable at once and
// fall out via TTL. Redis being down degrades to cache misses, never to
// request failures.
type budgetMonthCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewBudgetMonthCache creates a Redis-backed budget month cache.
func NewBudgetMonthCache(client *redis.Client, logger *slog.Logger) adapter.BudgetMonthCache {
	return &budgetMonthCache{
		client: client,
		logger: logger,
	}
}

// Get returns the cached snapshot for a budget month, or nil on miss.
func (c *budgetMonthCache) Get(ctx context.Context, budgetID uuid.UUID, month string) ([]byte, error) {
	key, err := c.snapshotKey(ctx, budgetID, month)
	if err != nil {
		c.logger.Warn("cache get degraded to miss", "budget_id", budgetID, "error", err)
		return nil, nil
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		c.logger.Warn("cache get degraded to miss", "budget_id", budgetID, "error", err)
		return nil, nil
	}
	return payload, nil
}

// Set stores a snapshot for a budget month.
func (c *budgetMonthCache) Set(ctx context.Context, budgetID uuid.UUID, month string, payload []byte) error {
	key, err := c.snapshotKey(ctx, budgetID, month)
	if err != nil {
		c.logger.Warn("cache set skipped", "budget_id", budgetID, "error", err)
		return nil
	}

	if err := c.client.Set(ctx, key, payload, SnapshotTTL).Err(); err != nil {
		c.logger.Warn("cache set skipped", "budget_id", budgetID, "error", err)
	}
	return nil
}

// Invalidate drops every cached snapshot for a budget by bumping its
// version counter.
func (c *budgetMonthCache) Invalidate(ctx context.Context, budgetID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(budgetID)).Err(); err != nil {
		c.logger.Warn("cache invalidation skipped", "budget_id", budgetID, "error", err)
	}
	return nil
}

func (c *budgetMonthCache) snapshotKey(ctx context.Context, budgetID uuid.UUID, month string) (string, error) {
	version, err := c.client.Get(ctx, versionKey(budgetID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("budget:%s:v%d:month:%s", budgetID, version, month), nil
}

func versionKey(budgetID uuid.UUID) string {
	return fmt.Sprintf("budget:%s:ver", budgetID)
}
