// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// BudgetMonthCache caches computed month snapshots. Payloads are opaque to
// the cache; the usecase layer owns the serialization. A cache failure is
// never fatal: implementations log and return (nil, nil) / nil so the read
// path falls through to a fresh computation.
type BudgetMonthCache interface {
	// Get returns the cached snapshot for a budget month, or nil on miss.
	Get(ctx context.Context, budgetID uuid.UUID, month string) ([]byte, error)

	// Set stores a snapshot for a budget month.
	Set(ctx context.Context, budgetID uuid.UUID, month string, payload []byte) error

	// Invalidate drops every cached snapshot for a budget.
	Invalidate(ctx context.Context, budgetID uuid.UUID) error
}
