// Package dealplan owns deal plan promotion: the idempotent merge of weekly
// signal snapshots into the durable per-account plan.
package dealplan

import (
	"context"

	"sigdesk/internal/types"
)

// Repository is the backing store for deal plans, keyed by
// (focus account, week). Implementations must be safe for concurrent use;
// absence is expressed as (nil, nil), never an error.
type Repository interface {
	// Get returns the plan for the key, or nil when none exists.
	Get(ctx context.Context, focusID, weekOf string) (*types.DealPlan, error)
	// List returns all plans, newest update first. focusID narrows the
	// result when non-empty.
	List(ctx context.Context, focusID string) ([]types.DealPlan, error)
	// Upsert inserts or replaces the plan for (plan.FocusID, plan.WeekOf).
	Upsert(ctx context.Context, plan *types.DealPlan) error
}
