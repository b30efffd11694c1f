package dealplan

import (
	"context"
	"sort"
	"sync"

	"sigdesk/internal/types"
)

type planKey struct {
	FocusID string
	WeekOf  string
}

// MemoryRepository keeps deal plans in process memory. It is the default
// backing store and the one tests run against.
type MemoryRepository struct {
	mu    sync.RWMutex
	plans map[planKey]types.DealPlan
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{plans: make(map[planKey]types.DealPlan)}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Get(_ context.Context, focusID, weekOf string) (*types.DealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[planKey{FocusID: focusID, WeekOf: weekOf}]
	if !ok {
		return nil, nil
	}
	cp := clonePlan(plan)
	return &cp, nil
}

func (r *MemoryRepository) List(_ context.Context, focusID string) ([]types.DealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.DealPlan, 0, len(r.plans))
	for key, plan := range r.plans {
		if focusID != "" && key.FocusID != focusID {
			continue
		}
		out = append(out, clonePlan(plan))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, plan *types.DealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[planKey{FocusID: plan.FocusID, WeekOf: plan.WeekOf}] = clonePlan(*plan)
	return nil
}

// clonePlan deep-copies the snapshot list so callers can never reach the
// stored entries.
func clonePlan(plan types.DealPlan) types.DealPlan {
	cp := plan
	cp.PromotedSignals = make([]types.PromotedSignal, len(plan.PromotedSignals))
	for i, ps := range plan.PromotedSignals {
		cp.PromotedSignals[i] = cloneSnapshot(ps)
	}
	return cp
}

func cloneSnapshot(ps types.PromotedSignal) types.PromotedSignal {
	cp := ps
	cp.WhatChanged = append([]string(nil), ps.WhatChanged...)
	cp.WhoCares = append([]string(nil), ps.WhoCares...)
	cp.ProofToRequest = append([]string(nil), ps.ProofToRequest...)
	cp.WhatsMissing = append([]string(nil), ps.WhatsMissing...)
	cp.Sources = append([]string(nil), ps.Sources...)
	return cp
}
