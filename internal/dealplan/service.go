package dealplan

import (
	"context"
	"sync"
	"time"

	"sigdesk/internal/logger"
	"sigdesk/internal/types"

	"github.com/google/uuid"
)

// AuditEntry records one promotion attempt, successful or not in terms of new
// entries. Attempts with AddedCount 0 are still recorded.
type AuditEntry struct {
	FocusID        string
	WeekOf         string
	AttemptedCount int
	AddedCount     int
	SignalIDs      []string
	Timestamp      time.Time
}

// AuditLog receives promotion attempts. A nil log disables auditing; a
// failing log never fails the promotion itself.
type AuditLog interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// PromotionResult is the outcome of one PromoteSignals call.
type PromotionResult struct {
	DealPlan   *types.DealPlan `json:"deal_plan"`
	AddedCount int             `json:"added_count"`
}

// Service implements promotion over a Repository. The mutex spans the whole
// find-or-create-append sequence so repeated or concurrent promotion of the
// same key stays idempotent.
type Service struct {
	mu    sync.Mutex
	repo  Repository
	audit AuditLog
	now   func() time.Time
}

// NewService builds a promotion service. audit may be nil.
func NewService(repo Repository, audit AuditLog) *Service {
	return &Service{repo: repo, audit: audit, now: time.Now}
}

// SetClock overrides the service clock, for tests.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// PromoteSignals merges the given signals into the plan for
// (focusID, weekOf), creating the plan on first promotion. Signals whose id
// is already in the plan are skipped without re-snapshotting; new ones are
// snapshotted and appended in input order. UpdatedAt is bumped on every
// attempt, even when nothing new was added.
func (s *Service) PromoteSignals(ctx context.Context, focusID, weekOf string, signals []types.Signal) (PromotionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	plan, err := s.repo.Get(ctx, focusID, weekOf)
	if err != nil {
		return PromotionResult{}, err
	}
	if plan == nil {
		plan = &types.DealPlan{
			ID:              uuid.NewString(),
			FocusID:         focusID,
			WeekOf:          weekOf,
			PromotedSignals: []types.PromotedSignal{},
			Status:          types.DealPlanDraft,
			CreatedAt:       now,
		}
	}

	existing := make(map[string]bool, len(plan.PromotedSignals))
	for _, ps := range plan.PromotedSignals {
		existing[ps.SignalID] = true
	}

	added := 0
	ids := make([]string, 0, len(signals))
	for _, sig := range signals {
		ids = append(ids, sig.ID)
		if existing[sig.ID] {
			continue
		}
		plan.PromotedSignals = append(plan.PromotedSignals, types.Snapshot(sig, now))
		existing[sig.ID] = true
		added++
	}
	plan.UpdatedAt = now

	if err := s.repo.Upsert(ctx, plan); err != nil {
		return PromotionResult{}, err
	}
	s.recordAudit(ctx, AuditEntry{
		FocusID:        focusID,
		WeekOf:         weekOf,
		AttemptedCount: len(signals),
		AddedCount:     added,
		SignalIDs:      ids,
		Timestamp:      now,
	})
	return PromotionResult{DealPlan: plan, AddedCount: added}, nil
}

// RemovePromotedSignal drops one snapshot from the plan by signal id. It
// returns false when the plan or the snapshot does not exist; the plan itself
// survives even when its last snapshot is removed.
func (s *Service) RemovePromotedSignal(ctx context.Context, focusID, weekOf, signalID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.repo.Get(ctx, focusID, weekOf)
	if err != nil {
		return false, err
	}
	if plan == nil {
		return false, nil
	}
	idx := -1
	for i, ps := range plan.PromotedSignals {
		if ps.SignalID == signalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	plan.PromotedSignals = append(plan.PromotedSignals[:idx], plan.PromotedSignals[idx+1:]...)
	plan.UpdatedAt = s.now()
	if err := s.repo.Upsert(ctx, plan); err != nil {
		return false, err
	}
	return true, nil
}

// GetDealPlan returns the plan for the key, or nil when none exists.
func (s *Service) GetDealPlan(ctx context.Context, focusID, weekOf string) (*types.DealPlan, error) {
	return s.repo.Get(ctx, focusID, weekOf)
}

// ListDealPlans returns plans newest-first; focusID narrows when non-empty.
func (s *Service) ListDealPlans(ctx context.Context, focusID string) ([]types.DealPlan, error) {
	return s.repo.List(ctx, focusID)
}

func (s *Service) recordAudit(ctx context.Context, entry AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		logger.Warnf("promotion audit write failed (focus=%s week=%s): %v", entry.FocusID, entry.WeekOf, err)
	}
}
