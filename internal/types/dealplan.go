package types

import "time"

// DealPlanStatus is the lifecycle state of a deal plan. Draft is the only
// state in the current design.
type DealPlanStatus string

const DealPlanDraft DealPlanStatus = "draft"

// PromotedSignal is an immutable snapshot of a Signal at the moment of
// promotion. Identity and lineage fields of the source (id, focus_id,
// week_of, created_at) are replaced by SignalID + PromotedAt; everything else
// is copied by value so later mutation of the source never changes the
// snapshot.
type PromotedSignal struct {
	SignalID          string     `json:"signal_id"`
	PromotedAt        time.Time  `json:"promoted_at"`
	Type              SignalType `json:"type"`
	Title             string     `json:"title"`
	WhatChanged       []string   `json:"what_changed"`
	SoWhat            string     `json:"so_what"`
	RecommendedAction string     `json:"recommended_action"`
	WhoCares          []string   `json:"who_cares,omitempty"`
	TalkTrack         string     `json:"talk_track,omitempty"`
	ProofToRequest    []string   `json:"proof_to_request,omitempty"`
	WhatsMissing      []string   `json:"whats_missing,omitempty"`
	Confidence        int        `json:"confidence"`
	ConfidenceLabel   string     `json:"confidence_label,omitempty"`
	Sources           []string   `json:"sources,omitempty"`
}

// DealPlan is the durable promotion target for one (focus account, week)
// pair. At most one plan exists per pair; PromotedSignals holds at most one
// entry per signal id, in insertion order.
type DealPlan struct {
	ID              string           `json:"id"`
	FocusID         string           `json:"focus_id"`
	WeekOf          string           `json:"week_of"`
	PromotedSignals []PromotedSignal `json:"promoted_signals"`
	Status          DealPlanStatus   `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Snapshot builds the promotion snapshot of a signal.
func Snapshot(sig Signal, promotedAt time.Time) PromotedSignal {
	return PromotedSignal{
		SignalID:          sig.ID,
		PromotedAt:        promotedAt,
		Type:              sig.Type,
		Title:             sig.Title,
		WhatChanged:       cloneStrings(sig.WhatChanged),
		SoWhat:            sig.SoWhat,
		RecommendedAction: sig.RecommendedAction,
		WhoCares:          cloneStrings(sig.WhoCares),
		TalkTrack:         sig.TalkTrack,
		ProofToRequest:    cloneStrings(sig.ProofToRequest),
		WhatsMissing:      cloneStrings(sig.WhatsMissing),
		Confidence:        sig.Confidence,
		ConfidenceLabel:   sig.ConfidenceLabel,
		Sources:           cloneStrings(sig.Sources),
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
