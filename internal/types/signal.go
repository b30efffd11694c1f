package types

import "time"

// SignalType classifies a weekly intelligence item.
type SignalType string

const (
	SignalVendor           SignalType = "vendor"
	SignalRegulatory       SignalType = "regulatory"
	SignalLocalMarket      SignalType = "localMarket"
	SignalCompetitive      SignalType = "competitive"
	SignalInternalActivity SignalType = "internalActivity"
)

// Signal is one weekly intelligence item about a focus account. Records are
// produced upstream and are read-only here; enrichment returns derived copies
// and never mutates the source.
type Signal struct {
	ID                string     `json:"id"`
	FocusID           string     `json:"focus_id"`
	WeekOf            string     `json:"week_of"` // ISO week-start date, e.g. 2026-02-09
	Type              SignalType `json:"type"`
	Title             string     `json:"title"`
	WhatChanged       []string   `json:"what_changed"`
	SoWhat            string     `json:"so_what"`
	RecommendedAction string     `json:"recommended_action"`
	WhoCares          []string   `json:"who_cares,omitempty"`
	TalkTrack         string     `json:"talk_track,omitempty"`
	ProofToRequest    []string   `json:"proof_to_request,omitempty"`
	WhatsMissing      []string   `json:"whats_missing,omitempty"`
	Confidence        int        `json:"confidence"` // 0..100
	ConfidenceLabel   string     `json:"confidence_label,omitempty"`
	Sources           []string   `json:"sources,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// EnrichedSignal is a Signal with every consumer-required field populated.
// DerivedFields lists exactly the field names that were synthesized by
// fallback rules rather than sourced, so the UI can flag provenance.
type EnrichedSignal struct {
	Signal
	DerivedFields []string `json:"_derivedFields"`
}

// Objection is a canonical per-account objection theme, consumed only as an
// enrichment derivation source.
type Objection struct {
	ID        string `json:"id" yaml:"id"`
	OrgID     string `json:"org_id" yaml:"org_id"`
	AccountID string `json:"account_id" yaml:"account_id"`
	Theme     string `json:"theme" yaml:"theme"`
	RootCause string `json:"root_cause" yaml:"root_cause"`
}
