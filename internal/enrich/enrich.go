// Package enrich fills missing fields on weekly signals via deterministic
// fallback rules. Each rule fires independently and the result reports which
// fields were synthesized, so consumers can flag provenance.
package enrich

import (
	"fmt"
	"strings"

	"sigdesk/internal/pkg/text"
	"sigdesk/internal/types"
)

const rootCauseMax = 80

// ObjectionSource is the read API of the objection library used as a
// derivation source for the whats-missing rule.
type ObjectionSource interface {
	List(orgID, accountID string) []types.Objection
}

// Enricher derives complete signals from raw ones. It holds no mutable state
// and is safe for concurrent use.
type Enricher struct {
	objections ObjectionSource
	orgID      string
}

// New builds an Enricher over the given objection source. src may be nil, in
// which case the whats-missing rule always uses the generic fallback.
func New(src ObjectionSource, orgID string) *Enricher {
	return &Enricher{objections: src, orgID: orgID}
}

// Enrich returns a complete copy of every input signal, preserving input
// order. Source records are never mutated; every filled field is a fresh
// value recorded in DerivedFields.
func (e *Enricher) Enrich(signals []types.Signal, focusID string) []types.EnrichedSignal {
	out := make([]types.EnrichedSignal, 0, len(signals))
	for _, sig := range signals {
		out = append(out, e.enrichOne(sig, focusID))
	}
	return out
}

func (e *Enricher) enrichOne(sig types.Signal, focusID string) types.EnrichedSignal {
	enriched := types.EnrichedSignal{Signal: sig, DerivedFields: []string{}}

	if len(sig.WhoCares) == 0 {
		enriched.WhoCares = append([]string(nil), stakeholdersFor(sig.Type)...)
		enriched.DerivedFields = append(enriched.DerivedFields, FieldWhoCares)
	}
	if len(sig.WhatsMissing) == 0 {
		enriched.WhatsMissing = e.deriveGaps(sig, focusID)
		enriched.DerivedFields = append(enriched.DerivedFields, FieldWhatsMissing)
	}
	if len(sig.ProofToRequest) == 0 {
		enriched.ProofToRequest = append([]string(nil), proofsFor(sig.Type)...)
		enriched.DerivedFields = append(enriched.DerivedFields, FieldProofToRequest)
	}
	if text.Blank(sig.TalkTrack) {
		enriched.TalkTrack = synthesizeTalkTrack(sig)
		enriched.DerivedFields = append(enriched.DerivedFields, FieldTalkTrack)
	}
	if len(sig.Sources) == 0 {
		enriched.Sources = []string{defaultSource}
		enriched.DerivedFields = append(enriched.DerivedFields, FieldSources)
	}
	if text.Blank(sig.ConfidenceLabel) {
		enriched.ConfidenceLabel = ConfidenceLabel(sig.Confidence)
		enriched.DerivedFields = append(enriched.DerivedFields, FieldConfidenceLabel)
	}
	return enriched
}

// deriveGaps prefers up to two account-scoped objections over the generic
// gap statement. An empty objection lookup is not an error.
func (e *Enricher) deriveGaps(sig types.Signal, focusID string) []string {
	if e.objections != nil {
		objections := e.objections.List(e.orgID, focusID)
		if len(objections) > 0 {
			if len(objections) > 2 {
				objections = objections[:2]
			}
			gaps := make([]string, 0, len(objections))
			for _, o := range objections {
				gaps = append(gaps, fmt.Sprintf("Objection: %s — %s", o.Theme, text.Truncate(o.RootCause, rootCauseMax)))
			}
			return gaps
		}
	}
	return []string{fmt.Sprintf("No validated customer impact captured for this %s signal yet", sig.Type)}
}

func synthesizeTalkTrack(sig types.Signal) string {
	return fmt.Sprintf("Worth raising %s with the account team. %s. Suggested next step: %s",
		strings.ToLower(sig.Title), strings.ToLower(sig.SoWhat), sig.RecommendedAction)
}

// ConfidenceLabel maps a 0..100 confidence score onto its display band.
func ConfidenceLabel(confidence int) string {
	switch {
	case confidence >= 70:
		return "High"
	case confidence >= 40:
		return "Medium"
	default:
		return "Low"
	}
}
