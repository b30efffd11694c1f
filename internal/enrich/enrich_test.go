package enrich

import (
	"strings"
	"testing"
	"time"

	"sigdesk/internal/objection"
	"sigdesk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawSignal(id string, typ types.SignalType) types.Signal {
	return types.Signal{
		ID:                id,
		FocusID:           "acme",
		WeekOf:            "2026-02-09",
		Type:              typ,
		Title:             "Vendor Consolidation Announced",
		WhatChanged:       []string{"Primary vendor announced end-of-life for current platform"},
		SoWhat:            "Renewal conversations will open earlier than planned",
		RecommendedAction: "Schedule an architecture review before the renewal window",
		Confidence:        55,
		CreatedAt:         time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC),
	}
}

func TestEnrich_FillsAllMissingFields(t *testing.T) {
	e := New(objection.New(nil), "org-1")

	out := e.Enrich([]types.Signal{rawSignal("s1", types.SignalRegulatory)}, "acme")
	require.Len(t, out, 1)
	got := out[0]

	assert.NotEmpty(t, got.WhoCares)
	assert.NotEmpty(t, got.WhatsMissing)
	assert.NotEmpty(t, got.ProofToRequest)
	assert.NotEmpty(t, strings.TrimSpace(got.TalkTrack))
	assert.NotEmpty(t, got.Sources)
	assert.NotEmpty(t, got.ConfidenceLabel)

	assert.ElementsMatch(t, []string{
		FieldWhoCares, FieldWhatsMissing, FieldProofToRequest,
		FieldTalkTrack, FieldSources, FieldConfidenceLabel,
	}, got.DerivedFields)
}

func TestEnrich_OnlyEmptyFieldsDerived(t *testing.T) {
	sig := rawSignal("s1", types.SignalVendor)
	sig.WhoCares = []string{"VP Data Platform"}
	sig.TalkTrack = "Already drafted by the account team"
	sig.Confidence = 80

	e := New(objection.New(nil), "org-1")
	got := e.Enrich([]types.Signal{sig}, "acme")[0]

	assert.Equal(t, []string{"VP Data Platform"}, got.WhoCares)
	assert.Equal(t, "Already drafted by the account team", got.TalkTrack)
	assert.NotContains(t, got.DerivedFields, FieldWhoCares)
	assert.NotContains(t, got.DerivedFields, FieldTalkTrack)
	assert.Contains(t, got.DerivedFields, FieldWhatsMissing)
	assert.Contains(t, got.DerivedFields, FieldConfidenceLabel)
	assert.Equal(t, "High", got.ConfidenceLabel)
}

func TestEnrich_RegulatoryDefaultsAndConfidenceBands(t *testing.T) {
	a := rawSignal("a", types.SignalRegulatory)
	a.Confidence = 80
	b := rawSignal("b", types.SignalRegulatory)
	b.Confidence = 30
	b.WhoCares = []string{}

	e := New(objection.New(nil), "org-1")
	out := e.Enrich([]types.Signal{a, b}, "acme")
	require.Len(t, out, 2)

	assert.Equal(t, []string{"Chief Compliance Officer", "CISO", "VP Engineering"}, out[1].WhoCares)
	assert.Equal(t, "High", out[0].ConfidenceLabel)
	assert.Equal(t, "Low", out[1].ConfidenceLabel)
}

func TestEnrich_UnknownTypeFallsBackToGenericTables(t *testing.T) {
	sig := rawSignal("s1", types.SignalType("mystery"))

	e := New(objection.New(nil), "org-1")
	got := e.Enrich([]types.Signal{sig}, "acme")[0]

	assert.Equal(t, []string{"CTO", "CISO"}, got.WhoCares)
	assert.Equal(t, []string{"Supporting documentation", "Reference case study"}, got.ProofToRequest)
}

func TestEnrich_WhatsMissingFromObjections(t *testing.T) {
	lib := objection.New([]types.Objection{
		{ID: "o1", OrgID: "org-1", AccountID: "acme", Theme: "Pricing", RootCause: "Perceived premium over incumbent"},
		{ID: "o2", OrgID: "org-1", AccountID: "acme", Theme: "Lock-in", RootCause: strings.Repeat("x", 120)},
		{ID: "o3", OrgID: "org-1", AccountID: "acme", Theme: "Support", RootCause: "Regional coverage concerns"},
	})

	e := New(lib, "org-1")
	got := e.Enrich([]types.Signal{rawSignal("s1", types.SignalCompetitive)}, "acme")[0]

	require.Len(t, got.WhatsMissing, 2)
	assert.Equal(t, "Objection: Pricing — Perceived premium over incumbent", got.WhatsMissing[0])
	assert.Equal(t, "Objection: Lock-in — "+strings.Repeat("x", 80), got.WhatsMissing[1])
}

func TestEnrich_WhatsMissingGenericWhenNoObjections(t *testing.T) {
	lib := objection.New([]types.Objection{
		{ID: "o1", OrgID: "org-1", AccountID: "other-account", Theme: "Pricing", RootCause: "n/a"},
	})

	e := New(lib, "org-1")
	got := e.Enrich([]types.Signal{rawSignal("s1", types.SignalLocalMarket)}, "acme")[0]

	require.Len(t, got.WhatsMissing, 1)
	assert.Contains(t, got.WhatsMissing[0], "localMarket")
}

func TestEnrich_TalkTrackReferencesTitleSoWhatAction(t *testing.T) {
	sig := rawSignal("s1", types.SignalVendor)

	e := New(objection.New(nil), "org-1")
	got := e.Enrich([]types.Signal{sig}, "acme")[0]

	assert.Contains(t, got.TalkTrack, strings.ToLower(sig.Title))
	assert.Contains(t, got.TalkTrack, strings.ToLower(sig.SoWhat))
	assert.Contains(t, got.TalkTrack, sig.RecommendedAction)
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	sig := rawSignal("s1", types.SignalVendor)
	original := sig

	e := New(objection.New(nil), "org-1")
	_ = e.Enrich([]types.Signal{sig}, "acme")

	assert.Equal(t, original, sig)
	assert.Nil(t, sig.WhoCares)
	assert.Empty(t, sig.TalkTrack)
}

func TestConfidenceLabelBounds(t *testing.T) {
	assert.Equal(t, "High", ConfidenceLabel(70))
	assert.Equal(t, "Medium", ConfidenceLabel(69))
	assert.Equal(t, "Medium", ConfidenceLabel(40))
	assert.Equal(t, "Low", ConfidenceLabel(39))
	assert.Equal(t, "Low", ConfidenceLabel(0))
}
