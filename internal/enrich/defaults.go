package enrich

import "sigdesk/internal/types"

// Field names reported in EnrichedSignal.DerivedFields.
const (
	FieldWhoCares        = "whoCares"
	FieldWhatsMissing    = "whatsMissing"
	FieldProofToRequest  = "proofToRequest"
	FieldTalkTrack       = "talkTrack"
	FieldSources         = "sources"
	FieldConfidenceLabel = "confidenceLabel"
)

// defaultStakeholders maps a signal type to the stakeholder titles that care
// about it by default.
var defaultStakeholders = map[types.SignalType][]string{
	types.SignalVendor:           {"CTO", "VP Engineering", "Head of Procurement"},
	types.SignalRegulatory:       {"Chief Compliance Officer", "CISO", "VP Engineering"},
	types.SignalLocalMarket:      {"VP Sales", "Regional GM", "CMO"},
	types.SignalCompetitive:      {"CRO", "VP Sales", "CTO"},
	types.SignalInternalActivity: {"Account Executive", "Customer Success Manager"},
}

// Fallback for unrecognized signal types.
var genericStakeholders = []string{"CTO", "CISO"}

// defaultProofs maps a signal type to generic artifacts worth requesting.
var defaultProofs = map[types.SignalType][]string{
	types.SignalVendor:           {"Vendor roadmap brief", "Reference architecture"},
	types.SignalRegulatory:       {"Compliance attestation", "Third-party audit summary"},
	types.SignalLocalMarket:      {"Regional market analysis", "Local customer case study"},
	types.SignalCompetitive:      {"Competitive battlecard", "Win/loss analysis"},
	types.SignalInternalActivity: {"Engagement summary", "Stakeholder meeting notes"},
}

var genericProofs = []string{"Supporting documentation", "Reference case study"}

const defaultSource = "Internal engagement signals"

func stakeholdersFor(t types.SignalType) []string {
	if v, ok := defaultStakeholders[t]; ok {
		return v
	}
	return genericStakeholders
}

func proofsFor(t types.SignalType) []string {
	if v, ok := defaultProofs[t]; ok {
		return v
	}
	return genericProofs
}
