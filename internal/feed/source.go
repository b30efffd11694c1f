package feed

import "sigdesk/internal/types"

// Source is the sealed set of content families the aggregator understands.
// Adding a family means adding a variant here plus a case in mapSource;
// the type switch keeps dispatch exhaustive instead of duck-typed.
type Source interface {
	sourceKind() types.ItemType
}

// StorySource wraps one signal story record.
type StorySource struct {
	Story types.SignalStory
}

// VoiceEpisodeSource wraps one episode of a voice, together with its owner.
type VoiceEpisodeSource struct {
	Voice   types.Voice
	Episode types.VoiceEpisode
}

// WinwireSource wraps one winwire case story.
type WinwireSource struct {
	Winwire types.Winwire
}

func (StorySource) sourceKind() types.ItemType        { return types.ItemSignal }
func (VoiceEpisodeSource) sourceKind() types.ItemType { return types.ItemVoice }
func (WinwireSource) sourceKind() types.ItemType      { return types.ItemWinwire }
