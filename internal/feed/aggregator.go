// Package feed reconciles the three content families (signal stories, voice
// episodes, winwire case stories) into one normalized item shape and serves
// recency-ordered feeds and playlists.
package feed

import (
	"fmt"
	"sort"
	"time"

	"sigdesk/internal/content"
	"sigdesk/internal/types"
)

// SnapshotSource supplies the current seeded collections.
type SnapshotSource interface {
	Snapshot() content.Snapshot
}

// Aggregator maps heterogeneous source records onto UnifiedStoryItem and
// sorts every feed strictly by published time, newest first. It holds no
// mutable state of its own.
type Aggregator struct {
	source SnapshotSource
	now    func() time.Time
}

func New(source SnapshotSource) *Aggregator {
	return &Aggregator{source: source, now: time.Now}
}

// SetClock overrides the aggregator clock, for tests.
func (a *Aggregator) SetClock(now func() time.Time) {
	if now != nil {
		a.now = now
	}
}

// UnifiedStories returns the combined feed across all families. Each voice
// contributes only its most recent episode so one prolific narrator cannot
// flood the shared feed; winwires are filtered by space when space is
// non-empty.
func (a *Aggregator) UnifiedStories(space string) []types.UnifiedStoryItem {
	snap := a.source.Snapshot()
	now := a.now()

	sources := make([]Source, 0, len(snap.Stories)+len(snap.Voices)+len(snap.Winwires))
	for _, story := range snap.Stories {
		sources = append(sources, StorySource{Story: story})
	}
	for _, voice := range snap.Voices {
		if ep, ok := latestEpisode(voice); ok {
			sources = append(sources, VoiceEpisodeSource{Voice: voice, Episode: ep})
		}
	}
	for _, ww := range snap.Winwires {
		if space != "" && !visibleInSpace(ww, space) {
			continue
		}
		sources = append(sources, WinwireSource{Winwire: ww})
	}

	items := make([]types.UnifiedStoryItem, 0, len(sources))
	for _, src := range sources {
		items = append(items, a.mapSource(src, now))
	}
	sortByRecency(items)
	return items
}

// SignalPlaylist returns all signal-family items, newest first.
func (a *Aggregator) SignalPlaylist() []types.UnifiedStoryItem {
	snap := a.source.Snapshot()
	now := a.now()
	items := make([]types.UnifiedStoryItem, 0, len(snap.Stories))
	for _, story := range snap.Stories {
		items = append(items, a.mapSource(StorySource{Story: story}, now))
	}
	sortByRecency(items)
	return items
}

// VoicePlaylist returns every episode of one voice, newest first. Unknown
// voice ids yield an empty playlist, never an error.
func (a *Aggregator) VoicePlaylist(voiceID string) []types.UnifiedStoryItem {
	snap := a.source.Snapshot()
	now := a.now()
	for _, voice := range snap.Voices {
		if voice.ID != voiceID {
			continue
		}
		items := make([]types.UnifiedStoryItem, 0, len(voice.Episodes))
		for _, ep := range voice.Episodes {
			items = append(items, a.mapSource(VoiceEpisodeSource{Voice: voice, Episode: ep}, now))
		}
		sortByRecency(items)
		return items
	}
	return []types.UnifiedStoryItem{}
}

// WinwirePlaylist returns winwire items visible in the given space, newest
// first. An empty space skips the visibility filter.
func (a *Aggregator) WinwirePlaylist(space string) []types.UnifiedStoryItem {
	snap := a.source.Snapshot()
	now := a.now()
	items := make([]types.UnifiedStoryItem, 0, len(snap.Winwires))
	for _, ww := range snap.Winwires {
		if space != "" && !visibleInSpace(ww, space) {
			continue
		}
		items = append(items, a.mapSource(WinwireSource{Winwire: ww}, now))
	}
	sortByRecency(items)
	return items
}

// mapSource normalizes one source record. The type switch is exhaustive over
// the sealed Source variants.
func (a *Aggregator) mapSource(src Source, now time.Time) types.UnifiedStoryItem {
	switch s := src.(type) {
	case StorySource:
		return mapStory(s.Story, now)
	case VoiceEpisodeSource:
		return mapVoiceEpisode(s.Voice, s.Episode, now)
	case WinwireSource:
		return mapWinwire(s.Winwire, now)
	default:
		panic(fmt.Sprintf("feed: unknown source variant %T", src))
	}
}

func mapStory(story types.SignalStory, now time.Time) types.UnifiedStoryItem {
	publishedAt := story.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = now
	}
	return types.UnifiedStoryItem{
		ID:           story.ID,
		ItemType:     types.ItemSignal,
		PublishedAt:  publishedAt,
		Title:        story.Title,
		Subtitle:     story.Subtitle,
		ChipLabel:    signalChip(story.Type),
		MediaType:    types.MediaImage,
		CoverURL:     storyCover(story),
		SignalType:   story.Type,
		Payload:      story.Payload,
		RecencyLabel: RecencyLabel(now, publishedAt),
	}
}

func mapVoiceEpisode(voice types.Voice, ep types.VoiceEpisode, now time.Time) types.UnifiedStoryItem {
	episode := ep
	media := types.MediaAudio
	if ep.VideoURL != "" {
		media = types.MediaVideo
	}
	cover := ep.CoverURL
	if cover == "" {
		cover = voice.Avatar
	}
	return types.UnifiedStoryItem{
		ID:           ep.ID,
		ItemType:     types.ItemVoice,
		PublishedAt:  ep.PublishedAt,
		Title:        ep.Title,
		Subtitle:     fmt.Sprintf("%s · %s", voice.Name, voice.Role),
		ChipLabel:    "Voice",
		MediaType:    media,
		CoverURL:     cover,
		VideoURL:     ep.VideoURL,
		VoiceID:      voice.ID,
		VoiceName:    voice.Name,
		VoiceRole:    voice.Role,
		VoiceAvatar:  voice.Avatar,
		Episode:      &episode,
		RecencyLabel: RecencyLabel(now, ep.PublishedAt),
	}
}

func mapWinwire(ww types.Winwire, now time.Time) types.UnifiedStoryItem {
	media := types.MediaVideo
	if ww.VideoURL == "" {
		media = types.MediaImage
	}
	dealValue := ww.DealValue
	return types.UnifiedStoryItem{
		ID:           ww.ID,
		ItemType:     types.ItemWinwire,
		PublishedAt:  ww.CreatedAt,
		Title:        ww.Title,
		Subtitle:     ww.CustomerName,
		ChipLabel:    "Winwire",
		MediaType:    media,
		CoverURL:     ww.CoverURL,
		VideoURL:     ww.VideoURL,
		Payload:      ww.Summary,
		DealValue:    &dealValue,
		CustomerName: ww.CustomerName,
		RecencyLabel: RecencyLabel(now, ww.CreatedAt),
	}
}

// latestEpisode picks the most recently published episode of a voice.
// Voices without episodes contribute nothing to the combined feed.
func latestEpisode(voice types.Voice) (types.VoiceEpisode, bool) {
	if len(voice.Episodes) == 0 {
		return types.VoiceEpisode{}, false
	}
	latest := voice.Episodes[0]
	for _, ep := range voice.Episodes[1:] {
		if ep.PublishedAt.After(latest.PublishedAt) {
			latest = ep
		}
	}
	return latest, true
}

func visibleInSpace(ww types.Winwire, space string) bool {
	for _, s := range ww.SpaceVisibility {
		if s == space {
			return true
		}
	}
	return false
}

// sortByRecency orders items strictly by published time descending across
// all families. Timestamp collisions break deterministically on item type,
// then id, both ascending.
func sortByRecency(items []types.UnifiedStoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		if a.ItemType != b.ItemType {
			return a.ItemType < b.ItemType
		}
		return a.ID < b.ID
	})
}

var signalChips = map[types.SignalType]string{
	types.SignalVendor:           "Vendor move",
	types.SignalRegulatory:       "Regulatory",
	types.SignalLocalMarket:      "Local market",
	types.SignalCompetitive:      "Competitive",
	types.SignalInternalActivity: "Internal activity",
}

func signalChip(t types.SignalType) string {
	if chip, ok := signalChips[t]; ok {
		return chip
	}
	return "Signal"
}

// storyCover resolves the card image by priority: story-specific cover, then
// person image, then org logo.
func storyCover(story types.SignalStory) string {
	switch {
	case story.CoverURL != "":
		return story.CoverURL
	case story.PersonImage != "":
		return story.PersonImage
	default:
		return story.OrgLogo
	}
}
