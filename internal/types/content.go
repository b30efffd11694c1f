package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType tags the source family of a unified feed item.
type ItemType string

const (
	ItemSignal  ItemType = "signal"
	ItemVoice   ItemType = "voice"
	ItemWinwire ItemType = "winwire"
)

// MediaType is the primary media of a feed item.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// SignalStory is a market/account story record for the shared feed. This is
// feed content, distinct from the weekly Signal intelligence item.
type SignalStory struct {
	ID          string     `json:"id"`
	Type        SignalType `json:"type"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	PersonName  string     `json:"person_name,omitempty"`
	PersonImage string     `json:"person_image,omitempty"`
	OrgName     string     `json:"org_name,omitempty"`
	OrgLogo     string     `json:"org_logo,omitempty"`
	CoverURL    string     `json:"cover_url,omitempty"`
	Payload     string     `json:"payload,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
}

// VoiceEpisode is one published episode of a recurring narrator.
type VoiceEpisode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AudioURL    string    `json:"audio_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Voice is a recurring internal narrator/expert with episodic content.
type Voice struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Role     string         `json:"role"`
	Avatar   string         `json:"avatar,omitempty"`
	Episodes []VoiceEpisode `json:"episodes"`
}

// Winwire is a short video-first case story. SpaceVisibility lists the spaces
// the story may appear in; an empty list means the story is not visible
// anywhere.
type Winwire struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	CustomerName    string          `json:"customer_name"`
	Industry        string          `json:"industry,omitempty"`
	DealValue       decimal.Decimal `json:"deal_value"`
	Summary         string          `json:"summary,omitempty"`
	VideoURL        string          `json:"video_url,omitempty"`
	CoverURL        string          `json:"cover_url,omitempty"`
	SpaceVisibility []string        `json:"space_visibility"`
	CreatedAt       time.Time       `json:"created_at"`
}

// UnifiedStoryItem is the normalized shape the aggregator emits for all three
// source families. PublishedAt is the sole sort key of every feed.
type UnifiedStoryItem struct {
	ID          string    `json:"id"`
	ItemType    ItemType  `json:"item_type"`
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	ChipLabel   string    `json:"chip_label"`
	MediaType   MediaType `json:"media_type"`
	CoverURL    string    `json:"cover_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`

	// Kind-specific fields carried through unmodified.
	SignalType   SignalType       `json:"signal_type,omitempty"`
	Payload      string           `json:"payload,omitempty"`
	VoiceID      string           `json:"voice_id,omitempty"`
	VoiceName    string           `json:"voice_name,omitempty"`
	VoiceRole    string           `json:"voice_role,omitempty"`
	VoiceAvatar  string           `json:"voice_avatar,omitempty"`
	Episode      *VoiceEpisode    `json:"episode,omitempty"`
	RecencyLabel string           `json:"recency_label,omitempty"`
	DealValue    *decimal.Decimal `json:"deal_value,omitempty"`
	CustomerName string           `json:"customer_name,omitempty"`
}
