// Package youtube contains YouTube-specific data models
package youtube

// ChannelDescription represents the snippet-level description of a channel
type ChannelDescription struct {
	ChannelID   string
	Title       string
	Description string
	PublishedAt string // creation date, truncated to YYYY-MM-DD
	Thumbnails  map[string]string
}

// ChannelCountStats represents the count statistics of a channel
type ChannelCountStats struct {
	ChannelID       string
	SubscriberCount *int64 // nil when the channel hides its subscriber count
	ViewCount       int64
	VideoCount      int64
	SubViewRatio    *float64 // views per subscriber; nil when hidden or zero subscribers
}

// VideoDescription represents the snippet-level description of a video
type VideoDescription struct {
	ChannelID   string
	VideoID     string
	Title       string
	Description string
	PublishedAt string
	Thumbnails  map[string]string
}

// ChannelVideos holds every video of a channel's uploads playlist
type ChannelVideos struct {
	ChannelID string
	UploadsID string
	Videos    []VideoDescription
}

// VideoStatistics maps a video id to its statistics counters. Counter values
// are kept as the numeric strings the API returns them in.
type VideoStatistics struct {
	VideoID    string
	Statistics map[string]string
}

// ChannelVideoStatistics aggregates per-batch video statistics for a channel.
// Batches preserve the order of the 50-id chunks they were requested in.
type ChannelVideoStatistics struct {
	ChannelID string
	Batches   [][]VideoStatistics
}
