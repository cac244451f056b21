package client

import "reflect"

// Resource identifies one of the four supported list-style read endpoints
type Resource string

const (
	// ResourceChannels is the channel lookup endpoint
	ResourceChannels Resource = "channels"

	// ResourceSearch is the search endpoint
	ResourceSearch Resource = "search"

	// ResourceVideos is the video lookup endpoint
	ResourceVideos Resource = "videos"

	// ResourcePlaylistItems is the playlist-item lookup endpoint
	ResourcePlaylistItems Resource = "playlistitems"
)

// Well-known filter names accepted by the list endpoints
const (
	FilterPart            = "part"
	FilterID              = "id"
	FilterPlaylistID      = "playlistId"
	FilterMaxResults      = "maxResults"
	FilterPageToken       = "pageToken"
	FilterQuery           = "q"
	FilterChannelID       = "channelId"
	FilterType            = "type"
	FilterOrder           = "order"
	FilterForUsername     = "forUsername"
	FilterPublishedAfter  = "publishedAfter"
	FilterPublishedBefore = "publishedBefore"
)

// Filters is a mapping from filter name to value, supplied per call.
// Empty values are pruned before transmission.
type Filters map[string]interface{}

// PruneFilters returns a copy of f with every falsy value removed: nil,
// empty strings, zero numbers, false, and empty collections.
func PruneFilters(f Filters) Filters {
	good := make(Filters, len(f))

	for key, value := range f {
		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
			if rv.Len() == 0 {
				continue
			}
		default:
			if rv.IsZero() {
				continue
			}
		}

		good[key] = value
	}

	return good
}

// Snippet holds the snippet-level fields of a response item
type Snippet struct {
	Title       string
	Description string
	ChannelID   string
	PublishedAt string
	// ResourceVideoID is the video id a playlist item points at
	// (snippet.resourceId.videoId); empty for other resources.
	ResourceVideoID string
	Thumbnails      map[string]string
}

// ChannelStatistics holds the statistics sub-object of a channel item
type ChannelStatistics struct {
	HiddenSubscriberCount bool
	SubscriberCount       uint64
	ViewCount             uint64
	VideoCount            uint64
}

// Statistics holds video statistics counters as the numeric strings the
// API wire format carries them in
type Statistics map[string]string

// ContentDetails holds the contentDetails sub-object of a response item
type ContentDetails struct {
	// UploadsPlaylistID is the channel's uploads playlist
	// (contentDetails.relatedPlaylists.uploads); empty for non-channel items.
	UploadsPlaylistID string
	// VideoID is the video a playlist item points at; empty otherwise.
	VideoID string
}

// Item is one entry of a list response, normalized across the four resources.
// Sub-objects are nil when the requested parts did not include them.
type Item struct {
	ID             string
	Snippet        *Snippet
	ChannelStats   *ChannelStatistics
	VideoStats     Statistics
	ContentDetails *ContentDetails
}

// ListResponse is a single page of a list endpoint. An empty NextPageToken
// signals pagination completion.
type ListResponse struct {
	Items         []Item
	NextPageToken string
}
