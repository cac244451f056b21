package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// DataAPIService implements ListService over the YouTube Data API v3.
// A service instance is bound to a single API key.
type DataAPIService struct {
	service *ytapi.Service
}

// NewDataAPIService dials the Data API with the given key.
func NewDataAPIService(ctx context.Context, apiKey string, timeout time.Duration) (*DataAPIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	httpClient := &http.Client{
		Timeout: timeout,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &DataAPIService{service: service}, nil
}

// List issues a single list call against the given resource.
func (s *DataAPIService) List(ctx context.Context, resource Resource, filters Filters) (*ListResponse, error) {
	if s.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	switch resource {
	case ResourceChannels:
		return s.listChannels(ctx, filters)
	case ResourceSearch:
		return s.listSearch(ctx, filters)
	case ResourceVideos:
		return s.listVideos(ctx, filters)
	case ResourcePlaylistItems:
		return s.listPlaylistItems(ctx, filters)
	default:
		return nil, fmt.Errorf("unsupported resource: %s", resource)
	}
}

func (s *DataAPIService) listChannels(ctx context.Context, filters Filters) (*ListResponse, error) {
	call := s.service.Channels.List(partsFilter(filters)).Context(ctx)

	if ids := idsFilter(filters, FilterID); len(ids) > 0 {
		call = call.Id(ids...)
	}
	if username := stringFilter(filters, FilterForUsername); username != "" {
		call = call.ForUsername(username)
	}
	if max := intFilter(filters, FilterMaxResults); max > 0 {
		call = call.MaxResults(max)
	}
	if token := stringFilter(filters, FilterPageToken); token != "" {
		call = call.PageToken(token)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	out := &ListResponse{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		converted := Item{ID: item.Id}

		if item.Snippet != nil {
			converted.Snippet = &Snippet{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnails:  extractThumbnails(item.Snippet.Thumbnails),
			}
		}

		if item.Statistics != nil {
			converted.ChannelStats = &ChannelStatistics{
				HiddenSubscriberCount: item.Statistics.HiddenSubscriberCount,
				SubscriberCount:       item.Statistics.SubscriberCount,
				ViewCount:             item.Statistics.ViewCount,
				VideoCount:            item.Statistics.VideoCount,
			}
		}

		if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
			converted.ContentDetails = &ContentDetails{
				UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
			}
		}

		out.Items = append(out.Items, converted)
	}

	return out, nil
}

func (s *DataAPIService) listSearch(ctx context.Context, filters Filters) (*ListResponse, error) {
	call := s.service.Search.List(partsFilter(filters)).Context(ctx)

	if q := stringFilter(filters, FilterQuery); q != "" {
		call = call.Q(q)
	}
	if channelID := stringFilter(filters, FilterChannelID); channelID != "" {
		call = call.ChannelId(channelID)
	}
	if kind := stringFilter(filters, FilterType); kind != "" {
		call = call.Type(kind)
	}
	if order := stringFilter(filters, FilterOrder); order != "" {
		call = call.Order(order)
	}
	if after := stringFilter(filters, FilterPublishedAfter); after != "" {
		call = call.PublishedAfter(after)
	}
	if before := stringFilter(filters, FilterPublishedBefore); before != "" {
		call = call.PublishedBefore(before)
	}
	if max := intFilter(filters, FilterMaxResults); max > 0 {
		call = call.MaxResults(max)
	}
	if token := stringFilter(filters, FilterPageToken); token != "" {
		call = call.PageToken(token)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	out := &ListResponse{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		converted := Item{}

		if item.Id != nil {
			// A search result id is one of video, channel or playlist.
			switch {
			case item.Id.VideoId != "":
				converted.ID = item.Id.VideoId
			case item.Id.ChannelId != "":
				converted.ID = item.Id.ChannelId
			default:
				converted.ID = item.Id.PlaylistId
			}
		}

		if item.Snippet != nil {
			converted.Snippet = &Snippet{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				ChannelID:   item.Snippet.ChannelId,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnails:  extractThumbnails(item.Snippet.Thumbnails),
			}
		}

		out.Items = append(out.Items, converted)
	}

	return out, nil
}

func (s *DataAPIService) listVideos(ctx context.Context, filters Filters) (*ListResponse, error) {
	call := s.service.Videos.List(partsFilter(filters)).Context(ctx)

	if ids := idsFilter(filters, FilterID); len(ids) > 0 {
		call = call.Id(ids...)
	}
	if max := intFilter(filters, FilterMaxResults); max > 0 {
		call = call.MaxResults(max)
	}
	if token := stringFilter(filters, FilterPageToken); token != "" {
		call = call.PageToken(token)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	out := &ListResponse{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		converted := Item{ID: item.Id}

		if item.Snippet != nil {
			converted.Snippet = &Snippet{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				ChannelID:   item.Snippet.ChannelId,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnails:  extractThumbnails(item.Snippet.Thumbnails),
			}
		}

		if item.Statistics != nil {
			converted.VideoStats = Statistics{
				"viewCount":     strconv.FormatUint(item.Statistics.ViewCount, 10),
				"likeCount":     strconv.FormatUint(item.Statistics.LikeCount, 10),
				"favoriteCount": strconv.FormatUint(item.Statistics.FavoriteCount, 10),
				"commentCount":  strconv.FormatUint(item.Statistics.CommentCount, 10),
			}
		}

		out.Items = append(out.Items, converted)
	}

	return out, nil
}

func (s *DataAPIService) listPlaylistItems(ctx context.Context, filters Filters) (*ListResponse, error) {
	call := s.service.PlaylistItems.List(partsFilter(filters)).Context(ctx)

	if playlistID := stringFilter(filters, FilterPlaylistID); playlistID != "" {
		call = call.PlaylistId(playlistID)
	}
	if max := intFilter(filters, FilterMaxResults); max > 0 {
		call = call.MaxResults(max)
	}
	if token := stringFilter(filters, FilterPageToken); token != "" {
		call = call.PageToken(token)
	}

	response, err := call.Do()
	if err != nil {
		return nil, err
	}

	out := &ListResponse{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		converted := Item{ID: item.Id}

		if item.Snippet != nil {
			snippet := &Snippet{
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				ChannelID:   item.Snippet.ChannelId,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnails:  extractThumbnails(item.Snippet.Thumbnails),
			}
			if item.Snippet.ResourceId != nil {
				snippet.ResourceVideoID = item.Snippet.ResourceId.VideoId
			}
			converted.Snippet = snippet
		}

		if item.ContentDetails != nil {
			converted.ContentDetails = &ContentDetails{
				VideoID: item.ContentDetails.VideoId,
			}
		}

		out.Items = append(out.Items, converted)
	}

	return out, nil
}

// extractThumbnails flattens the SDK thumbnail struct into a size-keyed map
func extractThumbnails(details *ytapi.ThumbnailDetails) map[string]string {
	thumbnails := make(map[string]string)
	if details == nil {
		return thumbnails
	}

	if details.Default != nil {
		thumbnails["default"] = details.Default.Url
	}
	if details.Medium != nil {
		thumbnails["medium"] = details.Medium.Url
	}
	if details.High != nil {
		thumbnails["high"] = details.High.Url
	}
	if details.Standard != nil {
		thumbnails["standard"] = details.Standard.Url
	}
	if details.Maxres != nil {
		thumbnails["maxres"] = details.Maxres.Url
	}

	return thumbnails
}

// partsFilter reads the "part" filter as either a comma-separated string or
// a string slice.
func partsFilter(filters Filters) []string {
	switch v := filters[FilterPart].(type) {
	case string:
		return strings.Split(v, ",")
	case []string:
		return v
	default:
		return []string{"id"}
	}
}

// idsFilter reads an id-list filter as either a comma-separated string or a
// string slice.
func idsFilter(filters Filters, key string) []string {
	switch v := filters[key].(type) {
	case string:
		return strings.Split(v, ",")
	case []string:
		return v
	default:
		return nil
	}
}

func stringFilter(filters Filters, key string) string {
	if v, ok := filters[key].(string); ok {
		return v
	}
	return ""
}

func intFilter(filters Filters, key string) int64 {
	switch v := filters[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
