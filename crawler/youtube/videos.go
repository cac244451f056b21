package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/researchaccelerator-hub/youtube-crawler/client"
	model "github.com/researchaccelerator-hub/youtube-crawler/model/youtube"
)

// channelUploads pairs a channel with its uploads playlist
type channelUploads struct {
	channelID string
	uploadsID string
}

// VideosForUploads walks a channel's uploads playlist and returns every
// video description in it. Pages of 50 are accumulated until the response
// carries no next-page token, capped at the configured MaxPages.
func (c *Crawler) VideosForUploads(ctx context.Context, channelID, uploadsID string) (*model.ChannelVideos, error) {
	videos := make([]model.VideoDescription, 0)
	pageToken := ""

	for page := 0; ; page++ {
		if page >= c.cfg.MaxPages {
			log.Warn().
				Str("channel_id", channelID).
				Str("uploads_id", uploadsID).
				Int("max_pages", c.cfg.MaxPages).
				Msg("Pagination cap reached, returning accumulated videos")
			break
		}

		response, err := c.client.Issue(ctx, client.ResourcePlaylistItems, client.Filters{
			client.FilterPart:       "snippet",
			client.FilterPlaylistID: uploadsID,
			client.FilterMaxResults: int64(50),
			client.FilterPageToken:  pageToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list uploads playlist %s: %w", uploadsID, err)
		}

		for _, item := range response.Items {
			if item.Snippet == nil {
				continue
			}

			videos = append(videos, model.VideoDescription{
				ChannelID:   item.Snippet.ChannelID,
				VideoID:     item.Snippet.ResourceVideoID,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
				PublishedAt: item.Snippet.PublishedAt,
				Thumbnails:  item.Snippet.Thumbnails,
			})
		}

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	log.Debug().
		Str("channel_id", channelID).
		Str("uploads_id", uploadsID).
		Int("video_count", len(videos)).
		Msg("Walked uploads playlist")

	return &model.ChannelVideos{
		ChannelID: channelID,
		UploadsID: uploadsID,
		Videos:    videos,
	}, nil
}

// VideosByChannel resolves each channel's uploads playlist and fans out one
// pagination task per channel across the bounded worker pool. All tasks are
// submitted before any result is collected; results preserve input order.
func (c *Crawler) VideosByChannel(ctx context.Context, channelIDs []string) ([]*model.ChannelVideos, error) {
	response, err := c.client.Issue(ctx, client.ResourceChannels, client.Filters{
		client.FilterPart: "contentDetails",
		client.FilterID:   strings.Join(channelIDs, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve uploads playlists: %w", err)
	}

	uploads := make([]channelUploads, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.UploadsPlaylistID == "" {
			log.Warn().Str("channel_id", item.ID).Msg("Channel has no uploads playlist, skipping")
			continue
		}

		uploads = append(uploads, channelUploads{
			channelID: item.ID,
			uploadsID: item.ContentDetails.UploadsPlaylistID,
		})
	}

	results := make([]*model.ChannelVideos, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for i, upload := range uploads {
		i, upload := i, upload
		g.Go(func() error {
			taskID := uuid.New().String()
			log.Debug().
				Str("task_id", taskID).
				Str("channel_id", upload.channelID).
				Msg("Starting uploads walk task")

			channelVideos, err := c.VideosForUploads(gctx, upload.channelID, upload.uploadsID)
			if err != nil {
				return fmt.Errorf("channel %s: %w", upload.channelID, err)
			}

			results[i] = channelVideos
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("channel_count", len(results)).
		Msg("Retrieved videos for all channels")

	return results, nil
}
