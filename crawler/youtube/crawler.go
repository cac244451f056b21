// Package youtube implements the YouTube metadata crawler: channel and video
// descriptor retrieval with pagination and bounded concurrent fan-out.
package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-crawler/client"
	"github.com/researchaccelerator-hub/youtube-crawler/common"
	model "github.com/researchaccelerator-hub/youtube-crawler/model/youtube"
)

// Crawler orchestrates Data API requests into aggregated descriptor and
// statistics collections.
type Crawler struct {
	client client.Client
	cfg    common.CrawlerConfig
}

// NewCrawler creates a crawler over an already-constructed request client.
func NewCrawler(cl client.Client, cfg common.CrawlerConfig) (*Crawler, error) {
	if cl == nil {
		return nil, fmt.Errorf("client is required")
	}

	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1")
	}

	if cfg.BatchSize < 1 || cfg.BatchSize > 50 {
		return nil, fmt.Errorf("batch_size must be between 1 and 50 (API limit)")
	}

	return &Crawler{client: cl, cfg: cfg}, nil
}

// DescribeChannels retrieves the snippet-level description of each channel.
// Creation dates are truncated to YYYY-MM-DD.
func (c *Crawler) DescribeChannels(ctx context.Context, channelIDs []string) ([]model.ChannelDescription, error) {
	response, err := c.client.Issue(ctx, client.ResourceChannels, client.Filters{
		client.FilterPart: "snippet",
		client.FilterID:   strings.Join(channelIDs, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe channels: %w", err)
	}

	descriptions := make([]model.ChannelDescription, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil {
			log.Warn().Str("channel_id", item.ID).Msg("Channel item missing snippet, skipping")
			continue
		}

		descriptions = append(descriptions, model.ChannelDescription{
			ChannelID:   item.ID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: truncateDate(item.Snippet.PublishedAt),
			Thumbnails:  item.Snippet.Thumbnails,
		})
	}

	log.Info().
		Int("requested", len(channelIDs)).
		Int("described", len(descriptions)).
		Msg("Retrieved channel descriptions")

	return descriptions, nil
}

// ChannelCountStats retrieves the count statistics of each channel. When a
// channel hides its subscriber count, both the count and the subscriber/view
// ratio are nil; a zero subscriber count also yields a nil ratio.
func (c *Crawler) ChannelCountStats(ctx context.Context, channelIDs []string) ([]model.ChannelCountStats, error) {
	response, err := c.client.Issue(ctx, client.ResourceChannels, client.Filters{
		client.FilterPart: "statistics",
		client.FilterID:   strings.Join(channelIDs, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel statistics: %w", err)
	}

	stats := make([]model.ChannelCountStats, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ChannelStats == nil {
			log.Warn().Str("channel_id", item.ID).Msg("Channel item missing statistics, skipping")
			continue
		}

		entry := model.ChannelCountStats{
			ChannelID:  item.ID,
			ViewCount:  int64(item.ChannelStats.ViewCount),
			VideoCount: int64(item.ChannelStats.VideoCount),
		}

		if !item.ChannelStats.HiddenSubscriberCount {
			subscribers := int64(item.ChannelStats.SubscriberCount)
			entry.SubscriberCount = &subscribers

			if subscribers > 0 {
				ratio := float64(item.ChannelStats.ViewCount) / float64(subscribers)
				entry.SubViewRatio = &ratio
			}
		}

		stats = append(stats, entry)
	}

	return stats, nil
}

// truncateDate reduces an RFC3339 timestamp to its date prefix (YYYY-MM-DD).
func truncateDate(publishedAt string) string {
	if len(publishedAt) > 10 {
		return publishedAt[:10]
	}
	return publishedAt
}
