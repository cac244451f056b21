package youtube

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/researchaccelerator-hub/youtube-crawler/client"
	"github.com/researchaccelerator-hub/youtube-crawler/common"
	model "github.com/researchaccelerator-hub/youtube-crawler/model/youtube"
)

// VideoStatistics issues a single-page videos request with the supplied
// filters and maps each item id to its statistics counters.
func (c *Crawler) VideoStatistics(ctx context.Context, filters client.Filters) ([]model.VideoStatistics, error) {
	response, err := c.client.Issue(ctx, client.ResourceVideos, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get video statistics: %w", err)
	}

	stats := make([]model.VideoStatistics, 0, len(response.Items))
	for _, item := range response.Items {
		if item.VideoStats == nil {
			log.Warn().Str("video_id", item.ID).Msg("Video item missing statistics, skipping")
			continue
		}

		stats = append(stats, model.VideoStatistics{
			VideoID:    item.ID,
			Statistics: item.VideoStats,
		})
	}

	return stats, nil
}

// VideoStatisticsByChannel collects the statistics of every video of every
// channel. Ids are gathered via VideosByChannel, split into batches of at
// most BatchSize (the API limit is 50 ids per call), and one statistics
// request per batch is fanned out across the worker pool. Batch order is
// preserved per channel.
func (c *Crawler) VideoStatisticsByChannel(ctx context.Context, channelIDs []string) ([]*model.ChannelVideoStatistics, error) {
	channelVideos, err := c.VideosByChannel(ctx, channelIDs)
	if err != nil {
		return nil, err
	}

	results := make([]*model.ChannelVideoStatistics, len(channelVideos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for i, cv := range channelVideos {
		i, cv := i, cv
		videoIDs := make([]string, 0, len(cv.Videos))
		for _, video := range cv.Videos {
			videoIDs = append(videoIDs, video.VideoID)
		}

		batches := common.SplitBatches(videoIDs, c.cfg.BatchSize)
		results[i] = &model.ChannelVideoStatistics{
			ChannelID: cv.ChannelID,
			Batches:   make([][]model.VideoStatistics, len(batches)),
		}

		for j, batch := range batches {
			j, batch := j, batch
			g.Go(func() error {
				stats, err := c.VideoStatistics(gctx, client.Filters{
					client.FilterPart: "statistics",
					client.FilterID:   strings.Join(batch, ","),
				})
				if err != nil {
					return fmt.Errorf("channel %s batch %d: %w", cv.ChannelID, j, err)
				}

				results[i].Batches[j] = stats
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().
		Int("channel_count", len(results)).
		Msg("Collected video statistics for all channels")

	return results, nil
}

// StatisticsSum sums the numeric-string counters across the given records.
// Each summed key is renamed with a "_sum" suffix; non-numeric values are
// silently skipped.
func StatisticsSum(records []model.VideoStatistics) map[string]int64 {
	sums := make(map[string]int64)

	for _, record := range records {
		for key, value := range record.Statistics {
			n, err := strconv.ParseUint(value, 10, 63)
			if err != nil {
				continue
			}

			sums[key+"_sum"] += int64(n)
		}
	}

	return sums
}
