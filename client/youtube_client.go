package client

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-crawler/common"
	"github.com/researchaccelerator-hub/youtube-crawler/keypool"
)

// YouTubeClient issues list requests against a ListService session, rotating
// the quota key and rebuilding the session whenever the active key is
// rejected with HTTP 403. The session handle is owned exclusively by the
// client; rebuilds are serialized behind a mutex so rotation is safe while
// pooled workers share the client.
type YouTubeClient struct {
	mu      sync.Mutex
	service ListService

	keys    *keypool.Pool
	factory ServiceFactory
	cfg     common.CrawlerConfig
}

// NewYouTubeClient creates a client backed by the real Data API, initialized
// with the first key of the configured pool.
func NewYouTubeClient(ctx context.Context, cfg common.CrawlerConfig) (*YouTubeClient, error) {
	factory := func(ctx context.Context, apiKey string) (ListService, error) {
		return NewDataAPIService(ctx, apiKey, cfg.RequestTimeout)
	}

	return NewYouTubeClientWithFactory(ctx, cfg, factory)
}

// NewYouTubeClientWithFactory creates a client with a custom session factory.
func NewYouTubeClientWithFactory(ctx context.Context, cfg common.CrawlerConfig, factory ServiceFactory) (*YouTubeClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := keypool.New(cfg.APIKeys)
	if err != nil {
		return nil, err
	}

	service, err := factory(ctx, pool.Current())
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube session: %w", err)
	}

	log.Info().Int("pool_size", pool.Size()).Msg("Connected to YouTube API")

	return &YouTubeClient{
		service: service,
		keys:    pool,
		factory: factory,
		cfg:     cfg,
	}, nil
}

// Issue sends a list request for the given resource. Empty filter values are
// pruned first. Quota failures (403) advance the key pool and rebuild the
// session; transient failures are retried with exponential backoff up to the
// configured attempt bound; permanent failures surface immediately.
func (c *YouTubeClient) Issue(ctx context.Context, resource Resource, filters Filters) (*ListResponse, error) {
	filters = PruneFilters(filters)

	backoff := c.cfg.RetryInitialBackoff
	attempt := 0
	var lastErr error

	for {
		service := c.currentService()
		response, err := service.List(ctx, resource, filters)
		if err == nil {
			requestsTotal.WithLabelValues(string(resource), "success").Inc()
			if attempt > 0 {
				log.Info().
					Str("resource", string(resource)).
					Int("attempt", attempt+1).
					Msg("Request succeeded after retry")
			}
			return response, nil
		}

		lastErr = err
		class := Classify(err)
		requestsTotal.WithLabelValues(string(resource), string(class)).Inc()

		switch class {
		case ErrorClassQuota:
			log.Warn().
				Err(err).
				Str("resource", string(resource)).
				Int("keys_remaining", c.keys.Remaining()).
				Msg("Quota key rejected, rotating")

			if rerr := c.rotate(ctx, service); rerr != nil {
				return nil, &APIError{
					Resource:   resource,
					StatusCode: statusCode(err),
					Class:      ErrorClassQuota,
					Err:        fmt.Errorf("%w: %v", rerr, err),
				}
			}
			// Rotation does not consume a retry attempt; the loop is
			// bounded by the pool size instead.
			continue

		case ErrorClassPermanent:
			log.Error().
				Err(err).
				Str("resource", string(resource)).
				Msg("Permanent API error")

			return nil, &APIError{
				Resource:   resource,
				StatusCode: statusCode(err),
				Class:      ErrorClassPermanent,
				Err:        err,
			}
		}

		attempt++
		if attempt >= c.cfg.MaxRetryAttempts {
			log.Warn().
				Err(err).
				Str("resource", string(resource)).
				Int("max_attempts", c.cfg.MaxRetryAttempts).
				Msg("Retry attempts exhausted")

			return nil, fmt.Errorf("%w for %s after %d attempts: %v",
				ErrRetryExhausted, resource, c.cfg.MaxRetryAttempts, lastErr)
		}

		retriesTotal.WithLabelValues(string(ErrorClassTransient)).Inc()

		// Jitter of ±20% to avoid synchronized retries across workers.
		jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
		retryBackoffSeconds.Observe(jitter.Seconds())

		log.Debug().
			Err(err).
			Str("resource", string(resource)).
			Int("attempt", attempt).
			Dur("backoff", jitter).
			Msg("Retrying request after backoff")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
		case <-time.After(jitter):
		}

		backoff = time.Duration(float64(backoff) * 2)
		if backoff > c.cfg.RetryMaxBackoff {
			backoff = c.cfg.RetryMaxBackoff
		}
	}
}

func (c *YouTubeClient) currentService() ListService {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.service
}

// rotate advances the key pool and rebuilds the session. When several
// workers hit 403 on the same session concurrently, only the first rotation
// consumes a key; the rest observe the rebuilt session and retry on it.
func (c *YouTubeClient) rotate(ctx context.Context, failed ListService) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service != failed {
		return nil
	}

	key, err := c.keys.Next()
	if err != nil {
		return err
	}

	service, err := c.factory(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to rebuild YouTube session: %w", err)
	}

	c.service = service
	keyRotationsTotal.Inc()

	return nil
}
