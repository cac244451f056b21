package youtube

import (
	"context"
	"sync"
	"time"

	"github.com/researchaccelerator-hub/youtube-crawler/client"
	"github.com/researchaccelerator-hub/youtube-crawler/common"
)

// recordedCall captures one Issue invocation
type recordedCall struct {
	resource client.Resource
	filters  client.Filters
}

// fakeClient dispatches Issue calls to a handler func and records them.
// Safe for concurrent use by fan-out tests.
type fakeClient struct {
	mu     sync.Mutex
	handle func(resource client.Resource, filters client.Filters) (*client.ListResponse, error)
	calls  []recordedCall
}

func (f *fakeClient) Issue(ctx context.Context, resource client.Resource, filters client.Filters) (*client.ListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{resource: resource, filters: filters})
	handle := f.handle
	f.mu.Unlock()

	return handle(resource, filters)
}

func (f *fakeClient) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]recordedCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// concurrencyTracker records the high-water mark of concurrent sections
type concurrencyTracker struct {
	mu      sync.Mutex
	active  int
	highest int
}

func (c *concurrencyTracker) enter() {
	c.mu.Lock()
	c.active++
	if c.active > c.highest {
		c.highest = c.active
	}
	c.mu.Unlock()
	time.Sleep(time.Millisecond)
}

func (c *concurrencyTracker) leave() {
	c.mu.Lock()
	c.active--
	c.mu.Unlock()
}

func (c *concurrencyTracker) max() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highest
}

func testConfig() common.CrawlerConfig {
	cfg := common.DefaultCrawlerConfig()
	cfg.APIKeys = []string{"test-key"}
	cfg.Concurrency = 4
	return cfg
}

func newTestCrawler(f *fakeClient) *Crawler {
	c, err := NewCrawler(f, testConfig())
	if err != nil {
		panic(err)
	}
	return c
}
