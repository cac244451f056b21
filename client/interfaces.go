// Package client wraps the YouTube Data API behind a quota-key-rotating,
// retrying request client
package client

import "context"

// ListService is the external collaborator: a paged list-style read API
// exposing the four supported resources. Implementations are bound to a
// single API key; the Client rebuilds them on key rotation.
type ListService interface {
	// List issues a single list call against the given resource. Filters are
	// transmitted as-is; pruning happens in the layer above.
	List(ctx context.Context, resource Resource, filters Filters) (*ListResponse, error)
}

// Client issues orchestrated requests: it prunes empty filters, rotates the
// quota key on authorization failure, and retries transient errors with
// bounded backoff.
type Client interface {
	Issue(ctx context.Context, resource Resource, filters Filters) (*ListResponse, error)
}

// ServiceFactory builds a ListService session for an API key. The production
// factory dials the real Data API; tests substitute fakes.
type ServiceFactory func(ctx context.Context, apiKey string) (ListService, error)
