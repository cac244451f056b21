// Package keypool manages an ordered pool of API quota keys.
//
// Keys are consumed sequentially and never reused or replenished: when the
// active key is rejected for quota reasons the caller advances to the next
// one, and once the pool is drained every further request fails with
// ErrExhausted. The pool is safe for concurrent use so that rotation can be
// triggered from pooled workers.
package keypool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrExhausted is returned by Next once every key in the pool has been consumed.
var ErrExhausted = errors.New("key pool exhausted")

// Pool is a synchronized, ordered sequence of credential keys.
type Pool struct {
	mu      sync.Mutex
	keys    []string
	current int
}

// New creates a pool from an ordered key list. The list must be non-empty;
// the first key is active immediately.
func New(keys []string) (*Pool, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("key pool requires at least one key")
	}

	for i, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("key at index %d is empty", i)
		}
	}

	copied := make([]string, len(keys))
	copy(copied, keys)

	return &Pool{keys: copied}, nil
}

// Current returns the active key without advancing the pool.
func (p *Pool) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.keys[p.current]
}

// Next advances to the next unused key and returns it. Once the sequence is
// consumed it returns ErrExhausted, and keeps doing so on every further call.
func (p *Pool) Next() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current+1 >= len(p.keys) {
		log.Warn().Int("pool_size", len(p.keys)).Msg("API key pool exhausted")
		return "", ErrExhausted
	}

	p.current++
	log.Info().
		Int("key_index", p.current).
		Int("remaining", len(p.keys)-p.current-1).
		Msg("Rotated to next API key")

	return p.keys[p.current], nil
}

// Remaining returns the number of unused keys after the active one.
func (p *Pool) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.keys) - p.current - 1
}

// Size returns the total number of keys the pool was created with.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.keys)
}
