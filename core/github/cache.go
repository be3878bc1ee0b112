// ABOUTME: Read-through cache over remote JSON resources with stale fallback
// ABOUTME: Entries carry their own write timestamp; freshness is computed on read

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

// entry is the stored cache value: the opaque payload plus its write time
// in epoch milliseconds.
type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// CachedFetcher is a keyed read-through cache over JSON HTTP resources.
// Entries are stored without backend expiry so they remain readable as a
// stale fallback after their freshness window elapses.
type CachedFetcher struct {
	deps interfaces.Dependencies
	ttl  time.Duration

	// now is overridable in tests for deterministic freshness checks
	now func() time.Time
}

// NewCachedFetcher creates a fetcher with the given freshness TTL.
func NewCachedFetcher(deps interfaces.Dependencies, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		deps: deps,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the cached payload for key if the entry is still fresh,
// or nil on a miss. A miss is a normal outcome, not an error.
func (f *CachedFetcher) Get(ctx context.Context, key string) json.RawMessage {
	e := f.read(ctx, key)
	if e == nil {
		return nil
	}

	age := f.now().UnixMilli() - e.Timestamp
	if age >= f.ttl.Milliseconds() {
		return nil
	}
	return e.Data
}

// GetStale returns the cached payload for key ignoring freshness, or nil
// if the key was never written.
func (f *CachedFetcher) GetStale(ctx context.Context, key string) json.RawMessage {
	e := f.read(ctx, key)
	if e == nil {
		return nil
	}
	return e.Data
}

// Put overwrites the entry for key with a fresh timestamp.
func (f *CachedFetcher) Put(ctx context.Context, key string, data json.RawMessage) error {
	if f.deps.Cache == nil {
		return nil
	}

	value, err := json.Marshal(entry{Data: data, Timestamp: f.now().UnixMilli()})
	if err != nil {
		return err
	}

	// ttl 0: the backend never evicts, stale reads stay possible.
	return f.deps.Cache.Set(ctx, key, value, 0)
}

// FetchWithCache returns the resource at url, serving a fresh cache hit
// without a network call. forceRefresh bypasses the cache read; a
// successful fetch still overwrites the cache either way.
func (f *CachedFetcher) FetchWithCache(ctx context.Context, key, url string, forceRefresh bool) (json.RawMessage, error) {
	if !forceRefresh {
		if data := f.Get(ctx, key); data != nil {
			return data, nil
		}
	}

	data, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := f.Put(ctx, key, data); err != nil && f.deps.Logger != nil {
		f.deps.Logger.Warn("Failed to cache fetched resource", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return data, nil
}

// fetch performs the network request and maps non-2xx responses to the
// structured error taxonomy.
func (f *CachedFetcher) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	resp, err := f.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	switch {
	case status == 403:
		return nil, &coreerrors.RateLimitError{
			API:   "GitHub",
			Reset: parseResetHeader(resp.Header("X-RateLimit-Reset")),
		}
	case status == 404:
		return nil, &coreerrors.NotFoundError{Resource: "GitHub resource", ID: url}
	case status < 200 || status > 299:
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: status,
			Message:    fmt.Sprintf("unexpected status %d", status),
			API:        "GitHub",
		}
	}

	var data json.RawMessage
	if err := json.NewDecoder(resp.Body()).Decode(&data); err != nil {
		return nil, coreerrors.WrapError(err, "decoding GitHub response")
	}
	return data, nil
}

// read loads and unmarshals a stored entry, treating any backend or
// decode error as a miss.
func (f *CachedFetcher) read(ctx context.Context, key string) *entry {
	if f.deps.Cache == nil {
		return nil
	}

	value, err := f.deps.Cache.Get(ctx, key)
	if err != nil || value == nil {
		return nil
	}

	var e entry
	if err := json.Unmarshal(value, &e); err != nil {
		return nil
	}
	return &e
}

// parseResetHeader parses the X-RateLimit-Reset epoch-seconds hint.
// Returns the zero time when absent or malformed.
func parseResetHeader(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
