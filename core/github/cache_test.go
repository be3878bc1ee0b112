package github

import (
	"context"
	"errors"
	"testing"
	"time"

	coreerrors "github.com/lolimmlost/appahouse-portfolio/core/errors"
	"github.com/lolimmlost/appahouse-portfolio/core/interfaces"
)

func newTestFetcher(client *mockHTTPClient, ttl time.Duration) (*CachedFetcher, *mockCache) {
	cache := newMockCache()
	f := NewCachedFetcher(interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: client,
		Logger:     &mockLogger{},
	}, ttl)
	return f, cache
}

func jsonOK(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
}

func TestCachedFetcher_FreshnessBoundary(t *testing.T) {
	ttl := 30 * time.Minute
	f, _ := newTestFetcher(jsonOK(`{"v":1}`), ttl)

	t0 := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return t0 }

	if err := f.Put(context.Background(), "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	f.now = func() time.Time { return t0.Add(ttl - time.Millisecond) }
	if data := f.Get(context.Background(), "k"); data == nil {
		t.Error("entry just inside the window should be fresh")
	}

	f.now = func() time.Time { return t0.Add(ttl + time.Millisecond) }
	if data := f.Get(context.Background(), "k"); data != nil {
		t.Error("entry past the window should miss")
	}
	if data := f.GetStale(context.Background(), "k"); data == nil {
		t.Error("expired entry must stay readable as stale")
	}
}

func TestFetchWithCache_FreshHitSkipsNetwork(t *testing.T) {
	client := jsonOK(`{"v":1}`)
	f, _ := newTestFetcher(client, time.Hour)

	if _, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if _, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if client.callCount() != 1 {
		t.Errorf("got %d network calls, want 1", client.callCount())
	}
}

func TestFetchWithCache_ForceRefreshBypassesCache(t *testing.T) {
	client := jsonOK(`{"v":1}`)
	f, _ := newTestFetcher(client, time.Hour)

	f.FetchWithCache(context.Background(), "k", "https://api.test/x", false)
	f.FetchWithCache(context.Background(), "k", "https://api.test/x", true)

	if client.callCount() != 2 {
		t.Errorf("got %d network calls, want 2", client.callCount())
	}
}

func TestFetchWithCache_CorruptEntryIsMiss(t *testing.T) {
	client := jsonOK(`{"v":2}`)
	f, cache := newTestFetcher(client, time.Hour)
	cache.store["k"] = []byte("not json")

	data, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Errorf("corrupt entry should fall through to the network, got %s", data)
	}
}

func TestFetch_RateLimited(t *testing.T) {
	reset := time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC)
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 403,
				headers:    map[string]string{"X-RateLimit-Reset": "1715778000"},
			}, nil
		},
	}
	f, _ := newTestFetcher(client, time.Hour)

	_, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false)

	if !coreerrors.IsRateLimit(err) {
		t.Fatalf("want RateLimitError, got %v", err)
	}
	var rle *coreerrors.RateLimitError
	errors.As(err, &rle)
	if !rle.Reset.Equal(reset) {
		t.Errorf("Reset = %v, want %v", rle.Reset, reset)
	}
	if coreerrors.IsExternalAPI(err) {
		t.Error("rate limit must be distinguishable from a generic upstream failure")
	}
}

func TestFetch_NotFound(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 404}, nil
		},
	}
	f, _ := newTestFetcher(client, time.Hour)

	_, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false)

	if !coreerrors.IsNotFound(err) {
		t.Errorf("want NotFoundError, got %v", err)
	}
}

func TestFetch_ServerErrorIsExternalAPI(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 502}, nil
		},
	}
	f, _ := newTestFetcher(client, time.Hour)

	_, err := f.FetchWithCache(context.Background(), "k", "https://api.test/x", false)

	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("want ExternalAPIError, got %v", err)
	}
}

func TestParseResetHeader(t *testing.T) {
	if got := parseResetHeader("1715778000"); !got.Equal(time.Unix(1715778000, 0)) {
		t.Errorf("parseResetHeader = %v", got)
	}
	if got := parseResetHeader(""); !got.IsZero() {
		t.Errorf("empty header should give zero time, got %v", got)
	}
	if got := parseResetHeader("soon"); !got.IsZero() {
		t.Errorf("malformed header should give zero time, got %v", got)
	}
}
