package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/carboncell/user-auth/internal/core/domain"
)

type stubFetcher struct {
	entries []domain.APIEntry
	err     error
	calls   int
}

func (f *stubFetcher) Fetch(_ context.Context) ([]domain.APIEntry, error) {
	f.calls++
	return f.entries, f.err
}

type stubCache struct {
	entries []domain.APIEntry
	found   bool
	getErr  error
	setErr  error
	stored  []domain.APIEntry
}

func (c *stubCache) Get(_ context.Context) ([]domain.APIEntry, bool, error) {
	return c.entries, c.found, c.getErr
}

func (c *stubCache) Set(_ context.Context, entries []domain.APIEntry) error {
	c.stored = entries
	return c.setErr
}

func sampleEntries() []domain.APIEntry {
	return []domain.APIEntry{
		{API: "Cat Facts", Category: "Animals"},
		{API: "Dog CEO", Category: "Animals"},
		{API: "Open Brewery", Category: "Food & Drink"},
		{API: "NASA", Category: "Science"},
	}
}

func TestDirectoryService_List_CacheMissFetchesAndStores(t *testing.T) {
	fetcher := &stubFetcher{entries: sampleEntries()}
	cache := &stubCache{}
	svc := NewDirectoryService(fetcher, cache, zerolog.Nop())

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", fetcher.calls)
	}
	if len(cache.stored) != 4 {
		t.Fatalf("expected entries cached, got %d", len(cache.stored))
	}
}

func TestDirectoryService_List_CacheHitSkipsFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	cache := &stubCache{entries: sampleEntries(), found: true}
	svc := NewDirectoryService(fetcher, cache, zerolog.Nop())

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 cached entries, got %d", len(entries))
	}
	if fetcher.calls != 0 {
		t.Fatalf("upstream must not be hit on a cache hit")
	}
}

func TestDirectoryService_List_CacheFailureDegradesToFetch(t *testing.T) {
	fetcher := &stubFetcher{entries: sampleEntries()}
	cache := &stubCache{getErr: errors.New("redis down"), setErr: errors.New("still down")}
	svc := NewDirectoryService(fetcher, cache, zerolog.Nop())

	entries, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
}

func TestDirectoryService_List_UpstreamErrorPropagates(t *testing.T) {
	upstreamErr := &domain.UpstreamStatusError{StatusCode: 404}
	fetcher := &stubFetcher{err: upstreamErr}
	svc := NewDirectoryService(fetcher, &stubCache{}, zerolog.Nop())

	_, err := svc.List(context.Background())
	var got *domain.UpstreamStatusError
	if !errors.As(err, &got) || got.StatusCode != 404 {
		t.Fatalf("expected wrapped upstream status error, got %v", err)
	}
}

func TestDirectoryService_FilterByCategory(t *testing.T) {
	cache := &stubCache{entries: sampleEntries(), found: true}
	svc := NewDirectoryService(&stubFetcher{}, cache, zerolog.Nop())

	entries, err := svc.FilterByCategory(context.Background(), "animals")
	if err != nil {
		t.Fatalf("FilterByCategory returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 animal entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Category != "Animals" {
			t.Fatalf("unexpected entry in filtered list: %+v", e)
		}
	}

	all, err := svc.FilterByCategory(context.Background(), "")
	if err != nil {
		t.Fatalf("FilterByCategory returned error: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("empty category must return the full list, got %d", len(all))
	}

	none, err := svc.FilterByCategory(context.Background(), "weather")
	if err != nil {
		t.Fatalf("FilterByCategory returned error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestDirectoryService_Limit(t *testing.T) {
	cache := &stubCache{entries: sampleEntries(), found: true}
	svc := NewDirectoryService(&stubFetcher{}, cache, zerolog.Nop())

	cases := []struct {
		limit int
		want  int
	}{
		{2, 2},
		{0, 4},
		{-1, 4},
		{4, 4},
		{100, 4},
	}
	for _, tc := range cases {
		entries, err := svc.Limit(context.Background(), tc.limit)
		if err != nil {
			t.Fatalf("Limit(%d) returned error: %v", tc.limit, err)
		}
		if len(entries) != tc.want {
			t.Fatalf("Limit(%d) = %d entries, want %d", tc.limit, len(entries), tc.want)
		}
	}
}
