package ports

import (
	"context"

	"github.com/carboncell/user-auth/internal/core/domain"
)

// DirectoryFetcher retrieves the full entry list from the public-apis
// upstream.
type DirectoryFetcher interface {
	Fetch(ctx context.Context) ([]domain.APIEntry, error)
}

// EntryCache is a read-through cache for the directory entry list. A failed
// cache round-trip must never fail the request; callers treat errors as a
// miss.
type EntryCache interface {
	Get(ctx context.Context) ([]domain.APIEntry, bool, error)
	Set(ctx context.Context, entries []domain.APIEntry) error
}

type DirectoryService interface {
	List(ctx context.Context) ([]domain.APIEntry, error)
	FilterByCategory(ctx context.Context, category string) ([]domain.APIEntry, error)
	Limit(ctx context.Context, limit int) ([]domain.APIEntry, error)
}
