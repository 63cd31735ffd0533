package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/carboncell/user-auth/internal/core/domain"
	"github.com/carboncell/user-auth/internal/core/ports"
)

// DirectoryService proxies the public-apis directory with client-side
// filtering and limiting. The entry list is read through a cache; cache
// failures degrade to an upstream fetch and never fail the request.
type DirectoryService struct {
	fetcher ports.DirectoryFetcher
	cache   ports.EntryCache
	log     zerolog.Logger
}

func NewDirectoryService(fetcher ports.DirectoryFetcher, cache ports.EntryCache, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{fetcher: fetcher, cache: cache, log: log}
}

// List returns the full directory entry list.
func (s *DirectoryService) List(ctx context.Context) ([]domain.APIEntry, error) {
	return s.entries(ctx)
}

// FilterByCategory returns the entries whose category matches, ignoring
// case. An empty category returns the full list.
func (s *DirectoryService) FilterByCategory(ctx context.Context, category string) ([]domain.APIEntry, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return entries, nil
	}

	filtered := make([]domain.APIEntry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Category, category) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Limit returns the first limit entries. A non-positive limit, or one at or
// beyond the list length, returns the full list.
func (s *DirectoryService) Limit(ctx context.Context, limit int) ([]domain.APIEntry, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		return entries[:limit], nil
	}
	return entries, nil
}

func (s *DirectoryService) entries(ctx context.Context) ([]domain.APIEntry, error) {
	if cached, ok, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("directory cache read failed")
	} else if ok {
		return cached, nil
	}

	entries, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch directory: %w", err)
	}

	if err := s.cache.Set(ctx, entries); err != nil {
		s.log.Warn().Err(err).Msg("directory cache write failed")
	}
	return entries, nil
}
