package news

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/market"
	"github.com/jhconzatti/julishub/internal/market/cache"
)

// Fetcher is what the service needs from the feed client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Service caches feed results for the configured validity window. A
// failed fetch yields an empty list and is never cached, so the next
// request retries the feed.
type Service struct {
	fetcher Fetcher
	cache   *cache.Cache
	log     *logrus.Entry
}

func NewService(fetcher Fetcher, c *cache.Cache, log *logrus.Entry) *Service {
	return &Service{fetcher: fetcher, cache: c, log: log}
}

// Latest returns the cached headlines, refreshing when stale.
func (s *Service) Latest(ctx context.Context) []Item {
	if items, ok := cache.Get[[]Item](s.cache, string(market.ProductNoticias)); ok {
		return items
	}

	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.log.WithError(err).Warn("news feed unavailable")
		return []Item{}
	}

	s.cache.Set(string(market.ProductNoticias), items)
	return items
}
