package market

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jhconzatti/julishub/internal/market/cache"
)

// Source is one provider attempt in a product's fallback chain. Chains are
// fixed and static: providers are tried in declaration order and the first
// non-error result wins.
type Source[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// HistorySource fetches a daily closing history for an upstream pair code,
// chronological ascending, at most days points.
type HistorySource interface {
	Name() string
	History(ctx context.Context, pair string, days int) ([]HistoryPoint, error)
}

// Chains declares the per-product provider order and merge rules. Provider
// priority differs per product because no single upstream covers all data.
type Chains struct {
	Cotacao []Source[Cotacao]
	// CotacaoIndex is the supplementary call used to fill the Ibovespa
	// sub-field when the winning cotacao provider does not carry it.
	CotacaoIndex func(ctx context.Context) (Quote, error)
	Indicadores  []Source[Indicadores]
	Exchange     []Source[ExchangeTable]
	BrazilBoard  []Source[IndexBoard]
	History      []HistorySource
}

// Service resolves each data product through cache, then the product's
// fallback chain, then the degraded payload. Degraded payloads are never
// cached so the next request retries upstream.
type Service struct {
	cache  *cache.Cache
	log    *logrus.Entry
	chains Chains
}

func NewService(c *cache.Cache, log *logrus.Entry, chains Chains) *Service {
	return &Service{cache: c, log: log, chains: chains}
}

func resolve[T any](ctx context.Context, s *Service, product Product, chain []Source[T], enrich func(context.Context, *T), degraded func() T) T {
	if v, ok := cache.Get[T](s.cache, string(product)); ok {
		return v
	}
	for _, src := range chain {
		v, err := src.Fetch(ctx)
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"product":  product,
				"provider": src.Name,
			}).Warn("provider fetch failed, falling through")
			continue
		}
		if enrich != nil {
			enrich(ctx, &v)
		}
		s.cache.Set(string(product), v)
		s.log.WithFields(logrus.Fields{"product": product, "provider": src.Name}).Debug("product refreshed")
		return v
	}
	s.log.WithField("product", product).Error("all providers failed, serving degraded payload")
	return degraded()
}

// Cotacao returns the spot-quote payload for /api/cotacao.
func (s *Service) Cotacao(ctx context.Context) Cotacao {
	return resolve(ctx, s, ProductCotacao, s.chains.Cotacao, s.fillIbovespa, DegradedCotacao)
}

// fillIbovespa merges the stock-index sub-field from its dedicated provider
// when the winning quote provider left it empty. A field the provider
// already populated is never overwritten. Exactly one supplementary call.
func (s *Service) fillIbovespa(ctx context.Context, c *Cotacao) {
	if c.Ibovespa.Valor != "" && c.Ibovespa.Valor != "0.00" {
		return
	}
	if s.chains.CotacaoIndex == nil {
		c.Ibovespa = DegradedQuote()
		return
	}
	q, err := s.chains.CotacaoIndex(ctx)
	if err != nil {
		s.log.WithError(err).Warn("ibovespa supplement failed, zero-filling")
		c.Ibovespa = DegradedQuote()
		return
	}
	c.Ibovespa = q
}

// History returns the 30-day ascending history for an instrument name, or
// ErrUnsupportedInstrument when the name has no upstream pair mapping.
func (s *Service) History(ctx context.Context, instrument string) ([]HistoryPoint, error) {
	pair, ok := HistoryPair(instrument)
	if !ok {
		return nil, ErrUnsupportedInstrument
	}
	chain := make([]Source[[]HistoryPoint], 0, len(s.chains.History))
	for _, src := range s.chains.History {
		src := src
		chain = append(chain, Source[[]HistoryPoint]{
			Name: src.Name(),
			Fetch: func(ctx context.Context) ([]HistoryPoint, error) {
				return src.History(ctx, pair, 30)
			},
		})
	}
	return resolve(ctx, s, HistoryProduct(instrument), chain, nil, DegradedHistory), nil
}

// Indicadores returns the macro-indicator payload for /api/indicadores.
func (s *Service) Indicadores(ctx context.Context) Indicadores {
	return resolve(ctx, s, ProductIndicadores, s.chains.Indicadores, nil, DegradedIndicadores)
}

// ExchangeRates returns the expanded multi-pair table for /api/exchange-rates.
func (s *Service) ExchangeRates(ctx context.Context) ExchangeTable {
	return resolve(ctx, s, ProductExchange, s.chains.Exchange, nil, DegradedExchangeTable)
}

// BrazilIndexes returns the live B3 index board.
func (s *Service) BrazilIndexes(ctx context.Context) IndexBoard {
	return resolve(ctx, s, ProductIndexBrazil, s.chains.BrazilBoard, nil, DegradedBrazilBoard)
}

// ArgentinaIndexes and USAIndexes serve static placeholder boards: the free
// upstream sources do not quote those exchanges.
func (s *Service) ArgentinaIndexes() IndexBoard { return StaticArgentinaBoard() }
func (s *Service) USAIndexes() IndexBoard { return StaticUSABoard() }
